// Package dispatcher implements the long-polling engine from
// SPEC_FULL.md §4.6, grounded in original_source/src/dispatcher.rs
// Dispatcher::run_polling: a per-bot bounded channel fed by a listener
// goroutine issuing getUpdates in a loop, drained by a consumer goroutine
// that spawns one fire-and-forget task per update.
package dispatcher

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/logging"
	"github.com/kurtskinny/tgcore/methods"
	"github.com/kurtskinny/tgcore/router"
	"github.com/kurtskinny/tgcore/session"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

const (
	// DefaultChannelCapacity bounds the per-bot update channel of the
	// polling algorithm (SPEC_FULL.md §4.6).
	DefaultChannelCapacity = 100
	// DefaultFetchLimit is the getUpdates "limit" parameter.
	DefaultFetchLimit = 100
	// DefaultPollTimeoutSeconds is the getUpdates long-poll "timeout".
	DefaultPollTimeoutSeconds = 30
	// pollHTTPTimeoutSlack is added to DefaultPollTimeoutSeconds so the
	// HTTP round trip itself never times out before Telegram's long poll
	// does.
	pollHTTPTimeoutSlack = 10 * time.Second
)

// Dispatcher owns the per-bot polling loops and propagates every received
// update through a frozen router graph (SPEC_FULL.md §4.6).
type Dispatcher struct {
	router *router.RouterService
	log    *logging.Logger
	offset OffsetStore

	channelCapacity int
	fetchLimit      int
	pollTimeout     time.Duration
	allowedUpdates  []string

	backoffFactory func() backoff.BackOff
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithLogger attaches a logger; without one, New uses an info-level
// logging.New("info") logger writing to stdout.
func WithLogger(l *logging.Logger) Option { return func(d *Dispatcher) { d.log = l } }

// WithOffsetStore overrides the default in-memory offset store, e.g. with
// dispatcher/boltoffset's durable implementation.
func WithOffsetStore(s OffsetStore) Option { return func(d *Dispatcher) { d.offset = s } }

// WithChannelCapacity overrides DefaultChannelCapacity.
func WithChannelCapacity(n int) Option { return func(d *Dispatcher) { d.channelCapacity = n } }

// WithFetchLimit overrides DefaultFetchLimit.
func WithFetchLimit(n int) Option { return func(d *Dispatcher) { d.fetchLimit = n } }

// WithPollTimeout overrides DefaultPollTimeoutSeconds.
func WithPollTimeout(d time.Duration) Option { return func(disp *Dispatcher) { disp.pollTimeout = d } }

// WithAllowedUpdates pins the getUpdates allowed_updates set explicitly,
// e.g. to a Router's UsedUpdateTypes. Without it, getUpdates is sent with
// no allowed_updates parameter; the dispatcher does not resolve the set
// from the router itself.
func WithAllowedUpdates(kinds []telegram.UpdateKind) Option {
	return func(d *Dispatcher) {
		d.allowedUpdates = make([]string, len(kinds))
		for i, k := range kinds {
			d.allowedUpdates[i] = string(k)
		}
	}
}

// WithBackoff overrides the reconnect backoff strategy (default
// backoff.NewExponentialBackOff with no max elapsed time, i.e. retry
// forever).
func WithBackoff(factory func() backoff.BackOff) Option {
	return func(d *Dispatcher) { d.backoffFactory = factory }
}

// New builds a Dispatcher bound to svc, the frozen router graph every
// update is propagated through.
func New(svc *router.RouterService, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		router:          svc,
		log:             logging.New("info"),
		offset:          NewMemoryOffsetStore(),
		channelCapacity: DefaultChannelCapacity,
		fetchLimit:      DefaultFetchLimit,
		pollTimeout:     DefaultPollTimeoutSeconds * time.Second,
		backoffFactory: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = 0
			return b
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RunPolling installs a signal-cancelable context (SIGINT, SIGTERM),
// fires the router's startup hooks, runs the per-bot polling loops until
// cancellation or the first unrecoverable error, then fires shutdown
// hooks on the way out (SPEC_FULL.md §6.6 "OS signal handling").
func (d *Dispatcher) RunPolling(ctx context.Context, bots ...*bot.Bot) error {
	if err := d.router.EmitStartup(); err != nil {
		return errors.Wrap(err, "dispatcher: startup hook")
	}
	defer func() {
		if err := d.router.EmitShutdown(); err != nil {
			d.log.Error("shutdown hook failed", zap.Error(err))
		}
	}()

	return d.RunPollingWithoutStartupAndShutdown(ctx, bots...)
}

// RunPollingWithoutStartupAndShutdown runs the polling loops without
// touching router lifecycle hooks, for embedding inside a larger process
// that manages its own startup/shutdown sequencing.
func (d *Dispatcher) RunPollingWithoutStartupAndShutdown(ctx context.Context, bots ...*bot.Bot) error {
	ctx, stop := notifyContext(ctx)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, b := range bots {
		b := b
		ch := make(chan *telegram.Update, d.channelCapacity)
		g.Go(func() error { return d.listen(gctx, b, ch) })
		g.Go(func() error { return d.consume(gctx, b, ch) })
	}
	return g.Wait()
}

// listen issues getUpdates in a loop, advancing the offset past every
// update it successfully delivers to ch (SPEC_FULL.md §4.6 "Listener
// loop"). A transport error triggers the backoff strategy and a retry;
// success resets it.
func (d *Dispatcher) listen(ctx context.Context, b *bot.Bot, ch chan<- *telegram.Update) error {
	defer close(ch)

	offset, err := d.offset.LoadOffset(b.ID())
	if err != nil {
		return errors.Wrapf(err, "dispatcher: load offset for %s", b)
	}

	bo := d.backoffFactory()
	allowed := d.allowedUpdates

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw, err := session.MakeRequest(ctx, b.Session(), b, methods.GetUpdates{
			Offset:         offset,
			Limit:          d.fetchLimit,
			TimeoutSeconds: int(d.pollTimeout / time.Second),
			AllowedUpdates: allowed,
		}, d.pollTimeout+pollHTTPTimeoutSlack)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := bo.NextBackOff()
			d.log.Warn("getUpdates failed, backing off",
				logging.BotField(b), zap.Error(err), zap.Duration("wait", wait))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}
		bo.Reset()

		var items []json.RawMessage
		if len(raw.Result) > 0 {
			if err := json.Unmarshal(raw.Result, &items); err != nil {
				d.log.Error("malformed getUpdates result", logging.BotField(b), zap.Error(err))
				continue
			}
		}

		for _, item := range items {
			u, err := telegram.ParseUpdate(item)
			if err != nil {
				d.log.Warn("skipping update with unknown kind", logging.BotField(b), zap.Error(err))
				continue
			}
			offset = u.ID + 1
			select {
			case ch <- u:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if len(items) > 0 {
			if err := d.offset.SaveOffset(b.ID(), offset); err != nil {
				d.log.Error("failed to persist offset", logging.BotField(b), zap.Error(err))
			}
		}
	}
}

// consume drains ch, spawning one task per update so a slow handler never
// blocks the listener from fetching the next batch (SPEC_FULL.md §4.6
// "Consumer"). Before returning, it waits for every task it spawned to
// finish.
func (d *Dispatcher) consume(ctx context.Context, b *bot.Bot, ch <-chan *telegram.Update) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case u, ok := <-ch:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func(u *telegram.Update) {
				defer wg.Done()
				d.handle(b, u)
			}(u)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *Dispatcher) handle(b *bot.Bot, u *telegram.Update) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("handler panicked", logging.BotField(b),
				zap.String("update_kind", string(u.Kind)), zap.Any("panic", r))
		}
	}()

	req := event.Request{Bot: b, Update: u, Context: tgcontext.New()}
	resp := d.router.Propagate(u.Kind, req)

	switch resp.Result.Kind {
	case event.Unhandled:
		d.log.Debug("update unhandled", logging.BotField(b), zap.String("update_kind", string(u.Kind)))
	case event.Handled:
		if resp.Result.Handler != nil && resp.Result.Handler.Err != nil {
			d.log.Error("handler returned error", logging.BotField(b),
				zap.String("update_kind", string(u.Kind)), zap.Error(resp.Result.Handler.Err))
		}
	}
}
