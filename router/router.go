// Package router implements the hierarchical Router tree from
// SPEC_FULL.md §3.8 and §4.5, grounded in original_source/src/router.rs
// (Router<Client> / RouterService<Client>).
package router

import (
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/logging"
	"github.com/kurtskinny/tgcore/telegram"
)

// LifecycleHandler is a startup/shutdown hook; it takes no request triple
// because lifecycle events are not per-update (original_source's
// emit_startup triggers its observer with unit, not a Request).
type LifecycleHandler func() error

// Router is the mutable, build-time form: register observers, handlers,
// middlewares, and sub-routers on it, then call Freeze to obtain the
// immutable runtime graph (SPEC_FULL.md §4.5 "Middleware inheritance",
// Design Notes §9 "Middleware inheritance at build time").
type Router struct {
	Name string

	observers map[telegram.UpdateKind]*event.Observer
	update    *event.Observer

	startup  []LifecycleHandler
	shutdown []LifecycleHandler

	subRouters []*Router

	skipUpdateTypes map[telegram.UpdateKind]bool
}

// Option configures a Router at construction time.
type Option func(*Router)

// WithLogger attaches a logger to every pre-allocated observer, so filter
// errors are reported per SPEC_FULL.md §4.2. Sub-routers each take their
// own WithLogger option; it is not inherited through Include/Freeze.
func WithLogger(l *logging.Logger) Option {
	return func(r *Router) {
		r.update.SetLogger(l)
		for _, obs := range r.observers {
			obs.SetLogger(l)
		}
	}
}

// New creates an empty router with all 18 kind-observers plus the "update"
// pseudo-observer pre-allocated (SPEC_FULL.md §3.8).
func New(name string, opts ...Option) *Router {
	r := &Router{
		Name:            name,
		observers:       make(map[telegram.UpdateKind]*event.Observer, len(telegram.AllKinds)),
		update:          event.NewObserver(telegram.KindUpdate),
		skipUpdateTypes: make(map[telegram.UpdateKind]bool),
	}
	for _, k := range telegram.AllKinds {
		r.observers[k] = event.NewObserver(k)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Observer returns the per-kind observer to register handlers/filters on.
// Pass telegram.KindUpdate for the catch-all observer.
func (r *Router) Observer(kind telegram.UpdateKind) *event.Observer {
	if kind == telegram.KindUpdate {
		return r.update
	}
	return r.observers[kind]
}

// Include attaches sub as a child of r. Sub-routers are owned exclusively
// by their parent (SPEC_FULL.md §3.8 invariant); Include does not check
// for cycles beyond refusing to include a router into itself.
func (r *Router) Include(sub *Router) {
	if sub == r {
		panic("router: a router cannot include itself")
	}
	r.subRouters = append(r.subRouters, sub)
}

// OnStartup registers a startup lifecycle hook.
func (r *Router) OnStartup(fn LifecycleHandler) { r.startup = append(r.startup, fn) }

// OnShutdown registers a shutdown lifecycle hook.
func (r *Router) OnShutdown(fn LifecycleHandler) { r.shutdown = append(r.shutdown, fn) }

// SkipUpdateType excludes kind from UsedUpdateTypes's resolved set, even
// if a handler is registered for it (SPEC_FULL.md §4.5 "Used-update-types
// resolution ... filters out any explicitly skipped types").
func (r *Router) SkipUpdateType(kind telegram.UpdateKind) { r.skipUpdateTypes[kind] = true }
