// Command echobot is a minimal runnable example: it echoes every text
// message back to its chat. It wires config, logging, the bbolt offset
// store, session, bot, router, middlewares and dispatcher into one
// process, the way cmd/userbot/main.go wires the teacher's application
// together.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/config"
	"github.com/kurtskinny/tgcore/dispatcher"
	"github.com/kurtskinny/tgcore/dispatcher/boltoffset"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/logging"
	"github.com/kurtskinny/tgcore/methods"
	"github.com/kurtskinny/tgcore/middlewares"
	"github.com/kurtskinny/tgcore/router"
	"github.com/kurtskinny/tgcore/session"
	"github.com/kurtskinny/tgcore/telegram"
)

func main() {
	envPath := flag.String("env", ".env", "path to .env file")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "echobot: config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Env.LogLevel)
	defer log.Sync()
	for _, w := range cfg.Warnings() {
		log.Warn(w)
	}

	offsets, err := boltoffset.Open(cfg.Env.OffsetStorePath)
	if err != nil {
		log.Error("failed to open offset store", zap.Error(err))
		os.Exit(1)
	}
	defer offsets.Close()

	client := session.NewHTTPSession(session.WithRateLimit(cfg.Env.RateLimitRPS))
	b, err := bot.New(cfg.Env.BotToken, client)
	if err != nil {
		log.Error("failed to construct bot", zap.Error(err))
		os.Exit(1)
	}

	ctx := context.Background()
	resolveCachedUsername(ctx, log, b)

	r := router.New("echobot", router.WithLogger(log))
	r.Observer(telegram.KindMessage).Use(middlewares.Logging(log))
	r.Observer(telegram.KindMessage).Register(&event.HandlerObject{
		Fn: echoHandler,
	})

	svc := r.Freeze()
	d := dispatcher.New(svc,
		dispatcher.WithLogger(log),
		dispatcher.WithOffsetStore(offsets),
		dispatcher.WithFetchLimit(cfg.Env.FetchLimit),
		dispatcher.WithChannelCapacity(cfg.Env.ChannelCapacity),
		dispatcher.WithAllowedUpdates(r.UsedUpdateTypes()),
	)

	if _, err := session.MakeRequest(ctx, b.Session(), b, methods.DeleteWebhook{DropPendingUpdates: cfg.Env.DropPending}, 0); err != nil {
		log.Warn("deleteWebhook failed, continuing anyway", zap.Error(err))
	}

	log.Info("echobot starting", logging.BotField(b))
	if err := d.RunPolling(ctx, b); err != nil {
		log.Error("polling stopped", zap.Error(err))
		os.Exit(1)
	}
}

// resolveCachedUsername issues one getMe() call and caches the bot's own
// username on b, so filters.Command can validate @mentioned commands
// without ever making its own transport call (SPEC_FULL.md "SUPPLEMENTED
// FEATURES"). A failure here is non-fatal: the call is not retried, so
// mention validation stays permissive for the rest of the process.
func resolveCachedUsername(ctx context.Context, log *logging.Logger, b *bot.Bot) {
	raw, err := session.MakeRequest(ctx, b.Session(), b, methods.GetMe{}, 0)
	if err != nil {
		log.Warn("getMe failed, command mention validation stays permissive", logging.BotField(b), zap.Error(err))
		return
	}
	var user struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(raw.Result, &user); err != nil {
		log.Warn("getMe result malformed, command mention validation stays permissive", logging.BotField(b), zap.Error(err))
		return
	}
	b.SetCachedUsername(user.Username)
}

// echoHandler sends the incoming message's text back to the same chat.
// It is registered directly as a HandlerFunc rather than through
// extract.Handler to keep this example's dependency surface small; a real
// bot with many handlers would prefer extract.Handler's typed-parameter
// signatures.
func echoHandler(req event.Request) (event.EventReturn, error) {
	text, ok := req.Update.Text()
	if !ok {
		return event.Skip, nil
	}
	chatID, ok := req.Update.ChatID()
	if !ok {
		return event.Skip, nil
	}

	_, err := session.MakeRequest(context.Background(), req.Bot.Session(), req.Bot,
		methods.SendMessage{ChatID: chatID, Text: text}, 0)
	if err != nil {
		return event.Finish, err
	}
	return event.Finish, nil
}
