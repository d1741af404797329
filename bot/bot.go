// Package bot implements the Bot identity and transport handle described in
// SPEC_FULL.md §3.2: a token, its redacted rendering, a deterministically
// parsed numeric id, and a shared Session reference.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kurtskinny/tgcore/methods"
)

// Session is the transport contract a Bot is bound to (SPEC_FULL.md §6.1).
// Declaring it here, rather than in package session, lets session import
// bot without a cycle: session.HTTPSession implements this interface
// structurally.
type Session interface {
	SendRequest(ctx context.Context, b *Bot, method methods.Method, timeout time.Duration) (methods.ClientResponse, error)
	Close(ctx context.Context) error
}

// Bot is constructed once and shared read-only by all concurrent dispatch
// paths (SPEC_FULL.md §3.2 Lifetime).
type Bot struct {
	token  string
	botID  int64
	client Session

	mu       sync.Mutex
	username string // cached getMe().username, empty until first resolved
}

// Option configures a Bot at construction time.
type Option func(*Bot)

// ErrMalformedToken is returned when the token has no ':' separator or the
// prefix is not a valid integer (SPEC_FULL.md §6.4).
var ErrMalformedToken = fmt.Errorf("bot: malformed token")

// New parses token per §6.4 and binds client as the bot's transport.
func New(token string, client Session, opts ...Option) (*Bot, error) {
	id, err := parseBotID(token)
	if err != nil {
		return nil, err
	}
	b := &Bot{token: token, botID: id, client: client}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func parseBotID(token string) (int64, error) {
	idx := strings.IndexByte(token, ':')
	if idx <= 0 {
		return 0, ErrMalformedToken
	}
	id, err := strconv.ParseInt(token[:idx], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return id, nil
}

// Token returns the raw secret. Logging call sites must never call this;
// use HiddenToken or logging.BotField instead.
func (b *Bot) Token() string { return b.token }

// HiddenToken renders the redacted form used by all diagnostic output:
// first 4 chars + ellipsis + last 4 chars (SPEC_FULL.md §3.2).
func (b *Bot) HiddenToken() string {
	if len(b.token) <= 8 {
		return "****"
	}
	return b.token[:4] + "..." + b.token[len(b.token)-4:]
}

// String satisfies fmt.Stringer with the redacted rendering only, so a bare
// %v/%s of a *Bot can never leak the token by accident.
func (b *Bot) String() string {
	return fmt.Sprintf("Bot{id=%d, token=%s}", b.botID, b.HiddenToken())
}

// ID is the bot_id parsed from the token prefix.
func (b *Bot) ID() int64 { return b.botID }

// Session returns the bound transport handle.
func (b *Bot) Session() Session { return b.client }

// CachedUsername returns a previously resolved getMe().username, if any.
// The caller populates it via SetCachedUsername (cmd/echobot does so with
// one getMe call at startup); filters.Command's mention validation only
// reads it (SPEC_FULL.md "SUPPLEMENTED FEATURES"), so command checks never
// issue getMe themselves.
func (b *Bot) CachedUsername() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.username, b.username != ""
}

// SetCachedUsername records a resolved username for reuse by later calls.
func (b *Bot) SetCachedUsername(username string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.username = username
}
