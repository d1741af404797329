// Package errs implements the error taxonomy from SPEC_FULL.md §7, ported
// from original_source/src/error/telegram.rs. Kinds carry Telegram-specific
// semantics (retry hints, migration targets); everything else is opaque
// wrapping via github.com/go-faster/errors.
package errs

import "fmt"

// TelegramError is satisfied by every concrete Telegram API error kind
// below. It exists so callers can type-switch without importing each
// concrete struct by name.
type TelegramError interface {
	error
	telegramError()
}

type RetryAfter struct {
	URL        string
	Message    string
	RetryAfter int64 // seconds
}

func (e *RetryAfter) Error() string {
	return fmt.Sprintf("TelegramRetryAfter: %s (retry after %ds, see %s)", e.Message, e.RetryAfter, e.URL)
}
func (*RetryAfter) telegramError() {}

type MigrateToChat struct {
	URL             string
	Message         string
	MigrateToChatID int64
}

func (e *MigrateToChat) Error() string {
	return fmt.Sprintf("TelegramMigrateToChat: %s (migrate to %d, see %s)", e.Message, e.MigrateToChatID, e.URL)
}
func (*MigrateToChat) telegramError() {}

type BadRequest struct{ Message string }

func (e *BadRequest) Error() string { return "TelegramBadRequest: " + e.Message }
func (*BadRequest) telegramError()  {}

type Unauthorized struct{ Message string }

func (e *Unauthorized) Error() string { return "TelegramUnauthorized: " + e.Message }
func (*Unauthorized) telegramError()  {}

type Forbidden struct{ Message string }

func (e *Forbidden) Error() string { return "TelegramForbidden: " + e.Message }
func (*Forbidden) telegramError()  {}

type NotFound struct{ Message string }

func (e *NotFound) Error() string { return "TelegramNotFound: " + e.Message }
func (*NotFound) telegramError()  {}

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return "TelegramConflictError: " + e.Message }
func (*ConflictError) telegramError()  {}

type EntityTooLarge struct {
	URL     string
	Message string
}

func (e *EntityTooLarge) Error() string {
	return fmt.Sprintf("TelegramEntityTooLarge: %s (see %s)", e.Message, e.URL)
}
func (*EntityTooLarge) telegramError() {}

type ServerError struct{ Message string }

func (e *ServerError) Error() string { return "TelegramServerError: " + e.Message }
func (*ServerError) telegramError()  {}

type RestartingTelegram struct{ Message string }

func (e *RestartingTelegram) Error() string { return "RestartingTelegram: " + e.Message }
func (*RestartingTelegram) telegramError()  {}

// Well-known documentation URLs, copied verbatim from
// original_source/src/client/session/base.rs so messages match the
// upstream framework's diagnostics exactly.
const (
	URLHittingLimits  = "https://core.telegram.org/bots/faq#my-bot-is-hitting-limits-how-do-i-avoid-this"
	URLResponseParams = "https://core.telegram.org/bots/api#responseparameters"
	URLSendingFiles   = "https://core.telegram.org/bots/api#sending-files"
)
