// Package methods implements the outgoing-request / incoming-response wire
// schema from SPEC_FULL.md §6.2: a uniform Method interface plus the small
// representative slice of concrete Telegram Bot API methods this module
// exercises (getMe, getUpdates, sendMessage, sendPhoto, deleteWebhook).
package methods

import (
	"encoding/json"
	"io"
	"net/url"
)

// Part is one multipart file attachment, referenced from the method's
// encoded parameters via an "attach://{uuid}" URI (SPEC_FULL.md §6.2,
// §6.5).
type Part struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

// Method is the uniform contract every outgoing request satisfies. Build
// returns the method's form-encoded parameters plus any files that must
// ride along as multipart parts; when len(parts) == 0 the request is sent
// as application/x-www-form-urlencoded, otherwise as multipart/form-data
// (SPEC_FULL.md §6.2).
type Method interface {
	Name() string
	Build() (url.Values, []Part, error)
}

// Result is implemented by a Method's expected response payload type so
// that session.CheckResponse-adjacent callers can unmarshal RawResponse's
// Result field generically without a type switch in the session package.
type Result interface {
	UnmarshalResult(data json.RawMessage) error
}

// RespParameters mirrors Telegram's ResponseParameters object.
type RespParameters struct {
	MigrateToChatID *int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      *int64 `json:"retry_after,omitempty"`
}

// RawResponse is the JSON envelope every Bot API response arrives in
// (SPEC_FULL.md §6.2).
type RawResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description *string         `json:"description,omitempty"`
	ErrorCode   *int            `json:"error_code,omitempty"`
	Parameters  *RespParameters `json:"parameters,omitempty"`
}

// ClientResponse is the Session boundary's return value (SPEC_FULL.md
// §6.1): raw status code plus raw body, before any Telegram-specific
// interpretation.
type ClientResponse struct {
	StatusCode int
	Content    []byte
}
