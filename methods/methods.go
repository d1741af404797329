package methods

import (
	"net/url"
	"strconv"
	"strings"
)

// GetMe takes no parameters; returns the bot's own User object.
type GetMe struct{}

func (GetMe) Name() string { return "getMe" }
func (GetMe) Build() (url.Values, []Part, error) { return url.Values{}, nil, nil }

// GetUpdates is the polling method the dispatcher's listener loop issues
// (SPEC_FULL.md §4.6 "Listener loop").
type GetUpdates struct {
	Offset         int64
	Limit          int
	TimeoutSeconds int
	AllowedUpdates []string
}

func (GetUpdates) Name() string { return "getUpdates" }

func (m GetUpdates) Build() (url.Values, []Part, error) {
	v := url.Values{}
	if m.Offset != 0 {
		v.Set("offset", strconv.FormatInt(m.Offset, 10))
	}
	if m.Limit != 0 {
		v.Set("limit", strconv.Itoa(m.Limit))
	}
	v.Set("timeout", strconv.Itoa(m.TimeoutSeconds))
	if len(m.AllowedUpdates) > 0 {
		// Bot API accepts a JSON array encoded as a string parameter.
		v.Set("allowed_updates", `["`+strings.Join(m.AllowedUpdates, `","`)+`"]`)
	}
	return v, nil, nil
}

// SendMessage is the plain-text send path; always form-encoded, never
// multipart.
type SendMessage struct {
	ChatID                int64
	Text                  string
	MessageThreadID       int64
	DisableWebPagePreview bool
}

func (SendMessage) Name() string { return "sendMessage" }

func (m SendMessage) Build() (url.Values, []Part, error) {
	v := url.Values{}
	v.Set("chat_id", strconv.FormatInt(m.ChatID, 10))
	v.Set("text", m.Text)
	if m.MessageThreadID != 0 {
		v.Set("message_thread_id", strconv.FormatInt(m.MessageThreadID, 10))
	}
	if m.DisableWebPagePreview {
		v.Set("disable_web_page_preview", "true")
	}
	return v, nil, nil
}

// SendPhoto exercises the multipart/InputFile encoding path (SPEC_FULL.md
// §6.5): Photo may be a FileID/URL (inline) or a Path/Bytes value
// (multipart, attach://{uuid}).
type SendPhoto struct {
	ChatID  int64
	Photo   InputFile
	Caption string
}

func (SendPhoto) Name() string { return "sendPhoto" }

func (m SendPhoto) Build() (url.Values, []Part, error) {
	v := url.Values{}
	v.Set("chat_id", strconv.FormatInt(m.ChatID, 10))
	if m.Caption != "" {
		v.Set("caption", m.Caption)
	}
	inline, part, err := m.Photo.encode("photo")
	if err != nil {
		return nil, nil, err
	}
	v.Set("photo", inline)
	var parts []Part
	if part != nil {
		parts = append(parts, *part)
	}
	return v, parts, nil
}

// DeleteWebhook is issued once at startup ahead of long-polling, since
// Telegram refuses getUpdates while a webhook is registered.
type DeleteWebhook struct {
	DropPendingUpdates bool
}

func (DeleteWebhook) Name() string { return "deleteWebhook" }

func (m DeleteWebhook) Build() (url.Values, []Part, error) {
	v := url.Values{}
	if m.DropPendingUpdates {
		v.Set("drop_pending_updates", "true")
	}
	return v, nil, nil
}
