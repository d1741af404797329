package methods

import (
	"strings"
	"testing"
)

func TestGetUpdates_Build_OmitsZeroOffset(t *testing.T) {
	t.Parallel()
	v, parts, err := GetUpdates{Limit: 100, TimeoutSeconds: 30}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if parts != nil {
		t.Fatalf("expected no parts, got %v", parts)
	}
	if v.Has("offset") {
		t.Fatalf("expected offset to be omitted when zero, got %q", v.Get("offset"))
	}
	if v.Get("limit") != "100" {
		t.Fatalf("limit = %q, want 100", v.Get("limit"))
	}
	if v.Get("timeout") != "30" {
		t.Fatalf("timeout = %q, want 30", v.Get("timeout"))
	}
}

func TestGetUpdates_Build_EncodesAllowedUpdatesAsJSONArray(t *testing.T) {
	t.Parallel()
	v, _, err := GetUpdates{AllowedUpdates: []string{"message", "callback_query"}}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := v.Get("allowed_updates")
	want := `["message","callback_query"]`
	if got != want {
		t.Fatalf("allowed_updates = %q, want %q", got, want)
	}
}

func TestSendMessage_Build(t *testing.T) {
	t.Parallel()
	v, parts, err := SendMessage{ChatID: 42, Text: "hi"}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if parts != nil {
		t.Fatalf("expected no parts for sendMessage, got %v", parts)
	}
	if v.Get("chat_id") != "42" || v.Get("text") != "hi" {
		t.Fatalf("unexpected values: %v", v)
	}
	if v.Has("message_thread_id") {
		t.Fatalf("expected message_thread_id to be omitted when zero")
	}
}

func TestSendPhoto_Build_InlineFileID(t *testing.T) {
	t.Parallel()
	v, parts, err := SendPhoto{ChatID: 1, Photo: FileID("AAA"), Caption: "cap"}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected no multipart parts for a FileID photo, got %d", len(parts))
	}
	if v.Get("photo") != "AAA" {
		t.Fatalf("photo = %q, want AAA", v.Get("photo"))
	}
}

func TestSendPhoto_Build_BytesProducesAttachURIAndPart(t *testing.T) {
	t.Parallel()
	v, parts, err := SendPhoto{ChatID: 1, Photo: Bytes{Name: "pic.jpg", Data: []byte("fake")}}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected exactly one multipart part, got %d", len(parts))
	}
	if !strings.HasPrefix(v.Get("photo"), "attach://") {
		t.Fatalf("photo = %q, want attach:// prefix", v.Get("photo"))
	}
	if parts[0].FieldName != "photo" {
		t.Fatalf("part field name = %q, want photo", parts[0].FieldName)
	}
}

func TestDeleteWebhook_Build(t *testing.T) {
	t.Parallel()
	v, _, err := DeleteWebhook{DropPendingUpdates: true}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if v.Get("drop_pending_updates") != "true" {
		t.Fatalf("drop_pending_updates = %q, want true", v.Get("drop_pending_updates"))
	}

	v2, _, err := DeleteWebhook{}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if v2.Has("drop_pending_updates") {
		t.Fatalf("expected drop_pending_updates to be omitted when false")
	}
}
