package telegram

import "testing"

func TestParseUpdate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantKind UpdateKind
		wantErr bool
	}{
		{
			name:     "message",
			body:     `{"update_id":1,"message":{"message_id":10,"chat":{"id":5,"type":"private"},"text":"hi"}}`,
			wantKind: KindMessage,
		},
		{
			name:     "callback query",
			body:     `{"update_id":2,"callback_query":{"id":"cb1","from":{"id":9,"is_bot":false,"first_name":"a"},"data":"x"}}`,
			wantKind: KindCallbackQuery,
		},
		{
			name:    "unknown kind",
			body:    `{"update_id":1}`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u, err := ParseUpdate([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseUpdate(%q): expected error, got none", tc.body)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUpdate(%q): unexpected error: %v", tc.body, err)
			}
			if u.Kind != tc.wantKind {
				t.Fatalf("Kind = %v, want %v", u.Kind, tc.wantKind)
			}
		})
	}
}

func TestUpdateTextAccessor(t *testing.T) {
	u, err := ParseUpdate([]byte(`{"update_id":1,"message":{"message_id":1,"chat":{"id":1,"type":"private"},"text":"/start"}}`))
	if err != nil {
		t.Fatalf("ParseUpdate: %v", err)
	}
	text, ok := u.Text()
	if !ok || text != "/start" {
		t.Fatalf("Text() = (%q, %v), want (%q, true)", text, ok, "/start")
	}
	if _, ok := (&Update{Kind: KindPoll}).Text(); ok {
		t.Fatalf("Text() on a poll update should not be ok")
	}
}
