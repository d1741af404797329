package filters

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/kurtskinny/tgcore/bot"
)

func TestExtractCommand(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *CommandObject
	}{
		{
			name: "plain command",
			text: "/start",
			want: &CommandObject{Prefix: '/', Command: "start", Mention: "", Args: nil},
		},
		{
			name: "command with mention and args",
			text: "/start@bot_username arg1 arg2",
			want: &CommandObject{Prefix: '/', Command: "start", Mention: "bot_username", Args: []string{"arg1", "arg2"}},
		},
		{
			name: "trailing at with empty mention",
			text: "/start@",
			want: &CommandObject{Prefix: '/', Command: "start", Mention: "", Args: nil},
		},
		{
			name: "prefix only is not a command",
			text: "/",
			want: nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractCommand(tc.text)
			if tc.want == nil {
				if ok {
					t.Fatalf("ExtractCommand(%q) = %+v, want None", tc.text, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ExtractCommand(%q): expected a match", tc.text)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ExtractCommand(%q) = %+v, want %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestCommand_InsertsContextEvenWhenPrefixMismatches(t *testing.T) {
	c := &Command{Patterns: []PatternType{{Text: "start"}}, Prefix: '!'}
	u := msgUpdateForFilterTest("/start")
	ctx := newTestContext()

	matched, err := c.Check(nil, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatalf("prefix mismatch should not match")
	}
	raw, ok := ctx.Get(ContextKeyCommand)
	if !ok {
		t.Fatalf("CommandObject should be written to context even on prefix mismatch")
	}
	if raw.(*CommandObject).Command != "start" {
		t.Fatalf("unexpected CommandObject written: %+v", raw)
	}
}

func TestCommand_MatchesConfiguredPattern(t *testing.T) {
	c := CommandOne("start")
	u := msgUpdateForFilterTest("/start")
	ctx := newTestContext()

	matched, err := c.Check(nil, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected /start to match CommandOne(\"start\")")
	}
}

func TestCommand_IgnoreCase_AppliesToRegexPattern(t *testing.T) {
	c := &Command{
		Patterns:   []PatternType{{Regex: regexp.MustCompile("^start$")}},
		Prefix:     '/',
		IgnoreCase: true,
	}
	u := msgUpdateForFilterTest("/START")
	ctx := newTestContext()

	matched, err := c.Check(nil, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected IgnoreCase to apply to a regex pattern just like a plain-text one")
	}
}

func TestCommand_MentionedButUsernameNotYetCached_IsPermissive(t *testing.T) {
	c := CommandOne("start")
	u := msgUpdateForFilterTest("/start@some_bot")
	ctx := newTestContext()

	b, err := bot.New("123:abc", nil)
	if err != nil {
		t.Fatalf("bot.New: %v", err)
	}

	matched, err := c.Check(b, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected an unresolved mention to stay permissive until getMe is cached")
	}
}

func TestCommand_MentionMismatch_RejectsOnceUsernameCached(t *testing.T) {
	c := CommandOne("start")
	u := msgUpdateForFilterTest("/start@other_bot")
	ctx := newTestContext()

	b, err := bot.New("123:abc", nil)
	if err != nil {
		t.Fatalf("bot.New: %v", err)
	}
	b.SetCachedUsername("my_bot")

	matched, err := c.Check(b, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Fatalf("expected a mention mismatch against the cached username to reject")
	}
}

func TestCommand_MentionMatch_MatchesOnceUsernameCached(t *testing.T) {
	c := CommandOne("start")
	u := msgUpdateForFilterTest("/start@my_bot")
	ctx := newTestContext()

	b, err := bot.New("123:abc", nil)
	if err != nil {
		t.Fatalf("bot.New: %v", err)
	}
	b.SetCachedUsername("my_bot")

	matched, err := c.Check(b, u, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Fatalf("expected a matching mention against the cached username to match")
	}
}
