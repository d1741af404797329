package filters

import (
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

func msgUpdateForFilterTest(text string) *telegram.Update {
	return &telegram.Update{
		Kind:    telegram.KindMessage,
		Message: &telegram.Message{Text: text, Chat: telegram.Chat{ID: 1, Type: "private"}},
	}
}

func newTestContext() *tgcontext.Context { return tgcontext.New() }
