package event

import (
	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// Filter is the async predicate contract from SPEC_FULL.md §4.2: filters
// compose through simple boolean algebra and may read but must not mutate
// the context. Declared here (rather than in package filters) so both
// event.Observer and package filters can depend on the same type without a
// cycle: filters implements this signature, event only stores it.
type Filter func(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (bool, error)

// checkAll evaluates filters in order, short-circuiting on the first false
// or error (SPEC_FULL.md §3.6, §4.4 step 1/2a).
func checkAll(filters []Filter, b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (bool, error) {
	for _, f := range filters {
		ok, err := f(b, u, c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
