package filters

import (
	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// User is an OR-composition of equality checks over the update's
// originating user (SPEC_FULL.md §4.2 "User filter").
type User struct {
	Usernames     []string
	FirstNames    []string
	LastNames     []string
	LanguageCodes []string
	IDs           []int64
}

func (f *User) Check(_ *bot.Bot, u *telegram.Update, _ *tgcontext.Context) (bool, error) {
	from, ok := u.From()
	if !ok {
		return false, nil
	}
	for _, v := range f.Usernames {
		if v == from.Username {
			return true, nil
		}
	}
	for _, v := range f.FirstNames {
		if v == from.FirstName {
			return true, nil
		}
	}
	for _, v := range f.LastNames {
		if v == from.LastName {
			return true, nil
		}
	}
	for _, v := range f.LanguageCodes {
		if v == from.LanguageCode {
			return true, nil
		}
	}
	for _, v := range f.IDs {
		if v == from.ID {
			return true, nil
		}
	}
	return false, nil
}

func (f *User) AsFilter() event.Filter { return f.Check }
