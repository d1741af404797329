package filters

import (
	"regexp"
	"strings"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// Text matches on exact texts/regex, a "contains", a "starts with", or an
// "ends with" predicate, with optional case folding (SPEC_FULL.md §4.2
// "Text filter"). Only the predicates actually set are evaluated; Text
// matches if any set predicate matches (OR semantics, as in the source
// framework).
type Text struct {
	Texts      []string
	Regex      *regexp.Regexp
	Contains   string
	StartsWith string
	EndsWith   string
	IgnoreCase bool // applies uniformly, including to Regex; write Regex lowercase when set
}

func (f *Text) fold(s string) string {
	if f.IgnoreCase {
		return strings.ToLower(s)
	}
	return s
}

// Check implements event.Filter.
func (f *Text) Check(_ *bot.Bot, u *telegram.Update, _ *tgcontext.Context) (bool, error) {
	text, ok := u.TextOrCaption()
	if !ok {
		return false, nil
	}
	candidate := f.fold(text)

	if f.Regex != nil && f.Regex.MatchString(candidate) {
		return true, nil
	}
	for _, t := range f.Texts {
		if candidate == f.fold(t) {
			return true, nil
		}
	}
	if f.Contains != "" && strings.Contains(candidate, f.fold(f.Contains)) {
		return true, nil
	}
	if f.StartsWith != "" && strings.HasPrefix(candidate, f.fold(f.StartsWith)) {
		return true, nil
	}
	if f.EndsWith != "" && strings.HasSuffix(candidate, f.fold(f.EndsWith)) {
		return true, nil
	}
	return false, nil
}

func (f *Text) AsFilter() event.Filter { return f.Check }
