package filters

import (
	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// ContextKeyState is where a caller-provided FSM layer is expected to
// record the current user state before propagation reaches this filter.
// The FSM storage layer itself is out of scope (SPEC_FULL.md §1); State
// only reads whatever an external layer wrote here.
const ContextKeyState = "fsm_state"

// State matches on the value at ContextKeyState (SPEC_FULL.md §4.2 "State
// filter"): a set of allowed states, the universal AnyState, or
// NoState (exclusively absent).
type State struct {
	States  []string
	AnyState bool
	NoState  bool
}

// AnyState matches whenever any state is set (including none), i.e. it
// never excludes a request; kept as a named constant for readability at
// call sites.
var AnyState = &State{AnyState: true}

// NoState matches only when ContextKeyState is entirely absent.
var NoState = &State{NoState: true}

func (f *State) Check(_ *bot.Bot, _ *telegram.Update, c *tgcontext.Context) (bool, error) {
	if f.AnyState {
		return true, nil
	}
	raw, ok := c.Get(ContextKeyState)
	if f.NoState {
		return !ok, nil
	}
	if !ok {
		return false, nil
	}
	current, ok := raw.(string)
	if !ok {
		return false, nil
	}
	for _, s := range f.States {
		if s == current {
			return true, nil
		}
	}
	return false, nil
}

func (f *State) AsFilter() event.Filter { return f.Check }
