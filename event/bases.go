// Package event implements the Observer / Handler pipeline from
// SPEC_FULL.md §3.4-§3.7 and §4.4, grounded in
// original_source/src/event/telegram/observer.rs.
package event

import (
	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// Request carries (bot, update, context), all shared by reference
// (SPEC_FULL.md §3.4).
type Request struct {
	Bot     *bot.Bot
	Update  *telegram.Update
	Context *tgcontext.Context
}

// EventReturn is the three-way verdict returned by every handler and every
// inner middleware (SPEC_FULL.md §3.5).
type EventReturn int

const (
	// Finish is the default: stop propagation at the current observer;
	// the event is considered handled.
	Finish EventReturn = iota
	// Skip skips the current handler; the next handler in the same
	// observer is tried.
	Skip
	// Cancel rejects: propagation of the current update stops entirely.
	Cancel
)

func (r EventReturn) String() string {
	switch r {
	case Finish:
		return "Finish"
	case Skip:
		return "Skip"
	case Cancel:
		return "Cancel"
	default:
		return "EventReturn(?)"
	}
}

// HandlerResponse carries a handler's own outcome: either (EventReturn,
// nil) on success or (_, err) when the handler or its parameter extraction
// failed — both cases are terminal per SPEC_FULL.md §4.4 step 2c.
type HandlerResponse struct {
	Result EventReturn
	Err    error
}

// PropagateKind names one of the three outcomes an Observer or Router can
// produce (SPEC_FULL.md §3.4).
type PropagateKind int

const (
	Unhandled PropagateKind = iota
	Handled
	Rejected
)

func (k PropagateKind) String() string {
	switch k {
	case Unhandled:
		return "Unhandled"
	case Handled:
		return "Handled"
	case Rejected:
		return "Rejected"
	default:
		return "PropagateKind(?)"
	}
}

// PropagateResult is the verdict returned by Observer.Trigger and
// Router.Propagate (SPEC_FULL.md §3.4).
type PropagateResult struct {
	Kind    PropagateKind
	Handler *HandlerResponse // non-nil only when Kind == Handled
}

// Response pairs the (possibly rewritten) request with its verdict.
type Response struct {
	Request Request
	Result  PropagateResult
}

// HandlerFunc is the canonical shape every registered handler is reduced
// to by extract.Handler, regardless of its original arbitrary-arity
// signature (SPEC_FULL.md Design Notes §9).
type HandlerFunc func(Request) (EventReturn, error)

// Next runs the remainder of an inner-middleware chain, terminating in the
// handler call itself. HandlerResponse already carries Result<EventReturn,
// HandlerError> (SPEC_FULL.md §3.4), so Next needs no separate error
// return (SPEC_FULL.md §4.3).
type Next func(Request) HandlerResponse

// Inner wraps a handler invocation and its neighbours as a continuation
// (SPEC_FULL.md §4.3 "Inner middleware"). It may inspect and modify the
// response, or decline to call next and short-circuit.
type Inner func(Request, Next) HandlerResponse

// Outer transforms the request/verdict pair ahead of observer filter
// evaluation (SPEC_FULL.md §4.3 "Outer middleware"). A Cancel verdict
// stops propagation immediately; Skip discards this middleware's request
// changes; Finish adopts them.
type Outer func(Request) (Request, EventReturn, error)
