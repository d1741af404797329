package event

import (
	"go.uber.org/zap"

	"github.com/kurtskinny/tgcore/errs"
	"github.com/kurtskinny/tgcore/logging"
	"github.com/kurtskinny/tgcore/telegram"
)

// Observer holds handlers, filters, and middlewares for one update kind
// (SPEC_FULL.md §3.7). Register handlers and middlewares on the mutable
// Observer at build time; Trigger runs the immutable pipeline.
type Observer struct {
	Name telegram.UpdateKind

	// common is a filters-only container: it gates the whole observer
	// before any handler is tried (SPEC_FULL.md §3.7 "a 'common' handler
	// slot used only as a filter container"). Ported from
	// original_source/src/event/telegram/observer.rs's Observer::new,
	// which uses an unreachable-panic placeholder callable purely to
	// hold this filter list; Go has no direct analogue so we drop the
	// placeholder entirely and keep only the filters.
	common []Filter

	handlers []*HandlerObject
	outer    []Outer
	inner    []Inner

	log *logging.Logger
}

// NewObserver returns an empty Observer for the given update kind (or the
// KindUpdate pseudo-kind for a router's catch-all observer).
func NewObserver(name telegram.UpdateKind) *Observer {
	return &Observer{Name: name}
}

// Filter registers a common filter, gating every handler on this observer.
func (o *Observer) Filter(f Filter) { o.common = append(o.common, f) }

// Register appends a handler in registration order.
func (o *Observer) Register(h *HandlerObject) { o.handlers = append(o.handlers, h) }

// Use appends an inner middleware. Inner middlewares registered on a
// router are prepended into each sub-router's corresponding observer at
// Router.Freeze time (SPEC_FULL.md §4.5 "Middleware inheritance").
func (o *Observer) Use(m Inner) { o.inner = append(o.inner, m) }

// UseOuter appends an outer middleware. Unlike inner middlewares, outer
// middlewares never propagate to sub-routers (SPEC_FULL.md §4.5).
func (o *Observer) UseOuter(m Outer) { o.outer = append(o.outer, m) }

// SetLogger attaches the logger used to report filter errors (SPEC_FULL.md
// §4.2 "an error from a filter ... is logged at Warn via logging"). Without
// one, filter errors are still treated as a non-match but nothing is
// logged.
func (o *Observer) SetLogger(l *logging.Logger) { o.log = l }

// PrependInner inserts middlewares ahead of this observer's existing
// inner chain; used by Router.Freeze to implement middleware inheritance.
func (o *Observer) PrependInner(ms []Inner) {
	o.inner = append(append([]Inner{}, ms...), o.inner...)
}

// Clone returns a shallow copy suitable for Freeze's recursive rewrite:
// the handler/filter slices are shared (immutable after registration) but
// the inner-middleware slice is copied so prepending doesn't alias a
// sibling observer's slice.
func (o *Observer) Clone() *Observer {
	return &Observer{
		Name:     o.Name,
		common:   o.common,
		handlers: o.handlers,
		outer:    o.outer,
		inner:    append([]Inner{}, o.inner...),
		log:      o.log,
	}
}

// HandlerCount reports how many handlers are registered, used by
// Router.UsedUpdateTypes to resolve the allowed_updates set.
func (o *Observer) HandlerCount() int { return len(o.handlers) }

// InnerChain returns the observer's current inner-middleware chain, for
// Router.Freeze to pass down to sub-router observers of the same kind.
func (o *Observer) InnerChain() []Inner { return o.inner }

// Trigger runs the algorithm from SPEC_FULL.md §4.4:
//  1. common filters, any false -> Rejected
//  2. per handler: filter check, then the inner-middleware chain
//     terminated by the handler call; Finish/Err -> Handled, Cancel ->
//     Rejected, Skip -> next handler
//  3. no handler taken -> Unhandled
//
// Grounded in original_source/src/event/telegram/observer.rs
// ObserverService::trigger.
func (o *Observer) Trigger(req Request) Response {
	req, short := o.runOuter(req)
	if short != nil {
		return *short
	}

	ok, err := checkAll(o.common, req.Bot, req.Update, req.Context)
	if err != nil {
		o.warnFilterError("common filter", req, err)
	}
	if err != nil || !ok {
		return Response{Request: req, Result: PropagateResult{Kind: Rejected}}
	}

	for _, h := range o.handlers {
		matched, err := h.check(req)
		if err != nil {
			o.warnFilterError("handler filter", req, err)
			continue // a failing filter is a non-match, try the next handler
		}
		if !matched {
			continue
		}

		resp := o.runChain(h, req)

		// Err(_) is a terminal outcome regardless of the returned
		// EventReturn (SPEC_FULL.md §4.4 step 2c).
		if resp.Err != nil {
			return Response{Request: req, Result: PropagateResult{Kind: Handled, Handler: &resp}}
		}

		switch resp.Result {
		case Skip:
			continue
		case Cancel:
			return Response{Request: req, Result: PropagateResult{Kind: Rejected}}
		default: // Finish
			return Response{Request: req, Result: PropagateResult{Kind: Handled, Handler: &resp}}
		}
	}

	return Response{Request: req, Result: PropagateResult{Kind: Unhandled}}
}

// runOuter applies this observer's outer middlewares in registration order.
// A Finish verdict adopts the (possibly rewritten) request and continues;
// Skip discards the rewrite and continues with the prior request; Cancel
// or an error short-circuits Trigger entirely (SPEC_FULL.md §4.3 "Outer
// middleware"). The returned *Response is non-nil only on short-circuit.
func (o *Observer) runOuter(req Request) (Request, *Response) {
	for _, mw := range o.outer {
		rewritten, ret, err := mw(req)
		if err != nil {
			resp := HandlerResponse{Result: ret, Err: err}
			return req, &Response{Request: req, Result: PropagateResult{Kind: Handled, Handler: &resp}}
		}
		switch ret {
		case Cancel:
			return req, &Response{Request: req, Result: PropagateResult{Kind: Rejected}}
		case Skip:
			// discard this middleware's request changes, keep going
		default: // Finish
			req = rewritten
		}
	}
	return req, nil
}

// runChain builds the inner-middleware chain for one handler invocation:
// peel the first middleware, bind the tail + handler call as Next. If
// o.inner is empty, the handler is called directly (SPEC_FULL.md §4.3
// "Composition").
func (o *Observer) runChain(h *HandlerObject, req Request) HandlerResponse {
	var next Next = func(r Request) HandlerResponse {
		ret, err := h.Fn(r)
		if err != nil {
			err = errs.WrapHandler(err)
		}
		return HandlerResponse{Result: ret, Err: err}
	}

	for i := len(o.inner) - 1; i >= 0; i-- {
		mw := o.inner[i]
		inner := next
		next = func(r Request) HandlerResponse {
			return mw(r, inner)
		}
	}

	return next(req)
}

// warnFilterError logs a filter error as specified (SPEC_FULL.md §4.2); a
// nil logger (no SetLogger call made) is a silent no-op.
func (o *Observer) warnFilterError(stage string, req Request, err error) {
	if o.log == nil {
		return
	}
	o.log.Warn("filter returned an error, treating as non-match",
		logging.BotField(req.Bot),
		zap.String("observer", string(o.Name)),
		zap.String("stage", stage),
		zap.String("update_kind", string(req.Update.Kind)),
		zap.Error(err),
	)
}
