package router

import (
	"github.com/kurtskinny/tgcore/errs"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
)

// Propagate runs the propagation algorithm from SPEC_FULL.md §4.5 in four
// steps, grounded in original_source/src/router.rs
// RouterService::propagate_event:
//
//  1. Run the "update" pseudo-observer pipeline across this router's whole
//     subtree (propagateUpdateSubtree). A Handled or Rejected result there
//     short-circuits the entire call (Rejected folds to Unhandled).
//  2. Otherwise run the type-specific observer pipeline on this router.
//  3. If still unhandled, recurse into each sub-router's Propagate in
//     registration order, returning on the first non-Unhandled result.
//  4. Return Unhandled.
func (s *RouterService) Propagate(kind telegram.UpdateKind, req event.Request) event.Response {
	if resp := s.propagateUpdateSubtree(req); resp.Result.Kind != event.Unhandled {
		return fold(resp)
	}

	resp := s.observers[kind].Trigger(req)
	if resp.Result.Kind != event.Unhandled {
		return fold(resp)
	}

	for _, sub := range s.subRouters {
		r := sub.Propagate(kind, req)
		if r.Result.Kind != event.Unhandled {
			return r
		}
	}

	return event.Response{Request: req, Result: event.PropagateResult{Kind: event.Unhandled}}
}

// propagateUpdateSubtree runs the "update" pseudo-observer on s, then on
// every sub-router in registration order, stopping at the first non-
// Unhandled result (original_source's propagate_update_event).
func (s *RouterService) propagateUpdateSubtree(req event.Request) event.Response {
	resp := s.update.Trigger(req)
	if resp.Result.Kind != event.Unhandled {
		return resp
	}

	for _, sub := range s.subRouters {
		r := sub.propagateUpdateSubtree(req)
		if r.Result.Kind != event.Unhandled {
			return r
		}
	}

	return event.Response{Request: req, Result: event.PropagateResult{Kind: event.Unhandled}}
}

// fold turns a Rejected verdict into Unhandled at the router boundary
// (SPEC_FULL.md §4.5: "a router rejecting an update never stops a sibling
// or parent router from trying"; the Rejected verdict only has teeth
// inside the observer that produced it), and wraps a Handled error as the
// top-level errs.EventError union (SPEC_FULL.md §7 "Event error") exactly
// once, at the router boundary that first observes it.
func fold(resp event.Response) event.Response {
	switch resp.Result.Kind {
	case event.Rejected:
		return event.Response{Request: resp.Request, Result: event.PropagateResult{Kind: event.Unhandled}}
	case event.Handled:
		if h := resp.Result.Handler; h != nil && h.Err != nil {
			wrapped := *h
			wrapped.Err = errs.WrapEvent(h.Err)
			resp.Result.Handler = &wrapped
		}
	}
	return resp
}

// EmitStartup runs this router's startup hooks, then every sub-router's in
// registration order (pre-order subtree walk), stopping at the first error
// (SPEC_FULL.md §4.5 "Lifecycle events").
func (s *RouterService) EmitStartup() error {
	for _, fn := range s.startup {
		if err := fn(); err != nil {
			return err
		}
	}
	for _, sub := range s.subRouters {
		if err := sub.EmitStartup(); err != nil {
			return err
		}
	}
	return nil
}

// EmitShutdown mirrors EmitStartup for shutdown hooks.
func (s *RouterService) EmitShutdown() error {
	for _, fn := range s.shutdown {
		if err := fn(); err != nil {
			return err
		}
	}
	for _, sub := range s.subRouters {
		if err := sub.EmitShutdown(); err != nil {
			return err
		}
	}
	return nil
}
