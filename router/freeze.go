package router

import (
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
)

// RouterService is the immutable runtime form produced by Router.Freeze.
// *Router is mutable and meant for build-time registration; *RouterService
// is safe to share across the goroutines a Dispatcher spawns per update
// (SPEC_FULL.md §4.5 "Router.Freeze() *RouterService is the explicit
// 'to service provider' step").
type RouterService struct {
	name string

	observers map[telegram.UpdateKind]*event.Observer
	update    *event.Observer

	startup  []LifecycleHandler
	shutdown []LifecycleHandler

	subRouters []*RouterService

	skipUpdateTypes map[telegram.UpdateKind]bool
}

// Freeze performs the one-time recursive middleware-inheritance rewrite
// (SPEC_FULL.md §4.5 "Middleware inheritance at build time") and returns
// the immutable graph. r and its sub-routers are not mutated; Freeze
// builds fresh Observer clones so the *Router tree remains reusable.
func (r *Router) Freeze() *RouterService {
	return r.freeze(nil, nil)
}

// freeze clones r's observers, prepends inheritedByKind/inheritedUpdate
// (the accumulated inner-middleware chains from every ancestor, keyed by
// observer kind), and recurses into sub-routers passing this router's own
// (now-augmented) inner chains onward — so a grandchild observer runs
// grandparent-inner, then parent-inner, then its own, in that order.
func (r *Router) freeze(inheritedByKind map[telegram.UpdateKind][]event.Inner, inheritedUpdate []event.Inner) *RouterService {
	svc := &RouterService{
		name:            r.Name,
		observers:       make(map[telegram.UpdateKind]*event.Observer, len(r.observers)),
		skipUpdateTypes: make(map[telegram.UpdateKind]bool, len(r.skipUpdateTypes)),
	}

	svc.update = r.update.Clone()
	svc.update.PrependInner(inheritedUpdate)
	nextInheritedUpdate := svc.update.InnerChain()

	nextInheritedByKind := make(map[telegram.UpdateKind][]event.Inner, len(r.observers))
	for kind, obs := range r.observers {
		clone := obs.Clone()
		clone.PrependInner(inheritedByKind[kind])
		svc.observers[kind] = clone
		nextInheritedByKind[kind] = clone.InnerChain()
	}

	for kind, skip := range r.skipUpdateTypes {
		svc.skipUpdateTypes[kind] = skip
	}

	svc.startup = append([]LifecycleHandler{}, r.startup...)
	svc.shutdown = append([]LifecycleHandler{}, r.shutdown...)

	for _, sub := range r.subRouters {
		svc.subRouters = append(svc.subRouters, sub.freeze(nextInheritedByKind, nextInheritedUpdate))
	}

	return svc
}
