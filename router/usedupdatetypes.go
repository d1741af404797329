package router

import "github.com/kurtskinny/tgcore/telegram"

// UsedUpdateTypes resolves the set of update kinds this router (and its
// sub-routers) actually has handlers registered for, minus any kind
// explicitly excluded via SkipUpdateType (SPEC_FULL.md §4.5 "Used-update-
// types resolution"). The result is suitable as GetUpdates' allowed_updates
// parameter, so idle bots don't pay to long-poll kinds nobody handles.
//
// A kind counts as "used" if any observer of that kind anywhere in the
// subtree has at least one registered handler, or if the "update" pseudo-
// observer has one anywhere in the subtree (a catch-all handler implies
// every kind may need to reach it).
func (r *Router) UsedUpdateTypes() []telegram.UpdateKind {
	used := make(map[telegram.UpdateKind]bool)
	skipped := make(map[telegram.UpdateKind]bool)
	r.collectUsedUpdateTypes(used, skipped)

	out := make([]telegram.UpdateKind, 0, len(used))
	for _, k := range telegram.AllKinds {
		if used[k] && !skipped[k] {
			out = append(out, k)
		}
	}
	return out
}

func (r *Router) collectUsedUpdateTypes(used, skipped map[telegram.UpdateKind]bool) {
	catchAll := r.update.HandlerCount() > 0
	for k, skip := range r.skipUpdateTypes {
		if skip {
			skipped[k] = true
		}
	}

	for _, k := range telegram.AllKinds {
		if r.skipUpdateTypes[k] {
			continue
		}
		if catchAll || r.observers[k].HandlerCount() > 0 {
			used[k] = true
		}
	}

	for _, sub := range r.subRouters {
		sub.collectUsedUpdateTypes(used, skipped)
	}
}
