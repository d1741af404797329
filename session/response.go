// Package session implements the Session boundary from SPEC_FULL.md §6.1:
// the transport contract, the response validator ported from
// original_source/src/client/session/base.rs, and a concrete HTTP-backed
// implementation grounded in the teacher's bot_sender.go.
package session

// StatusCode wraps an HTTP status and classifies it per the success range
// [200, 226] used by the Bot API (SPEC_FULL.md §6.1 step 1).
type StatusCode int

const successRangeLow, successRangeHigh = 200, 226

func (s StatusCode) IsSuccess() bool { return int(s) >= successRangeLow && int(s) <= successRangeHigh }
func (s StatusCode) IsError() bool   { return !s.IsSuccess() }
