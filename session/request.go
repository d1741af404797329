package session

import (
	"context"
	"time"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/errs"
	"github.com/kurtskinny/tgcore/methods"
)

// MakeRequest composes SendRequest, response decoding, and CheckResponse,
// mirroring original_source/src/client/session/base.rs's
// Session::make_request.
func MakeRequest(ctx context.Context, s bot.Session, b *bot.Bot, method methods.Method, timeout time.Duration) (*methods.RawResponse, error) {
	clientResp, err := s.SendRequest(ctx, b, method, timeout)
	if err != nil {
		return nil, errs.WrapSession(err)
	}

	raw, err := DecodeRawResponse(clientResp.Content)
	if err != nil {
		return nil, errs.WrapSession(err)
	}

	if err := CheckResponse(raw, StatusCode(clientResp.StatusCode)); err != nil {
		return nil, errs.WrapSession(err)
	}

	return raw, nil
}
