package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kurtskinny/tgcore/errs"
	"github.com/kurtskinny/tgcore/methods"
)

// CheckResponse implements the validator from SPEC_FULL.md §6.1, ported
// verbatim from original_source/src/client/session/base.rs
// Session::check_response.
func CheckResponse(resp *methods.RawResponse, status StatusCode) error {
	if status.IsSuccess() && resp.OK {
		if len(resp.Result) == 0 || string(resp.Result) == "null" {
			return fmt.Errorf("contract violation: result is empty in success response")
		}
		return nil
	}

	if resp.Description == nil {
		return fmt.Errorf("contract violation: description is empty in error response")
	}
	message := *resp.Description

	if resp.Parameters != nil {
		if resp.Parameters.RetryAfter != nil {
			return &errs.RetryAfter{
				URL:        errs.URLHittingLimits,
				Message:    message,
				RetryAfter: *resp.Parameters.RetryAfter,
			}
		}
		if resp.Parameters.MigrateToChatID != nil {
			return &errs.MigrateToChat{
				URL:             errs.URLResponseParams,
				Message:         message,
				MigrateToChatID: *resp.Parameters.MigrateToChatID,
			}
		}
	}

	switch int(status) {
	case 400:
		return &errs.BadRequest{Message: message}
	case 401:
		return &errs.Unauthorized{Message: message}
	case 403:
		return &errs.Forbidden{Message: message}
	case 404:
		return &errs.NotFound{Message: message}
	case 409:
		return &errs.ConflictError{Message: message}
	case 413:
		return &errs.EntityTooLarge{URL: errs.URLSendingFiles, Message: message}
	case 500:
		if strings.Contains(message, "restart") {
			return &errs.RestartingTelegram{Message: message}
		}
		return &errs.ServerError{Message: message}
	default:
		return fmt.Errorf("telegram api: unknown status %d: %s", int(status), message)
	}
}

// DecodeRawResponse is a thin wrapper so callers don't need to import
// encoding/json directly at every call site.
func DecodeRawResponse(content []byte) (*methods.RawResponse, error) {
	var raw methods.RawResponse
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("session: decode response: %w", err)
	}
	return &raw, nil
}
