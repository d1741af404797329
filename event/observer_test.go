package event

import (
	"errors"
	"testing"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/logging"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

func msgUpdate(text string) *telegram.Update {
	return &telegram.Update{
		Kind:    telegram.KindMessage,
		Message: &telegram.Message{Text: text, Chat: telegram.Chat{ID: 1, Type: "private"}},
	}
}

func TestObserverTrigger_CommonFilterRejection(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	o.Filter(func(_ *bot.Bot, _ *telegram.Update, _ *tgcontext.Context) (bool, error) { return false, nil })
	calls := 0
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { calls++; return Finish, nil }})
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { calls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Rejected {
		t.Fatalf("Kind = %v, want Rejected", resp.Result.Kind)
	}
	if calls != 0 {
		t.Fatalf("expected no handler body to run, ran %d", calls)
	}
}

func TestObserverTrigger_SkipChain(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	secondCalls := 0
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { return Skip, nil }})
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { secondCalls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Handled || resp.Result.Handler.Result != Finish {
		t.Fatalf("got %v / %+v, want Handled(Finish)", resp.Result.Kind, resp.Result.Handler)
	}
	if secondCalls != 1 {
		t.Fatalf("second handler should run exactly once, ran %d", secondCalls)
	}
}

func TestObserverTrigger_EchoMessage(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Handled {
		t.Fatalf("Kind = %v, want Handled", resp.Result.Kind)
	}

	// Trigger does not look at the update's kind: choosing the observer by
	// kind is the router's job, so an unfiltered handler runs for any update.
	other := &telegram.Update{Kind: telegram.KindCallbackQuery}
	resp2 := o.Trigger(Request{Update: other, Context: tgcontext.New()})
	if resp2.Result.Kind != Handled {
		t.Fatalf("Kind = %v, want Handled: Observer.Trigger does not filter by update kind", resp2.Result.Kind)
	}
}

func TestObserverTrigger_HandlerErrorIsTerminal(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	wantErr := errors.New("boom")
	secondCalls := 0
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { return Finish, wantErr }})
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { secondCalls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Handled {
		t.Fatalf("Kind = %v, want Handled on handler error", resp.Result.Kind)
	}
	if !errors.Is(resp.Result.Handler.Err, wantErr) {
		t.Fatalf("Err = %v, want %v", resp.Result.Handler.Err, wantErr)
	}
	if secondCalls != 0 {
		t.Fatalf("an error is terminal: second handler must not run")
	}
}

func TestObserverTrigger_CancelIsRejected(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { return Cancel, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Rejected {
		t.Fatalf("Kind = %v, want Rejected", resp.Result.Kind)
	}
}

func TestObserverTrigger_CommonFilterError_IsRejectedAndLogged(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	o.SetLogger(logging.New("error")) // below Warn; exercises the log call without asserting on output
	o.Filter(func(_ *bot.Bot, _ *telegram.Update, _ *tgcontext.Context) (bool, error) {
		return false, errors.New("common filter boom")
	})
	calls := 0
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { calls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Rejected {
		t.Fatalf("Kind = %v, want Rejected on a common filter error", resp.Result.Kind)
	}
	if calls != 0 {
		t.Fatalf("expected no handler to run, ran %d", calls)
	}
}

func TestObserverTrigger_HandlerFilterError_SkipsToNextHandlerAndLogs(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	o.SetLogger(logging.New("error"))
	secondCalls := 0
	o.Register(&HandlerObject{
		Fn:      func(Request) (EventReturn, error) { t.Fatalf("handler with failing filter must not run"); return Finish, nil },
		Filters: []Filter{func(_ *bot.Bot, _ *telegram.Update, _ *tgcontext.Context) (bool, error) { return false, errors.New("handler filter boom") }},
	})
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { secondCalls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Handled {
		t.Fatalf("Kind = %v, want Handled by the second handler", resp.Result.Kind)
	}
	if secondCalls != 1 {
		t.Fatalf("expected the second handler to run exactly once, ran %d", secondCalls)
	}
}

func TestObserverTrigger_InnerMiddlewareShortCircuits(t *testing.T) {
	o := NewObserver(telegram.KindMessage)
	handlerCalls := 0
	o.Use(func(req Request, next Next) HandlerResponse {
		return HandlerResponse{Result: Finish} // never calls next
	})
	o.Register(&HandlerObject{Fn: func(Request) (EventReturn, error) { handlerCalls++; return Finish, nil }})

	resp := o.Trigger(Request{Update: msgUpdate("hi"), Context: tgcontext.New()})
	if resp.Result.Kind != Handled {
		t.Fatalf("Kind = %v, want Handled", resp.Result.Kind)
	}
	if handlerCalls != 0 {
		t.Fatalf("middleware declined next; handler must not run, ran %d times", handlerCalls)
	}
}
