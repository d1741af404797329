package extract

import (
	"errors"
	"testing"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

func TestHandler_ResolvesUpdateAndContext(t *testing.T) {
	var gotUpdate *telegram.Update
	fn := func(u *telegram.Update, c *tgcontext.Context) (event.EventReturn, error) {
		gotUpdate = u
		c.Set("seen", true)
		return event.Finish, nil
	}
	h, err := Handler(fn)
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	update := &telegram.Update{Kind: telegram.KindMessage}
	ctx := tgcontext.New()
	ret, err := h(event.Request{Update: update, Context: ctx})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ret != event.Finish {
		t.Fatalf("ret = %v, want Finish", ret)
	}
	if gotUpdate != update {
		t.Fatalf("handler did not receive the same update pointer")
	}
	if v, _ := ctx.Get("seen"); v != true {
		t.Fatalf("handler's context write was not observed by the caller")
	}
}

func TestHandler_UnregisteredParamFailsAtBuildTime(t *testing.T) {
	type unregistered struct{}
	fn := func(unregistered) (event.EventReturn, error) { return event.Finish, nil }
	if _, err := Handler(fn); err == nil {
		t.Fatalf("expected Handler to reject an unregistered parameter type")
	}
}

func TestFromContext_NotFoundVsTypeMismatch(t *testing.T) {
	type cmd struct{ Name string }
	ex := FromContext[cmd]("command")

	ctx := tgcontext.New()
	if _, err := ex.Extract(nil, nil, ctx); err == nil {
		t.Fatalf("expected not-found error")
	}

	ctx.Set("command", "not-a-cmd-struct")
	if _, err := ex.Extract(nil, nil, ctx); err == nil {
		t.Fatalf("expected type-mismatch error")
	}

	ctx.Set("command", cmd{Name: "start"})
	v, err := ex.Extract(nil, nil, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "start" {
		t.Fatalf("Name = %q, want start", v.Name)
	}
}

func TestOptional_ConvertsErrorToNotOK(t *testing.T) {
	inner := Func[int](func(*bot.Bot, *telegram.Update, *tgcontext.Context) (int, error) {
		return 0, errors.New("nope")
	})
	opt := Optional[int](inner)
	res, err := opt.Extract(nil, nil, nil)
	if err != nil {
		t.Fatalf("Optional must never itself error: %v", err)
	}
	if _, ok := res.Get(); ok {
		t.Fatalf("expected ok=false")
	}
}
