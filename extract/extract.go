// Package extract implements the Extractor system from SPEC_FULL.md §4.1:
// type-directed argument resolution from the (bot, update, context) triple
// into a handler's formal parameters, using the reflection-based resolver
// the Design Notes (§9) mark as preferred for Go.
package extract

import (
	"reflect"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/errs"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// Extractor produces a T from the request triple, or an error classified
// per SPEC_FULL.md §4.1 (absence, type mismatch, or user-defined).
type Extractor[T any] interface {
	Extract(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (T, error)
}

// Func adapts a plain function to the Extractor interface.
type Func[T any] func(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (T, error)

func (f Func[T]) Extract(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (T, error) {
	return f(b, u, c)
}

// Optional converts any Extractor[T] into one that reports absence via a
// bool instead of an error, matching SPEC_FULL.md §4.1's
// "Option<T> ... converts any error into None" in Go's idiomatic
// (value, ok) shape.
func Optional[T any](inner Extractor[T]) Extractor[optionalResult[T]] {
	return Func[optionalResult[T]](func(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (optionalResult[T], error) {
		v, err := inner.Extract(b, u, c)
		if err != nil {
			var zero T
			return optionalResult[T]{value: zero, ok: false}, nil
		}
		return optionalResult[T]{value: v, ok: true}, nil
	})
}

type optionalResult[T any] struct {
	value T
	ok    bool
}

// Get unpacks an Optional extraction result.
func (o optionalResult[T]) Get() (T, bool) { return o.value, o.ok }

// BotExtractor, UpdateExtractor, and ContextExtractor are always
// extractable infallibly (SPEC_FULL.md §4.1 "The Bot ... Update ...
// Context are always extractable infallibly").
var (
	BotExtractor = Func[*bot.Bot](func(b *bot.Bot, _ *telegram.Update, _ *tgcontext.Context) (*bot.Bot, error) {
		return b, nil
	})
	UpdateExtractor = Func[*telegram.Update](func(_ *bot.Bot, u *telegram.Update, _ *tgcontext.Context) (*telegram.Update, error) {
		return u, nil
	})
	ContextExtractor = Func[*tgcontext.Context](func(_ *bot.Bot, _ *telegram.Update, c *tgcontext.Context) (*tgcontext.Context, error) {
		return c, nil
	})
)

// FromContext builds an Extractor[T] that looks up key in the context and
// type-asserts to T, classifying absence vs. type mismatch per
// SPEC_FULL.md §4.1 "From-context" derivable form.
func FromContext[T any](key string) Extractor[T] {
	return Func[T](func(_ *bot.Bot, _ *telegram.Update, c *tgcontext.Context) (T, error) {
		var zero T
		raw, ok := c.Get(key)
		if !ok {
			return zero, errs.NewExtractionError(errs.ExtractionNotFound, key, nil)
		}
		v, ok := raw.(T)
		if !ok {
			return zero, errs.NewExtractionError(errs.ExtractionTypeMismatch, key, nil)
		}
		return v, nil
	})
}

// registryEntry resolves a single reflected parameter type to a typed
// Extractor's Extract call, type-erased via reflect.Value.
type registryEntry func(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (reflect.Value, error)

var registry = map[reflect.Type]registryEntry{}

func init() {
	Register[*bot.Bot](BotExtractor)
	Register[*telegram.Update](UpdateExtractor)
	Register[*tgcontext.Context](ContextExtractor)
}

// Register makes T resolvable by Handler's reflection-based parameter
// resolver. Call during package init for any type a handler signature
// should be able to name directly (SPEC_FULL.md §4.1 "Register" ergonomic
// escape hatch beyond the curated Bot/Update/Context set).
func Register[T any](ex Extractor[T]) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	registry[t] = func(b *bot.Bot, u *telegram.Update, c *tgcontext.Context) (reflect.Value, error) {
		v, err := ex.Extract(b, u, c)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v), nil
	}
}

// Handler reflects over fn's parameter list, resolving each parameter
// against the registry, and returns an event.HandlerFunc that extracts
// left-to-right and fails on the first error without invoking later
// extractors (SPEC_FULL.md §4.1 "fail on the first error ... this ordering
// is observable"). fn must return (event.EventReturn, error), a bare error,
// or nothing (a result-less fn counts as Finish); its
// parameters must each have been registered via Register, or be one of the
// three always-available types.
func Handler(fn any) (event.HandlerFunc, error) {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, errs.NewExtractionError(errs.ExtractionUser, "", nil)
	}

	resolvers := make([]registryEntry, ft.NumIn())
	for i := 0; i < ft.NumIn(); i++ {
		pt := ft.In(i)
		entry, ok := registry[pt]
		if !ok {
			return nil, errs.NewExtractionError(errs.ExtractionTypeMismatch, pt.String(), nil)
		}
		resolvers[i] = entry
	}

	// Validate the return shape once at build time: either a bare error,
	// or (event.EventReturn, error). Anything else is a caller mistake.
	eventReturnType := reflect.TypeOf(event.Finish)
	errorType := reflect.TypeOf((*error)(nil)).Elem()
	bareError := ft.NumOut() == 1 && ft.Out(0) == errorType
	eventReturnPlusError := ft.NumOut() == 2 && ft.Out(0) == eventReturnType && ft.Out(1) == errorType
	if ft.NumOut() != 0 && !bareError && !eventReturnPlusError {
		return nil, errs.NewExtractionError(errs.ExtractionUser, "return", nil)
	}

	return func(req event.Request) (event.EventReturn, error) {
		args := make([]reflect.Value, len(resolvers))
		for i, resolve := range resolvers {
			v, err := resolve(req.Bot, req.Update, req.Context)
			if err != nil {
				return event.Finish, errs.NewExtractionError(errs.ExtractionUser, ft.In(i).String(), err)
			}
			args[i] = v
		}

		out := fv.Call(args)
		switch {
		case bareError:
			errVal, _ := out[0].Interface().(error)
			return event.Finish, errVal
		case eventReturnPlusError:
			ret, _ := out[0].Interface().(event.EventReturn)
			errVal, _ := out[1].Interface().(error)
			return ret, errVal
		default:
			return event.Finish, nil
		}
	}, nil
}
