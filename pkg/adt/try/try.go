package try

import (
	"fmt"
	"iter"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
	"github.com/sirupsen/logrus"
)

// Try is Ok(T) or Error(err). It holds an Error exactly when err is non-nil;
// the value of an Error is the zero T. The zero value is Ok of the zero T.
type Try[T any, P adt.Policy] struct {
	value T
	err   error
}

var (
	_ adt.Tagged[Kind] = Try[int, adt.Safe]{}
	_ adt.Checked      = Try[int, adt.Safe]{}
)

// Ok wraps a successful value.
func Ok[P adt.Policy, T any](v T) Try[T, P] {
	return Try[T, P]{value: v}
}

// Fail wraps a failure. A nil error panics with adt.ErrNullPayload.
func Fail[P adt.Policy, T any](err error) Try[T, P] {
	if adt.IsNil(err) {
		panic(adt.NullPayload("try Fail"))
	}
	return Try[T, P]{err: err}
}

// Of converts a Go (value, error) pair. A nil error, including a typed nil
// such as (*MyErr)(nil), gives Ok(v).
func Of[P adt.Policy, T any](v T, err error) Try[T, P] {
	if adt.IsNil(err) {
		return Try[T, P]{value: v}
	}
	return Try[T, P]{err: err}
}

// Attempt runs factory and returns Ok with its result. A panic raised by
// factory is recovered into an Error holding *adt.CapturedFailure.
func Attempt[P adt.Policy, T any](factory func() T) (res Try[T, P]) {
	if factory == nil {
		panic(adt.NullArgument("Attempt factory"))
	}

	defer func() {
		if r := recover(); r != nil {
			res = Try[T, P]{err: capture(r)}
		}
	}()

	return Try[T, P]{value: factory()}
}

// AttemptErr runs factory like Attempt; a returned error becomes the Error
// payload as is.
func AttemptErr[P adt.Policy, T any](factory func() (T, error)) (res Try[T, P]) {
	if factory == nil {
		panic(adt.NullArgument("AttemptErr factory"))
	}

	defer func() {
		if r := recover(); r != nil {
			res = Try[T, P]{err: capture(r)}
		}
	}()

	return Of[P](factory())
}

func capture(r any) *adt.CapturedFailure {
	cf := adt.Capture(r)

	adt.Logger().WithFields(logrus.Fields{
		"failure_id": cf.Id(),
		"failure":    cf.Value(),
	}).Debug("try: factory panicked, failure captured")

	return cf
}

func (t Try[T, P]) Kind() Kind {
	if t.err != nil {
		return KindError
	}
	return KindOk
}

func (t Try[T, P]) Checked() bool {
	return adt.NeedCheck[P]()
}

func (t Try[T, P]) IsOk() bool {
	return t.err == nil
}

func (t Try[T, P]) IsError() bool {
	return t.err != nil
}

// Value returns Some(value) for Ok and None for Error.
func (t Try[T, P]) Value() option.Option[T, P] {
	if t.err == nil {
		return option.Some[P](t.value)
	}
	return option.None[P, T]()
}

// Error returns Some(err) for Error and None for Ok.
func (t Try[T, P]) Error() option.Option[error, P] {
	return option.Some[P](t.err)
}

// Err returns the failure, nil for Ok.
func (t Try[T, P]) Err() error {
	return t.err
}

// Get returns the Go (value, error) pair.
func (t Try[T, P]) Get() (T, error) {
	return t.value, t.err
}

// Filter returns Some(value) for an Ok satisfying predicate.
func (t Try[T, P]) Filter(predicate func(T) bool) option.Option[T, P] {
	adt.CheckHandler[P](predicate == nil, "Filter predicate")

	if t.err == nil && predicate(t.value) {
		return option.Some[P](t.value)
	}
	return option.None[P, T]()
}

// Exist returns true for an Ok satisfying predicate.
func (t Try[T, P]) Exist(predicate func(T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Exist predicate")

	return t.err == nil && predicate(t.value)
}

// Forall returns true for an Error, or an Ok satisfying predicate.
func (t Try[T, P]) Forall(predicate func(T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Forall predicate")

	return t.err != nil || predicate(t.value)
}

func (t Try[T, P]) ValueOr(v T) T {
	if t.err == nil {
		return t.value
	}
	return v
}

func (t Try[T, P]) ValueOrGet(factory func() T) T {
	adt.CheckHandler[P](factory == nil, "ValueOrGet factory")

	if t.err == nil {
		return t.value
	}
	return factory()
}

// ValueOrDefault returns the value, the zero T for an Error.
func (t Try[T, P]) ValueOrDefault() T {
	return t.value
}

// ValueOrError returns the value, or an error wrapping adt.ErrNotFound and
// the failure for an Error.
func (t Try[T, P]) ValueOrError() (T, error) {
	if t.err != nil {
		return t.value, fmt.Errorf("%w: %w", adt.NotFound("try is Error"), t.err)
	}
	return t.value, nil
}

// MustValue returns the value and panics with adt.ErrNotFound for an Error.
func (t Try[T, P]) MustValue() T {
	v, err := t.ValueOrError()
	if err != nil {
		panic(err)
	}
	return v
}

// Match calls ok or fail depending on the held variant.
func (t Try[T, P]) Match(ok func(T), fail func(error)) adt.Unit {
	adt.CheckHandler[P](ok == nil, "Match ok")
	adt.CheckHandler[P](fail == nil, "Match fail")

	if t.err == nil {
		ok(t.value)
	} else {
		fail(t.err)
	}
	return adt.Def
}

func (t Try[T, P]) MatchOk(ok func(T)) adt.Unit {
	adt.CheckHandler[P](ok == nil, "MatchOk ok")

	if t.err == nil {
		ok(t.value)
	}
	return adt.Def
}

func (t Try[T, P]) MatchError(fail func(error)) adt.Unit {
	adt.CheckHandler[P](fail == nil, "MatchError fail")

	if t.err != nil {
		fail(t.err)
	}
	return adt.Def
}

// All yields the value once for an Ok.
func (t Try[T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.err == nil {
			yield(t.value)
		}
	}
}

func (t Try[T, P]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Error(%v)", t.err)
	}
	return fmt.Sprintf("Ok(%v)", t.value)
}
