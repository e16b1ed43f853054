package try

import (
	"github.com/ib-77/adt3/pkg/adt"
)

// Map transforms an Ok value; an Error passes through re-typed.
func Map[P adt.Policy, T, R any](t Try[T, P], f func(T) R) Try[R, P] {
	adt.CheckHandler[P](f == nil, "Map handler")

	if t.err != nil {
		return Try[R, P]{err: t.err}
	}
	return Try[R, P]{value: f(t.value)}
}

// FlatMap chains a Try-returning step; an Error passes through re-typed.
func FlatMap[P adt.Policy, T, R any](t Try[T, P], f func(T) Try[R, P]) Try[R, P] {
	adt.CheckHandler[P](f == nil, "FlatMap handler")

	if t.err != nil {
		return Try[R, P]{err: t.err}
	}
	return f(t.value)
}

// FoldOk returns f(value, init) for an Ok and init otherwise.
func FoldOk[P adt.Policy, T, A any](t Try[T, P], init A, f func(T, A) A) A {
	adt.CheckHandler[P](f == nil, "FoldOk handler")

	if t.err == nil {
		return f(t.value, init)
	}
	return init
}

// FoldError returns f(err, init) for an Error and init otherwise.
func FoldError[P adt.Policy, T, A any](t Try[T, P], init A, f func(error, A) A) A {
	adt.CheckHandler[P](f == nil, "FoldError handler")

	if t.err != nil {
		return f(t.err, init)
	}
	return init
}

// MatchValue returns ok(value) or fail(err).
func MatchValue[P adt.Policy, T, R any](t Try[T, P], ok func(T) R, fail func(error) R) R {
	adt.CheckHandler[P](ok == nil, "Match ok")
	adt.CheckHandler[P](fail == nil, "Match fail")

	if t.err == nil {
		return ok(t.value)
	}
	return fail(t.err)
}

func MatchOkOr[P adt.Policy, T, R any](t Try[T, P], ok func(T) R, nonOk R) R {
	adt.CheckHandler[P](ok == nil, "MatchOk ok")

	if t.err == nil {
		return ok(t.value)
	}
	return nonOk
}

func MatchOkOrGet[P adt.Policy, T, R any](t Try[T, P], ok func(T) R, nonOk func() R) R {
	adt.CheckHandler[P](ok == nil, "MatchOk ok")
	adt.CheckHandler[P](nonOk == nil, "MatchOk nonOk")

	if t.err == nil {
		return ok(t.value)
	}
	return nonOk()
}

func MatchErrorOr[P adt.Policy, T, R any](t Try[T, P], fail func(error) R, nonError R) R {
	adt.CheckHandler[P](fail == nil, "MatchError fail")

	if t.err != nil {
		return fail(t.err)
	}
	return nonError
}

func MatchErrorOrGet[P adt.Policy, T, R any](t Try[T, P], fail func(error) R, nonError func() R) R {
	adt.CheckHandler[P](fail == nil, "MatchError fail")
	adt.CheckHandler[P](nonError == nil, "MatchError nonError")

	if t.err != nil {
		return fail(t.err)
	}
	return nonError()
}

// Flatten collapses Try[Try[T]].
func Flatten[P adt.Policy, T any](t Try[Try[T, P], P]) Try[T, P] {
	if t.err != nil {
		return Try[T, P]{err: t.err}
	}
	return t.value
}

// WithPolicy re-wraps t under the policy Q.
func WithPolicy[Q, P adt.Policy, T any](t Try[T, P]) Try[T, Q] {
	return Try[T, Q]{value: t.value, err: t.err}
}
