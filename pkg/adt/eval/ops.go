package eval

import (
	"cmp"

	"github.com/ib-77/adt3/pkg/adt"
)

// Map forces e and returns Now(f(value)).
func Map[P adt.Policy, T, R any](e Eval[T, P], f func(T) R) Eval[R, P] {
	adt.CheckHandler[P](f == nil, "Map handler")

	return Now[P](f(e.Value()))
}

// FlatMap forces e and returns the Eval produced by f as is.
func FlatMap[P adt.Policy, T, R any](e Eval[T, P], f func(T) Eval[R, P]) Eval[R, P] {
	adt.CheckHandler[P](f == nil, "FlatMap handler")

	return f(e.Value())
}

// MatchValue forces e and returns the result of the callback for its strategy.
func MatchValue[P adt.Policy, T, R any](e Eval[T, P], now, later, always func(T) R) R {
	adt.CheckHandler[P](now == nil, "Match now")
	adt.CheckHandler[P](later == nil, "Match later")
	adt.CheckHandler[P](always == nil, "Match always")

	switch e.kind {
	case KindLater:
		return later(e.Value())
	case KindAlways:
		return always(e.Value())
	}
	return now(e.Value())
}

// Contain forces e and compares its value with v.
func Contain[P adt.Policy, T comparable](e Eval[T, P], v T) bool {
	return e.Value() == v
}

// ContainFunc forces e and compares its value with v using eq.
func ContainFunc[P adt.Policy, T any](e Eval[T, P], v T, eq func(a, b T) bool) bool {
	adt.CheckHandler[P](eq == nil, "ContainFunc eq")

	return eq(e.Value(), v)
}

// Equal forces both values and compares them. The strategy is ignored.
func Equal[P adt.Policy, T comparable](a, b Eval[T, P]) bool {
	return a.Value() == b.Value()
}

func EqualValue[P adt.Policy, T comparable](e Eval[T, P], v T) bool {
	return e.Value() == v
}

// Compare forces both values and orders them with cmp.Compare.
func Compare[P adt.Policy, T cmp.Ordered](a, b Eval[T, P]) int {
	return cmp.Compare(a.Value(), b.Value())
}

// CompareValue forces e and compares its value with v.
func CompareValue[P adt.Policy, T cmp.Ordered](e Eval[T, P], v T) int {
	return cmp.Compare(e.Value(), v)
}

// WithPolicy re-wraps e under the policy Q. A Later keeps sharing its cache.
func WithPolicy[Q, P adt.Policy, T any](e Eval[T, P]) Eval[T, Q] {
	return Eval[T, Q]{kind: e.kind, value: e.value, cell: e.cell, factory: e.factory}
}
