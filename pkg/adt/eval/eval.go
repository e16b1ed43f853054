package eval

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Eval is a value produced by one of three strategies. The zero value is
// Now of the zero T.
type Eval[T any, P adt.Policy] struct {
	kind    Kind
	value   T
	cell    *cell[T]
	factory func() T
}

// cell is the memo of a Later. factory is released once value is set.
type cell[T any] struct {
	factory func() T
	value   T
	done    bool
}

func (c *cell[T]) force() T {
	if !c.done {
		c.value = c.factory()
		c.factory = nil
		c.done = true
	}
	return c.value
}

var (
	_ adt.Tagged[Kind] = Eval[int, adt.Safe]{}
	_ adt.Forcer[int]  = Eval[int, adt.Safe]{}
	_ adt.Checked      = Eval[int, adt.Safe]{}
)

// Now holds an already computed value.
func Now[P adt.Policy, T any](v T) Eval[T, P] {
	return Eval[T, P]{kind: KindNow, value: v}
}

// NowFrom calls factory once, immediately, and holds its result.
func NowFrom[P adt.Policy, T any](factory func() T) Eval[T, P] {
	mustFactory(factory == nil, "NowFrom factory")
	return Eval[T, P]{kind: KindNow, value: factory()}
}

// Later defers factory to the first Value call and caches the result.
func Later[P adt.Policy, T any](factory func() T) Eval[T, P] {
	mustFactory(factory == nil, "Later factory")
	return Eval[T, P]{kind: KindLater, cell: &cell[T]{factory: factory}}
}

// Always calls factory on every Value call.
func Always[P adt.Policy, T any](factory func() T) Eval[T, P] {
	mustFactory(factory == nil, "Always factory")
	return Eval[T, P]{kind: KindAlways, factory: factory}
}

// mustFactory rejects a nil factory under every policy.
func mustFactory(isNil bool, what string) {
	if isNil {
		panic(adt.NullArgument(what))
	}
}

func (e Eval[T, P]) Kind() Kind {
	return e.kind
}

func (e Eval[T, P]) Checked() bool {
	return adt.NeedCheck[P]()
}

// Value returns the value according to the strategy. A panic raised by the
// factory of a pending Later leaves it pending.
func (e Eval[T, P]) Value() T {
	switch e.kind {
	case KindLater:
		return e.cell.force()
	case KindAlways:
		return e.factory()
	}
	return e.value
}

// Evaluated reports whether Value returns a cached result without calling a
// factory. It is false for Always.
func (e Eval[T, P]) Evaluated() bool {
	switch e.kind {
	case KindLater:
		return e.cell.done
	case KindAlways:
		return false
	}
	return true
}

// Filter forces the value and keeps it if predicate holds.
func (e Eval[T, P]) Filter(predicate func(T) bool) option.Option[T, P] {
	adt.CheckHandler[P](predicate == nil, "Filter predicate")

	if v := e.Value(); predicate(v) {
		return option.Some[P](v)
	}
	return option.None[P, T]()
}

// FilterNot forces the value and keeps it if predicate does not hold.
func (e Eval[T, P]) FilterNot(predicate func(T) bool) option.Option[T, P] {
	adt.CheckHandler[P](predicate == nil, "FilterNot predicate")

	if v := e.Value(); !predicate(v) {
		return option.Some[P](v)
	}
	return option.None[P, T]()
}

// Fold returns combine(init, value).
func (e Eval[T, P]) Fold(init T, combine func(init, value T) T) T {
	adt.CheckHandler[P](combine == nil, "Fold combine")

	return combine(init, e.Value())
}

// Match forces the value and passes it to the callback for the strategy.
func (e Eval[T, P]) Match(now, later, always func(T)) adt.Unit {
	adt.CheckHandler[P](now == nil, "Match now")
	adt.CheckHandler[P](later == nil, "Match later")
	adt.CheckHandler[P](always == nil, "Match always")

	switch e.kind {
	case KindLater:
		later(e.Value())
	case KindAlways:
		always(e.Value())
	default:
		now(e.Value())
	}
	return adt.Def
}

// MatchAny forces the value and passes it to f whatever the strategy.
func (e Eval[T, P]) MatchAny(f func(T)) adt.Unit {
	adt.CheckHandler[P](f == nil, "MatchAny handler")

	f(e.Value())
	return adt.Def
}

// ToOption forces the value and wraps it with option.Some.
func (e Eval[T, P]) ToOption() option.Option[T, P] {
	return option.Some[P](e.Value())
}

// String renders the strategy. Only Now shows its value, so rendering never
// runs a factory.
func (e Eval[T, P]) String() string {
	if e.kind == KindNow {
		return fmt.Sprintf("Now(%v)", e.value)
	}
	return e.kind.String()
}
