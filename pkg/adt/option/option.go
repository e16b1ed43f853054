package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/adt3/pkg/adt"
)

// Option represents a value that may be absent. The zero value is None.
type Option[T any, P adt.Policy] struct {
	value   T
	present bool
}

var (
	_ adt.Tagged[Kind] = Option[int, adt.Safe]{}
	_ adt.Checked      = Option[int, adt.Safe]{}
)

// Some wraps v. A nil pointer, map, channel, func or interface yields None,
// so Some never holds a nil reference.
func Some[P adt.Policy, T any](v T) Option[T, P] {
	if adt.IsNil(v) {
		return None[P, T]()
	}
	return Option[T, P]{value: v, present: true}
}

// None returns the empty Option.
func None[P adt.Policy, T any]() Option[T, P] {
	return Option[T, P]{}
}

// Of builds an Option from the comma-ok idiom.
func Of[P adt.Policy, T any](v T, ok bool) Option[T, P] {
	if !ok {
		return None[P, T]()
	}
	return Some[P](v)
}

// FromPtr returns Some(*ptr), or None for a nil pointer.
func FromPtr[P adt.Policy, T any](ptr *T) Option[T, P] {
	if ptr == nil {
		return None[P, T]()
	}
	return Some[P](*ptr)
}

func (o Option[T, P]) Kind() Kind {
	if o.present {
		return KindSome
	}
	return KindNone
}

func (o Option[T, P]) Checked() bool {
	return adt.NeedCheck[P]()
}

// IsSome returns true if the Option holds a value.
func (o Option[T, P]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T, P]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it was present.
func (o Option[T, P]) Get() (T, bool) {
	return o.value, o.present
}

// Filter keeps the value only if predicate holds.
func (o Option[T, P]) Filter(predicate func(T) bool) Option[T, P] {
	adt.CheckHandler[P](predicate == nil, "Filter predicate")

	if o.present && predicate(o.value) {
		return o
	}
	return None[P, T]()
}

// FilterNot keeps the value only if predicate does not hold.
func (o Option[T, P]) FilterNot(predicate func(T) bool) Option[T, P] {
	adt.CheckHandler[P](predicate == nil, "FilterNot predicate")

	if o.present && !predicate(o.value) {
		return o
	}
	return None[P, T]()
}

// Exist returns true if the Option is Some and predicate holds for its value.
func (o Option[T, P]) Exist(predicate func(T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Exist predicate")

	return o.present && predicate(o.value)
}

// Forall returns true if the Option is None or predicate holds for its value.
func (o Option[T, P]) Forall(predicate func(T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Forall predicate")

	return !o.present || predicate(o.value)
}

// Fold returns combine(value, init) for Some and init for None.
func (o Option[T, P]) Fold(init T, combine func(value, init T) T) T {
	adt.CheckHandler[P](combine == nil, "Fold handler")

	if o.present {
		return combine(o.value, init)
	}
	return init
}

// OrElse returns the value or v when empty.
func (o Option[T, P]) OrElse(v T) T {
	if o.present {
		return o.value
	}
	return v
}

// OrElseGet returns the value or the result of factory when empty.
func (o Option[T, P]) OrElseGet(factory func() T) T {
	adt.CheckHandler[P](factory == nil, "OrElseGet factory")

	if o.present {
		return o.value
	}
	return factory()
}

// OrDefault returns the value or the zero value of T.
func (o Option[T, P]) OrDefault() T {
	return o.value
}

// OrError returns the value, or an error wrapping adt.ErrNotFound when empty.
func (o Option[T, P]) OrError() (T, error) {
	if !o.present {
		return o.value, adt.NotFound("option is None")
	}
	return o.value, nil
}

// MustGet returns the value and panics with adt.ErrNotFound when empty.
func (o Option[T, P]) MustGet() T {
	v, err := o.OrError()
	if err != nil {
		panic(err)
	}
	return v
}

// Match calls some with the value or none when empty.
func (o Option[T, P]) Match(some func(T), none func()) adt.Unit {
	adt.CheckHandler[P](some == nil, "Match some")
	adt.CheckHandler[P](none == nil, "Match none")

	if o.present {
		some(o.value)
	} else {
		none()
	}
	return adt.Def
}

// MatchSome calls some only when the Option holds a value.
func (o Option[T, P]) MatchSome(some func(T)) adt.Unit {
	adt.CheckHandler[P](some == nil, "MatchSome some")

	if o.present {
		some(o.value)
	}
	return adt.Def
}

// MatchNone calls none only when the Option is empty.
func (o Option[T, P]) MatchNone(none func()) adt.Unit {
	adt.CheckHandler[P](none == nil, "MatchNone none")

	if !o.present {
		none()
	}
	return adt.Def
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Option[T, P]) ToPtr() *T {
	if o.present {
		v := o.value
		return &v
	}
	return nil
}

// All yields the value once when present.
func (o Option[T, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

func (o Option[T, P]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
