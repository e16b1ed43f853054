package option

import (
	"github.com/ib-77/adt3/pkg/adt"
)

// Ref is an Option over a pointer that stores only the pointer: a nil
// pointer is None. It behaves like Option[*T, P].
type Ref[T any, P adt.Policy] struct {
	ptr *T
}

var _ adt.Tagged[Kind] = Ref[int, adt.Safe]{}

// SomeRef wraps ptr; a nil pointer yields None.
func SomeRef[P adt.Policy, T any](ptr *T) Ref[T, P] {
	return Ref[T, P]{ptr: ptr}
}

func NoneRef[P adt.Policy, T any]() Ref[T, P] {
	return Ref[T, P]{}
}

func (r Ref[T, P]) Kind() Kind {
	if r.ptr != nil {
		return KindSome
	}
	return KindNone
}

func (r Ref[T, P]) IsSome() bool { return r.ptr != nil }

func (r Ref[T, P]) IsNone() bool { return r.ptr == nil }

func (r Ref[T, P]) Get() (*T, bool) {
	return r.ptr, r.ptr != nil
}

func (r Ref[T, P]) OrElse(ptr *T) *T {
	if r.ptr != nil {
		return r.ptr
	}
	return ptr
}

// MustGet returns the pointer and panics with adt.ErrNotFound when empty.
func (r Ref[T, P]) MustGet() *T {
	if r.ptr == nil {
		panic(adt.NotFound("option is None"))
	}
	return r.ptr
}

func (r Ref[T, P]) Filter(predicate func(*T) bool) Ref[T, P] {
	adt.CheckHandler[P](predicate == nil, "Filter predicate")

	if r.ptr != nil && predicate(r.ptr) {
		return r
	}
	return Ref[T, P]{}
}

func (r Ref[T, P]) Exist(predicate func(*T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Exist predicate")

	return r.ptr != nil && predicate(r.ptr)
}

func (r Ref[T, P]) Forall(predicate func(*T) bool) bool {
	adt.CheckHandler[P](predicate == nil, "Forall predicate")

	return r.ptr == nil || predicate(r.ptr)
}

func (r Ref[T, P]) Match(some func(*T), none func()) adt.Unit {
	adt.CheckHandler[P](some == nil, "Match some")
	adt.CheckHandler[P](none == nil, "Match none")

	if r.ptr != nil {
		some(r.ptr)
	} else {
		none()
	}
	return adt.Def
}

// Deref returns Some(*ptr) or None.
func (r Ref[T, P]) Deref() Option[T, P] {
	return FromPtr[P](r.ptr)
}

// Option returns the equivalent Option[*T, P].
func (r Ref[T, P]) Option() Option[*T, P] {
	return Some[P](r.ptr)
}

// String renders r the way the equivalent Option[*T, P] renders.
func (r Ref[T, P]) String() string {
	return r.Option().String()
}
