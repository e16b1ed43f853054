package option

import (
	"cmp"

	"github.com/ib-77/adt3/pkg/adt"
)

// Equal reports whether a and b are both None or both Some with equal values.
func Equal[P adt.Policy, T comparable](a, b Option[T, P]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom value comparison.
func EqualFunc[P adt.Policy, T any](a, b Option[T, P], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}

// EqualValue treats v as Some(v).
func EqualValue[P adt.Policy, T comparable](o Option[T, P], v T) bool {
	return o.present && o.value == v
}

// Compare orders None before Some and Some values by cmp.Compare.
func Compare[P adt.Policy, T cmp.Ordered](a, b Option[T, P]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom value ordering.
func CompareFunc[P adt.Policy, T any](a, b Option[T, P], c func(T, T) int) int {
	switch {
	case a.present && b.present:
		return c(a.value, b.value)
	case a.present:
		return 1
	case b.present:
		return -1
	}
	return 0
}

// CompareValue treats v as Some(v); None is less than any value.
func CompareValue[P adt.Policy, T cmp.Ordered](o Option[T, P], v T) int {
	if !o.present {
		return -1
	}
	return cmp.Compare(o.value, v)
}
