package try

import (
	"cmp"
	"strings"

	"github.com/ib-77/adt3/pkg/adt"
)

// Contain reports whether t is an Ok holding v.
func Contain[P adt.Policy, T comparable](t Try[T, P], v T) bool {
	return t.err == nil && t.value == v
}

// EqualValue reports whether t is an Ok holding v.
func EqualValue[P adt.Policy, T comparable](t Try[T, P], v T) bool {
	return Contain(t, v)
}

// Equal reports whether a and b are both Ok with equal values, or both Error
// with failures of the same message. Two Errors are equal exactly when
// Compare reports 0 for them.
func Equal[P adt.Policy, T comparable](a, b Try[T, P]) bool {
	switch {
	case a.err == nil && b.err == nil:
		return a.value == b.value
	case a.err != nil && b.err != nil:
		return compareFailures(a.err, b.err) == 0
	}
	return false
}

// Compare orders Error before Ok. Ok values compare by cmp.Compare and
// failures by their message.
func Compare[P adt.Policy, T cmp.Ordered](a, b Try[T, P]) int {
	switch {
	case a.err == nil && b.err == nil:
		return cmp.Compare(a.value, b.value)
	case a.err != nil && b.err != nil:
		return compareFailures(a.err, b.err)
	case a.err != nil:
		return -1
	}
	return 1
}

// CompareValue compares t with v taken as an Ok, so an Error sorts first.
func CompareValue[P adt.Policy, T cmp.Ordered](t Try[T, P], v T) int {
	if t.err != nil {
		return -1
	}
	return cmp.Compare(t.value, v)
}

func compareFailures(a, b error) int {
	return strings.Compare(a.Error(), b.Error())
}
