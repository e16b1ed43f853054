package either

import (
	"cmp"

	"github.com/ib-77/adt3/pkg/adt"
)

// ContainLeft reports whether e is a Left equal to v.
func ContainLeft[P adt.Policy, L comparable, R any](e Either[L, R, P], v L) bool {
	return e.isLeft && e.left == v
}

// ContainRight reports whether e is a Right equal to v.
func ContainRight[P adt.Policy, L any, R comparable](e Either[L, R, P], v R) bool {
	return !e.isLeft && e.right == v
}

// Contain compares the held side with the literal for that side.
func Contain[P adt.Policy, L, R comparable](e Either[L, R, P], leftVal L, rightVal R) bool {
	if e.isLeft {
		return e.left == leftVal
	}
	return e.right == rightVal
}

// Equal reports whether a and b hold the same side with equal values.
func Equal[P adt.Policy, L, R comparable](a, b Either[L, R, P]) bool {
	if a.isLeft != b.isLeft {
		return false
	}
	if a.isLeft {
		return a.left == b.left
	}
	return a.right == b.right
}

// EqualSwapped compares e with the mirrored type: a Left of Either[L, R]
// equals a Right of Either[R, L] holding the same value, and vice versa.
func EqualSwapped[P adt.Policy, L, R comparable](e Either[L, R, P], mirrored Either[R, L, P]) bool {
	return Equal(e, mirrored.Swap())
}

// Compare orders Left before Right and same-side values by cmp.Compare.
func Compare[P adt.Policy, L, R cmp.Ordered](a, b Either[L, R, P]) int {
	return CompareFunc(a, b, cmp.Compare[L], cmp.Compare[R])
}

// CompareFunc is Compare with custom orderings per side.
func CompareFunc[P adt.Policy, L, R any](a, b Either[L, R, P], left func(L, L) int, right func(R, R) int) int {
	switch {
	case a.isLeft && b.isLeft:
		return left(a.left, b.left)
	case !a.isLeft && !b.isLeft:
		return right(a.right, b.right)
	case a.isLeft:
		return -1
	}
	return 1
}
