package either

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Ref is an Either that keeps its payload in a single slot instead of one
// field per side. Behaviour matches Either, including nil rejection.
type Ref[L, R any, P adt.Policy] struct {
	slot   any
	isLeft bool
}

var _ adt.Tagged[Kind] = Ref[int, string, adt.Safe]{}

// LeftRef constructs a Left. A nil reference panics with adt.ErrNullPayload.
func LeftRef[P adt.Policy, L, R any](v L) Ref[L, R, P] {
	if adt.IsNil(v) {
		panic(adt.NullPayload("either Left"))
	}
	return Ref[L, R, P]{slot: v, isLeft: true}
}

// RightRef constructs a Right. A nil reference panics with adt.ErrNullPayload.
func RightRef[P adt.Policy, L, R any](v R) Ref[L, R, P] {
	if adt.IsNil(v) {
		panic(adt.NullPayload("either Right"))
	}
	return Ref[L, R, P]{slot: v}
}

// FromEither moves e into a single-slot Ref.
func FromEither[P adt.Policy, L, R any](e Either[L, R, P]) Ref[L, R, P] {
	if e.isLeft {
		return Ref[L, R, P]{slot: e.left, isLeft: true}
	}
	return Ref[L, R, P]{slot: e.right}
}

// Either returns the two-field form of r.
func (r Ref[L, R, P]) Either() Either[L, R, P] {
	if r.isLeft {
		return leftOf[P, L, R](r.leftValue())
	}
	return rightOf[P, L](r.rightValue())
}

func (r Ref[L, R, P]) leftValue() L {
	v, _ := r.slot.(L)
	return v
}

func (r Ref[L, R, P]) rightValue() R {
	v, _ := r.slot.(R)
	return v
}

func (r Ref[L, R, P]) Kind() Kind {
	if r.isLeft {
		return KindLeft
	}
	return KindRight
}

func (r Ref[L, R, P]) IsLeft() bool { return r.isLeft }

func (r Ref[L, R, P]) IsRight() bool { return !r.isLeft }

func (r Ref[L, R, P]) Left() option.Option[L, P] {
	if r.isLeft {
		return option.Some[P](r.leftValue())
	}
	return option.None[P, L]()
}

func (r Ref[L, R, P]) Right() option.Option[R, P] {
	if !r.isLeft {
		return option.Some[P](r.rightValue())
	}
	return option.None[P, R]()
}

// Swap exchanges the sides without touching the slot.
func (r Ref[L, R, P]) Swap() Ref[R, L, P] {
	return Ref[R, L, P]{slot: r.slot, isLeft: !r.isLeft}
}

func (r Ref[L, R, P]) LeftOr(v L) L {
	if r.isLeft {
		return r.leftValue()
	}
	return v
}

func (r Ref[L, R, P]) RightOr(v R) R {
	if !r.isLeft {
		return r.rightValue()
	}
	return v
}

func (r Ref[L, R, P]) MustLeft() L {
	if !r.isLeft {
		panic(adt.NotFound("either is Right"))
	}
	return r.leftValue()
}

func (r Ref[L, R, P]) MustRight() R {
	if r.isLeft {
		panic(adt.NotFound("either is Left"))
	}
	return r.rightValue()
}

func (r Ref[L, R, P]) Match(left func(L), right func(R)) adt.Unit {
	adt.CheckHandler[P](left == nil, "Match left")
	adt.CheckHandler[P](right == nil, "Match right")

	if r.isLeft {
		left(r.leftValue())
	} else {
		right(r.rightValue())
	}
	return adt.Def
}

func (r Ref[L, R, P]) String() string {
	if r.isLeft {
		return fmt.Sprintf("Left(%v)", r.leftValue())
	}
	return fmt.Sprintf("Right(%v)", r.rightValue())
}
