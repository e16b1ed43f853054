package either

import (
	"fmt"

	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// Either holds exactly one of a Left or a Right value. The constructors never
// store a nil reference on either side. The zero value is the one exception:
// it is Right of the zero R, which is nil when R is a reference type.
type Either[L, R any, P adt.Policy] struct {
	left   L
	right  R
	isLeft bool
}

var (
	_ adt.Tagged[Kind] = Either[int, string, adt.Safe]{}
	_ adt.Checked      = Either[int, string, adt.Safe]{}
)

// Left constructs a Left. A nil reference panics with adt.ErrNullPayload.
func Left[P adt.Policy, L, R any](v L) Either[L, R, P] {
	if adt.IsNil(v) {
		panic(adt.NullPayload("either Left"))
	}
	return Either[L, R, P]{left: v, isLeft: true}
}

// Right constructs a Right. A nil reference panics with adt.ErrNullPayload.
func Right[P adt.Policy, L, R any](v R) Either[L, R, P] {
	if adt.IsNil(v) {
		panic(adt.NullPayload("either Right"))
	}
	return Either[L, R, P]{right: v}
}

// leftOf and rightOf re-tag an already validated payload.
func leftOf[P adt.Policy, L, R any](v L) Either[L, R, P] {
	return Either[L, R, P]{left: v, isLeft: true}
}

func rightOf[P adt.Policy, L, R any](v R) Either[L, R, P] {
	return Either[L, R, P]{right: v}
}

func (e Either[L, R, P]) Kind() Kind {
	if e.isLeft {
		return KindLeft
	}
	return KindRight
}

func (e Either[L, R, P]) Checked() bool {
	return adt.NeedCheck[P]()
}

func (e Either[L, R, P]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R, P]) IsRight() bool {
	return !e.isLeft
}

// Left returns Some(left) for a Left and None otherwise.
func (e Either[L, R, P]) Left() option.Option[L, P] {
	if e.isLeft {
		return option.Some[P](e.left)
	}
	return option.None[P, L]()
}

// Right returns Some(right) for a Right and None otherwise.
func (e Either[L, R, P]) Right() option.Option[R, P] {
	if !e.isLeft {
		return option.Some[P](e.right)
	}
	return option.None[P, R]()
}

// Swap exchanges the sides.
func (e Either[L, R, P]) Swap() Either[R, L, P] {
	return Either[R, L, P]{left: e.right, right: e.left, isLeft: !e.isLeft}
}

// ExistLeft returns true for a Left whose value satisfies predicate.
func (e Either[L, R, P]) ExistLeft(predicate func(L) bool) bool {
	adt.CheckHandler[P](predicate == nil, "ExistLeft predicate")

	return e.isLeft && predicate(e.left)
}

// ExistRight returns true for a Right whose value satisfies predicate.
func (e Either[L, R, P]) ExistRight(predicate func(R) bool) bool {
	adt.CheckHandler[P](predicate == nil, "ExistRight predicate")

	return !e.isLeft && predicate(e.right)
}

// Exist tests the held side with its predicate.
func (e Either[L, R, P]) Exist(predicateLeft func(L) bool, predicateRight func(R) bool) bool {
	adt.CheckHandler[P](predicateLeft == nil, "Exist predicateLeft")
	adt.CheckHandler[P](predicateRight == nil, "Exist predicateRight")

	if e.isLeft {
		return predicateLeft(e.left)
	}
	return predicateRight(e.right)
}

// ForallLeft returns true for a Right, or a Left satisfying predicate.
func (e Either[L, R, P]) ForallLeft(predicate func(L) bool) bool {
	adt.CheckHandler[P](predicate == nil, "ForallLeft predicate")

	return !e.isLeft || predicate(e.left)
}

// ForallRight returns true for a Left, or a Right satisfying predicate.
func (e Either[L, R, P]) ForallRight(predicate func(R) bool) bool {
	adt.CheckHandler[P](predicate == nil, "ForallRight predicate")

	return e.isLeft || predicate(e.right)
}

// FilterLeft returns Some(left) for a Left satisfying predicate.
func (e Either[L, R, P]) FilterLeft(predicate func(L) bool) option.Option[L, P] {
	adt.CheckHandler[P](predicate == nil, "FilterLeft predicate")

	if e.isLeft && predicate(e.left) {
		return option.Some[P](e.left)
	}
	return option.None[P, L]()
}

// FilterRight returns Some(right) for a Right satisfying predicate.
func (e Either[L, R, P]) FilterRight(predicate func(R) bool) option.Option[R, P] {
	adt.CheckHandler[P](predicate == nil, "FilterRight predicate")

	if !e.isLeft && predicate(e.right) {
		return option.Some[P](e.right)
	}
	return option.None[P, R]()
}

// Filter returns Some(e) when the held side satisfies its predicate.
func (e Either[L, R, P]) Filter(predicateLeft func(L) bool, predicateRight func(R) bool) option.Option[Either[L, R, P], P] {
	adt.CheckHandler[P](predicateLeft == nil, "Filter predicateLeft")
	adt.CheckHandler[P](predicateRight == nil, "Filter predicateRight")

	if e.isLeft && predicateLeft(e.left) || !e.isLeft && predicateRight(e.right) {
		return option.Some[P](e)
	}
	return option.None[P, Either[L, R, P]]()
}

// LeftOr returns the left value or v.
func (e Either[L, R, P]) LeftOr(v L) L {
	if e.isLeft {
		return e.left
	}
	return v
}

// LeftOrGet returns the left value or the result of factory.
func (e Either[L, R, P]) LeftOrGet(factory func() L) L {
	adt.CheckHandler[P](factory == nil, "LeftOrGet factory")

	if e.isLeft {
		return e.left
	}
	return factory()
}

// LeftOrDefault returns the left value or the zero value of L.
func (e Either[L, R, P]) LeftOrDefault() L {
	if e.isLeft {
		return e.left
	}
	var zero L
	return zero
}

// LeftOrError returns the left value, or an error wrapping adt.ErrNotFound.
func (e Either[L, R, P]) LeftOrError() (L, error) {
	if !e.isLeft {
		var zero L
		return zero, adt.NotFound("either is Right")
	}
	return e.left, nil
}

// MustLeft returns the left value and panics with adt.ErrNotFound on a Right.
func (e Either[L, R, P]) MustLeft() L {
	v, err := e.LeftOrError()
	if err != nil {
		panic(err)
	}
	return v
}

// RightOr returns the right value or v.
func (e Either[L, R, P]) RightOr(v R) R {
	if !e.isLeft {
		return e.right
	}
	return v
}

// RightOrGet returns the right value or the result of factory.
func (e Either[L, R, P]) RightOrGet(factory func() R) R {
	adt.CheckHandler[P](factory == nil, "RightOrGet factory")

	if !e.isLeft {
		return e.right
	}
	return factory()
}

// RightOrDefault returns the right value or the zero value of R.
func (e Either[L, R, P]) RightOrDefault() R {
	if !e.isLeft {
		return e.right
	}
	var zero R
	return zero
}

// RightOrError returns the right value, or an error wrapping adt.ErrNotFound.
func (e Either[L, R, P]) RightOrError() (R, error) {
	if e.isLeft {
		var zero R
		return zero, adt.NotFound("either is Left")
	}
	return e.right, nil
}

// MustRight returns the right value and panics with adt.ErrNotFound on a Left.
func (e Either[L, R, P]) MustRight() R {
	v, err := e.RightOrError()
	if err != nil {
		panic(err)
	}
	return v
}

// Match calls left or right depending on the held side.
func (e Either[L, R, P]) Match(left func(L), right func(R)) adt.Unit {
	adt.CheckHandler[P](left == nil, "Match left")
	adt.CheckHandler[P](right == nil, "Match right")

	if e.isLeft {
		left(e.left)
	} else {
		right(e.right)
	}
	return adt.Def
}

// MatchLeft calls left only for a Left.
func (e Either[L, R, P]) MatchLeft(left func(L)) adt.Unit {
	adt.CheckHandler[P](left == nil, "MatchLeft left")

	if e.isLeft {
		left(e.left)
	}
	return adt.Def
}

// MatchRight calls right only for a Right.
func (e Either[L, R, P]) MatchRight(right func(R)) adt.Unit {
	adt.CheckHandler[P](right == nil, "MatchRight right")

	if !e.isLeft {
		right(e.right)
	}
	return adt.Def
}

func (e Either[L, R, P]) String() string {
	if e.isLeft {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}
