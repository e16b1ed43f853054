package either

import (
	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// MapLeft transforms a Left value; a Right passes through re-typed.
func MapLeft[P adt.Policy, L, R, U any](e Either[L, R, P], f func(L) U) Either[U, R, P] {
	adt.CheckHandler[P](f == nil, "MapLeft handler")

	if e.isLeft {
		return Left[P, U, R](f(e.left))
	}
	return rightOf[P, U](e.right)
}

// MapRight transforms a Right value; a Left passes through re-typed.
func MapRight[P adt.Policy, L, R, U any](e Either[L, R, P], f func(R) U) Either[L, U, P] {
	adt.CheckHandler[P](f == nil, "MapRight handler")

	if !e.isLeft {
		return Right[P, L, U](f(e.right))
	}
	return leftOf[P, L, U](e.left)
}

// Map transforms whichever side is held, keeping the tag.
func Map[P adt.Policy, L, R, L2, R2 any](e Either[L, R, P], left func(L) L2, right func(R) R2) Either[L2, R2, P] {
	adt.CheckHandler[P](left == nil, "Map left")
	adt.CheckHandler[P](right == nil, "Map right")

	if e.isLeft {
		return Left[P, L2, R2](left(e.left))
	}
	return Right[P, L2, R2](right(e.right))
}

// FlatMapLeft chains on a Left; a Right passes through re-typed.
func FlatMapLeft[P adt.Policy, L, R, U any](e Either[L, R, P], f func(L) Either[U, R, P]) Either[U, R, P] {
	adt.CheckHandler[P](f == nil, "FlatMapLeft handler")

	if e.isLeft {
		return f(e.left)
	}
	return rightOf[P, U](e.right)
}

// FlatMapRight chains on a Right; a Left passes through re-typed.
func FlatMapRight[P adt.Policy, L, R, U any](e Either[L, R, P], f func(R) Either[L, U, P]) Either[L, U, P] {
	adt.CheckHandler[P](f == nil, "FlatMapRight handler")

	if !e.isLeft {
		return f(e.right)
	}
	return leftOf[P, L, U](e.left)
}

// FlatMap chains on whichever side is held.
func FlatMap[P adt.Policy, L, R, L2, R2 any](e Either[L, R, P],
	left func(L) Either[L2, R2, P], right func(R) Either[L2, R2, P]) Either[L2, R2, P] {
	adt.CheckHandler[P](left == nil, "FlatMap left")
	adt.CheckHandler[P](right == nil, "FlatMap right")

	if e.isLeft {
		return left(e.left)
	}
	return right(e.right)
}

// FoldLeft returns f(left, init) for a Left and init otherwise.
func FoldLeft[P adt.Policy, L, R, A any](e Either[L, R, P], init A, f func(L, A) A) A {
	adt.CheckHandler[P](f == nil, "FoldLeft handler")

	if e.isLeft {
		return f(e.left, init)
	}
	return init
}

// FoldRight returns f(right, init) for a Right and init otherwise.
func FoldRight[P adt.Policy, L, R, A any](e Either[L, R, P], init A, f func(R, A) A) A {
	adt.CheckHandler[P](f == nil, "FoldRight handler")

	if !e.isLeft {
		return f(e.right, init)
	}
	return init
}

// Fold applies the handler of the held side to its value and init.
func Fold[P adt.Policy, L, R, A any](e Either[L, R, P], init A, left func(L, A) A, right func(R, A) A) A {
	adt.CheckHandler[P](left == nil, "Fold left")
	adt.CheckHandler[P](right == nil, "Fold right")

	if e.isLeft {
		return left(e.left, init)
	}
	return right(e.right, init)
}

// MatchValue returns left(value) or right(value) depending on the held side.
func MatchValue[P adt.Policy, L, R, A any](e Either[L, R, P], left func(L) A, right func(R) A) A {
	adt.CheckHandler[P](left == nil, "Match left")
	adt.CheckHandler[P](right == nil, "Match right")

	if e.isLeft {
		return left(e.left)
	}
	return right(e.right)
}

// MatchLeftOr returns left(value) for a Left and nonLeft otherwise.
func MatchLeftOr[P adt.Policy, L, R, A any](e Either[L, R, P], left func(L) A, nonLeft A) A {
	adt.CheckHandler[P](left == nil, "MatchLeft left")

	if e.isLeft {
		return left(e.left)
	}
	return nonLeft
}

// MatchLeftOrGet returns left(value) for a Left and nonLeft() otherwise.
func MatchLeftOrGet[P adt.Policy, L, R, A any](e Either[L, R, P], left func(L) A, nonLeft func() A) A {
	adt.CheckHandler[P](left == nil, "MatchLeft left")
	adt.CheckHandler[P](nonLeft == nil, "MatchLeft nonLeft")

	if e.isLeft {
		return left(e.left)
	}
	return nonLeft()
}

// MatchRightOr returns right(value) for a Right and nonRight otherwise.
func MatchRightOr[P adt.Policy, L, R, A any](e Either[L, R, P], right func(R) A, nonRight A) A {
	adt.CheckHandler[P](right == nil, "MatchRight right")

	if !e.isLeft {
		return right(e.right)
	}
	return nonRight
}

// MatchRightOrGet returns right(value) for a Right and nonRight() otherwise.
func MatchRightOrGet[P adt.Policy, L, R, A any](e Either[L, R, P], right func(R) A, nonRight func() A) A {
	adt.CheckHandler[P](right == nil, "MatchRight right")
	adt.CheckHandler[P](nonRight == nil, "MatchRight nonRight")

	if !e.isLeft {
		return right(e.right)
	}
	return nonRight()
}

// FlattenLeft collapses Either[Either[L, R], R].
func FlattenLeft[P adt.Policy, L, R any](e Either[Either[L, R, P], R, P]) Either[L, R, P] {
	if e.isLeft {
		return e.left
	}
	return rightOf[P, L](e.right)
}

// FlattenRight collapses Either[L, Either[L, R]].
func FlattenRight[P adt.Policy, L, R any](e Either[L, Either[L, R, P], P]) Either[L, R, P] {
	if e.isLeft {
		return leftOf[P, L, R](e.left)
	}
	return e.right
}

// FlattenBoth collapses Either[Either[L, R], Either[L, R]].
func FlattenBoth[P adt.Policy, L, R any](e Either[Either[L, R, P], Either[L, R, P], P]) Either[L, R, P] {
	if e.isLeft {
		return e.left
	}
	return e.right
}

// FromOptionLeft returns Left(v) for Some(v) and Right(right) for None.
func FromOptionLeft[P adt.Policy, L, R any](o option.Option[L, P], right R) Either[L, R, P] {
	if v, ok := o.Get(); ok {
		return leftOf[P, L, R](v)
	}
	return Right[P, L](right)
}

// FromOptionRight returns Right(v) for Some(v) and Left(left) for None.
func FromOptionRight[P adt.Policy, L, R any](o option.Option[R, P], left L) Either[L, R, P] {
	if v, ok := o.Get(); ok {
		return rightOf[P, L](v)
	}
	return Left[P, L, R](left)
}

// OptionToLeft returns Left(v) for Some(v) and Right(adt.Unit) for None.
func OptionToLeft[P adt.Policy, T any](o option.Option[T, P]) Either[T, adt.Unit, P] {
	return FromOptionLeft(o, adt.Def)
}

// OptionToRight returns Right(v) for Some(v) and Left(adt.Unit) for None.
func OptionToRight[P adt.Policy, T any](o option.Option[T, P]) Either[adt.Unit, T, P] {
	return FromOptionRight(o, adt.Def)
}

// WithPolicy re-wraps e under the policy Q.
func WithPolicy[Q, P adt.Policy, L, R any](e Either[L, R, P]) Either[L, R, Q] {
	return Either[L, R, Q]{left: e.left, right: e.right, isLeft: e.isLeft}
}
