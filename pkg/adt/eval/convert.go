package eval

import (
	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/either"
	"github.com/ib-77/adt3/pkg/adt/option"
	"github.com/ib-77/adt3/pkg/adt/try"
)

// ToLeft forces e and returns Left(value).
func ToLeft[P adt.Policy, T any](e Eval[T, P]) either.Either[T, adt.Unit, P] {
	return either.Left[P, T, adt.Unit](e.Value())
}

// ToRight forces e and returns Right(value).
func ToRight[P adt.Policy, T any](e Eval[T, P]) either.Either[adt.Unit, T, P] {
	return either.Right[P, adt.Unit](e.Value())
}

// ToTry converts e to a Try. A Now or an evaluated Later becomes Ok. A
// pending Later or an Always is run through try.Attempt, so a panicking
// factory becomes an Error; a pending Later is forced through its cache.
func ToTry[P adt.Policy, T any](e Eval[T, P]) try.Try[T, P] {
	switch e.kind {
	case KindLater:
		if e.cell.done {
			return try.Ok[P](e.cell.value)
		}
		return try.Attempt[P](e.cell.force)
	case KindAlways:
		return try.Attempt[P](e.factory)
	}
	return try.Ok[P](e.value)
}

// FromOption returns Now(v) for Some(v) and Later(ifNone) for None.
func FromOption[P adt.Policy, T any](o option.Option[T, P], ifNone func() T) Eval[T, P] {
	mustFactory(ifNone == nil, "FromOption ifNone")

	if v, ok := o.Get(); ok {
		return Now[P](v)
	}
	return Later[P](ifNone)
}

// FromEither returns Now(v) for Right(v) and a Later computing ifLeft(l)
// for Left(l).
func FromEither[P adt.Policy, L, T any](e either.Either[L, T, P], ifLeft func(L) T) Eval[T, P] {
	mustFactory(ifLeft == nil, "FromEither ifLeft")

	if e.IsRight() {
		return Now[P](e.MustRight())
	}
	l := e.MustLeft()
	return Later[P](func() T { return ifLeft(l) })
}

// FromTry returns Now(v) for Ok(v) and a Later computing ifError(err) for
// an Error.
func FromTry[P adt.Policy, T any](t try.Try[T, P], ifError func(error) T) Eval[T, P] {
	mustFactory(ifError == nil, "FromTry ifError")

	v, err := t.Get()
	if err == nil {
		return Now[P](v)
	}
	return Later[P](func() T { return ifError(err) })
}
