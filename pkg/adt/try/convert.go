package try

import (
	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/either"
	"github.com/ib-77/adt3/pkg/adt/option"
)

// ToEither maps Error to Left(err) and Ok to Right(value). An Ok holding a
// nil reference panics with adt.ErrNullPayload, as either.Right does.
func (t Try[T, P]) ToEither() either.Either[error, T, P] {
	if t.err != nil {
		return either.Left[P, error, T](t.err)
	}
	return either.Right[P, error](t.value)
}

// ToOption maps Ok to Some(value) and Error to None.
func (t Try[T, P]) ToOption() option.Option[T, P] {
	return t.Value()
}

// FromEither maps Left(err) to Error and Right(v) to Ok.
func FromEither[P adt.Policy, T any](e either.Either[error, T, P]) Try[T, P] {
	if e.IsLeft() {
		return Try[T, P]{err: e.MustLeft()}
	}
	return Try[T, P]{value: e.MustRight()}
}

// FromOption maps Some(v) to Ok and None to an Error wrapping
// adt.ErrNullPayload.
func FromOption[P adt.Policy, T any](o option.Option[T, P]) Try[T, P] {
	if v, ok := o.Get(); ok {
		return Try[T, P]{value: v}
	}
	return Try[T, P]{err: adt.NullPayload("option is None")}
}

// FromRef maps a present pointer to Ok and an absent one to an Error
// wrapping adt.ErrNullPayload.
func FromRef[P adt.Policy, T any](r option.Ref[T, P]) Try[*T, P] {
	if ptr, ok := r.Get(); ok {
		return Try[*T, P]{value: ptr}
	}
	return Try[*T, P]{err: adt.NullPayload("ref is None")}
}
