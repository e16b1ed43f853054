package try

import (
	"errors"

	"github.com/ib-77/adt3/pkg/adt"
)

// Validate keeps an Ok whose value passes validate and turns it into an
// Error carrying errMsg otherwise.
func Validate[P adt.Policy, T any](t Try[T, P],
	validate func(in T) (isValid bool, errMsg string)) Try[T, P] {
	adt.CheckHandler[P](validate == nil, "Validate validate")

	if t.err == nil {
		if isValid, errMsg := validate(t.value); !isValid {
			return Try[T, P]{err: errors.New(errMsg)}
		}
	}
	return t
}

// ValidateAll runs every validator against t. With breakOnError the first
// failure is returned; otherwise all failures are joined with errors.Join.
// An Error input is returned unchanged.
func ValidateAll[P adt.Policy, T any](t Try[T, P], breakOnError bool,
	validators ...func(in T) (isValid bool, errMsg string)) Try[T, P] {

	if t.err != nil {
		return t
	}

	var errs []error
	for _, validate := range validators {
		adt.CheckHandler[P](validate == nil, "ValidateAll validator")

		if isValid, errMsg := validate(t.value); !isValid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) > 0 {
		return Try[T, P]{err: errors.Join(errs...)}
	}
	return t
}

// Tee calls onOk for an Ok and returns t unchanged.
func Tee[P adt.Policy, T any](t Try[T, P], onOk func(r T)) Try[T, P] {
	adt.CheckHandler[P](onOk == nil, "Tee onOk")

	if t.err == nil {
		onOk(t.value)
	}
	return t
}

// TeeIf calls onOk for an Ok whose value satisfies condition.
func TeeIf[P adt.Policy, T any](t Try[T, P],
	condition func(r T) bool,
	onOkAndCondition func(r T)) Try[T, P] {
	adt.CheckHandler[P](condition == nil, "TeeIf condition")
	adt.CheckHandler[P](onOkAndCondition == nil, "TeeIf onOkAndCondition")

	if t.err == nil && condition(t.value) {
		onOkAndCondition(t.value)
	}
	return t
}

// DoubleTee calls onOk or onError and returns t unchanged.
func DoubleTee[P adt.Policy, T any](t Try[T, P],
	onOk func(r T),
	onError func(err error)) Try[T, P] {
	adt.CheckHandler[P](onOk == nil, "DoubleTee onOk")
	adt.CheckHandler[P](onError == nil, "DoubleTee onError")

	if t.err == nil {
		onOk(t.value)
	} else {
		onError(t.err)
	}
	return t
}

// FailOnError turns an Ok into an Error when maybeErr reports one.
func FailOnError[P adt.Policy, T any](t Try[T, P], maybeErr func(in T) error) Try[T, P] {
	adt.CheckHandler[P](maybeErr == nil, "FailOnError maybeErr")

	if t.err == nil {
		if err := maybeErr(t.value); !adt.IsNil(err) {
			return Try[T, P]{err: err}
		}
	}
	return t
}

// MapErr applies a Go-style step to an Ok value.
func MapErr[P adt.Policy, T, R any](t Try[T, P], f func(in T) (R, error)) Try[R, P] {
	adt.CheckHandler[P](f == nil, "MapErr handler")

	if t.err != nil {
		return Try[R, P]{err: t.err}
	}
	return Of[P](f(t.value))
}

// Recover turns an Error into Ok(onError(err)).
func Recover[P adt.Policy, T any](t Try[T, P], onError func(err error) T) Try[T, P] {
	adt.CheckHandler[P](onError == nil, "Recover onError")

	if t.err != nil {
		return Try[T, P]{value: onError(t.err)}
	}
	return t
}
