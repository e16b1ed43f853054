package chain

import (
	"github.com/ib-77/adt3/pkg/adt"
	"github.com/ib-77/adt3/pkg/adt/try"
)

// Chain wraps a try.Try to enable fluent chaining.
type Chain[T any, P adt.Policy] struct {
	res try.Try[T, P]
}

// Start creates a chain from a Try.
func Start[T any, P adt.Policy](t try.Try[T, P]) Chain[T, P] {
	return Chain[T, P]{res: t}
}

// FromValue creates a chain from a successful value.
func FromValue[P adt.Policy, T any](v T) Chain[T, P] {
	return Start(try.Ok[P](v))
}

// FromAttempt creates a chain from the outcome of factory, capturing a panic
// the way try.Attempt does.
func FromAttempt[P adt.Policy, T any](factory func() T) Chain[T, P] {
	return Start(try.Attempt[P](factory))
}

// Result returns the underlying Try.
func (c Chain[T, P]) Result() try.Try[T, P] {
	return c.res
}

// Then composes a step that already returns a Try of the same type.
func (c Chain[T, P]) Then(onOk func(T) try.Try[T, P]) Chain[T, P] {
	return Then(c, onOk)
}

// ThenTry composes a Go-style step returning (T, error), like a repository call.
func (c Chain[T, P]) ThenTry(onOk func(T) (T, error)) Chain[T, P] {
	return ThenTry(c, onOk)
}

// Map transforms the Ok value.
func (c Chain[T, P]) Map(onOk func(T) T) Chain[T, P] {
	return Map(c, onOk)
}

// Ensure triggers side effects for Ok or Error without changing the result.
// A nil handler is skipped.
func (c Chain[T, P]) Ensure(onOk func(T), onError func(error)) Chain[T, P] {
	if onOk == nil {
		onOk = func(T) {}
	}
	if onError == nil {
		onError = func(error) {}
	}
	try.DoubleTee(c.res, onOk, onError)
	return c
}

// Or returns the first Ok among c and alternatives, or c's Error if none is Ok.
func (c Chain[T, P]) Or(alternatives ...Chain[T, P]) Chain[T, P] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first Error among c and required, or the last chain when
// every one is Ok.
func (c Chain[T, P]) And(required ...Chain[T, P]) Chain[T, P] {
	last := c
	for _, ch := range append([]Chain[T, P]{c}, required...) {
		if ch.res.IsError() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil runs onOk at least once and keeps running it while the chain
// is Ok and until holds for the new value.
func (c Chain[T, P]) RepeatUntil(onOk func(T) try.Try[T, P], until func(T) bool) Chain[T, P] {
	adt.CheckHandler[P](until == nil, "RepeatUntil until")

	if c.res.IsError() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsError() || !until(c.res.ValueOrDefault()) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while holds for its value.
func (c Chain[T, P]) While(onOk func(T) try.Try[T, P], while func(T) bool) Chain[T, P] {
	adt.CheckHandler[P](while == nil, "While while")

	for c.res.IsOk() && while(c.res.ValueOrDefault()) {
		c = c.Then(onOk)
	}
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T, P]) Finally(onOk func(T) T, onError func(error) T) T {
	return Finally(c, onOk, onError)
}

func (c Chain[T, P]) String() string {
	return c.res.String()
}

// Then chains a function that returns try.Try[U, P].
func Then[T, U any, P adt.Policy](c Chain[T, P], onOk func(T) try.Try[U, P]) Chain[U, P] {
	return Chain[U, P]{res: try.FlatMap(c.res, onOk)}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any, P adt.Policy](c Chain[T, P], onOk func(T) (U, error)) Chain[U, P] {
	return Chain[U, P]{res: try.MapErr(c.res, onOk)}
}

// Map chains a pure transformation function.
func Map[T, U any, P adt.Policy](c Chain[T, P], onOk func(T) U) Chain[U, P] {
	return Chain[U, P]{res: try.Map(c.res, onOk)}
}

// Finally collapses the chain into a final value using try.MatchValue.
func Finally[T, U any, P adt.Policy](c Chain[T, P], onOk func(T) U, onError func(error) U) U {
	return try.MatchValue(c.res, onOk, onError)
}
