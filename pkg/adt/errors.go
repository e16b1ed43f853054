package adt

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNullArgument is raised under the Safe policy when a callback or
	// predicate passed to a combinator is nil.
	ErrNullArgument = errors.New("adt: nil function argument")
	// ErrNullPayload is raised when a Left, Right or failure is constructed
	// from a nil reference. It is raised regardless of policy.
	ErrNullPayload = errors.New("adt: nil payload")
	// ErrNotFound is raised or returned by accessors asked for a side the
	// value does not hold.
	ErrNotFound = errors.New("adt: value not found")
)

// NullArgument returns an error wrapping ErrNullArgument for the named argument.
func NullArgument(what string) error {
	return fmt.Errorf("%w: %s", ErrNullArgument, what)
}

// NullPayload returns an error wrapping ErrNullPayload for the named side.
func NullPayload(what string) error {
	return fmt.Errorf("%w: %s", ErrNullPayload, what)
}

// NotFound returns an error wrapping ErrNotFound for the named side.
func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// CapturedFailure holds a panic recovered while running a factory at the
// try.Attempt boundary. It is stored as data and never re-panicked by the
// library.
type CapturedFailure struct {
	id        uuid.UUID
	createdAt time.Time
	value     any
	stack     []byte
}

// Capture wraps a recovered panic value. The stack is taken from the
// goroutine at the time of the call, so Capture belongs inside the deferred
// recover.
func Capture(value any) *CapturedFailure {
	return &CapturedFailure{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		stack:     debug.Stack(),
	}
}

func (c *CapturedFailure) Error() string {
	return fmt.Sprintf("captured failure: %v", c.value)
}

// Unwrap exposes the recovered value when it is an error, so errors.Is and
// errors.As see through the capture.
func (c *CapturedFailure) Unwrap() error {
	if err, ok := c.value.(error); ok {
		return err
	}
	return nil
}

// Id identifies the capture in logs.
func (c *CapturedFailure) Id() uuid.UUID {
	return c.id
}

// CreatedAt time of capture (UTC)
func (c *CapturedFailure) CreatedAt() time.Time {
	return c.createdAt
}

// Value returns the recovered panic value.
func (c *CapturedFailure) Value() any {
	return c.value
}

func (c *CapturedFailure) Stack() []byte {
	return c.stack
}

// IsCaptured reports whether err is or wraps a CapturedFailure.
func IsCaptured(err error) bool {
	var cf *CapturedFailure
	return errors.As(err, &cf)
}
