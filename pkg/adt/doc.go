// Package adt contains the shared building blocks of the algebraic data types
// in the option, either, try and eval packages.
//
// Highlights:
// - Policy/Safe/Unsafe: compile-time switch for nil-callback validation
// - Unit: zero-information value returned by side-effect matches
// - ErrNullArgument/ErrNullPayload/ErrNotFound: error kinds raised by the types
// - CapturedFailure: a panic recovered at the try.Attempt boundary
// - IsNil: nil detection for reference payloads
// - Logger/SetLogger: logrus logger used for captured failures
//
// The containers themselves never perform I/O and never start goroutines. All
// composition is plain synchronous function application.
package adt
