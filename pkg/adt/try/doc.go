// Package try provides Try[T, P], the outcome of a computation that either
// produced a value (Ok) or failed with an error (Error).
//
// Highlights:
// - Ok/Fail/Of: construct from a value, an error or a Go (value, error) pair
// - Attempt/AttemptErr: run a factory and capture a panic as adt.CapturedFailure
// - Map/FlatMap/Filter/Exist/Forall: work on the Ok side, short-circuit on Error
// - FoldOk/FoldError/MatchValue/MatchOkOr/MatchErrorOr/...: collapse to plain values
// - ValueOr/ValueOrGet/ValueOrDefault/ValueOrError/MustValue: extraction
// - ToEither/ToOption/FromEither/FromOption/FromRef: conversions
// - Validate/Tee/TeeIf/DoubleTee/FailOnError/MapErr/Recover: railway helpers
//
// Attempt is the only place in the module where a panic is recovered. Every
// other combinator lets a panicking callback propagate to the caller.
package try
