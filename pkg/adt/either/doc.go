// Package either provides Either[L, R, P], a value that is exactly one of
// Left(L) or Right(R).
//
// Highlights:
// - Left/Right: construct; a nil reference payload panics with adt.ErrNullPayload
// - MapLeft/MapRight/Map, FlatMapLeft/FlatMapRight/FlatMap: transform the held side
// - FoldLeft/FoldRight/Fold, ExistLeft/ForallLeft/..., ContainLeft/...: collapse
// - FilterLeft/FilterRight/Filter: gate on a predicate into an Option
// - LeftOr/LeftOrGet/LeftOrDefault/LeftOrError/MustLeft and Right forms
// - Match/MatchLeft/MatchRight/MatchValue/MatchLeftOr/...: pattern matching
// - Swap/EqualSwapped: Left of Either[L, R] equals Right of Either[R, L]
// - FlattenLeft/FlattenRight/FlattenBoth: collapse nested Eithers
// - FromOptionLeft/FromOptionRight/OptionToLeft/OptionToRight: Option conversions
// - Ref: single-slot Either
package either
