// Package option provides Option[T, P], a value that is either Some(T) or None.
//
// Highlights:
// - Some/None/FromPtr/Of: construct an Option; Some of a nil reference is None
// - Map/FlatMap/Filter/FilterNot: transform while present, short-circuit on None
// - Exist/Forall/Fold/FoldWith/FoldLeft/FoldRight: collapse to plain values
// - OrElse/OrElseGet/OrDefault/OrError/MustGet: extract with a fallback
// - Match/MatchSome/MatchNone/MatchValue/MatchOr: pattern matching
// - Equal/Compare and their Func/Value forms: None sorts before Some
// - Ref: single-slot Option over a pointer
//
// P is adt.Safe or adt.Unsafe and decides whether nil callbacks are rejected.
package option
