// Package eval provides Eval[T, P], a value together with the strategy used
// to produce it.
//
// Highlights:
// - Now/NowFrom: computed at construction and cached
// - Later: computed on the first Value call, cached, factory released
// - Always: recomputed on every Value call
// - Map/FlatMap/Filter/FilterNot/Fold/Match/MatchAny: force the value and operate on it
// - Equal/Compare/Contain: force both sides, then compare values
// - ToLeft/ToRight/ToOption/ToTry and FromOption/FromEither/FromTry: conversions
//
// A Later keeps its cache in a cell shared by every copy of the Eval, so
// forcing one copy forces all of them. The cell is not synchronised: the
// first Value call on a Later must not race with another call on the same
// Eval or any of its copies.
package eval
