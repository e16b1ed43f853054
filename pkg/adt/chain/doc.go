// Package chain provides a fluent wrapper around try.Try[T, P]
// for building synchronous railway pipelines out of try primitives.
//
// It composes FlatMap, MapErr, Map, DoubleTee and MatchValue behind a
// convenient Chain[T, P] type, so a pipeline reads top to bottom and stops
// at the first Error without branching at each step.
//
// Key operations:
// - Start/FromValue/FromAttempt: begin a chain from a Try, a value or a factory
// - Then/ThenTry/Map: next step; as methods they keep T, as functions they change it
// - Ensure: run side effects for Ok or Error without changing the result
// - Or/And: pick the first Ok, or the first Error, among several chains
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Finally: collapse the chain into a final value
package chain
