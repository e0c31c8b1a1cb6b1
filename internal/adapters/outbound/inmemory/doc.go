// Package inmemory provides deterministic test doubles for the four
// capability ports, sharing one interaction recorder.
//
// Each double implements exactly one port. Every invocation is recorded
// into the shared recorder before the canned response is returned, so
// assertion code can distinguish "was this called" from "what did it
// return". Canned behavior is either a fixed value or a caller-supplied
// pure function of the invocation arguments; there is no hidden randomness
// and no wall-clock dependence.
//
// Configure canned fields before the scenario starts. During a scenario
// the doubles only read their configuration; the mutable state they own
// (the attribute table, the move list) is guarded for concurrent callers
// and discarded with the double when the scenario ends.
//
// A method variant with no canned behavior fails with
// *ports.UnimplementedError rather than returning a zero value: a double
// that silently no-ops an unexercised path would mask missing coverage.
package inmemory
