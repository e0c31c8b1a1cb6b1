package ports

import (
	"errors"
	"fmt"
)

// Infrastructure errors for the capability layer.
//
// These errors represent infrastructure/adapter concerns and are separate
// from domain errors, which represent feed/episode validation failures.
//
// Usage:
//   - Adapters return these errors when capability operations fail
//   - The application layer never retries or defaults on them; retry policy
//     belongs to callers
//   - Check with errors.Is / errors.As; wrap with fmt.Errorf("...: %w", ...)

// ErrAttributesNotFound indicates an attribute read on a path that was
// never written. This signals a programming or test-setup error and is
// surfaced immediately, never defaulted to an empty mapping.
var ErrAttributesNotFound = errors.New("no attributes recorded for path")

// ErrUnimplemented is the sentinel matched by UnimplementedError via
// errors.Is. Harnesses treat a match as a coverage gap, not a business
// failure.
var ErrUnimplemented = errors.New("capability method not implemented")

// TransportError indicates a fetch or download failed at the network layer.
// Recoverable by caller retry policy; the capability layer imposes none.
//
// The wrapped cause is reachable with errors.Is, so context.Canceled and
// context.DeadlineExceeded remain distinguishable after wrapping.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MoveError indicates a local move failed (destination exists, permission).
// Not retried by the capability layer.
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s -> %s: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

// UnimplementedError indicates a capability method variant was invoked on a
// double with no canned behavior configured. It is always fatal to the test
// run: a double that silently no-ops an unexercised path would mask missing
// coverage.
type UnimplementedError struct {
	Capability string
	Method     string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s.%s invoked without a canned behavior", e.Capability, e.Method)
}

func (e *UnimplementedError) Unwrap() error { return ErrUnimplemented }

// Compile-time check that the typed errors implement error
var (
	_ error = (*TransportError)(nil)
	_ error = (*MoveError)(nil)
	_ error = (*UnimplementedError)(nil)
)
