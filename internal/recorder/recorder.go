// Package recorder provides the shared, concurrency-safe interaction log
// the in-memory capability doubles append to.
//
// Every capability invocation made during a scenario becomes one Call in a
// single append-only log, so assertion code can check what was requested,
// with which arguments, and in which order, independently of what each
// double returned.
//
// Thread-safety: all Recorder methods are safe for concurrent use. Record
// serializes appends through a single mutex, so any two calls with a
// definite real-world order (one's effect observed before the other's
// invocation) appear in that same relative order. Concurrent calls with no
// ordering relationship may land in either order, but the log is stable
// once written.
package recorder

import (
	"fmt"
	"strings"
	"sync"
)

// Call is an immutable record of one capability invocation: capability
// name, method, ordered argument values, and a monotonic sequence number
// assigned at append time. Calls are never mutated after creation.
type Call struct {
	Capability string
	Method     string
	Args       []any
	Seq        uint64
}

// String renders the call as "capability.Method(arg1, arg2)".
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("%s.%s(%s)", c.Capability, c.Method, strings.Join(args, ", "))
}

// Recorder is the ordered, append-only log of capability invocations.
// One Recorder is shared by all doubles for the duration of a scenario and
// discarded afterwards; nothing leaks across tests.
//
// The zero value is not usable; construct with New.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	seq   uint64
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Record appends one invocation to the log and returns the stored Call.
//
// Safe to call from multiple goroutines. The critical section covers only
// the sequence assignment and append, so recording never blocks a caller
// for longer than one slice append.
func (r *Recorder) Record(capability, method string, args ...any) Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	call := Call{
		Capability: capability,
		Method:     method,
		Args:       args,
		Seq:        r.seq,
	}
	r.calls = append(r.calls, call)
	return call
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// At returns the nth recorded call (0-based) and whether it exists.
func (r *Recorder) At(i int) (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.calls) {
		return Call{}, false
	}
	return r.calls[i], true
}

// Snapshot returns a copy of the current ordered log. The copy is taken
// under the lock; the returned slice is owned by the caller and unaffected
// by later appends.
func (r *Recorder) Snapshot() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// ByCapability returns the recorded calls for one capability, in log order.
func (r *Recorder) ByCapability(capability string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if c.Capability == capability {
			out = append(out, c)
		}
	}
	return out
}

// Transcript renders the log as one line per call, in order. The rendering
// is deterministic for a given log, which makes it suitable for golden-file
// comparison.
func (r *Recorder) Transcript() []string {
	calls := r.Snapshot()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
