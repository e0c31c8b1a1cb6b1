package inmemory

import (
	"context"
	"sync"

	"github.com/podkeep/podkeep/internal/ports"
	"github.com/podkeep/podkeep/internal/recorder"
)

// MoveRecord is an immutable (source, destination) pair captured by the
// Mover double.
type MoveRecord struct {
	Source      string
	Destination string
}

// Mover is the FileMover double. It records the request into the shared
// recorder and appends it to an ordered move list; it never touches the
// filesystem. Asserting the *intent* to move is the double's job; the
// *effect* belongs to integration tests against the production adapter.
type Mover struct {
	rec *recorder.Recorder

	// Err, when set, is returned from Move after the request is recorded.
	Err error

	mu    sync.Mutex
	moves []MoveRecord
}

// NewMover creates a Mover double recording into rec.
func NewMover(rec *recorder.Recorder) *Mover {
	return &Mover{rec: rec}
}

// Move records the request and returns the canned error, if any.
func (m *Mover) Move(_ context.Context, src, dst string) error {
	m.rec.Record(CapabilityMover, "Move", src, dst)

	m.mu.Lock()
	m.moves = append(m.moves, MoveRecord{Source: src, Destination: dst})
	m.mu.Unlock()

	return m.Err
}

// Moves returns a copy of the ordered move list.
func (m *Mover) Moves() []MoveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MoveRecord, len(m.moves))
	copy(out, m.moves)
	return out
}

var _ ports.FileMover = (*Mover)(nil)
