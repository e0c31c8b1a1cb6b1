package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/podkeep/podkeep/internal/ports"
	"github.com/podkeep/podkeep/internal/recorder"
)

// Attributes is the FileAttributes double: a path → attribute-map table
// held in memory.
//
// The table is strict by default: reading a path that was never written
// fails with ports.ErrAttributesNotFound, not an empty mapping. Tests that
// want pre-populated state seed it explicitly with Seed before the
// scenario starts.
//
// Writes merge per key (last-write-wins); concurrent partial writes to
// different keys of the same path lose nothing because every merge runs
// under the table mutex.
type Attributes struct {
	rec *recorder.Recorder

	// SetErr and GetErr, when set, are returned from the corresponding
	// method after the invocation is recorded. The table is not touched.
	SetErr error
	GetErr error

	mu    sync.Mutex
	table map[string]map[string]any
}

// NewAttributes creates an Attributes double recording into rec.
func NewAttributes(rec *recorder.Recorder) *Attributes {
	return &Attributes{rec: rec, table: make(map[string]map[string]any)}
}

// Seed pre-populates the table for a path without recording an
// invocation. Seeding is configuration, not scenario behavior; call it
// only during test setup.
func (a *Attributes) Seed(path string, attrs map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.merge(path, attrs)
}

// SetAttributes records the invocation, then merges attrs into the
// table entry for path.
func (a *Attributes) SetAttributes(_ context.Context, attrs map[string]any, path string) error {
	a.rec.Record(CapabilityAttributes, "SetAttributes", copyAttrs(attrs), path)

	if a.SetErr != nil {
		return a.SetErr
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.merge(path, attrs)
	return nil
}

// GetAttributes records the invocation, then returns a copy of the table
// entry for path, or ports.ErrAttributesNotFound if the path was never
// written.
func (a *Attributes) GetAttributes(_ context.Context, path string) (map[string]any, error) {
	a.rec.Record(CapabilityAttributes, "GetAttributes", path)

	if a.GetErr != nil {
		return nil, a.GetErr
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	entry, ok := a.table[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrAttributesNotFound, path)
	}
	return copyAttrs(entry), nil
}

// merge applies attrs to the table entry for path, key by key.
// Callers hold a.mu.
func (a *Attributes) merge(path string, attrs map[string]any) {
	entry, ok := a.table[path]
	if !ok {
		entry = make(map[string]any, len(attrs))
		a.table[path] = entry
	}
	for k, v := range attrs {
		entry[k] = v
	}
}

func copyAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}

var _ ports.FileAttributes = (*Attributes)(nil)
