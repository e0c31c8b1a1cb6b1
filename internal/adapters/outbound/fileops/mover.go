package fileops

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/podkeep/podkeep/internal/ports"
)

// Mover is the production FileMover, backed by os.Rename.
type Mover struct{}

// NewMover creates a Mover.
func NewMover() *Mover {
	return &Mover{}
}

// Move renames src to dst, creating dst's parent directory if needed.
// An existing destination is a *ports.MoveError wrapping fs.ErrExist; it
// is never overwritten.
func (m *Mover) Move(_ context.Context, src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &ports.MoveError{Source: src, Destination: dst, Err: fs.ErrExist}
	} else if !os.IsNotExist(err) {
		return &ports.MoveError{Source: src, Destination: dst, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return &ports.MoveError{Source: src, Destination: dst, Err: fmt.Errorf("create parent: %w", err)}
	}

	if err := os.Rename(src, dst); err != nil {
		return &ports.MoveError{Source: src, Destination: dst, Err: err}
	}
	return nil
}

var _ ports.FileMover = (*Mover)(nil)
