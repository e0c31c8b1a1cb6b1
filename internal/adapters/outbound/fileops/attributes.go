package fileops

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/podkeep/podkeep/internal/domain"
	"github.com/podkeep/podkeep/internal/ports"
)

// Attributes is the production FileAttributes, backed by file times.
type Attributes struct{}

// NewAttributes creates an Attributes adapter.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// SetAttributes applies the supported attribute keys to the file at path.
// The creation-date attribute accepts an int64 Unix timestamp or a
// time.Time. Unsupported keys fail rather than silently dropping data.
func (a *Attributes) SetAttributes(_ context.Context, attrs map[string]any, path string) error {
	for key, value := range attrs {
		switch key {
		case domain.AttrCreationDate:
			ts, err := asTime(value)
			if err != nil {
				return fmt.Errorf("attribute %q: %w", key, err)
			}
			if err := os.Chtimes(path, ts, ts); err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("%w: %s", ports.ErrAttributesNotFound, path)
				}
				return fmt.Errorf("set %q on %s: %w", key, path, err)
			}
		default:
			return fmt.Errorf("unsupported attribute %q", key)
		}
	}
	return nil
}

// GetAttributes reads the supported attributes of the file at path.
func (a *Attributes) GetAttributes(_ context.Context, path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ports.ErrAttributesNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return map[string]any{
		domain.AttrCreationDate: info.ModTime().Unix(),
	}, nil
}

func asTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case int64:
		return time.Unix(v, 0), nil
	case int:
		return time.Unix(int64(v), 0), nil
	default:
		return time.Time{}, fmt.Errorf("want int64 unix seconds or time.Time, got %T", value)
	}
}

var _ ports.FileAttributes = (*Attributes)(nil)
