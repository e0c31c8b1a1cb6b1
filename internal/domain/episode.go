package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// Episode is one entry of a podcast feed: a media locator, a display
// title, and the publication time.
type Episode struct {
	Title     string
	MediaURL  string
	Published time.Time
}

// NewEpisode validates and constructs an Episode.
func NewEpisode(title, mediaURL string, published time.Time) (Episode, error) {
	e := Episode{Title: title, MediaURL: mediaURL, Published: published}
	if err := e.Validate(); err != nil {
		return Episode{}, err
	}
	return e, nil
}

// Validate checks the episode invariants: a non-blank title and a parseable
// absolute media URL.
func (e Episode) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrEpisodeInvalid)
	}
	u, err := url.Parse(e.MediaURL)
	if err != nil {
		return fmt.Errorf("%w: media url %q: %v", ErrEpisodeInvalid, e.MediaURL, err)
	}
	if !u.IsAbs() {
		return fmt.Errorf("%w: media url %q must be absolute", ErrEpisodeInvalid, e.MediaURL)
	}
	return nil
}

// Filename derives the local archive name for the episode: the title plus
// the extension of the media URL path. Path separators in the title are
// replaced so the name stays a single path element.
func (e Episode) Filename() string {
	title := strings.ReplaceAll(e.Title, "/", "-")
	return title + e.ext()
}

func (e Episode) ext() string {
	u, err := url.Parse(e.MediaURL)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}
