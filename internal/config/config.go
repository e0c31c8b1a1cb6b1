// Package config loads and validates the archiver configuration.
//
// Configuration comes from a YAML file; a small set of environment
// variables override file values (explicit file value < environment).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrInvalidConfig is returned when configuration validation fails
	ErrInvalidConfig = errors.New("invalid config")
)

const (
	defaultWorkers = 4
	defaultTimeout = 30 * time.Second
)

// Config holds configuration for an archive run.
type Config struct {
	Feeds       []string   `yaml:"feeds"`       // feed URLs to archive
	Destination string     `yaml:"destination"` // directory archived episodes land in
	Workers     int        `yaml:"workers"`     // concurrent episode downloads
	HTTP        HTTPConfig `yaml:"http"`
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"` // end-to-end request timeout
	BaseURL string        `yaml:"base_url"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Feeds) == 0 {
		return fmt.Errorf("%w: at least one feed is required", ErrInvalidConfig)
	}
	for i, feed := range c.Feeds {
		u, err := url.Parse(feed)
		if err != nil {
			return fmt.Errorf("%w: feeds[%d] %q: %v", ErrInvalidConfig, i, feed, err)
		}
		if !u.IsAbs() && c.HTTP.BaseURL == "" {
			return fmt.Errorf("%w: feeds[%d] %q must be an absolute URL unless http base_url is set", ErrInvalidConfig, i, feed)
		}
	}
	if strings.TrimSpace(c.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", ErrInvalidConfig)
	}
	if c.HTTP.BaseURL != "" {
		u, err := url.Parse(c.HTTP.BaseURL)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("%w: http base_url %q must be an absolute URL", ErrInvalidConfig, c.HTTP.BaseURL)
		}
	}
	return nil
}

// ResolveFeed resolves a feed URL against the configured base URL, if
// any. Relative feed entries only make sense with a base URL; absolute
// entries pass through unchanged. This is what lets a test composition
// point the whole archiver at a local server without touching the feed
// list.
func (c *Config) ResolveFeed(feed string) (string, error) {
	if c.HTTP.BaseURL == "" {
		return feed, nil
	}
	base, err := url.Parse(c.HTTP.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	ref, err := url.Parse(feed)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
