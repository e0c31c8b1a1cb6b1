// Package archiver contains the archiving flow itself: fetch a feed,
// then download, move, and stamp every episode.
//
// The archiver depends only on the four capability ports. It holds exactly
// one instance of each, fixed at construction: production adapters by
// default, anything else by option. There is no "am I under test" branch
// anywhere; a test simply hands in the recording doubles.
package archiver

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/podkeep/podkeep/internal/adapters/outbound/fileops"
	"github.com/podkeep/podkeep/internal/adapters/outbound/httpclient"
	"github.com/podkeep/podkeep/internal/domain"
	"github.com/podkeep/podkeep/internal/ports"
)

const defaultWorkers = 4

// Archiver archives podcast feeds through its four capabilities.
type Archiver struct {
	fetcher    ports.DataFetcher
	downloader ports.Downloader
	mover      ports.FileMover
	attributes ports.FileAttributes
	log        *zap.Logger
	workers    int
}

// Option configures an Archiver.
type Option func(*Archiver)

// WithFetcher replaces the production DataFetcher.
func WithFetcher(f ports.DataFetcher) Option {
	return func(a *Archiver) { a.fetcher = f }
}

// WithDownloader replaces the production Downloader.
func WithDownloader(d ports.Downloader) Option {
	return func(a *Archiver) { a.downloader = d }
}

// WithMover replaces the production FileMover.
func WithMover(m ports.FileMover) Option {
	return func(a *Archiver) { a.mover = m }
}

// WithAttributes replaces the production FileAttributes.
func WithAttributes(fa ports.FileAttributes) Option {
	return func(a *Archiver) { a.attributes = fa }
}

// WithAdapters wires all four capabilities from one factory.
func WithAdapters(f ports.AdapterFactory) Option {
	return func(a *Archiver) {
		a.fetcher = f.CreateFetcher()
		a.downloader = f.CreateDownloader()
		a.mover = f.CreateMover()
		a.attributes = f.CreateAttributes()
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Archiver) { a.log = log }
}

// WithWorkers bounds the number of episodes archived concurrently.
func WithWorkers(n int) Option {
	return func(a *Archiver) { a.workers = n }
}

// New creates an Archiver. Capabilities not overridden by options default
// to the production adapters; the default fetcher and downloader share one
// HTTP client.
func New(opts ...Option) *Archiver {
	a := &Archiver{
		log:     zap.NewNop(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.fetcher == nil || a.downloader == nil {
		client := httpclient.NewClient()
		if a.fetcher == nil {
			a.fetcher = client
		}
		if a.downloader == nil {
			a.downloader = client
		}
	}
	if a.mover == nil {
		a.mover = fileops.NewMover()
	}
	if a.attributes == nil {
		a.attributes = fileops.NewAttributes()
	}
	if a.workers < 1 {
		a.workers = 1
	}
	return a
}

// Archive fetches the feed at feedURL and archives every episode under
// destDir: download, move to "<destDir>/<title><ext>", stamp the creation
// date from the published time.
//
// A feed-level failure (transport, HTTP error status, unparseable
// document) fails the whole run. Per-episode failures do not: each lands
// in its EpisodeResult and the remaining episodes are still archived.
// Episodes are processed by a bounded worker group; cancelling ctx stops
// new work and propagates into in-flight capability calls.
func (a *Archiver) Archive(ctx context.Context, feedURL, destDir string) (*Result, error) {
	body, meta, err := a.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	if meta.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch feed %s: unexpected status %d", feedURL, meta.StatusCode)
	}

	feed, err := domain.ParseFeed(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	a.log.Info("feed fetched",
		zap.String("url", feedURL),
		zap.String("title", feed.Title),
		zap.Int("episodes", len(feed.Episodes)),
	)

	result := &Result{
		Feed:     feed,
		Episodes: make([]EpisodeResult, len(feed.Episodes)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, episode := range feed.Episodes {
		i, episode := i, episode
		g.Go(func() error {
			dst, err := a.archiveEpisode(gctx, episode, destDir)
			result.Episodes[i] = EpisodeResult{
				Episode:     episode,
				Destination: dst,
				Err:         err,
			}
			if err != nil {
				a.log.Warn("episode failed",
					zap.String("title", episode.Title),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return result, nil
}

// archiveEpisode runs the per-episode sequence: download, move, stamp.
func (a *Archiver) archiveEpisode(ctx context.Context, episode domain.Episode, destDir string) (string, error) {
	local, meta, err := a.downloader.Download(ctx, episode.MediaURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", episode.MediaURL, err)
	}
	if meta.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("download %s: unexpected status %d", episode.MediaURL, meta.StatusCode)
	}

	dst := filepath.Join(destDir, episode.Filename())
	if err := a.mover.Move(ctx, local, dst); err != nil {
		return "", fmt.Errorf("archive %q: %w", episode.Title, err)
	}

	attrs := map[string]any{
		domain.AttrCreationDate: episode.Published.Unix(),
	}
	if err := a.attributes.SetAttributes(ctx, attrs, dst); err != nil {
		return dst, fmt.Errorf("stamp %q: %w", episode.Title, err)
	}

	a.log.Info("episode archived",
		zap.String("title", episode.Title),
		zap.String("destination", dst),
	)
	return dst, nil
}
