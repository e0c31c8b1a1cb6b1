// Package podkeep archives podcast feeds into a local directory.
//
// This package wraps the lower-level internal packages (feed parsing,
// HTTP adapters, the archiver engine) behind a config-file-driven API
// that requires minimal code.
//
// Quick Start:
//
//	results, err := podkeep.Archive(context.Background(), "podkeep.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("%s: %d archived, %d failed\n", r.Feed.Title, r.Archived(), len(r.Failed()))
//	}
//
// Configuration:
//
//	feeds:
//	  - https://some.podcast/feed.json
//	destination: /Users/gui/Podcasts
//	workers: 4
//	http:
//	  timeout: 30s
//
// Tests swap the network and filesystem out with WithAdapters, pointing
// the whole run at in-memory doubles without touching any other code.
package podkeep

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/podkeep/podkeep/internal/adapters/outbound/compose"
	"github.com/podkeep/podkeep/internal/adapters/outbound/httpclient"
	"github.com/podkeep/podkeep/internal/archiver"
	"github.com/podkeep/podkeep/internal/config"
	"github.com/podkeep/podkeep/internal/ports"
)

// EnvConfig names the environment variable holding the config file path
// used by the Env variants.
const EnvConfig = "PODKEEP_CONFIG"

// Option customizes a facade-level archive run.
type Option func(*options)

type options struct {
	factory ports.AdapterFactory
	log     *zap.Logger
}

// WithAdapters supplies the capability adapters for the run. The
// default is the production factory (real HTTP and filesystem).
func WithAdapters(f ports.AdapterFactory) Option {
	return func(o *options) { o.factory = f }
}

// WithLogger supplies the structured logger for the run.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// resolveConfigPath returns the config file path from the PODKEEP_CONFIG
// environment variable. It returns an error rather than assuming a
// default location.
func resolveConfigPath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	return "", fmt.Errorf("%s environment variable not set; either set %s or call Archive with an explicit config path", EnvConfig, EnvConfig)
}

// Archive loads the configuration at configPath and archives every
// configured feed into the configured destination, one result per feed
// in configuration order.
//
// Feed-level failures (unreachable feed, error status, malformed feed)
// abort the run and return the results gathered so far alongside the
// error. Episode-level failures are reported inside each Result and do
// not abort anything.
func Archive(ctx context.Context, configPath string, opts ...Option) ([]*archiver.Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	factory := o.factory
	if factory == nil {
		pf := compose.NewProductionAdapterFactoryWithLogger(o.log, httpclient.WithTimeout(cfg.HTTP.Timeout))
		defer func() {
			if cerr := pf.Close(); cerr != nil {
				o.log.Warn("closing http client", zap.Error(cerr))
			}
		}()
		factory = pf
	}

	a := archiver.New(
		archiver.WithAdapters(factory),
		archiver.WithWorkers(cfg.Workers),
		archiver.WithLogger(o.log),
	)

	var results []*archiver.Result
	for _, feed := range cfg.Feeds {
		target, err := cfg.ResolveFeed(feed)
		if err != nil {
			return results, err
		}
		result, err := a.Archive(ctx, target, cfg.Destination)
		if err != nil {
			return results, fmt.Errorf("archive %s: %w", target, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// ArchiveEnv is Archive with the config path taken from PODKEEP_CONFIG.
func ArchiveEnv(ctx context.Context, opts ...Option) ([]*archiver.Result, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return Archive(ctx, path, opts...)
}

// Run archives every configured feed and blocks until done or
// interrupted (SIGINT/SIGTERM). It logs a per-feed summary and returns
// the first feed-level error, if any.
func Run(configPath string, opts ...Option) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
		opts = append(opts, WithLogger(log))
	}

	results, err := Archive(ctx, configPath, opts...)
	for _, r := range results {
		log.Info("feed archived",
			zap.String("feed", r.Feed.Title),
			zap.Int("archived", r.Archived()),
			zap.Int("failed", len(r.Failed())),
		)
		for _, ep := range r.Failed() {
			log.Warn("episode failed",
				zap.String("episode", ep.Episode.Title),
				zap.Error(ep.Err),
			)
		}
	}
	return err
}
