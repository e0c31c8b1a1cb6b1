package inmemory

import (
	"context"

	"github.com/podkeep/podkeep/internal/ports"
	"github.com/podkeep/podkeep/internal/recorder"
)

// Fetcher is the DataFetcher double. It records every Fetch into the
// shared recorder and returns its canned response.
//
// Canned behavior, in precedence order: FetchFunc if set, otherwise Err if
// set, otherwise Body/Meta.
type Fetcher struct {
	rec *recorder.Recorder

	// Body and Meta are the fixed canned response.
	Body []byte
	Meta ports.ResponseMeta

	// Err, when set, is returned instead of the fixed response.
	Err error

	// FetchFunc, when set, supplies the response as a pure function of the
	// requested URL.
	FetchFunc func(url string) ([]byte, ports.ResponseMeta, error)
}

// NewFetcher creates a Fetcher double recording into rec.
func NewFetcher(rec *recorder.Recorder) *Fetcher {
	return &Fetcher{rec: rec}
}

// Fetch records the invocation, then returns the canned response.
func (f *Fetcher) Fetch(_ context.Context, url string) ([]byte, ports.ResponseMeta, error) {
	f.rec.Record(CapabilityFetcher, "Fetch", url)

	if f.FetchFunc != nil {
		return f.FetchFunc(url)
	}
	if f.Err != nil {
		return nil, ports.ResponseMeta{}, f.Err
	}
	return f.Body, f.Meta, nil
}

var _ ports.DataFetcher = (*Fetcher)(nil)
