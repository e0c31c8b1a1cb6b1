package compose

import (
	"github.com/podkeep/podkeep/internal/adapters/outbound/inmemory"
	"github.com/podkeep/podkeep/internal/ports"
	"github.com/podkeep/podkeep/internal/recorder"
)

// InMemoryAdapterFactory wires the recording doubles around a single
// shared interaction recorder. One factory owns one scenario's state:
// construct a fresh factory per test and discard it afterwards.
//
// The Create methods return memoized doubles, so a test can configure
// canned responses through the concrete accessors (Fetcher, Downloader,
// Mover, Attributes) and hand the same instances to the subject under
// test via the ports.AdapterFactory interface.
type InMemoryAdapterFactory struct {
	rec        *recorder.Recorder
	fetcher    *inmemory.Fetcher
	downloader *inmemory.Downloader
	mover      *inmemory.Mover
	attributes *inmemory.Attributes
}

// NewInMemoryAdapterFactory creates the factory and its shared recorder.
func NewInMemoryAdapterFactory() *InMemoryAdapterFactory {
	rec := recorder.New()
	return &InMemoryAdapterFactory{
		rec:        rec,
		fetcher:    inmemory.NewFetcher(rec),
		downloader: inmemory.NewDownloader(rec),
		mover:      inmemory.NewMover(rec),
		attributes: inmemory.NewAttributes(rec),
	}
}

// Recorder returns the shared interaction recorder for assertions.
func (f *InMemoryAdapterFactory) Recorder() *recorder.Recorder { return f.rec }

// Fetcher returns the concrete fetcher double for canned-response setup.
func (f *InMemoryAdapterFactory) Fetcher() *inmemory.Fetcher { return f.fetcher }

// Downloader returns the concrete downloader double for canned-response setup.
func (f *InMemoryAdapterFactory) Downloader() *inmemory.Downloader { return f.downloader }

// Mover returns the concrete mover double for move-list assertions.
func (f *InMemoryAdapterFactory) Mover() *inmemory.Mover { return f.mover }

// Attributes returns the concrete attributes double for seeding and
// table assertions.
func (f *InMemoryAdapterFactory) Attributes() *inmemory.Attributes { return f.attributes }

func (f *InMemoryAdapterFactory) CreateFetcher() ports.DataFetcher       { return f.fetcher }
func (f *InMemoryAdapterFactory) CreateDownloader() ports.Downloader     { return f.downloader }
func (f *InMemoryAdapterFactory) CreateMover() ports.FileMover           { return f.mover }
func (f *InMemoryAdapterFactory) CreateAttributes() ports.FileAttributes { return f.attributes }

var _ ports.AdapterFactory = (*InMemoryAdapterFactory)(nil)
