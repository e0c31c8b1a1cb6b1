package compose

import (
	"go.uber.org/zap"

	"github.com/podkeep/podkeep/internal/adapters/outbound/fileops"
	"github.com/podkeep/podkeep/internal/adapters/outbound/httpclient"
	"github.com/podkeep/podkeep/internal/ports"
)

// ProductionAdapterFactory wires the adapters backed by real OS/network
// primitives. The fetcher and downloader share one HTTP client; Close
// releases it together with its download directory.
type ProductionAdapterFactory struct {
	client *httpclient.Client
}

// NewProductionAdapterFactory creates the factory for production adapters.
func NewProductionAdapterFactory(opts ...httpclient.Option) *ProductionAdapterFactory {
	return &ProductionAdapterFactory{client: httpclient.NewClient(opts...)}
}

// NewProductionAdapterFactoryWithLogger is a convenience constructor that
// threads one structured logger into the HTTP adapters.
func NewProductionAdapterFactoryWithLogger(log *zap.Logger, opts ...httpclient.Option) *ProductionAdapterFactory {
	opts = append([]httpclient.Option{httpclient.WithLogger(log)}, opts...)
	return NewProductionAdapterFactory(opts...)
}

func (f *ProductionAdapterFactory) CreateFetcher() ports.DataFetcher {
	return f.client
}

func (f *ProductionAdapterFactory) CreateDownloader() ports.Downloader {
	return f.client
}

func (f *ProductionAdapterFactory) CreateMover() ports.FileMover {
	return fileops.NewMover()
}

func (f *ProductionAdapterFactory) CreateAttributes() ports.FileAttributes {
	return fileops.NewAttributes()
}

// Close releases the shared HTTP client and its download directory.
func (f *ProductionAdapterFactory) Close() error {
	return f.client.Close()
}

var _ ports.AdapterFactory = (*ProductionAdapterFactory)(nil)
