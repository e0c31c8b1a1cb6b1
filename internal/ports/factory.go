package ports

// AdapterFactory creates one implementation of each capability interface.
// The composition root (internal/adapters/outbound/compose) provides a
// production factory backed by real OS/network primitives and an in-memory
// factory whose adapters record into a shared interaction recorder.
//
// The archiver receives the four capabilities at construction and never
// substitutes them afterwards.
type AdapterFactory interface {
	CreateFetcher() DataFetcher
	CreateDownloader() Downloader
	CreateMover() FileMover
	CreateAttributes() FileAttributes
}
