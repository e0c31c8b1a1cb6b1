package ports

import (
	"context"
	"net/http"
)

// DataFetcher retrieves raw bytes from a URL.
//
// Error Contract:
// - Fetch returns *TransportError on network/transport failure
// - Context cancellation and deadline are reachable through errors.Is on
//   the returned error
type DataFetcher interface {
	// Fetch retrieves the resource at url and returns its body plus
	// response metadata. The body is fully read before returning.
	Fetch(ctx context.Context, url string) ([]byte, ResponseMeta, error)
}

// Downloader retrieves a remote resource and materializes it as a local file.
//
// Error Contract:
// - Download returns *TransportError on network/transport failure
// - DownloadRequest returns *UnimplementedError from doubles that have no
//   canned behavior for the full-request variant; it must never silently
//   return a zero value, since that would hide an untested code path
type Downloader interface {
	// Download retrieves the resource at url into a local file and returns
	// the local path plus response metadata.
	Download(ctx context.Context, url string) (string, ResponseMeta, error)

	// DownloadRequest is the full-request variant of Download for callers
	// that need custom headers or methods.
	DownloadRequest(ctx context.Context, req *http.Request) (string, ResponseMeta, error)
}

// FileMover relocates a local file.
//
// Error Contract:
// - Move returns *MoveError when the move fails (destination exists,
//   permission denied)
type FileMover interface {
	// Move relocates src to dst. Implementations do not overwrite an
	// existing destination.
	Move(ctx context.Context, src, dst string) error
}

// FileAttributes reads and writes metadata attributes of a local file.
//
// Error Contract:
// - GetAttributes returns an error matching ErrAttributesNotFound if no
//   attributes were ever set for the path
// - SetAttributes with a subset of keys only overwrites those keys;
//   previously set keys on the same path are untouched (last-write-wins
//   per key)
type FileAttributes interface {
	// SetAttributes applies attrs to the file at path, merging with any
	// attributes already set.
	SetAttributes(ctx context.Context, attrs map[string]any, path string) error

	// GetAttributes returns the attributes currently set for path.
	GetAttributes(ctx context.Context, path string) (map[string]any, error)
}
