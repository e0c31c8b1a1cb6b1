package inmemory

import (
	"context"
	"net/http"

	"github.com/podkeep/podkeep/internal/ports"
	"github.com/podkeep/podkeep/internal/recorder"
)

// Downloader is the Downloader double. It records every invocation into
// the shared recorder and returns its canned local path; no file is ever
// written.
//
// Canned behavior for Download, in precedence order: DownloadFunc if set,
// otherwise Err if set, otherwise Path/Meta. DownloadRequest has no
// implicit canned behavior: unless RequestFunc is set it fails with
// *ports.UnimplementedError, never a silent zero value.
type Downloader struct {
	rec *recorder.Recorder

	// Path and Meta are the fixed canned result of Download.
	Path string
	Meta ports.ResponseMeta

	// Err, when set, is returned instead of the fixed result.
	Err error

	// DownloadFunc, when set, supplies the result as a pure function of
	// the requested URL.
	DownloadFunc func(url string) (string, ports.ResponseMeta, error)

	// RequestFunc, when set, supplies the result of DownloadRequest.
	RequestFunc func(req *http.Request) (string, ports.ResponseMeta, error)
}

// NewDownloader creates a Downloader double recording into rec.
func NewDownloader(rec *recorder.Recorder) *Downloader {
	return &Downloader{rec: rec}
}

// Download records the invocation, then returns the canned result.
func (d *Downloader) Download(_ context.Context, url string) (string, ports.ResponseMeta, error) {
	d.rec.Record(CapabilityDownloader, "Download", url)

	if d.DownloadFunc != nil {
		return d.DownloadFunc(url)
	}
	if d.Err != nil {
		return "", ports.ResponseMeta{}, d.Err
	}
	return d.Path, d.Meta, nil
}

// DownloadRequest records the invocation, then either delegates to
// RequestFunc or fails loudly as an unexercised variant.
func (d *Downloader) DownloadRequest(_ context.Context, req *http.Request) (string, ports.ResponseMeta, error) {
	d.rec.Record(CapabilityDownloader, "DownloadRequest", req.Method, req.URL.String())

	if d.RequestFunc != nil {
		return d.RequestFunc(req)
	}
	return "", ports.ResponseMeta{}, &ports.UnimplementedError{
		Capability: CapabilityDownloader,
		Method:     "DownloadRequest",
	}
}

var _ ports.Downloader = (*Downloader)(nil)
