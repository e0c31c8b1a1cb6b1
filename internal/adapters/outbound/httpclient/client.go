package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/podkeep/podkeep/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Client is the production DataFetcher and Downloader.
type Client struct {
	httpClient  *http.Client
	downloadDir string
	log         *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the end-to-end request timeout on the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithDownloadDir overrides the directory downloads are written to.
func WithDownloadDir(dir string) Option {
	return func(c *Client) { c.downloadDir = dir }
}

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Client. Downloads land in a uuid-suffixed directory
// under the system temp dir unless WithDownloadDir overrides it.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		downloadDir: filepath.Join(os.TempDir(), "podkeep-"+uuid.NewString()),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves url and returns the fully read body plus response
// metadata.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, ports.ResponseMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}

	c.log.Debug("fetched",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)
	return body, responseMeta(resp), nil
}

// Download retrieves url into a file under the client's download directory
// and returns the local path plus response metadata.
func (c *Client) Download(ctx context.Context, rawURL string) (string, ports.ResponseMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}
	return c.DownloadRequest(ctx, req)
}

// DownloadRequest is the full-request variant of Download.
func (c *Client) DownloadRequest(ctx context.Context, req *http.Request) (string, ports.ResponseMeta, error) {
	rawURL := req.URL.String()
	req = req.WithContext(ctx)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(c.downloadDir, 0o755); err != nil {
		return "", ports.ResponseMeta{}, fmt.Errorf("create download dir: %w", err)
	}

	f, err := os.CreateTemp(c.downloadDir, "download-*"+urlExt(req.URL))
	if err != nil {
		return "", ports.ResponseMeta{}, fmt.Errorf("create download file: %w", err)
	}

	written, err := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if err != nil {
		os.Remove(f.Name())
		return "", ports.ResponseMeta{}, &ports.TransportError{URL: rawURL, Err: err}
	}
	if closeErr != nil {
		os.Remove(f.Name())
		return "", ports.ResponseMeta{}, fmt.Errorf("close download file: %w", closeErr)
	}

	c.log.Debug("downloaded",
		zap.String("url", rawURL),
		zap.String("path", f.Name()),
		zap.Int64("bytes", written),
	)
	return f.Name(), responseMeta(resp), nil
}

// Close releases idle connections and removes the download directory,
// including any downloads that were never moved out of it.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	if err := os.RemoveAll(c.downloadDir); err != nil {
		return fmt.Errorf("remove download dir: %w", err)
	}
	return nil
}

func responseMeta(resp *http.Response) ports.ResponseMeta {
	return ports.ResponseMeta{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
	}
}

func urlExt(u *url.URL) string {
	return path.Ext(u.Path)
}

var (
	_ ports.DataFetcher = (*Client)(nil)
	_ ports.Downloader  = (*Client)(nil)
)
