package podkeep_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podkeep/podkeep"
	"github.com/podkeep/podkeep/internal/adapters/outbound/compose"
	"github.com/podkeep/podkeep/internal/adapters/outbound/inmemory"
	"github.com/podkeep/podkeep/internal/ports"
)

const feedJSON = `{
	"title": "Some Podcast",
	"episodes": [
		{
			"title": "The very first episode ever!",
			"url": "https://some.podcast/some/episode.mp3",
			"published": "Mon, 10 Jan 2025 13:00:00 GMT"
		}
	]
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "podkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newDoubles() *compose.InMemoryAdapterFactory {
	f := compose.NewInMemoryAdapterFactory()
	f.Fetcher().Body = []byte(feedJSON)
	f.Fetcher().Meta = ports.ResponseMeta{StatusCode: http.StatusOK}
	f.Downloader().Path = "/tmp/some/download.mp3"
	f.Downloader().Meta = ports.ResponseMeta{StatusCode: http.StatusOK}
	return f
}

func TestArchive_WithDoubles(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - https://some.podcast/feed.json
destination: /Users/gui/Podcasts
`)

	f := newDoubles()
	results, err := podkeep.Archive(context.Background(), path, podkeep.WithAdapters(f))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Some Podcast", results[0].Feed.Title)
	assert.Equal(t, 1, results[0].Archived())

	moves := f.Mover().Moves()
	require.Len(t, moves, 1)
	assert.Equal(t, "/Users/gui/Podcasts/The very first episode ever!.mp3", moves[0].Destination)
}

func TestArchive_OneResultPerFeedInOrder(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - https://some.podcast/feed.json
  - https://other.podcast/feed.json
destination: /Users/gui/Podcasts
`)

	f := newDoubles()
	results, err := podkeep.Archive(context.Background(), path, podkeep.WithAdapters(f))
	require.NoError(t, err)
	require.Len(t, results, 2)

	fetches := f.Recorder().ByCapability(inmemory.CapabilityFetcher)
	require.Len(t, fetches, 2)
	assert.Equal(t, []any{"https://some.podcast/feed.json"}, fetches[0].Args)
	assert.Equal(t, []any{"https://other.podcast/feed.json"}, fetches[1].Args)
}

func TestArchive_FeedFailureReturnsPartialResults(t *testing.T) {
	path := writeConfig(t, `
feeds:
  - https://some.podcast/feed.json
  - https://broken.podcast/feed.json
destination: /Users/gui/Podcasts
`)

	f := newDoubles()
	f.Fetcher().FetchFunc = func(url string) ([]byte, ports.ResponseMeta, error) {
		if url == "https://broken.podcast/feed.json" {
			return nil, ports.ResponseMeta{}, &ports.TransportError{URL: url, Err: fmt.Errorf("connection refused")}
		}
		return []byte(feedJSON), ports.ResponseMeta{StatusCode: http.StatusOK}, nil
	}

	results, err := podkeep.Archive(context.Background(), path, podkeep.WithAdapters(f))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "https://broken.podcast/feed.json")
	require.Len(t, results, 1, "first feed still archived")
	assert.Equal(t, 1, results[0].Archived())
}

func TestArchive_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
feeds: []
destination: /Users/gui/Podcasts
`)

	_, err := podkeep.Archive(context.Background(), path, podkeep.WithAdapters(newDoubles()))
	require.Error(t, err)
}

func TestArchiveEnv(t *testing.T) {
	t.Setenv(podkeep.EnvConfig, "")
	_, err := podkeep.ArchiveEnv(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), podkeep.EnvConfig)

	path := writeConfig(t, `
feeds:
  - https://some.podcast/feed.json
destination: /Users/gui/Podcasts
`)
	t.Setenv(podkeep.EnvConfig, path)

	results, err := podkeep.ArchiveEnv(context.Background(), podkeep.WithAdapters(newDoubles()))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

// TestArchive_EndToEnd runs the production adapters against a local
// podcast server and checks the archived file on disk.
func TestArchive_EndToEnd(t *testing.T) {
	var baseURL string

	r := chi.NewRouter()
	r.Get("/feed.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"title": "Some Podcast",
			"episodes": [
				{
					"title": "The very first episode ever!",
					"url": "%s/some/episode.mp3",
					"published": "Mon, 10 Jan 2025 13:00:00 GMT"
				}
			]
		}`, baseURL)
	})
	r.Get("/some/episode.mp3", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3 fake mp3 payload"))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()
	baseURL = srv.URL

	destDir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf(`
feeds:
  - /feed.json
destination: %s
http:
  base_url: %s
`, destDir, srv.URL))

	results, err := podkeep.Archive(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].Archived())

	archived := filepath.Join(destDir, "The very first episode ever!.mp3")
	data, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Equal(t, "ID3 fake mp3 payload", string(data))

	info, err := os.Stat(archived)
	require.NoError(t, err)
	assert.Equal(t, int64(1736514000), info.ModTime().Unix())
}
