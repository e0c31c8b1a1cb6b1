package recorder

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestTranscript_Golden locks the transcript rendering against a golden
// file, since assertion helpers and humans both read it.
//
// To regenerate golden files, run:
//
//	go test ./internal/recorder -update
func TestTranscript_Golden(t *testing.T) {
	r := New()
	r.Record("fetcher", "Fetch", "https://some.podcast/feed.json")
	r.Record("downloader", "Download", "https://some.podcast/some/episode.mp3")
	r.Record("mover", "Move", "/tmp/some/download.mp3", "/Users/gui/Podcasts/The very first episode ever!.mp3")
	r.Record("attributes", "SetAttributes", map[string]any{"creationDate": int64(1736514000)}, "/Users/gui/Podcasts/The very first episode ever!.mp3")

	transcript := strings.Join(r.Transcript(), "\n") + "\n"

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "archive_scenario", []byte(transcript))
}
