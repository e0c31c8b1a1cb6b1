package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var somePublished = time.Date(2025, time.January, 10, 13, 0, 0, 0, time.UTC)

func TestNewEpisode_Valid(t *testing.T) {
	ep, err := NewEpisode("The very first episode ever!", "https://some.podcast/some/episode.mp3", somePublished)
	require.NoError(t, err)
	assert.Equal(t, "The very first episode ever!", ep.Title)
}

func TestNewEpisode_BlankTitle(t *testing.T) {
	_, err := NewEpisode("   ", "https://some.podcast/ep.mp3", somePublished)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEpisodeInvalid)
}

func TestNewEpisode_RelativeURL(t *testing.T) {
	_, err := NewEpisode("Ep", "/some/episode.mp3", somePublished)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEpisodeInvalid)
}

func TestFilename_UsesTitleAndMediaExtension(t *testing.T) {
	ep, err := NewEpisode("The very first episode ever!", "https://some.podcast/some/episode.mp3", somePublished)
	require.NoError(t, err)
	assert.Equal(t, "The very first episode ever!.mp3", ep.Filename())
}

func TestFilename_IgnoresQueryString(t *testing.T) {
	ep, err := NewEpisode("Ep", "https://some.podcast/audio/42.m4a?token=abc", somePublished)
	require.NoError(t, err)
	assert.Equal(t, "Ep.m4a", ep.Filename())
}

func TestFilename_ReplacesPathSeparators(t *testing.T) {
	ep, err := NewEpisode("AC/DC retrospective", "https://some.podcast/acdc.mp3", somePublished)
	require.NoError(t, err)
	assert.Equal(t, "AC-DC retrospective.mp3", ep.Filename())
}

func TestFilename_NoExtension(t *testing.T) {
	ep, err := NewEpisode("Ep", "https://some.podcast/stream", somePublished)
	require.NoError(t, err)
	assert.Equal(t, "Ep", ep.Filename())
}
