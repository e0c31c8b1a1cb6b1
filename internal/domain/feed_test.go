package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeed_SingleEpisode(t *testing.T) {
	data := []byte(`{
		"title": "Some Podcast",
		"episodes": [
			{
				"title": "The very first episode ever!",
				"url": "https://some.podcast/some/episode.mp3",
				"published": "Mon, 10 Jan 2025 13:00:00 GMT"
			}
		]
	}`)

	feed, err := ParseFeed(data)
	require.NoError(t, err)
	require.NotNil(t, feed)

	assert.Equal(t, "Some Podcast", feed.Title)
	require.Len(t, feed.Episodes, 1)

	ep := feed.Episodes[0]
	assert.Equal(t, "The very first episode ever!", ep.Title)
	assert.Equal(t, "https://some.podcast/some/episode.mp3", ep.MediaURL)
	assert.Equal(t, int64(1736514000), ep.Published.Unix())
}

func TestParseFeed_EmptyFeedIsValid(t *testing.T) {
	feed, err := ParseFeed([]byte(`{"title": "Quiet Show"}`))
	require.NoError(t, err)
	assert.Equal(t, "Quiet Show", feed.Title)
	assert.Empty(t, feed.Episodes)
}

func TestParseFeed_MalformedJSON(t *testing.T) {
	_, err := ParseFeed([]byte(`{"title": `))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedInvalid)
}

func TestParseFeed_BadPublishedDate(t *testing.T) {
	data := []byte(`{
		"title": "Some Podcast",
		"episodes": [
			{"title": "Ep", "url": "https://some.podcast/ep.mp3", "published": "2025-01-10"}
		]
	}`)
	_, err := ParseFeed(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeedInvalid)
}

func TestParseFeed_InvalidEpisodePropagates(t *testing.T) {
	data := []byte(`{
		"title": "Some Podcast",
		"episodes": [
			{"title": "", "url": "https://some.podcast/ep.mp3", "published": "Mon, 10 Jan 2025 13:00:00 GMT"}
		]
	}`)
	_, err := ParseFeed(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEpisodeInvalid)
}

func TestParseFeed_PreservesDocumentOrder(t *testing.T) {
	data := []byte(`{
		"title": "Some Podcast",
		"episodes": [
			{"title": "One", "url": "https://some.podcast/1.mp3", "published": "Mon, 06 Jan 2025 09:00:00 GMT"},
			{"title": "Two", "url": "https://some.podcast/2.mp3", "published": "Tue, 07 Jan 2025 09:00:00 GMT"},
			{"title": "Three", "url": "https://some.podcast/3.mp3", "published": "Wed, 08 Jan 2025 09:00:00 GMT"}
		]
	}`)
	feed, err := ParseFeed(data)
	require.NoError(t, err)
	require.Len(t, feed.Episodes, 3)
	assert.Equal(t, "One", feed.Episodes[0].Title)
	assert.Equal(t, "Two", feed.Episodes[1].Title)
	assert.Equal(t, "Three", feed.Episodes[2].Title)
}

func TestParseFeed_PublishedIsUTC(t *testing.T) {
	data := []byte(`{
		"title": "Some Podcast",
		"episodes": [
			{"title": "Ep", "url": "https://some.podcast/ep.mp3", "published": "Mon, 10 Jan 2025 13:00:00 GMT"}
		]
	}`)
	feed, err := ParseFeed(data)
	require.NoError(t, err)
	want := time.Date(2025, time.January, 10, 13, 0, 0, 0, time.UTC)
	assert.True(t, feed.Episodes[0].Published.Equal(want))
}
