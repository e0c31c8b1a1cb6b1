package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Feed is a parsed podcast feed: a title plus its episodes in document
// order.
type Feed struct {
	Title    string
	Episodes []Episode
}

// feedDocument is the wire shape of a feed. Published times use the
// RFC 1123 rendering feeds in the wild carry ("Mon, 10 Jan 2025 13:00:00 GMT").
type feedDocument struct {
	Title    string `json:"title"`
	Episodes []struct {
		Title     string `json:"title"`
		URL       string `json:"url"`
		Published string `json:"published"`
	} `json:"episodes"`
}

// ParseFeed decodes and validates a JSON feed document.
//
// Returns ErrFeedInvalid (wrapped) for malformed JSON or unparseable dates,
// and ErrEpisodeInvalid (wrapped) when an entry fails episode validation.
// A feed with zero episodes is valid.
func ParseFeed(data []byte) (*Feed, error) {
	var doc feedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedInvalid, err)
	}

	feed := &Feed{Title: doc.Title}
	for i, entry := range doc.Episodes {
		published, err := time.Parse(time.RFC1123, entry.Published)
		if err != nil {
			return nil, fmt.Errorf("%w: episode %d: published %q: %v", ErrFeedInvalid, i, entry.Published, err)
		}
		episode, err := NewEpisode(entry.Title, entry.URL, published)
		if err != nil {
			return nil, fmt.Errorf("episode %d: %w", i, err)
		}
		feed.Episodes = append(feed.Episodes, episode)
	}
	return feed, nil
}
