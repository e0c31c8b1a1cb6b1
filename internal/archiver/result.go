package archiver

import "github.com/podkeep/podkeep/internal/domain"

// EpisodeResult is the outcome of archiving one episode.
type EpisodeResult struct {
	Episode     domain.Episode
	Destination string
	Err         error
}

// Result is the outcome of one archive run.
type Result struct {
	Feed     *domain.Feed
	Episodes []EpisodeResult
}

// Archived returns how many episodes were archived successfully.
func (r *Result) Archived() int {
	n := 0
	for _, e := range r.Episodes {
		if e.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the results of episodes that failed.
func (r *Result) Failed() []EpisodeResult {
	var out []EpisodeResult
	for _, e := range r.Episodes {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}
