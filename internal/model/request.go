package model

import "time"

// LyricsRequest represents a single lyrics lookup for a selected track
type LyricsRequest struct {
	ID         string
	TrackName  string
	ArtistName string
	Status     FetchStatus
	Lyrics     string    // lyric text, set when Status is Found
	LastError  string    // last error message if any
	StartedAt  time.Time // when the lookup started
	FinishedAt time.Time // when the lookup finished
}

// Elapsed returns how long the request has been (or was) in flight
func (lr *LyricsRequest) Elapsed() time.Duration {
	if lr.StartedAt.IsZero() {
		return 0
	}
	if lr.FinishedAt.IsZero() {
		return time.Since(lr.StartedAt)
	}
	return lr.FinishedAt.Sub(lr.StartedAt)
}
