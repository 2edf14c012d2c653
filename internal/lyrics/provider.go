package lyrics

import (
	"context"
	"errors"
)

// ErrNoMatch is returned by a provider when the service answered normally
// but has no lyrics for the requested track.
var ErrNoMatch = errors.New("lyrics: no match for track")

// Provider defines the interface for fetching lyrics from external services
type Provider interface {
	// SearchLyrics looks up lyric text by track and artist name. It returns
	// ErrNoMatch when the provider has no entry for the track; any other
	// error is a lookup fault.
	SearchLyrics(ctx context.Context, trackName, artistName string) (string, error)

	// Name returns the provider name
	Name() string
}
