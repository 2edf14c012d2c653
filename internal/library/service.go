package library

import (
	"context"
	"fmt"

	"github.com/rofarinango/minilyrics/internal/model"
)

// RecentSource is the slice of the streaming-service client the loader
// consumes.
type RecentSource interface {
	RecentlyPlayed(ctx context.Context, limit int) ([]model.Track, error)
}

// Service loads the recently played history into the track store.
type Service struct {
	source RecentSource
	store  *Store
}

// NewService creates a new library service
func NewService(source RecentSource, store *Store) *Service {
	return &Service{
		source: source,
		store:  store,
	}
}

// Store returns the track store owned by this service
func (s *Service) Store() *Store {
	return s.store
}

// LoadRecent fetches the most recent play events and rebuilds the store,
// returning the ordered display keys. An empty collaborator response clears
// the store; a collaborator failure leaves the store untouched and returns
// the error for the caller to log (the UI shows an empty list either way,
// never the raw error).
func (s *Service) LoadRecent(ctx context.Context, limit int) ([]string, error) {
	tracks, err := s.source.RecentlyPlayed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent tracks: %w", err)
	}

	s.store.Replace(tracks)
	return s.store.Keys(), nil
}
