package lyrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rofarinango/minilyrics/internal/model"
)

// Service runs lyrics lookups on a background goroutine, one at a time.
// Starting a new fetch supersedes the previous one: its context is canceled
// and whatever its lookup eventually returns is discarded before it can
// reach the update callback. The callback itself may fire from the worker
// goroutine; UI code must marshal back to the event thread.
type Service struct {
	provider Provider
	onUpdate func(*model.LyricsRequest) // callback for UI updates

	mu      sync.Mutex
	current *model.LyricsRequest
	cancel  context.CancelFunc
}

// NewService creates a new lyrics fetch service
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// SetUpdateCallback sets the callback function for request updates
func (s *Service) SetUpdateCallback(callback func(*model.LyricsRequest)) {
	s.onUpdate = callback
}

// Fetch starts a lookup for the given track, superseding any request still
// in flight. The returned request is already Running and will receive
// exactly one terminal update unless it is superseded in turn.
func (s *Service) Fetch(trackName, artistName string) *model.LyricsRequest {
	req := &model.LyricsRequest{
		ID:         "lyrics-" + uuid.NewString(),
		TrackName:  trackName,
		ArtistName: artistName,
		Status:     model.StatusRunning,
		StartedAt:  time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.current = req
	s.cancel = cancel
	s.mu.Unlock()

	s.notifyUpdate(req)

	go s.run(ctx, cancel, req)
	return req
}

// Cancel stops the in-flight lookup, if any. Used on shutdown.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Current returns the most recently started request
func (s *Service) Current() *model.LyricsRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// run performs the blocking provider call and publishes the outcome.
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, req *model.LyricsRequest) {
	defer cancel()

	text, err := s.provider.SearchLyrics(ctx, req.TrackName, req.ArtistName)

	s.mu.Lock()
	if s.current != req {
		// Superseded while the lookup was in flight. The result is stale and
		// must never be presented.
		req.Status = model.StatusCanceled
		req.FinishedAt = time.Now()
		s.mu.Unlock()
		return
	}
	s.cancel = nil

	switch {
	case err == nil && text != "":
		req.Status = model.StatusFound
		req.Lyrics = text
	case err == nil || errors.Is(err, ErrNoMatch):
		req.Status = model.StatusNotFound
	case ctx.Err() != nil:
		req.Status = model.StatusCanceled
	default:
		req.Status = model.StatusError
		req.LastError = err.Error()
	}
	req.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(req)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(req *model.LyricsRequest) {
	if s.onUpdate != nil {
		s.onUpdate(req)
	}
}
