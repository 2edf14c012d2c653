package library

import "github.com/rofarinango/minilyrics/internal/model"

// Store is the in-memory track collection backing the list widget.
// It is rebuilt wholesale on every refresh and only ever touched from the
// UI event thread, so it carries no locking.
type Store struct {
	tracks map[string]model.Track
	keys   []string
}

// NewStore creates an empty track store
func NewStore() *Store {
	return &Store{
		tracks: make(map[string]model.Track),
	}
}

// Replace rebuilds the store from the given tracks, discarding all previous
// entries. Key order follows input order; when two tracks collide on the
// same "name - artist" key the later entry wins and keeps the earlier
// position (the list stays free of duplicates).
func (s *Store) Replace(tracks []model.Track) {
	s.tracks = make(map[string]model.Track, len(tracks))
	s.keys = s.keys[:0]
	for _, track := range tracks {
		key := track.Key()
		if _, seen := s.tracks[key]; !seen {
			s.keys = append(s.keys, key)
		}
		s.tracks[key] = track
	}
}

// Clear removes all entries
func (s *Store) Clear() {
	s.tracks = make(map[string]model.Track)
	s.keys = nil
}

// Get returns the track stored under key
func (s *Store) Get(key string) (model.Track, bool) {
	track, ok := s.tracks[key]
	return track, ok
}

// Keys returns the display keys in insertion order. The slice is a copy;
// callers may hold on to it across a later Replace.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of stored tracks
func (s *Store) Len() int {
	return len(s.tracks)
}
