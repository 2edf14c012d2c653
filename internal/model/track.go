package model

import "strings"

// KeySeparator joins track name and artist into a display key
const KeySeparator = " - "

// Track represents a single recently played track
type Track struct {
	Name     string
	Artist   string
	ImageURL string // primary album image, empty if the album has no art
}

// Key returns the identity key used to address the track in the store
// and in the list widget, e.g. "Karma Police - Radiohead".
func (t Track) Key() string {
	return t.Name + KeySeparator + t.Artist
}

// ParseKey splits an identity key back into track name and artist.
// The split happens at the first separator, mirroring how keys are built;
// a key without a separator yields the whole string as the name.
func ParseKey(key string) (name, artist string) {
	name, artist, found := strings.Cut(key, KeySeparator)
	if !found {
		return key, ""
	}
	return name, artist
}
