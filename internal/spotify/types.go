package spotify

// Response types based on
// https://developer.spotify.com/documentation/web-api/reference/

import "github.com/rofarinango/minilyrics/internal/model"

// recentlyPlayedResponse is the payload of /me/player/recently-played.
type recentlyPlayedResponse struct {
	Items []playHistoryItem `json:"items"`
	Limit int               `json:"limit"`
	Next  string            `json:"next"`
}

// playHistoryItem is one play event in the user's history.
type playHistoryItem struct {
	PlayedAt string      `json:"played_at"`
	Track    trackObject `json:"track"`
}

// trackObject is the subset of the Spotify track object the widget uses.
type trackObject struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Artists []artistObject `json:"artists"`
	Album   albumObject    `json:"album"`
}

// artistObject represents a Spotify artist.
type artistObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// albumObject represents a Spotify album with its cover images.
type albumObject struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Images []imageObject `json:"images"`
}

// imageObject represents an image resource.
type imageObject struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// toTrack maps a play event to the domain track. The first (largest) album
// image is taken as the primary art; missing artists or images degrade to
// empty fields rather than failing the whole page.
func (i playHistoryItem) toTrack() model.Track {
	track := model.Track{Name: i.Track.Name}
	if len(i.Track.Artists) > 0 {
		track.Artist = i.Track.Artists[0].Name
	}
	if len(i.Track.Album.Images) > 0 {
		track.ImageURL = i.Track.Album.Images[0].URL
	}
	return track
}
