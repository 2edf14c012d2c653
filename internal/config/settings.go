package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyRecentLimit  = "recent_track_limit"
	KeyArtworkSize  = "artwork_box_size"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultRecentLimit  = 10
	DefaultArtworkSize  = 200
	DefaultWindowWidth  = 320
	DefaultWindowHeight = 560

	maxRecentLimit = 50
	minArtworkSize = 100
	maxArtworkSize = 400
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRecentLimit returns how many recently played tracks to request
func (s *Settings) GetRecentLimit() int {
	value := s.app.Preferences().Int(KeyRecentLimit)
	if value <= 0 {
		s.SetRecentLimit(DefaultRecentLimit)
		return DefaultRecentLimit
	}
	return value
}

// SetRecentLimit sets the recently played page size, clamped to 1..50
// (the Spotify endpoint rejects larger pages)
func (s *Settings) SetRecentLimit(limit int) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	s.app.Preferences().SetInt(KeyRecentLimit, limit)
}

// GetArtworkSize returns the side length of the square album art box
func (s *Settings) GetArtworkSize() int {
	value := s.app.Preferences().Int(KeyArtworkSize)
	if value <= 0 {
		s.SetArtworkSize(DefaultArtworkSize)
		return DefaultArtworkSize
	}
	return value
}

// SetArtworkSize sets the album art box size, clamped to a sane range
func (s *Settings) SetArtworkSize(size int) {
	if size < minArtworkSize {
		size = minArtworkSize
	}
	if size > maxArtworkSize {
		size = maxArtworkSize
	}
	s.app.Preferences().SetInt(KeyArtworkSize, size)
}

// GetWindowSize returns the stored window dimensions
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return width, height
}

// SetWindowSize stores the window dimensions for the next launch
func (s *Settings) SetWindowSize(width, height int) {
	if width > 0 {
		s.app.Preferences().SetInt(KeyWindowWidth, width)
	}
	if height > 0 {
		s.app.Preferences().SetInt(KeyWindowHeight, height)
	}
}
