package ui

// Package ui builds the single-window widget: album art box, recently played
// track list, lyrics panel, and the refresh/login controls. All state here is
// owned by the event thread; background results arrive via fyne.Do.
