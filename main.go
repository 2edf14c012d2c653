package main

import (
	"context"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/rofarinango/minilyrics/internal/artwork"
	"github.com/rofarinango/minilyrics/internal/config"
	"github.com/rofarinango/minilyrics/internal/library"
	"github.com/rofarinango/minilyrics/internal/lyrics"
	"github.com/rofarinango/minilyrics/internal/spotify"
	"github.com/rofarinango/minilyrics/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.rofarinango.minilyrics"
	AppName = "Lyrics Mini Player"

	CredentialsFileName = "credentials.toml"
)

func main() {
	log.Info("starting", "app", AppName, "version", version)

	creds, err := config.LoadCredentials(credentialsPath())
	if err != nil {
		log.Fatal("failed to load credentials", "error", err)
	}
	if err := creds.Validate(); err != nil {
		// The window still opens; collaborator calls will fail and be
		// logged, leaving an empty list and lyric placeholders.
		log.Warn("incomplete credentials", "error", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	width, height := settings.GetWindowSize()

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Initialize services
	spotifyClient, err := spotify.NewClient(creds.Spotify)
	if err != nil {
		log.Fatal("failed to create spotify client", "error", err)
	}
	if err := spotifyClient.Authenticate(context.Background(), creds.Spotify); err != nil {
		log.Warn("spotify client not authenticated", "error", err)
	}

	librarySvc := library.NewService(spotifyClient, library.NewStore())
	lyricsSvc := lyrics.NewService(lyrics.NewGenius(creds.Genius.AccessToken))
	artLoader := artwork.NewLoader(settings.GetArtworkSize())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, librarySvc, lyricsSvc, artLoader)

	// Show and run
	myWindow.ShowAndRun()

	lyricsSvc.Cancel()
}

// credentialsPath returns the optional TOML credentials file location under
// the user config dir; env vars override whatever it contains.
func credentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "minilyrics", CredentialsFileName)
}
