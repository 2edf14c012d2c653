package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/rofarinango/minilyrics/internal/artwork"
	"github.com/rofarinango/minilyrics/internal/config"
	"github.com/rofarinango/minilyrics/internal/library"
	"github.com/rofarinango/minilyrics/internal/lyrics"
	"github.com/rofarinango/minilyrics/internal/model"
)

// User-facing placeholder strings
const (
	TextLoadingLyrics = "Loading lyrics..."
	TextNoLyrics      = "No lyrics available for this track."
	TextLyricsError   = "Error fetching lyrics. Please try again later."
	TextNoImage       = "No image available"
	TextImageError    = "Error loading image"

	TextRefreshButton = "Refresh Tracks"
	TextLoginButton   = "Login with Spotify"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	librarySvc *library.Service
	lyricsSvc  *lyrics.Service
	artLoader  *artwork.Loader

	// keys mirrors the store's display keys for the list widget; only the
	// event thread reads or writes it
	keys []string

	artImage       *canvas.Image
	artPlaceholder *widget.Label
	trackList      *widget.List
	lyricsLabel    *widget.Label
	lyricsScroll   *container.Scroll
	refreshBtn     *widget.Button
	loginBtn       *widget.Button
}

// NewRootUI creates and initializes the main UI, then triggers the initial
// track load.
func NewRootUI(window fyne.Window, app fyne.App, librarySvc *library.Service, lyricsSvc *lyrics.Service, artLoader *artwork.Loader) *RootUI {
	ui := &RootUI{
		window:     window,
		settings:   config.NewSettings(app),
		librarySvc: librarySvc,
		lyricsSvc:  lyricsSvc,
		artLoader:  artLoader,
	}

	ui.lyricsSvc.SetUpdateCallback(ui.onLyricsUpdate)

	ui.setupUI()
	ui.RefreshTracks()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	artSize := float32(ui.settings.GetArtworkSize())

	ui.artImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.artImage.SetMinSize(fyne.NewSize(artSize, artSize))
	ui.artImage.Hide()

	ui.artPlaceholder = widget.NewLabel(TextNoImage)
	ui.artPlaceholder.Alignment = fyne.TextAlignCenter

	artBox := container.NewStack(container.NewCenter(ui.artPlaceholder), ui.artImage)

	ui.trackList = widget.NewList(
		func() int {
			return len(ui.keys)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Track name - Artist")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= 0 && id < len(ui.keys) {
				obj.(*widget.Label).SetText(ui.keys[id])
			}
		},
	)
	ui.trackList.OnSelected = ui.onTrackSelected
	ui.trackList.OnUnselected = func(widget.ListItemID) {
		ui.hideLyrics()
	}

	ui.lyricsLabel = widget.NewLabel("")
	ui.lyricsLabel.Wrapping = fyne.TextWrapWord
	ui.lyricsScroll = container.NewVScroll(ui.lyricsLabel)
	ui.lyricsScroll.Hide()

	ui.refreshBtn = widget.NewButton(TextRefreshButton, ui.RefreshTracks)
	ui.loginBtn = widget.NewButton(TextLoginButton, ui.onLoginClick)
	ui.loginBtn.Importance = widget.LowImportance
	buttons := container.NewVBox(ui.refreshBtn, ui.loginBtn)

	center := container.NewVSplit(ui.trackList, ui.lyricsScroll)
	content := container.NewBorder(artBox, buttons, nil, nil, center)
	ui.window.SetContent(content)
}

// RefreshTracks clears the list and the store and reloads the recently
// played history. A collaborator failure is logged and leaves an empty list;
// it never reaches the user as an error.
func (ui *RootUI) RefreshTracks() {
	ui.keys = nil
	ui.trackList.UnselectAll()
	ui.hideLyrics()

	keys, err := ui.librarySvc.LoadRecent(context.Background(), ui.settings.GetRecentLimit())
	if err != nil {
		log.Error("error loading recent tracks", "error", err)
		ui.trackList.Refresh()
		return
	}

	ui.keys = keys
	ui.trackList.Refresh()
	log.Info("recent tracks loaded", "count", len(keys))

	// Show art for the newest track right away, as a preview
	if len(keys) > 0 {
		if track, ok := ui.librarySvc.Store().Get(keys[0]); ok {
			ui.displayImage(track)
		}
	}
}

// onTrackSelected updates the art box synchronously and hands the lyrics
// lookup to the background service.
func (ui *RootUI) onTrackSelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.keys) {
		return
	}
	key := ui.keys[id]
	track, ok := ui.librarySvc.Store().Get(key)
	if !ok {
		log.Warn("selected key missing from store", "key", key)
		return
	}
	log.Debug("track selected", "key", key)

	ui.displayImage(track)

	ui.lyricsLabel.SetText(TextLoadingLyrics)
	ui.lyricsScroll.Show()
	ui.lyricsSvc.Fetch(track.Name, track.Artist)
}

// displayImage fetches and shows the track's album art. The fetch blocks the
// event thread; cover payloads are small enough that this is a latency
// nuisance, not a correctness problem.
func (ui *RootUI) displayImage(track model.Track) {
	if track.ImageURL == "" {
		ui.showArtPlaceholder(TextNoImage)
		return
	}

	img, err := ui.artLoader.Fetch(context.Background(), track.ImageURL)
	if err != nil {
		log.Warn("error loading album art", "key", track.Key(), "error", err)
		ui.showArtPlaceholder(TextImageError)
		return
	}

	ui.artPlaceholder.Hide()
	ui.artImage.Image = img
	ui.artImage.Show()
	ui.artImage.Refresh()
}

// showArtPlaceholder swaps the art box to the given placeholder text
func (ui *RootUI) showArtPlaceholder(text string) {
	ui.artImage.Hide()
	ui.artPlaceholder.SetText(text)
	ui.artPlaceholder.Show()
}

// onLyricsUpdate receives request updates from the lyrics service, possibly
// on the worker goroutine, and marshals presentation onto the event thread.
func (ui *RootUI) onLyricsUpdate(req *model.LyricsRequest) {
	if !req.Status.IsFinished() || req.Status == model.StatusCanceled {
		return
	}
	log.Debug("lyrics request finished", "track", req.TrackName, "status", req.Status, "elapsed", req.Elapsed())

	fyne.Do(func() {
		// The service already discards superseded results; this guards the
		// window between a terminal notify and a fresh Fetch on this thread.
		if current := ui.lyricsSvc.Current(); current != nil && current.ID != req.ID {
			return
		}

		switch req.Status {
		case model.StatusFound:
			ui.lyricsLabel.SetText(req.Lyrics)
		case model.StatusNotFound:
			ui.lyricsLabel.SetText(TextNoLyrics)
		case model.StatusError:
			log.Error("error fetching lyrics", "track", req.TrackName, "artist", req.ArtistName, "error", req.LastError)
			ui.lyricsLabel.SetText(TextLyricsError)
		}
		ui.lyricsScroll.ScrollToTop()
	})
}

// hideLyrics hides the lyrics region entirely
func (ui *RootUI) hideLyrics() {
	ui.lyricsLabel.SetText("")
	ui.lyricsScroll.Hide()
}

// onLoginClick is intentionally inert: the widget runs off pre-provisioned
// tokens and the interactive OAuth flow is not implemented.
func (ui *RootUI) onLoginClick() {
	log.Info("spotify login flow is not implemented; set SPOTIFY_ACCESS_TOKEN or SPOTIFY_REFRESH_TOKEN")
}
