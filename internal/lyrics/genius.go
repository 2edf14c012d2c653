package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	geniusAPIURL    = "https://api.genius.com"
	geniusUserAgent = "minilyrics/1.0"

	// Song pages are HTML of a few hundred KB; cap reads well above that.
	maxPageBytes = 4 << 20
)

// Genius API response structures
type geniusSearchResponse struct {
	Response struct {
		Hits []geniusHit `json:"hits"`
	} `json:"response"`
}

type geniusHit struct {
	Result geniusSong `json:"result"`
}

type geniusSong struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ArtistNames string `json:"artist_names"`
	URL         string `json:"url"`
}

var (
	lyricsContainerRe = regexp.MustCompile(`(?s)<div[^>]*data-lyrics-container="true"[^>]*>(.*?)</div>`)
	lineBreakRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRe         = regexp.MustCompile(`<[^>]+>`)
)

// Genius implements Provider against the Genius search API. Genius has no
// lyrics endpoint, so the text is extracted from the song page the first
// search hit points at.
type Genius struct {
	accessToken string
	apiURL      string
	httpClient  *http.Client
}

// NewGenius creates a Genius provider authenticated by a static access token
func NewGenius(accessToken string) *Genius {
	return &Genius{
		accessToken: accessToken,
		apiURL:      geniusAPIURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Name returns the provider name
func (g *Genius) Name() string {
	return "genius"
}

// SearchLyrics searches Genius for the track and returns the lyric text of
// the first hit. Zero hits yield ErrNoMatch.
func (g *Genius) SearchLyrics(ctx context.Context, trackName, artistName string) (string, error) {
	song, err := g.searchSong(ctx, trackName, artistName)
	if err != nil {
		return "", err
	}

	lyricText, err := g.fetchLyrics(ctx, song.URL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch lyrics for %q: %w", song.Title, err)
	}
	return lyricText, nil
}

// searchSong queries the search API and returns the first hit.
func (g *Genius) searchSong(ctx context.Context, trackName, artistName string) (*geniusSong, error) {
	query := strings.TrimSpace(trackName + " " + artistName)
	if query == "" {
		return nil, fmt.Errorf("genius: empty search query")
	}

	searchURL := fmt.Sprintf("%s/search?q=%s", g.apiURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("genius: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("User-Agent", geniusUserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("genius: search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("genius: search failed with status %d", resp.StatusCode)
	}

	var searchResp geniusSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("genius: failed to decode search response: %w", err)
	}

	if len(searchResp.Response.Hits) == 0 {
		return nil, ErrNoMatch
	}
	return &searchResp.Response.Hits[0].Result, nil
}

// fetchLyrics downloads a song page and extracts the lyric text from its
// lyrics containers.
func (g *Genius) fetchLyrics(ctx context.Context, songURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, songURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", geniusUserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("song page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("song page request failed with status %d", resp.StatusCode)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read song page: %w", err)
	}

	return extractLyrics(string(page))
}

// extractLyrics pulls the text out of the data-lyrics-container blocks of a
// Genius song page. The markup inside the blocks is flattened: <br> becomes a
// newline, remaining tags are stripped, entities are unescaped.
func extractLyrics(page string) (string, error) {
	matches := lyricsContainerRe.FindAllStringSubmatch(page, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("no lyrics container in song page")
	}

	var parts []string
	for _, match := range matches {
		text := lineBreakRe.ReplaceAllString(match[1], "\n")
		text = htmlTagRe.ReplaceAllString(text, "")
		text = html.UnescapeString(text)
		text = strings.TrimSpace(text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("lyrics container was empty")
	}
	return strings.Join(parts, "\n"), nil
}
