package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/rofarinango/minilyrics/internal/config"
	"github.com/rofarinango/minilyrics/internal/model"
)

const (
	authURL  = "https://accounts.spotify.com/authorize"
	tokenURL = "https://accounts.spotify.com/api/token"
	baseURL  = "https://api.spotify.com/v1"

	// ScopeRecentlyPlayed is the only scope the widget needs
	ScopeRecentlyPlayed = "user-read-recently-played"

	// MaxRecentLimit is the largest page the endpoint accepts
	MaxRecentLimit = 50
)

// ErrNotAuthenticated is returned when a request is attempted before any
// token has been wired into the client.
var ErrNotAuthenticated = errors.New("spotify: not authenticated")

// Client talks to the Spotify Web API on behalf of one user.
type Client struct {
	config     *oauth2.Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Spotify client from the given credentials. The client
// starts unauthenticated; call Authenticate before issuing requests.
func NewClient(creds config.SpotifyCredentials) (*Client, error) {
	if creds.ClientID == "" {
		return nil, errors.New("spotify: missing client id")
	}
	if creds.ClientSecret == "" {
		return nil, errors.New("spotify: missing client secret")
	}

	redirectURI := creds.RedirectURI
	if redirectURI == "" {
		redirectURI = config.DefaultRedirectURI
	}

	cfg := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{ScopeRecentlyPlayed},
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
	}

	return &Client{
		config:  cfg,
		baseURL: baseURL,
	}, nil
}

// Authenticate wires a token into the client. A refresh token lets oauth2
// renew expired access tokens transparently; a bare access token works until
// it expires. At least one of the two must be present.
func (c *Client) Authenticate(ctx context.Context, creds config.SpotifyCredentials) error {
	if creds.AccessToken == "" && creds.RefreshToken == "" {
		return ErrNotAuthenticated
	}

	token := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
	}
	c.httpClient = c.config.Client(ctx, token)
	return nil
}

// AuthURL returns the OAuth2 authorization URL for user login.
func (c *Client) AuthURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// RecentlyPlayed fetches the user's most recent play events, newest first,
// mapped to domain tracks in the order the API returned them. Tracks whose
// album carries no images get an empty ImageURL.
func (c *Client) RecentlyPlayed(ctx context.Context, limit int) ([]model.Track, error) {
	if limit < 1 || limit > MaxRecentLimit {
		return nil, fmt.Errorf("spotify: limit must be 1..%d, got %d", MaxRecentLimit, limit)
	}

	var response recentlyPlayedResponse
	endpoint := fmt.Sprintf("/me/player/recently-played?limit=%d", limit)
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	tracks := make([]model.Track, 0, len(response.Items))
	for _, item := range response.Items {
		tracks = append(tracks, item.toTrack())
	}
	return tracks, nil
}

// get performs an authenticated GET against the API and decodes the body.
func (c *Client) get(ctx context.Context, endpoint string, result any) error {
	if c.httpClient == nil {
		return ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("spotify: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify: API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("spotify: failed to decode response: %w", err)
	}
	return nil
}
