package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variable names for collaborator credentials
const (
	EnvSpotifyClientID     = "SPOTIFY_CLIENT_ID"
	EnvSpotifyClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvSpotifyRedirectURI  = "SPOTIFY_REDIRECT_URI"
	EnvSpotifyAccessToken  = "SPOTIFY_ACCESS_TOKEN"
	EnvSpotifyRefreshToken = "SPOTIFY_REFRESH_TOKEN"
	EnvGeniusAccessToken   = "GENIUS_ACCESS_TOKEN"
)

// DefaultRedirectURI is the fixed local redirect used for the Spotify OAuth app
const DefaultRedirectURI = "http://localhost:8888/callback"

// Credentials holds the secrets for both external collaborators.
// Values come from an optional TOML file overridden by the process
// environment; nothing is ever written back to disk.
type Credentials struct {
	Spotify SpotifyCredentials `toml:"spotify"`
	Genius  GeniusCredentials  `toml:"genius"`
}

// SpotifyCredentials contains Spotify API credentials.
type SpotifyCredentials struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// GeniusCredentials contains the Genius API static access token.
type GeniusCredentials struct {
	AccessToken string `toml:"access_token"`
}

// LoadCredentials builds Credentials from the optional TOML file at path
// (skipped when path is empty or the file does not exist), then applies
// environment variable overrides.
func LoadCredentials(path string) (*Credentials, error) {
	creds := &Credentials{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, creds); err != nil {
				return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
		}
	}

	applyEnv(&creds.Spotify.ClientID, EnvSpotifyClientID)
	applyEnv(&creds.Spotify.ClientSecret, EnvSpotifyClientSecret)
	applyEnv(&creds.Spotify.RedirectURI, EnvSpotifyRedirectURI)
	applyEnv(&creds.Spotify.AccessToken, EnvSpotifyAccessToken)
	applyEnv(&creds.Spotify.RefreshToken, EnvSpotifyRefreshToken)
	applyEnv(&creds.Genius.AccessToken, EnvGeniusAccessToken)

	if creds.Spotify.RedirectURI == "" {
		creds.Spotify.RedirectURI = DefaultRedirectURI
	}

	return creds, nil
}

// Validate returns an error naming every missing required credential.
// The redirect URI always has a default and token fields are optional
// (the app still starts, collaborator calls just fail and get logged).
func (c *Credentials) Validate() error {
	var missing []string
	if c.Spotify.ClientID == "" {
		missing = append(missing, EnvSpotifyClientID)
	}
	if c.Spotify.ClientSecret == "" {
		missing = append(missing, EnvSpotifyClientSecret)
	}
	if c.Genius.AccessToken == "" {
		missing = append(missing, EnvGeniusAccessToken)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

func applyEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}
