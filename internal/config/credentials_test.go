package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvSpotifyClientID, EnvSpotifyClientSecret, EnvSpotifyRedirectURI,
		EnvSpotifyAccessToken, EnvSpotifyRefreshToken, EnvGeniusAccessToken,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvSpotifyClientID, "env-id")
	t.Setenv(EnvSpotifyClientSecret, "env-secret")
	t.Setenv(EnvGeniusAccessToken, "env-genius")

	creds, err := LoadCredentials("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if creds.Spotify.ClientID != "env-id" {
		t.Errorf("Expected client id 'env-id', got '%s'", creds.Spotify.ClientID)
	}
	if creds.Genius.AccessToken != "env-genius" {
		t.Errorf("Expected genius token 'env-genius', got '%s'", creds.Genius.AccessToken)
	}
	if creds.Spotify.RedirectURI != DefaultRedirectURI {
		t.Errorf("Expected default redirect URI, got '%s'", creds.Spotify.RedirectURI)
	}
}

func TestLoadCredentialsFromFile(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "credentials.toml")
	content := `[spotify]
client_id = "file-id"
client_secret = "file-secret"
refresh_token = "file-refresh"

[genius]
access_token = "file-genius"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if creds.Spotify.ClientID != "file-id" {
		t.Errorf("Expected client id 'file-id', got '%s'", creds.Spotify.ClientID)
	}
	if creds.Spotify.RefreshToken != "file-refresh" {
		t.Errorf("Expected refresh token 'file-refresh', got '%s'", creds.Spotify.RefreshToken)
	}
	if creds.Genius.AccessToken != "file-genius" {
		t.Errorf("Expected genius token 'file-genius', got '%s'", creds.Genius.AccessToken)
	}
}

func TestLoadCredentialsEnvOverridesFile(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvSpotifyClientID, "env-id")

	path := filepath.Join(t.TempDir(), "credentials.toml")
	content := `[spotify]
client_id = "file-id"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if creds.Spotify.ClientID != "env-id" {
		t.Errorf("Expected env to override file, got '%s'", creds.Spotify.ClientID)
	}
}

func TestLoadCredentialsMissingFileIsFine(t *testing.T) {
	clearCredentialEnv(t)

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if creds.Spotify.ClientID != "" {
		t.Errorf("Expected empty credentials, got '%s'", creds.Spotify.ClientID)
	}
}

func TestLoadCredentialsBadFile(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("Expected an error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	creds := &Credentials{}
	err := creds.Validate()
	if err == nil {
		t.Fatal("Expected an error for empty credentials")
	}
	for _, want := range []string{EnvSpotifyClientID, EnvSpotifyClientSecret, EnvGeniusAccessToken} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to name %s, got: %v", want, err)
		}
	}

	creds.Spotify.ClientID = "id"
	creds.Spotify.ClientSecret = "secret"
	creds.Genius.AccessToken = "token"
	if err := creds.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
