package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const songPage = `<html><body>
<div data-lyrics-container="true">First line<br/>Second line &amp; more</div>
<div data-lyrics-container="true">Chorus line</div>
</body></html>`

func newGeniusTestServer(t *testing.T, hits int, pageStatus int) (*Genius, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected bearer token header, got '%s'", got)
		}
		if r.URL.Query().Get("q") == "" {
			t.Error("Expected a search query")
		}

		w.Header().Set("Content-Type", "application/json")
		body := `{"response":{"hits":[`
		for i := 0; i < hits; i++ {
			if i > 0 {
				body += ","
			}
			body += fmt.Sprintf(`{"result":{"id":%d,"title":"Song %d","artist_names":"Artist","url":"%s/songs/%d"}}`, i+1, i+1, server.URL, i+1)
		}
		body += `]}}`
		fmt.Fprint(w, body)
	})

	mux.HandleFunc("/songs/", func(w http.ResponseWriter, r *http.Request) {
		if pageStatus != http.StatusOK {
			w.WriteHeader(pageStatus)
			return
		}
		fmt.Fprint(w, songPage)
	})

	provider := NewGenius("test-token")
	provider.apiURL = server.URL
	return provider, server
}

func TestGeniusSearchLyrics(t *testing.T) {
	provider, _ := newGeniusTestServer(t, 2, http.StatusOK)

	got, err := provider.SearchLyrics(context.Background(), "Karma Police", "Radiohead")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "First line\nSecond line & more\nChorus line"
	if got != want {
		t.Errorf("Expected lyrics %q, got %q", want, got)
	}
}

func TestGeniusSearchLyricsNoMatch(t *testing.T) {
	provider, _ := newGeniusTestServer(t, 0, http.StatusOK)

	_, err := provider.SearchLyrics(context.Background(), "Nothing", "Nobody")
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Expected ErrNoMatch, got %v", err)
	}
}

func TestGeniusSearchLyricsPageError(t *testing.T) {
	provider, _ := newGeniusTestServer(t, 1, http.StatusInternalServerError)

	_, err := provider.SearchLyrics(context.Background(), "T", "A")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if errors.Is(err, ErrNoMatch) {
		t.Error("Expected a fault, not ErrNoMatch")
	}
}

func TestGeniusSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	provider := NewGenius("bad-token")
	provider.apiURL = server.URL

	_, err := provider.SearchLyrics(context.Background(), "T", "A")
	if err == nil {
		t.Fatal("Expected an error for 401 response")
	}
}

func TestGeniusEmptyQuery(t *testing.T) {
	provider := NewGenius("token")

	_, err := provider.SearchLyrics(context.Background(), "", "")
	if err == nil {
		t.Fatal("Expected an error for empty query")
	}
}

func TestExtractLyrics(t *testing.T) {
	got, err := extractLyrics(songPage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := "First line\nSecond line & more\nChorus line"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestExtractLyricsMissingContainer(t *testing.T) {
	_, err := extractLyrics("<html><body>nothing here</body></html>")
	if err == nil {
		t.Fatal("Expected an error when no lyrics container is present")
	}
}

func TestExtractLyricsStripsMarkup(t *testing.T) {
	page := `<div data-lyrics-container="true"><a href="/x"><span>Linked</span></a> text<br>next</div>`
	got, err := extractLyrics(page)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != "Linked text\nnext" {
		t.Errorf("Expected markup to be stripped, got %q", got)
	}
}
