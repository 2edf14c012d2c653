// Package artwork fetches album art and scales it into the fixed display
// box. Fetching is synchronous: callers on the UI thread accept the latency
// because cover payloads are small.
package artwork

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

// Loader downloads and scales album images.
type Loader struct {
	httpClient *http.Client
	boxWidth   uint
	boxHeight  uint
}

// NewLoader creates a loader that scales images into a boxSize×boxSize
// bounding box.
func NewLoader(boxSize int) *Loader {
	if boxSize < 1 {
		boxSize = 1
	}
	return &Loader{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		boxWidth:   uint(boxSize),
		boxHeight:  uint(boxSize),
	}
}

// Fetch downloads the image at url, decodes it, and scales it to fit the
// bounding box preserving aspect ratio with Lanczos resampling.
func (l *Loader) Fetch(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("artwork: empty image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("artwork: failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("artwork: download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork: download failed with status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("artwork: failed to decode image: %w", err)
	}

	return resize.Thumbnail(l.boxWidth, l.boxHeight, img, resize.Lanczos3), nil
}
