package server

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/musicplayer/internal/library"
)

// DefaultArtRoute is where the placeholder album image is served.
const DefaultArtRoute = "/static/" + library.DefaultArtName

// ArtHandler serves the placeholder album image.
type ArtHandler struct {
	image   []byte
	modTime time.Time
}

// NewArtHandler serves the image at path, or a generated placeholder when path is empty or unreadable.
func NewArtHandler(path string) (*ArtHandler, error) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			modTime := time.Now()
			if info, err := os.Stat(path); err == nil {
				modTime = info.ModTime()
			}
			return &ArtHandler{image: data, modTime: modTime}, nil
		}
	}

	data, err := library.DefaultArtPNG()
	if err != nil {
		return nil, err
	}
	return &ArtHandler{image: data, modTime: time.Now()}, nil
}

func (h *ArtHandler) Routes() []string {
	return []string{DefaultArtRoute}
}

func (h *ArtHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeContent(w, r, library.DefaultArtName, h.modTime, bytes.NewReader(h.image))
}
