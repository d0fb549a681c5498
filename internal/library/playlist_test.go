package library

import (
	"errors"
	"path/filepath"
	"testing"

	tu "github.com/desertthunder/musicplayer/internal/testing"
)

func TestPlaylistStore(t *testing.T) {
	t.Run("Load without a saved playlist returns empty array", func(t *testing.T) {
		p := NewPlaylistStore(filepath.Join(t.TempDir(), "playlist.json"))
		data, err := p.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("expected [], got %s", data)
		}
	})

	t.Run("Save then Load returns the document verbatim", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "playlist.json")
		p := NewPlaylistStore(path)
		doc := `[{"name":"a.mp3","title":"A"}]`

		if err := p.Save([]byte(doc)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tu.AssertFileExists(t, path)

		data, err := p.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != doc {
			t.Errorf("expected %s, got %s", doc, data)
		}
	})

	t.Run("Save rejects invalid JSON", func(t *testing.T) {
		p := NewPlaylistStore(filepath.Join(t.TempDir(), "playlist.json"))
		if err := p.Save([]byte("{not json")); !errors.Is(err, ErrInvalidPlaylist) {
			t.Errorf("expected ErrInvalidPlaylist, got %v", err)
		}
	})

	t.Run("Load reports a corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "playlist.json")
		tu.MustWriteFile(t, path, []byte("garbage"))
		if _, err := NewPlaylistStore(path).Load(); !errors.Is(err, ErrInvalidPlaylist) {
			t.Errorf("expected ErrInvalidPlaylist, got %v", err)
		}
	})
}
