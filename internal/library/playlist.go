package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/desertthunder/musicplayer/internal/shared"
)

var ErrInvalidPlaylist = fmt.Errorf("%w: playlist must be valid JSON", shared.ErrInvalidInput)

// PlaylistStore persists the playlist document to a single JSON file.
type PlaylistStore struct {
	path string
}

// NewPlaylistStore creates a store backed by the file at path. The file is created on first save.
func NewPlaylistStore(path string) *PlaylistStore {
	return &PlaylistStore{path: path}
}

// Path returns the backing file path.
func (p *PlaylistStore) Path() string {
	return p.path
}

// Load returns the saved document, or an empty JSON array when nothing has been saved yet.
func (p *PlaylistStore) Load() (json.RawMessage, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return json.RawMessage("[]"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read playlist: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is corrupt", ErrInvalidPlaylist, p.path)
	}
	return json.RawMessage(data), nil
}

// Save replaces the saved document with data.
func (p *PlaylistStore) Save(data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidPlaylist
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create playlist directory: %w", err)
		}
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	return nil
}
