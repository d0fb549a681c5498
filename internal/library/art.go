package library

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DefaultArtName = "default-album.png"
	defaultArtSize = 300
)

// charcoal #36454F
var defaultArtColor = color.RGBA{R: 0x36, G: 0x45, B: 0x4F, A: 0xFF}

// DefaultArtPNG renders the placeholder album image.
func DefaultArtPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, defaultArtSize, defaultArtSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: defaultArtColor}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode default art: %w", err)
	}
	return buf.Bytes(), nil
}

// EnsureDefaultArt writes the placeholder image into dir unless it already exists, and returns its path.
func EnsureDefaultArt(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create images directory: %w", err)
	}

	path := filepath.Join(dir, DefaultArtName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat default art: %w", err)
	}

	data, err := DefaultArtPNG()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write default art: %w", err)
	}
	return path, nil
}
