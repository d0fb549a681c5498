package library

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/models"
	"github.com/desertthunder/musicplayer/internal/shared"
	"go.senan.xyz/taglib"
)

var (
	ErrUnsupportedFile = fmt.Errorf("%w: only .mp3 and .wav files are supported", shared.ErrInvalidInput)
	ErrInvalidFilename = fmt.Errorf("%w: invalid file name", shared.ErrInvalidInput)
	ErrSongNotFound    = errors.New("song not found")
)

// TagReader reads the tag map of an audio file, keyed by upper-case property names (see [taglib.Title]).
type TagReader func(path string) (map[string][]string, error)

// Store is the local music directory.
type Store struct {
	dir      string
	readTags TagReader
	logger   *log.Logger
}

// NewStore opens the music directory at dir, creating it if it does not exist.
func NewStore(dir string, logger *log.Logger) (*Store, error) {
	return newStore(dir, taglib.ReadTags, logger)
}

func newStore(dir string, readTags TagReader, logger *log.Logger) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: music directory", shared.ErrMissingArgument)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create music directory: %w", err)
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{dir: dir, readTags: readTags, logger: shared.WithLogger(logger, "component", "library")}, nil
}

// Dir returns the music directory.
func (s *Store) Dir() string {
	return s.dir
}

// IsAudioFile reports whether name has a supported audio extension.
func IsAudioFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3", ".wav":
		return true
	default:
		return false
	}
}

// Songs lists the audio files in the music directory sorted by file name.
//
// Tag read failures are logged and the song is still listed with its file name as title.
func (s *Store) Songs() ([]models.Song, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read music directory: %w", err)
	}

	songs := []models.Song{}
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}

		song := models.Song{
			Filename: entry.Name(),
			Title:    strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
		}
		if info, err := entry.Info(); err == nil {
			song.Size = info.Size()
		}

		s.applyTags(&song)
		songs = append(songs, song)
	}

	sort.Slice(songs, func(i, j int) bool { return songs[i].Filename < songs[j].Filename })
	return songs, nil
}

func (s *Store) applyTags(song *models.Song) {
	if s.readTags == nil {
		return
	}

	tags, err := s.readTags(filepath.Join(s.dir, song.Filename))
	if err != nil {
		s.logger.Debug("failed to read tags", "file", song.Filename, "error", err)
		return
	}

	if v := firstTag(tags, taglib.Title); v != "" {
		song.Title = v
	}
	song.Artist = firstTag(tags, taglib.Artist)
	song.Album = firstTag(tags, taglib.Album)
}

func firstTag(tags map[string][]string, key string) string {
	for _, v := range tags[key] {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// cleanName reduces name to a plain file name inside the music directory.
func cleanName(name string) (string, error) {
	base := filepath.Base(filepath.Clean("/" + strings.ReplaceAll(name, "\\", "/")))
	if base == "/" || base == "." || base == ".." || base == "" {
		return "", ErrInvalidFilename
	}
	return base, nil
}

// Save writes the contents of r to the music directory under the base name of filename.
//
// An existing file with the same name is replaced.
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}
	if !IsAudioFile(name) {
		return "", ErrUnsupportedFile
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.Info("stored upload", "file", name)
	return name, nil
}

// Path returns the absolute path of a stored song, or [ErrSongNotFound].
func (s *Store) Path(filename string) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrSongNotFound, name)
	}
	return path, nil
}
