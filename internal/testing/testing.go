// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/musicplayer/internal/models"
)

// StubCatalog is a test double for the catalog search client.
type StubCatalog struct {
	mu        sync.Mutex
	Tracks    []models.RawCatalogTrack
	Err       error
	Calls     int
	LastQuery string
	LastLimit int
}

func (s *StubCatalog) Search(ctx context.Context, query string, limit int) ([]models.RawCatalogTrack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	s.LastQuery = query
	s.LastLimit = limit
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]models.RawCatalogTrack, len(s.Tracks))
	copy(out, s.Tracks)
	return out, nil
}

func (s *StubCatalog) Name() string { return "stub-catalog" }

// StubLyrics is a test double for the two-step lyrics client.
type StubLyrics struct {
	mu           sync.Mutex
	Unconfigured bool
	Hits         []models.RawLyricsHit
	SearchErr    error
	Detail       *models.RawLyricsSongDetail
	DetailErr    error
	SearchCalls  int
	DetailCalls  int
	LastTerm     string
	LastSongID   int64
}

func (s *StubLyrics) Configured() bool { return !s.Unconfigured }

func (s *StubLyrics) SearchSong(ctx context.Context, trackName, artistName string) ([]models.RawLyricsHit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SearchCalls++
	s.LastTerm = trackName + " " + artistName
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.Hits, nil
}

func (s *StubLyrics) SongDetail(ctx context.Context, songID int64) (*models.RawLyricsSongDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DetailCalls++
	s.LastSongID = songID
	if s.DetailErr != nil {
		return nil, s.DetailErr
	}
	if s.Detail == nil {
		return &models.RawLyricsSongDetail{}, nil
	}
	return s.Detail, nil
}

func (s *StubLyrics) Name() string { return "stub-lyrics" }

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing and counts the requests it sees.
type MockRoundTripper struct {
	mu       sync.Mutex
	response *http.Response
	err      error
	requests int
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
	return m.response, m.err
}

// Requests returns how many requests went through the round tripper.
func (m *MockRoundTripper) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
