package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/models"
)

type stubResolver struct {
	mu       sync.Mutex
	calls    []models.LyricsRequest
	failures map[string]error
	block    chan struct{}
}

func (s *stubResolver) ResolveLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsInfo, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()

	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err, ok := s.failures[req.TrackName]; ok {
		return nil, err
	}
	return &models.LyricsInfo{
		Title:     req.TrackName,
		Artist:    req.ArtistName,
		LyricsURL: "https://genius.com/" + req.TrackName,
		Album:     "Unknown Album",
	}, nil
}

func (s *stubResolver) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func librarySongs() []models.Song {
	return []models.Song{
		{Filename: "a.mp3", Title: "Bohemian Rhapsody", Artist: "Queen"},
		{Filename: "b.mp3", Title: "untagged"},
		{Filename: "c.wav", Title: "Hey Jude", Artist: "The Beatles"},
		{Filename: "d.mp3", Title: "Imagine", Artist: "John Lennon"},
	}
}

func TestBatchLyrics(t *testing.T) {
	t.Run("resolves tagged songs in input order", func(t *testing.T) {
		resolver := &stubResolver{}
		engine := NewLyricsEngine(resolver, quietLogger())

		result, err := engine.BatchLyrics(context.Background(), librarySongs(), BatchLyricsOpts{NumWorkers: 2}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Total != 4 || result.Resolved != 3 || result.Skipped != 1 || result.Failed != 0 {
			t.Errorf("unexpected counts: %+v", result)
		}
		if resolver.callCount() != 3 {
			t.Errorf("expected 3 lookups, got %d", resolver.callCount())
		}

		for i, song := range librarySongs() {
			if result.Results[i].Song.Filename != song.Filename {
				t.Errorf("result %d: expected %s, got %s", i, song.Filename, result.Results[i].Song.Filename)
			}
		}
		if !result.Results[1].Skipped {
			t.Error("untagged song should be skipped")
		}
		if got := result.Results[2].Lyrics; got == nil || got.Title != "Hey Jude" {
			t.Errorf("expected Hey Jude lyrics, got %+v", got)
		}
		if result.ManifestPath != "" {
			t.Errorf("no manifest expected, got %s", result.ManifestPath)
		}
	})

	t.Run("records per-song failures without stopping", func(t *testing.T) {
		resolver := &stubResolver{failures: map[string]error{"Imagine": errors.New("No lyrics found")}}
		engine := NewLyricsEngine(resolver, quietLogger())

		result, err := engine.BatchLyrics(context.Background(), librarySongs(), BatchLyricsOpts{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Resolved != 2 || result.Failed != 1 {
			t.Errorf("expected 2 resolved and 1 failed, got %+v", result)
		}

		failed := result.Results[3]
		if failed.Error == nil || failed.ErrorMessage != "No lyrics found" {
			t.Errorf("unexpected failure entry: %+v", failed)
		}
		if failed.Lyrics != nil {
			t.Error("failed entry should not carry lyrics")
		}
	})

	t.Run("writes manifest", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		engine := NewLyricsEngine(&stubResolver{}, quietLogger())

		result, err := engine.BatchLyrics(context.Background(), librarySongs(), BatchLyricsOpts{OutputDir: dir}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := filepath.Join(dir, ManifestFilename)
		if result.ManifestPath != want {
			t.Errorf("expected manifest at %s, got %s", want, result.ManifestPath)
		}

		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("failed to read manifest: %v", err)
		}

		var manifest struct {
			Total    int `json:"total"`
			Resolved int `json:"resolved"`
			Results  []struct {
				Song    models.Song        `json:"song"`
				Lyrics  *models.LyricsInfo `json:"lyrics"`
				Skipped bool               `json:"skipped"`
			} `json:"results"`
		}
		if err := json.Unmarshal(data, &manifest); err != nil {
			t.Fatalf("manifest is not valid JSON: %v", err)
		}
		if manifest.Total != 4 || manifest.Resolved != 3 || len(manifest.Results) != 4 {
			t.Errorf("unexpected manifest: %+v", manifest)
		}
		if manifest.Results[0].Lyrics == nil || manifest.Results[0].Lyrics.LyricsURL == "" {
			t.Error("manifest should include resolved lyrics")
		}
	})

	t.Run("empty library", func(t *testing.T) {
		engine := NewLyricsEngine(&stubResolver{}, quietLogger())

		result, err := engine.BatchLyrics(context.Background(), nil, BatchLyricsOpts{}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 0 || len(result.Results) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("sends progress updates", func(t *testing.T) {
		engine := NewLyricsEngine(&stubResolver{}, quietLogger())
		prog := make(chan ProgressUpdate, 16)

		_, err := engine.BatchLyrics(context.Background(), librarySongs(), BatchLyricsOpts{OutputDir: t.TempDir()}, prog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		close(prog)

		phases := map[Phase]int{}
		for update := range prog {
			phases[update.Phase]++
		}
		if phases[ScanLibrary] != 1 {
			t.Errorf("expected 1 scan update, got %d", phases[ScanLibrary])
		}
		if phases[ResolveLyrics] != 3 {
			t.Errorf("expected 3 resolve updates, got %d", phases[ResolveLyrics])
		}
		if phases[WriteManifest] != 1 {
			t.Errorf("expected 1 manifest update, got %d", phases[WriteManifest])
		}
	})

	t.Run("full progress channel does not block", func(t *testing.T) {
		engine := NewLyricsEngine(&stubResolver{}, quietLogger())
		prog := make(chan ProgressUpdate)

		if _, err := engine.BatchLyrics(context.Background(), librarySongs(), BatchLyricsOpts{}, prog); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancellation returns partial result", func(t *testing.T) {
		resolver := &stubResolver{block: make(chan struct{})}
		engine := NewLyricsEngine(resolver, quietLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := engine.BatchLyrics(ctx, librarySongs(), BatchLyricsOpts{OutputDir: t.TempDir()}, nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if result == nil || result.Resolved != 0 {
			t.Errorf("expected no resolved songs, got %+v", result)
		}
		if result.ManifestPath != "" {
			t.Error("manifest should not be written after cancellation")
		}
	})
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{ScanLibrary, "scan_library"},
		{ResolveLyrics, "resolve_lyrics"},
		{WriteManifest, "write_manifest"},
		{Phase(99), ""},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
