package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/formatter"
	"github.com/desertthunder/musicplayer/internal/models"
)

const (
	DefaultWorkers   = 4
	MaxWorkers       = 10
	ManifestFilename = "lyrics_manifest.json"
)

// LyricsResolver resolves lyrics metadata for one track.
//
// Implemented by the services aggregator.
type LyricsResolver interface {
	ResolveLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsInfo, error)
}

// BatchLyricsOpts configures [LyricsEngine.BatchLyrics].
type BatchLyricsOpts struct {
	NumWorkers int    // Clamped to [1, MaxWorkers]; zero means DefaultWorkers
	OutputDir  string // Manifest destination; empty skips the manifest
}

// SongLyricsResult is the outcome for a single library song.
type SongLyricsResult struct {
	Song         models.Song        `json:"song"`
	Lyrics       *models.LyricsInfo `json:"lyrics,omitempty"`
	Skipped      bool               `json:"skipped,omitempty"`
	ErrorMessage string             `json:"error,omitempty"`
	Error        error              `json:"-"`
}

// BatchLyricsResult aggregates a batch run.
type BatchLyricsResult struct {
	Total        int                `json:"total"`
	Resolved     int                `json:"resolved"`
	Failed       int                `json:"failed"`
	Skipped      int                `json:"skipped"`
	Results      []SongLyricsResult `json:"results"`
	ManifestPath string             `json:"-"`
}

type lyricsJob struct {
	index int
	song  models.Song
}

type lyricsJobResult struct {
	index  int
	lyrics *models.LyricsInfo
	err    error
}

// LyricsEngine runs lyrics lookups for many songs at once.
type LyricsEngine struct {
	resolver LyricsResolver
	logger   *log.Logger
}

// NewLyricsEngine creates a new [LyricsEngine].
func NewLyricsEngine(resolver LyricsResolver, logger *log.Logger) *LyricsEngine {
	return &LyricsEngine{resolver: resolver, logger: logger}
}

func (e *LyricsEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// BatchLyrics resolves lyrics for every song that has both a title and an artist.
//
// Per-song failures are recorded in the result and do not stop the batch.
// Cancelling ctx stops dispatching new lookups; the partial result is returned with ctx.Err().
func (e *LyricsEngine) BatchLyrics(ctx context.Context, songs []models.Song, opts BatchLyricsOpts, prog chan<- ProgressUpdate) (*BatchLyricsResult, error) {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers
	}
	numWorkers = min(numWorkers, MaxWorkers)

	result := &BatchLyricsResult{
		Total:   len(songs),
		Results: make([]SongLyricsResult, len(songs)),
	}

	var pending []lyricsJob
	for i, song := range songs {
		result.Results[i].Song = song
		if song.Title == "" || song.Artist == "" {
			result.Results[i].Skipped = true
			result.Skipped++
			continue
		}
		pending = append(pending, lyricsJob{index: i, song: song})
	}
	e.sendProgress(prog, scanLibraryUpdate(len(pending), len(songs)))

	jobs := make(chan lyricsJob, numWorkers)
	results := make(chan lyricsJobResult, numWorkers)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go e.lyricsWorker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for _, job := range pending {
			select {
			case <-ctx.Done():
				return
			case jobs <- job:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		entry := &result.Results[res.index]
		if res.err != nil {
			entry.Error = res.err
			entry.ErrorMessage = res.err.Error()
			result.Failed++
			e.logger.Warn("lyrics lookup failed", "song", entry.Song.Filename, "error", res.err)
			e.sendProgress(prog, lyricsFailedUpdate(completed, len(pending), entry.Song, res.err))
			continue
		}
		entry.Lyrics = res.lyrics
		result.Resolved++
		e.sendProgress(prog, lyricsResolvedUpdate(completed, len(pending), entry.Song, res.lyrics))
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if opts.OutputDir == "" {
		return result, nil
	}

	manifestPath := filepath.Join(opts.OutputDir, ManifestFilename)
	e.sendProgress(prog, writingManifestUpdate(manifestPath))
	if err := writeManifest(result, manifestPath); err != nil {
		return result, fmt.Errorf("lookup completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// lyricsWorker resolves songs from the jobs channel until it is closed.
func (e *LyricsEngine) lyricsWorker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan lyricsJob, results chan<- lyricsJobResult) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		info, err := e.resolver.ResolveLyrics(ctx, models.LyricsRequest{
			TrackName:  job.song.Title,
			ArtistName: job.song.Artist,
		})
		results <- lyricsJobResult{index: job.index, lyrics: info, err: err}
	}
}

func writeManifest(result *BatchLyricsResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return formatter.WriteFile(path, data)
}
