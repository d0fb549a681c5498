package tasks

import (
	"fmt"

	"github.com/desertthunder/musicplayer/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ScanLibrary Phase = iota
	ResolveLyrics
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ScanLibrary:
		return "scan_library"
	case ResolveLyrics:
		return "resolve_lyrics"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func scanLibraryUpdate(tagged, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanLibrary,
		Step:    tagged,
		Total:   total,
		Message: fmt.Sprintf("Found %d tagged songs out of %d", tagged, total),
	}
}

func lyricsResolvedUpdate(step, total int, song models.Song, info *models.LyricsInfo) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("✓ %s → %s", song.DisplayName(), info.LyricsURL),
		Data:    info,
	}
}

func lyricsFailedUpdate(step, total int, song models.Song, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("✗ %s: %v", song.DisplayName(), err),
		Data:    err,
	}
}

func writingManifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing manifest to %s...", path),
	}
}
