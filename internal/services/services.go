// package services defines the provider clients and the aggregation service
//
// Spotify (catalog search), Genius (lyrics metadata)
package services

import (
	"context"

	"github.com/desertthunder/musicplayer/internal/models"
)

// CatalogSearcher searches a music catalog for tracks.
type CatalogSearcher interface {
	// Search returns at most limit raw tracks matching query, in provider order.
	// Any failure is returned as a [*CatalogError].
	Search(ctx context.Context, query string, limit int) ([]models.RawCatalogTrack, error)

	// Name returns the name of the provider (e.g., "Spotify")
	Name() string
}

// LyricsProvider performs the two-step lyrics lookup: search, then song detail by id.
type LyricsProvider interface {
	// Configured reports whether an access credential is available.
	Configured() bool

	// SearchSong returns ranked candidate songs for "{trackName} {artistName}".
	// An empty slice means no match.
	SearchSong(ctx context.Context, trackName, artistName string) ([]models.RawLyricsHit, error)

	// SongDetail fetches extended metadata for a song id returned by SearchSong.
	SongDetail(ctx context.Context, songID int64) (*models.RawLyricsSongDetail, error)

	// Name returns the name of the provider (e.g., "Genius")
	Name() string
}
