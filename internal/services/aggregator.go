package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/models"
	"github.com/desertthunder/musicplayer/internal/shared"
)

// SearchLimit is the number of catalog results requested per search.
const SearchLimit = 10

// Aggregator combines the catalog and lyrics clients into the two operations exposed over HTTP.
//
// It holds no per-request state and is safe for concurrent use as long as its clients are.
type Aggregator struct {
	catalog CatalogSearcher
	lyrics  LyricsProvider
	logger  *log.Logger
}

// NewAggregator creates an [Aggregator]. A nil logger falls back to [shared.NewLogger].
func NewAggregator(catalog CatalogSearcher, lyrics LyricsProvider, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Aggregator{
		catalog: catalog,
		lyrics:  lyrics,
		logger:  shared.WithLogger(logger, "component", "aggregator"),
	}
}

// SearchTracks searches the catalog and returns normalized tracks in provider order.
//
// Errors are [*Error] values of kind [KindBadRequest] or [KindUpstream].
func (a *Aggregator) SearchTracks(ctx context.Context, query string) ([]models.TrackSummary, error) {
	if query == "" {
		return nil, badRequest("No search query provided")
	}

	raws, err := a.catalog.Search(ctx, query, SearchLimit)
	if err != nil {
		a.logger.Error("catalog search failed", "provider", a.catalog.Name(), "query", query, "error", err)
		return nil, &Error{Kind: KindUpstream, Message: err.Error(), Err: err}
	}

	if len(raws) > SearchLimit {
		raws = raws[:SearchLimit]
	}

	tracks := NormalizeTracks(raws, a.logger)
	a.logger.Debug("catalog search", "query", query, "results", len(raws), "normalized", len(tracks))
	return tracks, nil
}

// ResolveLyrics finds the best lyrics match for a track and artist and returns its metadata.
//
// The detail lookup only runs when the search returned at least one hit. Errors are [*Error] values; anything the
// provider clients do not classify becomes [KindInternal].
func (a *Aggregator) ResolveLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsInfo, error) {
	if req.TrackName == "" || req.ArtistName == "" {
		return nil, badRequest("Track name and artist name are required")
	}

	if a.lyrics == nil || !a.lyrics.Configured() {
		return nil, misconfigured()
	}

	hits, err := a.lyrics.SearchSong(ctx, req.TrackName, req.ArtistName)
	if err != nil {
		return nil, a.classifyLyricsError("search", err)
	}

	if len(hits) == 0 {
		a.logger.Info("no lyrics match", "track", req.TrackName, "artist", req.ArtistName)
		return nil, &Error{
			Kind:    KindNotFound,
			Message: "No lyrics found",
			Detail:  fmt.Sprintf("Could not find lyrics for %s by %s", req.TrackName, req.ArtistName),
			Err:     shared.ErrTrackNotFound,
		}
	}

	best := hits[0]
	detail, err := a.lyrics.SongDetail(ctx, best.ID)
	if err != nil {
		return nil, a.classifyLyricsError("detail", err)
	}

	info := NormalizeLyrics(best, *detail)
	return &info, nil
}

func (a *Aggregator) classifyLyricsError(step string, err error) *Error {
	var (
		providerErr  *ProviderError
		transportErr *TransportError
	)

	switch {
	case errors.Is(err, ErrLyricsNotConfigured):
		return misconfigured()
	case errors.As(err, &providerErr), errors.As(err, &transportErr):
		a.logger.Warn("lyrics provider unavailable", "step", step, "error", err)
		return &Error{
			Kind:    KindUnavailable,
			Message: "Failed to fetch lyrics",
			Detail:  err.Error(),
			Err:     fmt.Errorf("%w: %w", shared.ErrServiceUnavailable, err),
		}
	default:
		a.logger.Error("lyrics lookup failed", "step", step, "error", err)
		return internalError(err)
	}
}

func misconfigured() *Error {
	return &Error{Kind: KindMisconfigured, Message: "Genius API token not configured", Err: ErrLyricsNotConfigured}
}
