package services

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/models"
)

// NormalizeTrack maps a raw catalog record into a [models.TrackSummary].
//
// A record without artists cannot be normalized and yields [ErrMalformedTrack].
func NormalizeTrack(raw models.RawCatalogTrack) (models.TrackSummary, error) {
	if len(raw.Artists) == 0 {
		return models.TrackSummary{}, fmt.Errorf("%w: track %q has no artists", ErrMalformedTrack, raw.ID)
	}

	summary := models.TrackSummary{
		ID:          raw.ID,
		Name:        raw.Name,
		Artist:      raw.Artists[0],
		ExternalURL: raw.ExternalURL,
	}

	if raw.PreviewURL != nil && *raw.PreviewURL != "" {
		preview := *raw.PreviewURL
		summary.PreviewURL = &preview
		summary.HasPreview = true
	}

	if len(raw.AlbumImages) > 0 {
		image := raw.AlbumImages[0]
		summary.Image = &image
	}

	return summary, nil
}

// NormalizeTracks normalizes every record in order, logging and skipping the ones that are malformed.
//
// The result is never nil so it always serializes as a JSON array.
func NormalizeTracks(raws []models.RawCatalogTrack, logger *log.Logger) []models.TrackSummary {
	out := make([]models.TrackSummary, 0, len(raws))
	for i, raw := range raws {
		summary, err := NormalizeTrack(raw)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping catalog track", "index", i, "id", raw.ID, "error", err)
			}
			continue
		}
		out = append(out, summary)
	}
	return out
}

// NormalizeLyrics merges the best search hit with its song detail into a [models.LyricsInfo].
func NormalizeLyrics(hit models.RawLyricsHit, detail models.RawLyricsSongDetail) models.LyricsInfo {
	album := models.UnknownAlbum
	if detail.Album != nil && detail.Album.Name != nil && *detail.Album.Name != "" {
		album = *detail.Album.Name
	}

	return models.LyricsInfo{
		Title:       hit.Title,
		Artist:      hit.PrimaryArtist,
		LyricsURL:   hit.URL,
		Album:       album,
		ReleaseDate: detail.ReleaseDate,
		ImageURL:    detail.SongArtImageURL,
		ProviderID:  hit.ID,
	}
}
