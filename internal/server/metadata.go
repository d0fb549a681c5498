package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/models"
)

// MetadataService is the part of the aggregation service the JSON endpoints need.
type MetadataService interface {
	SearchTracks(ctx context.Context, query string) ([]models.TrackSummary, error)
	ResolveLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsInfo, error)
}

// MetadataHandler serves catalog search and lyrics lookups as JSON.
type MetadataHandler struct {
	service MetadataService
	logger  *log.Logger
}

func NewMetadataHandler(service MetadataService, logger *log.Logger) *MetadataHandler {
	return &MetadataHandler{service: service, logger: logger}
}

// Register adds the metadata routes to r.
func (h *MetadataHandler) Register(r Router) {
	r.Handle(http.MethodPost, "/search_spotify", http.HandlerFunc(h.SearchSpotify))
	r.Handle(http.MethodPost, "/get_lyrics", http.HandlerFunc(h.GetLyrics))
}

// SearchSpotify handles POST /search_spotify with a {"query": "..."} body.
func (h *MetadataHandler) SearchSpotify(w http.ResponseWriter, r *http.Request) {
	req := decodeJSON[models.SearchRequest](w, r)

	tracks, err := h.service.SearchTracks(r.Context(), req.Query)
	if err != nil {
		h.logger.Debug("search failed", "query", req.Query, "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// GetLyrics handles POST /get_lyrics with a {"track_name": "...", "artist_name": "..."} body.
func (h *MetadataHandler) GetLyrics(w http.ResponseWriter, r *http.Request) {
	req := decodeJSON[models.LyricsRequest](w, r)

	info, err := h.service.ResolveLyrics(r.Context(), req)
	if err != nil {
		h.logger.Debug("lyrics lookup failed", "track", req.TrackName, "artist", req.ArtistName, "error", err,
			"request_id", RequestIDFrom(r.Context()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
