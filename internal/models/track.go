package models

// SearchRequest is the body of a catalog search request.
type SearchRequest struct {
	Query string `json:"query"`
}

// RawCatalogTrack is a catalog track as returned by the provider, before normalization.
//
// Only the first artist is significant. PreviewURL is nil when the provider has no preview clip.
type RawCatalogTrack struct {
	ID          string
	Name        string
	Artists     []string
	PreviewURL  *string
	AlbumImages []string // image URLs, largest first
	ExternalURL string
}

// TrackSummary is the normalized track returned to the web client.
type TrackSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	PreviewURL  *string `json:"preview_url"`
	HasPreview  bool    `json:"has_preview"`
	Image       *string `json:"image"`
	ExternalURL string  `json:"spotify_url"`
}
