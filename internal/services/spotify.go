// Spotify Web API implementation of [CatalogSearcher]
//
// Search is delegated to [spotify.Client]; this file only adapts its response types.
package services

import (
	"context"

	"github.com/desertthunder/musicplayer/internal/models"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// SpotifyCatalog implements [CatalogSearcher] against the Spotify search endpoint.
type SpotifyCatalog struct {
	client *spotify.Client
}

// NewSpotifyCatalog wraps an already authenticated [spotify.Client].
func NewSpotifyCatalog(client *spotify.Client) *SpotifyCatalog {
	return &SpotifyCatalog{client: client}
}

// NewSpotifyCatalogFromCredentials builds a catalog client that authenticates with the client-credentials flow.
//
// No token is requested here: the [clientcredentials] transport fetches one on the first call and refreshes it when it
// expires, so missing or wrong credentials only surface as a [*CatalogError] from [SpotifyCatalog.Search].
func NewSpotifyCatalogFromCredentials(ctx context.Context, clientID, clientSecret string, opts ...spotify.ClientOption) *SpotifyCatalog {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return NewSpotifyCatalog(spotify.New(config.Client(ctx), opts...))
}

func (s *SpotifyCatalog) Name() string {
	return "Spotify"
}

// Search runs a single track search and returns the raw items in provider order.
func (s *SpotifyCatalog) Search(ctx context.Context, query string, limit int) ([]models.RawCatalogTrack, error) {
	result, err := s.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, &CatalogError{Err: err}
	}

	if result == nil || result.Tracks == nil {
		return []models.RawCatalogTrack{}, nil
	}

	tracks := make([]models.RawCatalogTrack, 0, len(result.Tracks.Tracks))
	for _, t := range result.Tracks.Tracks {
		tracks = append(tracks, rawCatalogTrack(t))
	}
	return tracks, nil
}

func rawCatalogTrack(t spotify.FullTrack) models.RawCatalogTrack {
	raw := models.RawCatalogTrack{
		ID:          string(t.ID),
		Name:        t.Name,
		ExternalURL: t.ExternalURLs["spotify"],
	}

	if t.PreviewURL != "" {
		preview := t.PreviewURL
		raw.PreviewURL = &preview
	}

	for _, a := range t.Artists {
		raw.Artists = append(raw.Artists, a.Name)
	}

	for _, img := range t.Album.Images {
		raw.AlbumImages = append(raw.AlbumImages, img.URL)
	}

	return raw
}
