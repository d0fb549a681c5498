// Genius API implementation of [LyricsProvider]
//
// Response types based on https://docs.genius.com/#search-h2 and https://docs.genius.com/#songs-h2
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/musicplayer/internal/models"
)

const geniusBaseURL = "https://api.genius.com"

type geniusArtist struct {
	Name string `json:"name"`
}

type geniusAlbum struct {
	Name *string `json:"name"`
}

// geniusSong covers both the search hit "result" object and the /songs/{id} "song" object.
type geniusSong struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	URL             string        `json:"url"`
	PrimaryArtist   *geniusArtist `json:"primary_artist"`
	Album           *geniusAlbum  `json:"album"`
	ReleaseDate     *string       `json:"release_date"`
	SongArtImageURL *string       `json:"song_art_image_url"`
}

type geniusHit struct {
	Type   string      `json:"type"`
	Result *geniusSong `json:"result"`
}

type geniusSearchResponse struct {
	Response struct {
		Hits []geniusHit `json:"hits"`
	} `json:"response"`
}

type geniusSongResponse struct {
	Response struct {
		Song *geniusSong `json:"song"`
	} `json:"response"`
}

// GeniusClient implements [LyricsProvider] with a static bearer token.
type GeniusClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewGeniusClient creates a Genius client. An empty baseURL uses the public API and a nil client uses
// [http.DefaultClient]. An empty token is allowed; every call then fails with [ErrLyricsNotConfigured].
func NewGeniusClient(token, baseURL string, client *http.Client) *GeniusClient {
	if baseURL == "" {
		baseURL = geniusBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &GeniusClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      strings.TrimSpace(token),
		httpClient: client,
	}
}

func (g *GeniusClient) Name() string {
	return "Genius"
}

// Configured reports whether an access token is set.
func (g *GeniusClient) Configured() bool {
	return g.token != ""
}

// doRequest performs an authenticated GET against the Genius API and decodes the JSON body into result.
func (g *GeniusClient) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	if !g.Configured() {
		return ErrLyricsNotConfigured
	}

	apiURL := g.baseURL + endpoint
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Provider: g.Name(), Status: resp.StatusCode, URL: apiURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SearchSong queries /search with "{trackName} {artistName}".
//
// Only the first hit has to be complete; later hits missing their song or artist are dropped.
func (g *GeniusClient) SearchSong(ctx context.Context, trackName, artistName string) ([]models.RawLyricsHit, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s %s", trackName, artistName))

	var response geniusSearchResponse
	if err := g.doRequest(ctx, "/search", params, &response); err != nil {
		return nil, err
	}

	hits := make([]models.RawLyricsHit, 0, len(response.Response.Hits))
	for i, h := range response.Response.Hits {
		if h.Result == nil || h.Result.PrimaryArtist == nil {
			if i == 0 {
				return nil, fmt.Errorf("%w: best hit has no song or primary artist", ErrUnexpectedResponse)
			}
			continue
		}
		hits = append(hits, models.RawLyricsHit{
			ID:            h.Result.ID,
			Title:         h.Result.Title,
			URL:           h.Result.URL,
			PrimaryArtist: h.Result.PrimaryArtist.Name,
		})
	}

	return hits, nil
}

// SongDetail fetches /songs/{id}.
func (g *GeniusClient) SongDetail(ctx context.Context, songID int64) (*models.RawLyricsSongDetail, error) {
	endpoint := "/songs/" + strconv.FormatInt(songID, 10)

	var response geniusSongResponse
	if err := g.doRequest(ctx, endpoint, nil, &response); err != nil {
		return nil, err
	}

	song := response.Response.Song
	if song == nil {
		return nil, fmt.Errorf("%w: song %d missing from response", ErrUnexpectedResponse, songID)
	}

	detail := &models.RawLyricsSongDetail{
		ReleaseDate:     song.ReleaseDate,
		SongArtImageURL: song.SongArtImageURL,
	}
	if song.Album != nil {
		detail.Album = &models.RawLyricsAlbum{Name: song.Album.Name}
	}

	return detail, nil
}
