package models

// UnknownAlbum is used when the lyrics provider has no album for a song.
const UnknownAlbum = "Unknown Album"

// LyricsRequest is the body of a lyrics lookup.
type LyricsRequest struct {
	TrackName  string `json:"track_name"`
	ArtistName string `json:"artist_name"`
}

// RawLyricsHit is one search result from the lyrics provider. Hits are ranked; the first is the best match.
type RawLyricsHit struct {
	ID            int64
	Title         string
	URL           string
	PrimaryArtist string
}

// RawLyricsAlbum is the album attached to a song detail record.
type RawLyricsAlbum struct {
	Name *string
}

// RawLyricsSongDetail is the extended metadata fetched for a single song id.
type RawLyricsSongDetail struct {
	Album           *RawLyricsAlbum
	ReleaseDate     *string
	SongArtImageURL *string
}

// LyricsInfo is the normalized lyrics lookup result.
type LyricsInfo struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	LyricsURL   string  `json:"lyrics_url"`
	Album       string  `json:"album"`
	ReleaseDate *string `json:"release_date"`
	ImageURL    *string `json:"image_url"`
	ProviderID  int64   `json:"genius_id"`
}
