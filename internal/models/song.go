package models

// Song is an audio file stored in the local music directory.
//
// Tag fields are empty when the file has no tags or they could not be read.
type Song struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Artist   string `json:"artist,omitempty"`
	Album    string `json:"album,omitempty"`
	Size     int64  `json:"size"`
}

// DisplayName returns "Artist - Title" when both tags are known, else the title.
func (s Song) DisplayName() string {
	if s.Artist != "" && s.Title != "" {
		return s.Artist + " - " + s.Title
	}
	return s.Title
}
