package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/musicplayer/internal/models"
)

var _ list.Item = trackItem{}

// trackItem wraps [models.TrackSummary] to implement [list.Item].
type trackItem struct {
	track models.TrackSummary
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string       { return i.track.Name }
func (i trackItem) Description() string {
	if i.track.HasPreview {
		return fmt.Sprintf("%s • preview", i.track.Artist)
	}
	return i.track.Artist
}
