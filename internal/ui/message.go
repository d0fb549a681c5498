package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/musicplayer/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTracksFound MsgKind = iota
	MsgLyricsResolved
)

type tracksFound struct {
	query  string
	tracks []models.TrackSummary
	err    error
}

type lyricsResolved struct {
	info *models.LyricsInfo
	err  error
}

// tracksFoundMsg is the constructor for [MsgTracksFound]
func tracksFoundMsg(query string, tracks []models.TrackSummary, err error) Msg {
	return Msg{kind: MsgTracksFound, data: tracksFound{query, tracks, err}}
}

// lyricsResolvedMsg is the constructor for [MsgLyricsResolved]
func lyricsResolvedMsg(info *models.LyricsInfo, err error) Msg {
	return Msg{kind: MsgLyricsResolved, data: lyricsResolved{info, err}}
}
