// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a three-view workflow over the metadata aggregation service:
//  1. [SearchView] : Type a catalog search query
//  2. [ResultsView] : Browse the matching tracks
//  3. [LyricsView] : Show the lyrics match for the selected track
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving results via the Msg union
// type. Lookups run as [tea.Cmd] functions so the interface never blocks on the network.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, /, q) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
