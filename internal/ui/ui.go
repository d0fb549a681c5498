package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/musicplayer/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	ResultsView
	LyricsView
)

// Service is the metadata lookup the TUI drives.
type Service interface {
	SearchTracks(ctx context.Context, query string) ([]models.TrackSummary, error)
	ResolveLyrics(ctx context.Context, req models.LyricsRequest) (*models.LyricsInfo, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	service  Service
	width    int
	height   int
	input    textinput.Model
	results  list.Model
	hasList  bool
	query    string
	selected *models.TrackSummary
	lyrics   *models.LyricsInfo
	loading  string
	err      error
	help     help.Model
	keys     keyMap
}

// NewModel creates a new TUI model. A non-empty query is searched immediately.
func NewModel(ctx context.Context, service Service, query string) *Model {
	input := textinput.New()
	input.Placeholder = "Artist, track or album"
	input.Prompt = "♪ "
	input.CharLimit = 200
	input.SetValue(query)
	input.Focus()

	return &Model{
		ctx:     ctx,
		view:    SearchView,
		service: service,
		input:   input,
		query:   query,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// CurrentView returns the current [ViewState].
func (m *Model) CurrentView() ViewState {
	return m.view
}

// Init starts the cursor blinking and runs the initial search, if any.
func (m *Model) Init() tea.Cmd {
	if m.query != "" {
		m.loading = fmt.Sprintf("Searching for %q...", m.query)
		return tea.Batch(textinput.Blink, m.searchTracks(m.query))
	}
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 20)
		if m.hasList {
			m.results.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case ResultsView:
			return m.handleResultsKeys(msg)
		case LyricsView:
			return m.handleLyricsKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	return m.updateComponents(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	m.loading = ""

	switch msg.kind {
	case MsgTracksFound:
		data := msg.data.(tracksFound)
		if data.err != nil {
			m.err = data.err
			m.view = SearchView
			return m, nil
		}

		m.err = nil
		m.query = data.query
		items := make([]list.Item, len(data.tracks))
		for i, track := range data.tracks {
			items[i] = trackItem{track: track}
		}
		m.results = list.New(items, list.NewDefaultDelegate(), max(m.width-4, 0), max(m.height-8, 0))
		m.results.Title = fmt.Sprintf("Results for %q", data.query)
		m.results.SetFilteringEnabled(false)
		m.results.SetShowHelp(false)
		m.hasList = true
		m.view = ResultsView
		m.input.Blur()
		return m, nil

	case MsgLyricsResolved:
		data := msg.data.(lyricsResolved)
		m.lyrics = data.info
		m.err = data.err
		m.view = LyricsView
		return m, nil
	}

	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.enter):
		query := m.input.Value()
		m.err = nil
		m.loading = fmt.Sprintf("Searching for %q...", query)
		return m, m.searchTracks(query)
	case key.Matches(msg, m.keys.back):
		if m.hasList {
			m.err = nil
			m.view = ResultsView
			m.input.Blur()
			return m, nil
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.search):
		return m, m.openSearch()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.results.SelectedItem().(trackItem); ok {
			track := item.track
			m.selected = &track
			m.lyrics = nil
			m.loading = fmt.Sprintf("Looking up lyrics for %s by %s...", track.Name, track.Artist)
			return m, m.resolveLyrics(track)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) handleLyricsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.err = nil
		m.view = ResultsView
		return m, nil
	case key.Matches(msg, m.keys.search):
		return m, m.openSearch()
	}
	return m, nil
}

func (m *Model) openSearch() tea.Cmd {
	m.err = nil
	m.view = SearchView
	m.input.SetValue("")
	return m.input.Focus()
}

func (m *Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SearchView:
		m.input, cmd = m.input.Update(msg)
	case ResultsView:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m *Model) searchTracks(query string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.service.SearchTracks(m.ctx, query)
		return tracksFoundMsg(query, tracks, err)
	}
}

func (m *Model) resolveLyrics(track models.TrackSummary) tea.Cmd {
	return func() tea.Msg {
		info, err := m.service.ResolveLyrics(m.ctx, models.LyricsRequest{TrackName: track.Name, ArtistName: track.Artist})
		return lyricsResolvedMsg(info, err)
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		return m.renderSearch()
	case ResultsView:
		return m.renderResults()
	case LyricsView:
		return m.renderLyrics()
	default:
		return ""
	}
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Search Spotify"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.loading != "" {
		b.WriteString(styles.help.Render(m.loading))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	search := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	b.WriteString(m.help.ShortHelpView([]key.Binding{search, m.keys.back, quit}))
	return b.String()
}

func (m *Model) renderResults() string {
	if len(m.results.Items()) == 0 {
		empty := styles.warn.Render(fmt.Sprintf("No tracks found for %q", m.query))
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.search, m.keys.quit})
		return fmt.Sprintf("%s\n\n%s", empty, helpView)
	}

	lyricsKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "lyrics"))
	helpKeys := []key.Binding{m.keys.up, m.keys.down, lyricsKey, m.keys.search, m.keys.quit}
	status := ""
	if m.loading != "" {
		status = "\n" + styles.help.Render(m.loading)
	}
	return fmt.Sprintf("%s%s\n\n%s", m.results.View(), status, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderLyrics() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.search, m.keys.quit})

	if m.err != nil {
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(m.err.Error()), helpView)
	}
	if m.lyrics == nil {
		return fmt.Sprintf("%s\n\n%s", styles.warn.Render("No lyrics available"), helpView)
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(m.lyrics.Title))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", styles.label.Render(label+":"), value))
	}
	row("Artist", m.lyrics.Artist)
	row("Album", m.lyrics.Album)
	if m.lyrics.ReleaseDate != nil {
		row("Released", *m.lyrics.ReleaseDate)
	}
	row("Lyrics", styles.ok.Render(m.lyrics.LyricsURL))
	if m.selected != nil {
		if m.selected.ExternalURL != "" {
			row("Spotify", m.selected.ExternalURL)
		}
		if m.selected.HasPreview {
			row("Preview", *m.selected.PreviewURL)
		}
	}

	return fmt.Sprintf("%s\n%s", b.String(), helpView)
}
