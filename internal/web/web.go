// Package web renders the server-side HTML pages of the music player.
//
// Templates are embedded at build time and parsed once by [NewPages]. The index page lists the local
// library, links each song to /music/{filename} for playback and carries the upload form. Catalog search
// and lyrics are fetched by the browser from the JSON endpoints, so they are not rendered here.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/desertthunder/musicplayer/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexData is the view model of the index page.
type IndexData struct {
	Songs      []models.Song
	DefaultArt string
}

// Pages holds the parsed page templates.
type Pages struct {
	index *template.Template
}

// NewPages parses the embedded templates.
func NewPages() (*Pages, error) {
	funcs := template.FuncMap{
		"songURL": func(filename string) string { return "/music/" + url.PathEscape(filename) },
	}

	index, err := template.New("index.html").Funcs(funcs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	return &Pages{index: index}, nil
}

// RenderIndex writes the index page to w.
func (p *Pages) RenderIndex(w io.Writer, data IndexData) error {
	if data.Songs == nil {
		data.Songs = []models.Song{}
	}
	if err := p.index.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	return nil
}
