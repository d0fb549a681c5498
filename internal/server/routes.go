package server

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/library"
	"github.com/desertthunder/musicplayer/internal/web"
)

// Options wires the application's services into a router.
//
// Library routes are only registered when Songs is set.
type Options struct {
	Metadata  MetadataService
	Songs     *library.Store
	Playlists *library.PlaylistStore
	Pages     *web.Pages
	ArtPath   string
	Logger    *log.Logger
}

// NewRouter builds the application router with request ids, access logging and panic recovery.
func NewRouter(opts Options) (*BasicRouter, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	router := NewBasicRouter()
	router.Use(RequestID(), Logging(logger), Recovery(logger))

	if opts.Metadata != nil {
		NewMetadataHandler(opts.Metadata, logger).Register(router)
	}

	if opts.Songs != nil {
		playlists := opts.Playlists
		if playlists == nil {
			return nil, fmt.Errorf("library routes need a playlist store")
		}

		pages := opts.Pages
		if pages == nil {
			p, err := web.NewPages()
			if err != nil {
				return nil, err
			}
			pages = p
		}
		NewLibraryHandler(opts.Songs, playlists, pages, logger).Register(router)
	}

	art, err := NewArtHandler(opts.ArtPath)
	if err != nil {
		return nil, err
	}
	router.Handler(art)

	return router, nil
}
