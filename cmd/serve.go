package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/musicplayer/internal/library"
	"github.com/desertthunder/musicplayer/internal/server"
	"github.com/desertthunder/musicplayer/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the web app until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		cfg.Host = host
	}
	if port := cmd.Int("port"); port > 0 {
		cfg.Port = int(port)
	}

	router, err := r.newRouter(ctx)
	if err != nil {
		return err
	}

	return server.NewServer(cfg.Addr(), router, r.logger).Run(ctx)
}

// newRouter wires the library stores and the metadata service into the HTTP router.
func (r *Runner) newRouter(ctx context.Context) (*server.BasicRouter, error) {
	lib := r.config.Library

	songs, err := library.NewStore(lib.MusicDir, r.logger)
	if err != nil {
		return nil, err
	}

	artPath, err := library.EnsureDefaultArt(lib.ImagesDir)
	if err != nil {
		r.logger.Warn("serving generated album art", "error", err)
		artPath = ""
	}

	pages, err := web.NewPages()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return server.NewRouter(server.Options{
		Metadata:  r.metadata(ctx),
		Songs:     songs,
		Playlists: library.NewPlaylistStore(lib.PlaylistFile),
		Pages:     pages,
		ArtPath:   artPath,
		Logger:    r.logger,
	})
}
