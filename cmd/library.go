package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/musicplayer/internal/formatter"
	"github.com/desertthunder/musicplayer/internal/library"
	"github.com/desertthunder/musicplayer/internal/shared"
	"github.com/desertthunder/musicplayer/internal/tasks"
	"github.com/urfave/cli/v3"
)

// LibraryList prints the songs in the music directory.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	store, err := library.NewStore(r.config.Library.MusicDir, r.logger)
	if err != nil {
		return err
	}

	songs, err := store.Songs()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}
	return r.writeRaw(formatter.SongsToText(songs))
}

// LibraryAdd copies an audio file into the music directory.
func (r *Runner) LibraryAdd(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: file path", shared.ErrMissingArgument)
	}

	store, err := library.NewStore(r.config.Library.MusicDir, r.logger)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	name, err := store.Save(filepath.Base(path), f)
	if err != nil {
		return err
	}

	r.writePlain("✓ Added %s to %s\n", name, store.Dir())
	return nil
}

// LibraryPlaylist prints the saved playlist document.
func (r *Runner) LibraryPlaylist(ctx context.Context, cmd *cli.Command) error {
	data, err := library.NewPlaylistStore(r.config.Library.PlaylistFile).Load()
	if err != nil {
		return err
	}
	return r.writeJSON(data, true)
}

// LibraryLyrics resolves lyrics metadata for every tagged song in the music directory.
func (r *Runner) LibraryLyrics(ctx context.Context, cmd *cli.Command) error {
	store, err := library.NewStore(r.config.Library.MusicDir, r.logger)
	if err != nil {
		return err
	}

	songs, err := store.Songs()
	if err != nil {
		return err
	}

	engine := tasks.NewLyricsEngine(r.metadata(ctx), r.logger)
	prog := make(chan tasks.ProgressUpdate, 32)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.writePlainln("[%d/%d] %s", update.Step, update.Total, update.Message)
		}
	}()

	result, err := engine.BatchLyrics(ctx, songs, tasks.BatchLyricsOpts{
		NumWorkers: int(cmd.Int("workers")),
		OutputDir:  cmd.String("output"),
	}, prog)
	close(prog)
	<-done
	if err != nil {
		return err
	}

	r.writePlain("\n✓ %d resolved, %d failed, %d skipped (of %d)\n", result.Resolved, result.Failed, result.Skipped, result.Total)
	if result.ManifestPath != "" {
		r.writePlain("  Manifest: %s\n", result.ManifestPath)
	}
	return nil
}
