package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/musicplayer/internal/formatter"
	"github.com/desertthunder/musicplayer/internal/models"
	"github.com/desertthunder/musicplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search searches the Spotify catalog and prints the normalized results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: search query", shared.ErrMissingArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	r.logger.Info("searching spotify", "query", query)

	tracks, err := r.metadata(ctx).SearchTracks(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	data, err := formatter.RenderTracks(format, query, tracks)
	if err != nil {
		return err
	}

	if output := cmd.String("output"); output != "" {
		if err := formatter.WriteFile(output, data); err != nil {
			return err
		}
		r.logger.Info("results written", "path", output, "tracks", len(tracks))
		return nil
	}
	return r.writeRaw(data)
}

// Lyrics resolves the Genius lyrics page for a track and prints or exports it.
func (r *Runner) Lyrics(ctx context.Context, cmd *cli.Command) error {
	req := models.LyricsRequest{TrackName: cmd.String("track"), ArtistName: cmd.String("artist")}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	r.logger.Info("looking up lyrics", "track", req.TrackName, "artist", req.ArtistName)

	info, err := r.metadata(ctx).ResolveLyrics(ctx, req)
	if err != nil {
		return fmt.Errorf("lyrics lookup failed: %w", err)
	}

	if dir := cmd.String("export"); dir != "" {
		warn := func(err error) { r.logger.Warn("failed to save cover image", "error", err) }
		result, err := formatter.WriteLyricsExport(ctx, info, dir, r.httpClient, warn)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported to %s\n", result.Directory)
		for _, f := range result.Files {
			r.writePlain("  %s\n", f)
		}
		return nil
	}

	data, err := formatter.RenderLyrics(format, info)
	if err != nil {
		return err
	}
	return r.writeRaw(data)
}
