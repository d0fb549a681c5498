package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/musicplayer/internal/library"
	"github.com/desertthunder/musicplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file from the template when it is missing, then the library directories and the
// default album art.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := r.configPath
	if configPath == "" {
		configPath = "config.toml"
	}

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file exists", "path", configPath)
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}

		config, err := shared.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := config.ApplyEnv(); err != nil {
			return err
		}
		r.config = config
	}

	lib := r.config.Library
	store, err := library.NewStore(lib.MusicDir, r.logger)
	if err != nil {
		return err
	}
	r.logger.Info("music directory ready", "path", store.Dir())

	artPath, err := library.EnsureDefaultArt(lib.ImagesDir)
	if err != nil {
		return err
	}
	r.logger.Info("default album art ready", "path", artPath)

	if dir := filepath.Dir(lib.PlaylistFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create playlist directory: %w", err)
		}
	}

	r.writePlain("✓ Setup complete\n")
	r.writePlainln("Next steps:")
	r.writePlain("1. Set %s and %s (in %s or a .env file)\n",
		shared.EnvSpotifyClientID, shared.EnvSpotifyClientSecret, configPath)
	r.writePlain("2. Set %s for lyrics lookups\n", shared.EnvGeniusAccessToken)
	r.writePlain("3. Run 'musicplayer serve' and open http://%s\n", r.config.Server.Addr())
	return nil
}
