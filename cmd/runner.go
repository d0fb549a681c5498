package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/musicplayer/internal/services"
	"github.com/desertthunder/musicplayer/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	catalog    services.CatalogSearcher
	lyrics     services.LyricsProvider
	aggregator *services.Aggregator
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Catalog and Lyrics are built from the config in [Runner.Bootstrap] when left nil.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Catalog    services.CatalogSearcher
	Lyrics     services.LyricsProvider
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		catalog:    opts.Catalog,
		lyrics:     opts.Lyrics,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, searchCommand, lyricsCommand, libraryCommand, tuiCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Bootstrap loads .env and config.toml, applies environment overrides and sets the log level.
//
// Missing files are not errors: the defaults plus the environment are enough to run.
func (r *Runner) Bootstrap(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := shared.LoadEnv(cmd.String("env-file")); err != nil {
		if errors.Is(err, shared.ErrMissingConfig) {
			r.logger.Debug("no .env file loaded", "path", cmd.String("env-file"))
		} else {
			r.logger.Warn("failed to load .env file", "error", err)
		}
	}

	r.configPath = cmd.String("config")
	config := shared.DefaultConfig()
	if _, err := os.Stat(r.configPath); err == nil {
		if config, err = shared.LoadConfig(r.configPath); err != nil {
			return ctx, err
		}
	} else {
		r.logger.Debug("config file not found, using defaults", "path", r.configPath)
	}

	if err := config.ApplyEnv(); err != nil {
		return ctx, err
	}

	level, err := shared.ParseLogLevel(config.Log.Level)
	if err != nil {
		return ctx, err
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	r.config = config
	r.initServices(ctx)
	return ctx, nil
}

// initServices builds the provider clients and the aggregator from the current config.
func (r *Runner) initServices(ctx context.Context) {
	creds := r.config.Credentials

	if r.catalog == nil {
		if creds.Spotify.ClientID == "" || creds.Spotify.ClientSecret == "" {
			r.logger.Warn("Spotify credentials not configured; catalog searches will fail",
				"env", shared.EnvSpotifyClientID+"/"+shared.EnvSpotifyClientSecret)
		}
		r.catalog = services.NewSpotifyCatalogFromCredentials(ctx, creds.Spotify.ClientID, creds.Spotify.ClientSecret)
	}

	if r.lyrics == nil {
		r.lyrics = services.NewGeniusClient(creds.Genius.AccessToken, creds.Genius.BaseURL, r.httpClient)
	}

	r.aggregator = services.NewAggregator(r.catalog, r.lyrics, r.logger)
}

// metadata returns the aggregator, building it from the current config on first use.
func (r *Runner) metadata(ctx context.Context) *services.Aggregator {
	if r.aggregator == nil {
		r.initServices(ctx)
	}
	return r.aggregator
}

// SetLogger replaces the logger used by the runner and rebuilt services.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	if r.aggregator != nil {
		r.aggregator = services.NewAggregator(r.catalog, r.lyrics, logger)
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeRaw(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
