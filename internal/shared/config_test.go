package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 5000 {
			t.Errorf("expected server port 5000, got %d", config.Server.Port)
		}

		if config.Library.MusicDir != "music" {
			t.Errorf("expected music dir music, got %s", config.Library.MusicDir)
		}

		if config.Library.PlaylistFile != "playlist.json" {
			t.Errorf("expected playlist file playlist.json, got %s", config.Library.PlaylistFile)
		}

		if config.Credentials.Genius.BaseURL != "https://api.genius.com" {
			t.Errorf("expected genius base URL https://api.genius.com, got %s", config.Credentials.Genius.BaseURL)
		}

		if config.Credentials.Genius.AccessToken != "" {
			t.Errorf("expected empty genius token, got %s", config.Credentials.Genius.AccessToken)
		}

		if got := config.Server.Addr(); got != "127.0.0.1:5000" {
			t.Errorf("expected addr 127.0.0.1:5000, got %s", got)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Library.MusicDir != defaultConfig.Library.MusicDir {
			t.Errorf("created config music dir doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 8080

[credentials.spotify]
client_id = "test_client_id"
client_secret = "test_secret"

[credentials.genius]
access_token = "genius_token"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.Spotify.ClientID != "test_client_id" {
			t.Errorf("expected spotify client_id test_client_id, got %s", config.Credentials.Spotify.ClientID)
		}

		if config.Credentials.Genius.AccessToken != "genius_token" {
			t.Errorf("expected genius token genius_token, got %s", config.Credentials.Genius.AccessToken)
		}

		if config.Credentials.Genius.BaseURL != "https://api.genius.com" {
			t.Errorf("expected default genius base URL to survive partial config, got %s", config.Credentials.Genius.BaseURL)
		}

		if config.Library.MusicDir != "music" {
			t.Errorf("expected default music dir to survive partial config, got %s", config.Library.MusicDir)
		}
	})

	t.Run("LoadConfig with invalid TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[server\nport = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig with missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides credentials and port", func(t *testing.T) {
		t.Setenv(EnvSpotifyClientID, "env_id")
		t.Setenv(EnvSpotifyClientSecret, "env_secret")
		t.Setenv(EnvGeniusAccessToken, "env_token")
		t.Setenv(EnvPort, "9090")

		config := DefaultConfig()
		if err := config.ApplyEnv(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Credentials.Spotify.ClientID != "env_id" {
			t.Errorf("expected client id env_id, got %s", config.Credentials.Spotify.ClientID)
		}
		if config.Credentials.Spotify.ClientSecret != "env_secret" {
			t.Errorf("expected client secret env_secret, got %s", config.Credentials.Spotify.ClientSecret)
		}
		if config.Credentials.Genius.AccessToken != "env_token" {
			t.Errorf("expected genius token env_token, got %s", config.Credentials.Genius.AccessToken)
		}
		if config.Server.Port != 9090 {
			t.Errorf("expected port 9090, got %d", config.Server.Port)
		}
	})

	t.Run("empty variables keep file values", func(t *testing.T) {
		t.Setenv(EnvGeniusAccessToken, "")
		t.Setenv(EnvPort, "")

		config := DefaultConfig()
		config.Credentials.Genius.AccessToken = "from_file"
		if err := config.ApplyEnv(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if config.Credentials.Genius.AccessToken != "from_file" {
			t.Errorf("expected token from_file, got %s", config.Credentials.Genius.AccessToken)
		}
		if config.Server.Port != 5000 {
			t.Errorf("expected port 5000, got %d", config.Server.Port)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv(EnvPort, "not-a-port")

		err := DefaultConfig().ApplyEnv()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads dotenv file", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envPath, []byte("MUSICPLAYER_TEST_VAR=from_dotenv\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("MUSICPLAYER_TEST_VAR") })

		if err := LoadEnv(envPath); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := os.Getenv("MUSICPLAYER_TEST_VAR"); got != "from_dotenv" {
			t.Errorf("expected from_dotenv, got %q", got)
		}
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envPath, []byte("MUSICPLAYER_TEST_KEEP=from_dotenv\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv("MUSICPLAYER_TEST_KEEP", "from_process")

		if err := LoadEnv(envPath); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if got := os.Getenv("MUSICPLAYER_TEST_KEEP"); got != "from_process" {
			t.Errorf("expected from_process, got %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}
