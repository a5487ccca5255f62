package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
spotify:
  enabled: true
  client_id: test-id
  client_secret: test-secret
  timeout_sec: 15
weather:
  api_key: test-weather-key
engine:
  settings:
    default_count: 8
calendar:
  events:
    - title: Morning workout
      start: "2026-08-23T07:00:00Z"
    - title: Study session
session:
  latitude: 35.68
  longitude: 139.76
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.Spotify.Enabled)
	assert.Equal(t, "test-id", cfg.Spotify.ClientID)
	assert.Equal(t, 15*time.Second, cfg.SpotifyTimeout())
	assert.Equal(t, "test-weather-key", cfg.Weather.APIKey)
	assert.Equal(t, 8, cfg.Engine.Settings["default_count"])
	require.Len(t, cfg.Calendar.Events, 2)
	assert.Equal(t, "Morning workout", cfg.Calendar.Events[0].Title)
	assert.Equal(t, 35.68, cfg.Session.Latitude)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
spotify:
  enabled: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.SpotifyTimeout())
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_SpotifyEnabledWithoutCredentials(t *testing.T) {
	path := writeConfig(t, `
spotify:
  enabled: true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_id")
}

func TestLoad_InvalidEventStart(t *testing.T) {
	path := writeConfig(t, `
calendar:
  events:
    - title: Broken
      start: "yesterday"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("OPENWEATHER_API_KEY", "env-weather")

	path := writeConfig(t, `
spotify:
  enabled: true
  client_id: file-id
  client_secret: file-secret
weather:
  api_key: file-weather
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-id", cfg.Spotify.ClientID)
	assert.Equal(t, "env-secret", cfg.Spotify.ClientSecret)
	assert.Equal(t, "env-weather", cfg.Weather.APIKey)
}
