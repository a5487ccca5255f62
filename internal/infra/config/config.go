// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Spotify  SpotifyConfig  `yaml:"spotify"`
	Weather  WeatherConfig  `yaml:"weather"`
	Engine   EngineConfig   `yaml:"engine"`
	Calendar CalendarConfig `yaml:"calendar"`
	Session  SessionConfig  `yaml:"session"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr" default:":8080"`
}

// SpotifyConfig represents remote catalog configuration. When Enabled is
// false the engine runs on the static catalog alone.
type SpotifyConfig struct {
	Enabled      bool   `yaml:"enabled"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TimeoutSec   int    `yaml:"timeout_sec" default:"10" validate:"gte=1,lte=60"`
}

// WeatherConfig represents the weather lookup configuration.
// An empty API key disables the lookup; recommendations then run without
// a weather signal.
type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
}

// EngineConfig carries recommendation engine settings, decoded by the
// engine itself.
type EngineConfig struct {
	Settings map[string]any `yaml:"settings"`
}

// CalendarConfig represents the calendar source for the session.
// Events are read once at startup; the core never refreshes them.
type CalendarConfig struct {
	Events []CalendarEventConfig `yaml:"events"`
}

// CalendarEventConfig represents a single calendar event.
type CalendarEventConfig struct {
	Title string `yaml:"title" validate:"required"`
	Start string `yaml:"start"` // RFC3339, optional
}

// SessionConfig represents per-session defaults.
type SessionConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Load loads configuration from a YAML file. Environment variables take
// precedence over file values for secrets.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("SPOTIFY_CLIENT_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_CLIENT_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if c.Spotify.Enabled && (c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "") {
		return errors.New("spotify is enabled but client_id or client_secret is missing")
	}

	for _, ev := range c.Calendar.Events {
		if ev.Start == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, ev.Start); err != nil {
			return errors.Wrapf(err, "invalid start time for event %q", ev.Title)
		}
	}

	return nil
}

// SpotifyTimeout returns the catalog request timeout.
func (c *Config) SpotifyTimeout() time.Duration {
	return time.Duration(c.Spotify.TimeoutSec) * time.Second
}
