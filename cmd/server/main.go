// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/moodtune/moodtune/internal/api/httpapi"
	"github.com/moodtune/moodtune/internal/app/ambient"
	"github.com/moodtune/moodtune/internal/app/catalog"
	"github.com/moodtune/moodtune/internal/app/classify"
	"github.com/moodtune/moodtune/internal/app/comments"
	"github.com/moodtune/moodtune/internal/app/recommend"
	"github.com/moodtune/moodtune/internal/infra/config"
	"github.com/moodtune/moodtune/internal/infra/logger"
	"github.com/moodtune/moodtune/internal/infra/spotify"
	"github.com/moodtune/moodtune/internal/infra/weather"
)

var (
	app        = kingpin.New("moodtune-server", "moodtune recommendation server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger
	loggerConfig := logger.Config{
		Output: "stdout",
		Level:  "info",
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Load config
	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	// Run server (defer ensures shutdown hook is called)
	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	ctx := context.Background()

	// Remote catalog (optional)
	var remote recommend.CatalogClient
	if cfg.Spotify.Enabled {
		client, err := spotify.New(spotify.Config{
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
			Timeout:      cfg.SpotifyTimeout(),
		})
		if err != nil {
			return fmt.Errorf("failed to create Spotify client: %w", err)
		}
		remote = client
		zlog.Info().Msg("Remote catalog enabled")
	} else {
		zlog.Info().Msg("Remote catalog disabled, running on static catalog")
	}

	// Static catalog and recommendation engine
	static := catalog.NewStatic()
	engine, err := recommend.NewEngine(remote, static, cfg.Engine.Settings)
	if err != nil {
		return fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	// Weather lookup (optional)
	var lookup ambient.WeatherLookup
	if cfg.Weather.APIKey != "" {
		weatherClient, err := weather.New(weather.Config{APIKey: cfg.Weather.APIKey})
		if err != nil {
			return fmt.Errorf("failed to create weather client: %w", err)
		}
		lookup = weatherClient
		zlog.Info().Msg("Weather lookup enabled")
	}

	// Context aggregator with calendar events from config
	aggregator := ambient.NewAggregator(lookup)
	events := make([]ambient.CalendarEvent, 0, len(cfg.Calendar.Events))
	for _, ev := range cfg.Calendar.Events {
		var start time.Time
		if ev.Start != "" {
			start, _ = time.Parse(time.RFC3339, ev.Start) // validated at load
		}
		events = append(events, ambient.CalendarEvent{
			Title:    ev.Title,
			Start:    start,
			Category: ambient.CategorizeEvent(ev.Title),
		})
	}
	aggregator.LoadEvents(events)

	if lookup != nil {
		if err := aggregator.RefreshWeather(ctx, cfg.Session.Latitude, cfg.Session.Longitude); err != nil {
			zlog.Warn().Msgf("Initial weather refresh failed: %v", err)
		}
	}

	// API server
	api := httpapi.New(engine, aggregator, classify.NewKeyword(), comments.NewIndex())

	// Create server with h2c (HTTP/2 cleartext) support
	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h2c.NewHandler(api.Routes(), &http2.Server{}),
	}

	serverErrCh := make(chan error, 1)
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")
	return nil
}
