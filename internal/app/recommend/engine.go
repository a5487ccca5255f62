// Package recommend derives contextual playlists and track recommendations
// from an ambient context snapshot.
package recommend

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"

	"github.com/moodtune/moodtune/internal/app/ambient"
	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/domain/track"
)

// CatalogClient is the remote catalog capability the engine prefers.
type CatalogClient interface {
	Search(ctx context.Context, query string, limit int) ([]track.Track, error)
	PlaylistTracks(ctx context.Context, playlistID string) ([]track.Track, error)
}

// StaticCatalog is the in-memory fallback dataset.
type StaticCatalog interface {
	ByMood(m mood.Emotion) []track.Track
	RandomSample(count int) []track.Track
}

// Config represents engine settings.
type Config struct {
	TimeoutSec   int `mapstructure:"timeout_sec" default:"5" validate:"gte=1,lte=60"`
	DefaultCount int `mapstructure:"default_count" default:"10" validate:"gte=1,lte=50"`
}

// Engine produces contextual playlists and recommended tracks for a context
// snapshot. Remote catalog failures never surface; the engine degrades to
// the static catalog so recommendations always return something.
type Engine struct {
	catalog CatalogClient // nil when the remote catalog is disabled
	static  StaticCatalog
	config  *Config
}

// NewEngine creates an engine. catalog may be nil; static is required.
// Settings follow the map-decode idiom so config stays schema-free.
func NewEngine(catalog CatalogClient, static StaticCatalog, settings map[string]any) (*Engine, error) {
	if static == nil {
		return nil, errors.New("static catalog is required")
	}

	var config Config
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	return &Engine{
		catalog: catalog,
		static:  static,
		config:  &config,
	}, nil
}

// ContextualPlaylists applies the fixed rule tables in order: at most one
// weather playlist, one time-of-day playlist for a recognized bucket, then
// one playlist per calendar event in original order. Duplicates across rules
// are allowed.
func (e *Engine) ContextualPlaylists(snap ambient.Context) []Playlist {
	var out []Playlist

	if snap.Weather != nil {
		if p, ok := weatherPlaylists[strings.ToLower(snap.Weather.Condition)]; ok {
			out = append(out, p)
		}
	}

	if p, ok := timeOfDayPlaylists[snap.TimeOfDay]; ok {
		out = append(out, p)
	}

	for _, ev := range snap.Events {
		if p, ok := eventPlaylists[ev.Category]; ok {
			out = append(out, p)
		}
	}

	return out
}

// RecommendedTracks returns up to count tracks for the context, preferring
// the remote catalog under a bounded timeout and degrading to the static
// catalog on any failure.
func (e *Engine) RecommendedTracks(ctx context.Context, snap ambient.Context, count int) []track.Track {
	if count <= 0 {
		count = e.config.DefaultCount
	}

	if e.catalog != nil {
		reqCtx, cancel := context.WithTimeout(ctx, time.Duration(e.config.TimeoutSec)*time.Second)
		defer cancel()

		tracks, err := e.catalog.Search(reqCtx, searchQuery(snap), count)
		if err == nil && len(tracks) > 0 {
			if len(tracks) > count {
				tracks = tracks[:count]
			}
			return tracks
		}
		if err != nil {
			zlog.Warn().Msgf("catalog search failed, using static fallback: %v", err)
		}
	}

	return e.fallbackTracks(snap, count)
}

// fallbackTracks selects from the static catalog. Mood-based selection takes
// precedence whenever an emotion is known; a random sample tops up only when
// the mood shelf holds fewer tracks than requested.
func (e *Engine) fallbackTracks(snap ambient.Context, count int) []track.Track {
	if snap.Emotion == "" {
		return e.static.RandomSample(count)
	}

	tracks := e.static.ByMood(snap.Emotion)
	if len(tracks) >= count {
		return tracks[:count]
	}

	seen := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		seen[t.ID] = true
	}
	for _, t := range e.static.RandomSample(count) {
		if len(tracks) >= count {
			break
		}
		if !seen[t.ID] {
			tracks = append(tracks, t)
			seen[t.ID] = true
		}
	}
	return tracks
}

// moodQueries maps each emotion to remote catalog search terms.
var moodQueries = map[mood.Emotion]string{
	mood.Happy:     "happy upbeat feel good",
	mood.Sad:       "sad melancholy slow",
	mood.Calm:      "calm ambient chill",
	mood.Energetic: "energetic workout power",
	mood.Excited:   "party dance celebration",
	mood.Romantic:  "romantic love songs",
	mood.Angry:     "intense rock metal",
	mood.Neutral:   "popular hits",
}

// searchQuery builds a remote catalog query from the context signals. Mood
// dominates; otherwise the time-of-day bucket shapes the query.
func searchQuery(snap ambient.Context) string {
	if snap.Emotion != "" {
		if q, ok := moodQueries[snap.Emotion]; ok {
			return q
		}
	}
	return string(snap.TimeOfDay) + " music"
}
