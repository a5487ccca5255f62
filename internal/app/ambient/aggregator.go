package ambient

import (
	"context"
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/infra/weather"
)

// WeatherLookup resolves the current weather for a coordinate pair.
type WeatherLookup interface {
	Lookup(ctx context.Context, lat, lon float64) (*weather.Condition, error)
}

// Aggregator collects independent signals and captures them atomically into
// Context snapshots. One instance lives per session.
type Aggregator struct {
	lookup WeatherLookup // nil when weather is disabled
	now    func() time.Time

	mu      sync.RWMutex
	emotion mood.Emotion
	weather *weather.Condition
	events  []CalendarEvent
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator creates an aggregator. lookup may be nil, in which case the
// weather signal stays absent.
func NewAggregator(lookup WeatherLookup, opts ...Option) *Aggregator {
	a := &Aggregator{
		lookup: lookup,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetEmotion records the most recently detected or manually chosen emotion.
// Last write wins; no history is retained.
func (a *Aggregator) SetEmotion(e mood.Emotion) {
	a.mu.Lock()
	a.emotion = e
	a.mu.Unlock()
}

// LoadEvents stores today's calendar events. Called once per session; the
// aggregator never refreshes them on its own.
func (a *Aggregator) LoadEvents(events []CalendarEvent) {
	copied := make([]CalendarEvent, len(events))
	copy(copied, events)
	a.mu.Lock()
	a.events = copied
	a.mu.Unlock()
}

// RefreshWeather resolves the weather for the given coordinates and stores
// the observation. A failed lookup keeps the previous observation (or leaves
// the signal absent) so that Snapshot never degrades into an error.
func (a *Aggregator) RefreshWeather(ctx context.Context, lat, lon float64) error {
	if a.lookup == nil {
		return nil
	}
	cond, err := a.lookup.Lookup(ctx, lat, lon)
	if err != nil {
		zlog.Warn().Msgf("weather lookup failed, signal stays as-is: %v", err)
		return err
	}
	a.mu.Lock()
	a.weather = cond
	a.mu.Unlock()
	return nil
}

// Snapshot captures all signals into an immutable Context. It never fails;
// unavailable signals are represented as absent. Synchronous and
// non-blocking: weather is whatever the last RefreshWeather resolved.
func (a *Aggregator) Snapshot() Context {
	a.mu.RLock()
	defer a.mu.RUnlock()

	snap := Context{
		Emotion:   a.emotion,
		TimeOfDay: BucketForHour(a.now().Hour()),
	}
	if a.weather != nil {
		w := *a.weather
		snap.Weather = &w
	}
	if len(a.events) > 0 {
		snap.Events = make([]CalendarEvent, len(a.events))
		copy(snap.Events, a.events)
	}
	return snap
}
