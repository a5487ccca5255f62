// Package ambient aggregates environmental signals into an immutable
// recommendation context.
package ambient

import (
	"strings"
	"time"

	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/infra/weather"
)

// TimeOfDay is the wall-clock bucket for the current hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// BucketForHour maps an hour of day to its bucket: [5,12) morning,
// [12,17) afternoon, [17,21) evening, everything else night.
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// EventCategory is the closed set of calendar event categories that map to
// playlists.
type EventCategory string

const (
	EventExercise EventCategory = "exercise"
	EventStudy    EventCategory = "study"
	EventRomantic EventCategory = "romantic"
	EventOther    EventCategory = "other"
)

// CalendarEvent represents one event from today's calendar.
type CalendarEvent struct {
	Title    string
	Start    time.Time
	Category EventCategory
}

// CategorizeEvent classifies an event title into a playlist category by
// keyword matching.
func CategorizeEvent(title string) EventCategory {
	text := strings.ToLower(title)
	switch {
	case containsAny(text, "workout", "gym", "run", "exercise", "training"):
		return EventExercise
	case containsAny(text, "study", "exam", "homework", "class", "lecture"):
		return EventStudy
	case containsAny(text, "date", "romantic", "anniversary", "wedding"):
		return EventRomantic
	default:
		return EventOther
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Context is an immutable snapshot of all signals used for one
// recommendation request. Absent signals are the zero value (empty Emotion,
// nil Weather, empty Events).
type Context struct {
	Emotion   mood.Emotion
	Weather   *weather.Condition
	TimeOfDay TimeOfDay
	Events    []CalendarEvent
}
