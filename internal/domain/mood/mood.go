// Package mood provides the Emotion domain type.
package mood

import "strings"

// Emotion is a closed-set mood label driving recommendation.
type Emotion string

const (
	Happy     Emotion = "happy"
	Sad       Emotion = "sad"
	Calm      Emotion = "calm"
	Energetic Emotion = "energetic"
	Excited   Emotion = "excited"
	Romantic  Emotion = "romantic"
	Angry     Emotion = "angry"
	Neutral   Emotion = "neutral"
)

// All returns every emotion in a stable order.
func All() []Emotion {
	return []Emotion{Happy, Sad, Calm, Energetic, Excited, Romantic, Angry, Neutral}
}

// Valid reports whether e is a member of the closed set.
func (e Emotion) Valid() bool {
	switch e {
	case Happy, Sad, Calm, Energetic, Excited, Romantic, Angry, Neutral:
		return true
	}
	return false
}

// Parse maps a free-form label to an Emotion.
// The second return value is false when the label is not in the closed set.
func Parse(s string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	if e.Valid() {
		return e, true
	}
	return "", false
}
