// Package classify provides the pluggable mood classifier capability.
package classify

import (
	"strings"

	"github.com/moodtune/moodtune/internal/domain/mood"
)

// EnergySample is a coarse audio feature vector supplied by the capture
// layer. Values mirror what a lightweight feature extractor produces.
type EnergySample struct {
	Energy float64 // mean RMS energy, 0..1
	Tempo  float64 // beats per minute
	Pitch  float64 // mean fundamental frequency in Hz
}

// Classifier maps raw input to a discrete emotion label. Implementations may
// be heuristic or model-backed; callers must not assume determinism.
type Classifier interface {
	ClassifyText(text string) mood.Emotion
	ClassifyAudioEnergy(sample EnergySample) mood.Emotion
}

// Keyword is the demo classifier: keyword counting for text and fixed
// energy/tempo thresholds for audio samples. A real inference engine can be
// swapped in behind the Classifier interface without touching callers.
type Keyword struct{}

// NewKeyword creates the demo classifier.
func NewKeyword() *Keyword {
	return &Keyword{}
}

// textKeywords in scoring order; earlier moods win ties.
var textKeywords = []struct {
	emotion  mood.Emotion
	keywords []string
}{
	{mood.Happy, []string{"happy", "joy", "great", "amazing", "wonderful", "fantastic"}},
	{mood.Sad, []string{"sad", "depressed", "down", "melancholy", "gloomy", "blue"}},
	{mood.Angry, []string{"angry", "mad", "furious", "irritated", "annoyed"}},
	{mood.Calm, []string{"calm", "peaceful", "relaxed", "serene", "tranquil"}},
	{mood.Energetic, []string{"energetic", "pumped", "hyped", "active", "dynamic"}},
	{mood.Excited, []string{"excited", "thrilled", "stoked", "can't wait"}},
	{mood.Romantic, []string{"romantic", "love", "loving", "heart"}},
}

// ClassifyText scores the text against per-mood keyword lists and returns
// the best match, or neutral when nothing matches.
func (k *Keyword) ClassifyText(text string) mood.Emotion {
	lower := strings.ToLower(text)

	best := mood.Neutral
	bestScore := 0
	for _, entry := range textKeywords {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.emotion
			bestScore = score
		}
	}
	return best
}

// ClassifyAudioEnergy applies fixed thresholds over energy, tempo and pitch.
// Rule order matters; the first match wins.
func (k *Keyword) ClassifyAudioEnergy(s EnergySample) mood.Emotion {
	switch {
	case s.Energy > 0.15 && s.Pitch > 200:
		return mood.Excited
	case s.Energy > 0.12 && s.Tempo > 140:
		return mood.Angry
	case s.Energy > 0.1 && s.Tempo > 120:
		return mood.Happy
	case s.Energy < 0.05 && s.Tempo < 80:
		return mood.Sad
	case s.Energy < 0.08 && s.Tempo < 100:
		return mood.Calm
	default:
		return mood.Neutral
	}
}

// Fixed always returns the same emotion. Test double for callers of the
// Classifier capability.
type Fixed struct {
	Emotion mood.Emotion
}

func (f Fixed) ClassifyText(string) mood.Emotion              { return f.Emotion }
func (f Fixed) ClassifyAudioEnergy(EnergySample) mood.Emotion { return f.Emotion }
