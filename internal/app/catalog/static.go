// Package catalog provides the in-memory fallback track dataset.
package catalog

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"strings"
	"time"

	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/domain/track"
)

// Static is the deterministic fallback catalog, loaded once at process start
// and never mutated. It has no failure mode.
type Static struct {
	tracks []track.Track
	byMood map[mood.Emotion][]track.Track
}

// NewStatic builds the catalog from the built-in dataset.
func NewStatic() *Static {
	s := &Static{
		tracks: builtin,
		byMood: make(map[mood.Emotion][]track.Track),
	}
	for _, t := range builtin {
		s.byMood[t.Mood] = append(s.byMood[t.Mood], t)
	}
	return s
}

// Size returns the number of tracks in the catalog.
func (s *Static) Size() int {
	return len(s.tracks)
}

// ByMood returns the tracks tagged with the given mood in authored order.
// An unrecognized mood yields the full catalog in stable order, so callers
// truncating to a count still get a sensible prefix.
func (s *Static) ByMood(m mood.Emotion) []track.Track {
	if list, ok := s.byMood[m]; ok {
		out := make([]track.Track, len(list))
		copy(out, list)
		return out
	}
	out := make([]track.Track, len(s.tracks))
	copy(out, s.tracks)
	return out
}

// ByGenre returns tracks whose genre contains the substring,
// case-insensitively, in authored order.
func (s *Static) ByGenre(substring string) []track.Track {
	needle := strings.ToLower(substring)
	var out []track.Track
	for _, t := range s.tracks {
		if strings.Contains(strings.ToLower(t.Genre), needle) {
			out = append(out, t)
		}
	}
	return out
}

// RandomSample returns min(count, catalog size) distinct tracks in shuffled,
// non-reproducible order.
func (s *Static) RandomSample(count int) []track.Track {
	if count <= 0 {
		return []track.Track{}
	}
	if count > len(s.tracks) {
		count = len(s.tracks)
	}

	shuffled := make([]track.Track, len(s.tracks))
	copy(shuffled, s.tracks)

	rng := newRNG()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count]
}

// newRNG seeds a RNG from crypto entropy, falling back to the clock.
func newRNG() *rand.Rand {
	var seed int64
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	} else {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
