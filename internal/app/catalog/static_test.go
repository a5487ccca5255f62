package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtune/moodtune/internal/domain/mood"
)

func TestNewStatic_CoversEveryMood(t *testing.T) {
	s := NewStatic()

	assert.Greater(t, s.Size(), 0)
	for _, m := range mood.All() {
		tracks := s.ByMood(m)
		assert.GreaterOrEqual(t, len(tracks), 5, "mood %s", m)
		for _, tr := range tracks {
			assert.Equal(t, m, tr.Mood)
		}
	}
}

func TestStatic_ByMood_UnknownYieldsFullCatalog(t *testing.T) {
	s := NewStatic()

	tracks := s.ByMood(mood.Emotion("bogus"))
	assert.Len(t, tracks, s.Size())
}

func TestStatic_ByMood_ReturnsCopy(t *testing.T) {
	s := NewStatic()

	first := s.ByMood(mood.Happy)
	require.NotEmpty(t, first)
	first[0].Title = "mutated"

	assert.NotEqual(t, "mutated", s.ByMood(mood.Happy)[0].Title)
}

func TestStatic_ByGenre(t *testing.T) {
	s := NewStatic()

	matches := s.ByGenre("pop")
	assert.NotEmpty(t, matches)
	for _, tr := range matches {
		assert.Contains(t, strings.ToLower(tr.Genre), "pop")
	}

	assert.Empty(t, s.ByGenre("polka"))
}

func TestStatic_RandomSample(t *testing.T) {
	s := NewStatic()

	sample := s.RandomSample(10)
	assert.Len(t, sample, 10)

	seen := make(map[string]bool)
	for _, tr := range sample {
		assert.False(t, seen[tr.ID], "duplicate track %s", tr.ID)
		seen[tr.ID] = true
	}
}

func TestStatic_RandomSample_Bounds(t *testing.T) {
	s := NewStatic()

	assert.Empty(t, s.RandomSample(0))
	assert.Empty(t, s.RandomSample(-3))
	assert.Len(t, s.RandomSample(s.Size()+100), s.Size())
}
