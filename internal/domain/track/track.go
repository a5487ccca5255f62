// Package track provides the Track domain entity.
package track

import (
	"fmt"
	"time"

	"github.com/moodtune/moodtune/internal/domain/mood"
)

// PlaceholderArtwork is the artwork sentinel used when a catalog record
// carries no images.
const PlaceholderArtwork = "/images/cover-placeholder.png"

// Track represents a canonical song record, used uniformly regardless of
// source (remote catalog or static dataset). Immutable once constructed;
// two tracks with the same ID are the same entity.
type Track struct {
	ID         string        // Unique within the source catalog
	Title      string        // Track title
	Artist     string        // Comma-joined artist names, remote order preserved
	Album      string        // Album name
	Duration   time.Duration // Track length
	ArtworkURL string        // Album art URI, PlaceholderArtwork when unknown
	Genre      string        // Genre tag
	Mood       mood.Emotion  // Mood tag, empty when untagged
	ExternalID string        // Remote catalog ID, empty for static tracks
	PreviewURL string        // Audio preview URI, optional
}

// DisplayDuration renders the duration as "M:SS" with floor-division minutes
// and zero-padded seconds.
func (t Track) DisplayDuration() string {
	secs := int(t.Duration / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
