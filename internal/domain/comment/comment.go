// Package comment provides the timestamp-anchored Comment domain entity.
package comment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Comment is a user remark anchored to a position within a track.
// Only the like count changes after creation.
type Comment struct {
	ID        string        // Comment UUID
	TrackID   string        // Track the comment belongs to
	AuthorID  string        // Author identifier
	Offset    time.Duration // Anchor position within the track
	Text      string        // Comment body
	CreatedAt time.Time     // Creation time
	Likes     int           // Current like count
}

// ParseOffset parses a "MM:SS" (or "M:SS") timestamp into a duration.
func ParseOffset(s string) (time.Duration, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, errors.Newf("invalid timestamp %q, expected MM:SS", s)
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil || mins < 0 {
		return 0, errors.Newf("invalid minutes in timestamp %q", s)
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil || secs < 0 || secs > 59 {
		return 0, errors.Newf("invalid seconds in timestamp %q", s)
	}
	return time.Duration(mins*60+secs) * time.Second, nil
}

// FormatOffset renders a duration as "M:SS".
func FormatOffset(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
