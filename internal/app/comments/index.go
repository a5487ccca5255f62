// Package comments provides the session-scoped, timestamp-anchored comment
// index.
package comments

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/moodtune/moodtune/internal/domain/comment"
)

var (
	// ErrValidation marks malformed caller input.
	ErrValidation = errors.New("comments: invalid input")
	// ErrNotFound marks operations targeting unknown comment ids.
	ErrNotFound = errors.New("comments: comment not found")
)

// DefaultWindow is the matching window around the playback position for
// ActiveAt queries.
const DefaultWindow = 5 * time.Second

// Order selects the listing order for CommentsFor. Both orderings are
// stable; ties break by insertion order.
type Order int

const (
	// ByTimestamp lists comments ascending by their anchor offset.
	ByTimestamp Order = iota
	// ByNewest lists comments most-recently-inserted first.
	ByNewest
)

type entry struct {
	comment comment.Comment
	likedBy map[string]bool
}

// Index stores comments keyed by track, anchored at a timestamp offset.
// Ownership lasts for the session; the embedding application decides
// whether anything is persisted beyond that.
type Index struct {
	mu      sync.RWMutex
	byTrack map[string][]*entry // insertion order, oldest first
	byID    map[string]*entry
	now     func() time.Time
}

// NewIndex creates an empty comment index.
func NewIndex() *Index {
	return &Index{
		byTrack: make(map[string][]*entry),
		byID:    make(map[string]*entry),
		now:     time.Now,
	}
}

// Add stores a comment anchored at offset within the track. The text must be
// non-empty after trimming whitespace; nothing is stored on validation
// failure.
func (ix *Index) Add(trackID string, offset time.Duration, text, authorID string) (comment.Comment, error) {
	if trackID == "" {
		return comment.Comment{}, errors.Mark(errors.New("track id is required"), ErrValidation)
	}
	if authorID == "" {
		return comment.Comment{}, errors.Mark(errors.New("author id is required"), ErrValidation)
	}
	if strings.TrimSpace(text) == "" {
		return comment.Comment{}, errors.Mark(errors.New("comment text is empty"), ErrValidation)
	}
	if offset < 0 {
		return comment.Comment{}, errors.Mark(errors.New("timestamp offset is negative"), ErrValidation)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	e := &entry{
		comment: comment.Comment{
			ID:        uuid.NewString(),
			TrackID:   trackID,
			AuthorID:  authorID,
			Offset:    offset,
			Text:      text,
			CreatedAt: ix.now(),
		},
		likedBy: make(map[string]bool),
	}
	ix.byTrack[trackID] = append(ix.byTrack[trackID], e)
	ix.byID[e.comment.ID] = e

	return e.comment, nil
}

// CommentsFor lists a track's comments in the requested order.
func (ix *Index) CommentsFor(trackID string, order Order) []comment.Comment {
	ix.mu.RLock()
	list := ix.byTrack[trackID]
	out := make([]comment.Comment, len(list))
	for i, e := range list {
		out[i] = e.comment
	}
	ix.mu.RUnlock()

	switch order {
	case ByNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Offset < out[j].Offset
		})
	}
	return out
}

// ActiveAt returns the comments whose anchor offset lies within window of
// the playback position, ascending by offset. window <= 0 selects
// DefaultWindow.
func (ix *Index) ActiveAt(trackID string, position, window time.Duration) []comment.Comment {
	if window <= 0 {
		window = DefaultWindow
	}

	ix.mu.RLock()
	var out []comment.Comment
	for _, e := range ix.byTrack[trackID] {
		delta := e.comment.Offset - position
		if delta < 0 {
			delta = -delta
		}
		if delta <= window {
			out = append(out, e.comment)
		}
	}
	ix.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

// ToggleLike flips authorID's like on the comment and returns the updated
// like count: exactly one like per author per comment.
func (ix *Index) ToggleLike(commentID, authorID string) (int, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	e, ok := ix.byID[commentID]
	if !ok {
		return 0, errors.Mark(errors.Newf("comment %s", commentID), ErrNotFound)
	}

	if e.likedBy[authorID] {
		delete(e.likedBy, authorID)
		e.comment.Likes--
	} else {
		e.likedBy[authorID] = true
		e.comment.Likes++
	}
	return e.comment.Likes, nil
}

// Delete removes a comment from the index.
func (ix *Index) Delete(commentID string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	e, ok := ix.byID[commentID]
	if !ok {
		return errors.Mark(errors.Newf("comment %s", commentID), ErrNotFound)
	}

	delete(ix.byID, commentID)
	list := ix.byTrack[e.comment.TrackID]
	for i, candidate := range list {
		if candidate == e {
			ix.byTrack[e.comment.TrackID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	return nil
}
