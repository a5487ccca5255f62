// Package httpapi exposes the recommendation core over a thin JSON surface.
// The view layer is an external collaborator; it calls these endpoints and
// renders whatever comes back.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/moodtune/moodtune/internal/app/ambient"
	"github.com/moodtune/moodtune/internal/app/classify"
	"github.com/moodtune/moodtune/internal/app/comments"
	"github.com/moodtune/moodtune/internal/app/recommend"
	"github.com/moodtune/moodtune/internal/domain/comment"
	"github.com/moodtune/moodtune/internal/domain/mood"
	"github.com/moodtune/moodtune/internal/domain/track"
)

// Server wires the core components behind HTTP handlers.
type Server struct {
	engine     *recommend.Engine
	aggregator *ambient.Aggregator
	classifier classify.Classifier
	comments   *comments.Index
}

// New creates the API server.
func New(engine *recommend.Engine, aggregator *ambient.Aggregator, classifier classify.Classifier, index *comments.Index) *Server {
	return &Server{
		engine:     engine,
		aggregator: aggregator,
		classifier: classifier,
		comments:   index,
	}
}

// Routes returns the HTTP mux for the API.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /api/playlists", s.handlePlaylists)
	mux.HandleFunc("POST /api/mood", s.handleMood)
	mux.HandleFunc("GET /api/tracks/{trackID}/comments", s.handleListComments)
	mux.HandleFunc("POST /api/tracks/{trackID}/comments", s.handleAddComment)
	mux.HandleFunc("POST /api/comments/{commentID}/like", s.handleToggleLike)
	mux.HandleFunc("DELETE /api/comments/{commentID}", s.handleDeleteComment)
	return mux
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "count must be a non-negative integer")
			return
		}
		count = n
	}

	snap := s.aggregator.Snapshot()
	tracks := s.engine.RecommendedTracks(r.Context(), snap, count)

	writeJSON(w, http.StatusOK, map[string]any{
		"context": contextJSON(snap),
		"tracks":  tracksJSON(tracks),
	})
}

func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	snap := s.aggregator.Snapshot()
	playlists := s.engine.ContextualPlaylists(snap)

	out := make([]map[string]any, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, map[string]any{
			"title":       p.Title,
			"description": p.Description,
			"seeds":       p.Seeds,
			"accent":      p.Accent,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"context":   contextJSON(snap),
		"playlists": out,
	})
}

// handleMood sets the current emotion, either directly or via the
// classifier over free text or an audio energy sample.
func (s *Server) handleMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Emotion string `json:"emotion"`
		Text    string `json:"text"`
		Energy  *struct {
			Energy float64 `json:"energy"`
			Tempo  float64 `json:"tempo"`
			Pitch  float64 `json:"pitch"`
		} `json:"energy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var resolved mood.Emotion
	switch {
	case req.Emotion != "":
		e, ok := mood.Parse(req.Emotion)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown emotion")
			return
		}
		resolved = e
	case req.Text != "":
		resolved = s.classifier.ClassifyText(req.Text)
	case req.Energy != nil:
		resolved = s.classifier.ClassifyAudioEnergy(classify.EnergySample{
			Energy: req.Energy.Energy,
			Tempo:  req.Energy.Tempo,
			Pitch:  req.Energy.Pitch,
		})
	default:
		writeError(w, http.StatusBadRequest, "emotion, text, or energy is required")
		return
	}

	s.aggregator.SetEmotion(resolved)
	writeJSON(w, http.StatusOK, map[string]any{"emotion": resolved})
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	trackID := r.PathValue("trackID")

	// position query switches to active-window mode
	if v := r.URL.Query().Get("position"); v != "" {
		pos, err := strconv.Atoi(v)
		if err != nil || pos < 0 {
			writeError(w, http.StatusBadRequest, "position must be a non-negative integer")
			return
		}
		window := time.Duration(0)
		if wv := r.URL.Query().Get("window"); wv != "" {
			n, err := strconv.Atoi(wv)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "window must be a non-negative integer")
				return
			}
			window = time.Duration(n) * time.Second
		}
		active := s.comments.ActiveAt(trackID, time.Duration(pos)*time.Second, window)
		writeJSON(w, http.StatusOK, map[string]any{"comments": commentsJSON(active)})
		return
	}

	order := comments.ByTimestamp
	if r.URL.Query().Get("order") == "newest" {
		order = comments.ByNewest
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"comments": commentsJSON(s.comments.CommentsFor(trackID, order)),
	})
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	trackID := r.PathValue("trackID")

	var req struct {
		Timestamp string `json:"timestamp"` // "MM:SS"
		OffsetSec *int   `json:"offset_sec"`
		Text      string `json:"text"`
		AuthorID  string `json:"author_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var offset time.Duration
	switch {
	case req.Timestamp != "":
		parsed, err := comment.ParseOffset(req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		offset = parsed
	case req.OffsetSec != nil:
		offset = time.Duration(*req.OffsetSec) * time.Second
	default:
		writeError(w, http.StatusBadRequest, "timestamp or offset_sec is required")
		return
	}

	c, err := s.comments.Add(trackID, offset, req.Text, req.AuthorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, commentJSON(c))
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AuthorID string `json:"author_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AuthorID == "" {
		writeError(w, http.StatusBadRequest, "author_id is required")
		return
	}

	likes, err := s.comments.ToggleLike(r.PathValue("commentID"), req.AuthorID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"likes": likes})
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Delete(r.PathValue("commentID")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps the comment error taxonomy onto HTTP statuses.
// Validation and not-found surface directly; there is no fallback here.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, comments.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		zlog.Error().Msgf("unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Error().Msgf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func contextJSON(snap ambient.Context) map[string]any {
	out := map[string]any{
		"time_of_day": snap.TimeOfDay,
	}
	if snap.Emotion != "" {
		out["emotion"] = snap.Emotion
	}
	if snap.Weather != nil {
		out["weather"] = map[string]any{
			"condition":   snap.Weather.Condition,
			"temp_c":      snap.Weather.TempC,
			"humidity":    snap.Weather.Humidity,
			"description": snap.Weather.Description,
		}
	}
	if len(snap.Events) > 0 {
		events := make([]map[string]any, 0, len(snap.Events))
		for _, ev := range snap.Events {
			events = append(events, map[string]any{
				"title":    ev.Title,
				"category": ev.Category,
			})
		}
		out["events"] = events
	}
	return out
}

func tracksJSON(tracks []track.Track) []map[string]any {
	out := make([]map[string]any, 0, len(tracks))
	for _, t := range tracks {
		entry := map[string]any{
			"id":       t.ID,
			"title":    t.Title,
			"artist":   t.Artist,
			"album":    t.Album,
			"duration": t.DisplayDuration(),
			"artwork":  t.ArtworkURL,
		}
		if t.Genre != "" {
			entry["genre"] = t.Genre
		}
		if t.Mood != "" {
			entry["mood"] = t.Mood
		}
		if t.PreviewURL != "" {
			entry["preview_url"] = t.PreviewURL
		}
		out = append(out, entry)
	}
	return out
}

func commentJSON(c comment.Comment) map[string]any {
	return map[string]any{
		"id":         c.ID,
		"track_id":   c.TrackID,
		"author_id":  c.AuthorID,
		"timestamp":  comment.FormatOffset(c.Offset),
		"offset_sec": int(c.Offset / time.Second),
		"text":       c.Text,
		"created_at": c.CreatedAt,
		"likes":      c.Likes,
	}
}

func commentsJSON(list []comment.Comment) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, c := range list {
		out = append(out, commentJSON(c))
	}
	return out
}
