package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtune/moodtune/internal/app/ambient"
	"github.com/moodtune/moodtune/internal/app/catalog"
	"github.com/moodtune/moodtune/internal/app/classify"
	"github.com/moodtune/moodtune/internal/app/comments"
	"github.com/moodtune/moodtune/internal/app/recommend"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	engine, err := recommend.NewEngine(nil, catalog.NewStatic(), nil)
	require.NoError(t, err)

	aggregator := ambient.NewAggregator(nil, ambient.WithClock(func() time.Time {
		return time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)
	}))

	api := New(engine, aggregator, classify.NewKeyword(), comments.NewIndex())
	srv := httptest.NewServer(api.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleRecommendations(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/recommendations?count=3")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	tracks := body["tracks"].([]any)
	assert.Len(t, tracks, 3)

	ctx := body["context"].(map[string]any)
	assert.Equal(t, "morning", ctx["time_of_day"])
}

func TestHandleRecommendations_BadCount(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/recommendations?count=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePlaylists(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/playlists")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	playlists := body["playlists"].([]any)
	// No weather signal and no events: only the time-of-day playlist.
	require.Len(t, playlists, 1)
	entry := playlists[0].(map[string]any)
	assert.Equal(t, "Morning Boost", entry["title"])
}

func TestHandleMood(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		payload    string
		wantStatus int
		wantMood   string
	}{
		{
			name:       "manual emotion",
			payload:    `{"emotion":"calm"}`,
			wantStatus: http.StatusOK,
			wantMood:   "calm",
		},
		{
			name:       "text classification",
			payload:    `{"text":"what a great and happy day"}`,
			wantStatus: http.StatusOK,
			wantMood:   "happy",
		},
		{
			name:       "energy classification",
			payload:    `{"energy":{"energy":0.03,"tempo":70,"pitch":100}}`,
			wantStatus: http.StatusOK,
			wantMood:   "sad",
		},
		{
			name:       "unknown emotion",
			payload:    `{"emotion":"grumpy"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/mood", "application/json", strings.NewReader(tt.payload))
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			if tt.wantMood != "" {
				assert.Equal(t, tt.wantMood, body["emotion"])
			}
		})
	}
}

func TestCommentLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create
	resp, err := http.Post(srv.URL+"/api/tracks/t1/comments", "application/json",
		strings.NewReader(`{"timestamp":"1:23","text":"great drop","author_id":"u1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	commentID := created["id"].(string)
	assert.Equal(t, "1:23", created["timestamp"])
	assert.Equal(t, float64(83), created["offset_sec"])

	// List
	resp, err = http.Get(srv.URL + "/api/tracks/t1/comments")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)["comments"].([]any)
	require.Len(t, list, 1)

	// Active at a nearby position
	resp, err = http.Get(srv.URL + "/api/tracks/t1/comments?position=80")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	active := decodeBody(t, resp)["comments"].([]any)
	require.Len(t, active, 1)

	// Like
	resp, err = http.Post(srv.URL+"/api/comments/"+commentID+"/like", "application/json",
		strings.NewReader(`{"author_id":"u2"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["likes"])

	// Delete
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/comments/"+commentID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Gone afterwards
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAddComment_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty text", payload: `{"timestamp":"0:10","text":"  ","author_id":"u1"}`},
		{name: "bad timestamp", payload: `{"timestamp":"1:99","text":"hi","author_id":"u1"}`},
		{name: "no anchor", payload: `{"text":"hi","author_id":"u1"}`},
		{name: "missing author", payload: `{"timestamp":"0:10","text":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/tracks/t1/comments", "application/json",
				strings.NewReader(tt.payload))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
