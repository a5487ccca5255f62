package spotify

import (
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	spotifyapi "github.com/zmb3/spotify/v2"

	"github.com/moodtune/moodtune/internal/domain/track"
)

func TestConvertTrack(t *testing.T) {
	tests := []struct {
		name  string
		input spotifyapi.FullTrack
		want  track.Track
	}{
		{
			name: "multiple artists joined in remote order",
			input: spotifyapi.FullTrack{
				SimpleTrack: spotifyapi.SimpleTrack{
					ID:       "abc123",
					Name:     "Duet",
					Duration: 125000,
					Artists: []spotifyapi.SimpleArtist{
						{Name: "First"},
						{Name: "Second"},
					},
					PreviewURL: "https://p.example/preview.mp3",
				},
				Album: spotifyapi.SimpleAlbum{
					Name: "Album",
					Images: []spotifyapi.Image{
						{URL: "https://i.example/cover-large.jpg"},
						{URL: "https://i.example/cover-small.jpg"},
					},
				},
			},
			want: track.Track{
				ID:         "abc123",
				Title:      "Duet",
				Artist:     "First, Second",
				Album:      "Album",
				Duration:   125 * time.Second,
				ArtworkURL: "https://i.example/cover-large.jpg",
				ExternalID: "abc123",
				PreviewURL: "https://p.example/preview.mp3",
			},
		},
		{
			name: "no images falls back to placeholder",
			input: spotifyapi.FullTrack{
				SimpleTrack: spotifyapi.SimpleTrack{
					ID:       "xyz",
					Name:     "Solo",
					Duration: 61000,
					Artists:  []spotifyapi.SimpleArtist{{Name: "Only"}},
				},
				Album: spotifyapi.SimpleAlbum{Name: "Single"},
			},
			want: track.Track{
				ID:         "xyz",
				Title:      "Solo",
				Artist:     "Only",
				Album:      "Single",
				Duration:   61 * time.Second,
				ArtworkURL: track.PlaceholderArtwork,
				ExternalID: "xyz",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertTrack(&tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAuthStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unauthorized",
			err:  spotifyapi.Error{Status: http.StatusUnauthorized, Message: "token expired"},
			want: true,
		},
		{
			name: "forbidden",
			err:  spotifyapi.Error{Status: http.StatusForbidden, Message: "bad scope"},
			want: true,
		},
		{
			name: "rate limited is not auth",
			err:  spotifyapi.Error{Status: http.StatusTooManyRequests, Message: "slow down"},
			want: false,
		},
		{
			name: "wrapped unauthorized",
			err:  errors.Wrap(spotifyapi.Error{Status: http.StatusUnauthorized}, "search failed"),
			want: true,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAuthStatus(tt.err))
		})
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain id",
			input: "37i9dQZF1DXcBWIGoYBM5M",
			want:  "37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name:  "spotify uri",
			input: "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M",
			want:  "37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name:  "web url",
			input: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			want:  "37i9dQZF1DXcBWIGoYBM5M",
		},
		{
			name:  "web url with query",
			input: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abcd",
			want:  "37i9dQZF1DXcBWIGoYBM5M",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPlaylistID(tt.input))
		})
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestClient_WithAuthRetry_RetriesExactlyOnce(t *testing.T) {
	endpoint := &tokenEndpoint{token: "tok-1", expiresIn: 3600}
	cache, _ := newTestCache(t, endpoint)
	c := &Client{creds: cache}

	// Prime the credential so the forced refresh is observable.
	_, err := cache.Token()
	require.NoError(t, err)
	require.Equal(t, int64(1), endpoint.calls.Load())

	calls := 0
	err = c.withAuthRetry(func() error {
		calls++
		return spotifyapi.Error{Status: http.StatusUnauthorized, Message: "token expired"}
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls, "auth failure gets one refresh and one retry, then gives up")

	// The retry invalidated the credential; the next Token call exchanges.
	_, err = cache.Token()
	require.NoError(t, err)
	assert.Equal(t, int64(2), endpoint.calls.Load())
}

func TestClient_WithAuthRetry_NonAuthErrorRunsOnce(t *testing.T) {
	endpoint := &tokenEndpoint{token: "tok-1", expiresIn: 3600}
	cache, _ := newTestCache(t, endpoint)
	c := &Client{creds: cache}

	_, err := cache.Token()
	require.NoError(t, err)

	calls := 0
	err = c.withAuthRetry(func() error {
		calls++
		return errors.New("connection reset")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)

	// The credential survives a non-auth failure.
	_, err = cache.Token()
	require.NoError(t, err)
	assert.Equal(t, int64(1), endpoint.calls.Load())
}

func TestClient_WithAuthRetry_SuccessRunsOnce(t *testing.T) {
	endpoint := &tokenEndpoint{token: "tok-1", expiresIn: 3600}
	cache, _ := newTestCache(t, endpoint)
	c := &Client{creds: cache}

	calls := 0
	err := c.withAuthRetry(func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
