// Package spotify provides the remote music catalog client and the shared
// credential cache backing it.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru/v2"
	spotifyapi "github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"

	"github.com/moodtune/moodtune/internal/domain/track"
)

// ErrCatalog marks remote catalog failures (network, non-success status, or
// malformed response) after the single auth retry has been spent.
var ErrCatalog = errors.New("spotify: catalog request failed")

// Client is the remote catalog client. Every request authenticates through
// the shared CredentialCache.
type Client struct {
	api     *spotifyapi.Client
	creds   *CredentialCache
	timeout time.Duration

	searchCache *lru.Cache[string, []track.Track]
}

// Config represents catalog client configuration.
type Config struct {
	ClientID        string
	ClientSecret    string
	Timeout         time.Duration // per-request bound, default 10s
	SearchCacheSize int           // LRU entries, default 256
}

// New creates a catalog client with its own credential cache.
func New(cfg Config) (*Client, error) {
	creds, err := NewCredentialCache(cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cacheSize := cfg.SearchCacheSize
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, []track.Track](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search cache")
	}

	httpClient := oauth2.NewClient(context.Background(), creds)
	return &Client{
		api:         spotifyapi.New(httpClient),
		creds:       creds,
		timeout:     timeout,
		searchCache: cache,
	}, nil
}

// Search queries the remote catalog for tracks matching query. Results are
// returned in remote order, normalized to the canonical Track entity.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]track.Track, error) {
	if query == "" {
		return nil, errors.Mark(errors.New("search query is required"), ErrCatalog)
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	cacheKey := fmt.Sprintf("%s|%d", query, limit)
	if hit, ok := c.searchCache.Get(cacheKey); ok {
		return hit, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result *spotifyapi.SearchResult
	err := c.withAuthRetry(func() error {
		r, err := c.api.Search(ctx, query, spotifyapi.SearchTypeTrack, spotifyapi.Limit(limit))
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "search failed"), ErrCatalog)
	}

	if result.Tracks == nil {
		return []track.Track{}, nil
	}
	tracks := make([]track.Track, 0, len(result.Tracks.Tracks))
	for i := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(&result.Tracks.Tracks[i]))
	}

	c.searchCache.Add(cacheKey, tracks)
	return tracks, nil
}

// PlaylistTracks retrieves all tracks from a playlist in playlist order.
// Accepts a plain playlist ID, a Spotify URL, or a Spotify URI.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]track.Track, error) {
	id := extractPlaylistID(playlistID)
	if id == "" {
		return nil, errors.Mark(errors.New("invalid playlist id"), ErrCatalog)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var tracks []track.Track
	offset := 0
	limit := 100

	for {
		var page *spotifyapi.PlaylistItemPage
		err := c.withAuthRetry(func() error {
			p, err := c.api.GetPlaylistItems(ctx, spotifyapi.ID(id),
				spotifyapi.Limit(limit),
				spotifyapi.Offset(offset),
			)
			if err != nil {
				return err
			}
			page = p
			return nil
		})
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "failed to get playlist items"), ErrCatalog)
		}

		for _, item := range page.Items {
			// Episodes carry no track payload
			if item.Track.Track != nil && item.Track.Track.ID != "" {
				tracks = append(tracks, convertTrack(item.Track.Track))
			}
		}

		if len(page.Items) < limit {
			break
		}
		offset += limit
	}

	return tracks, nil
}

// withAuthRetry runs fn and, on an auth-class response, forces exactly one
// token refresh and one retry before giving up.
func (c *Client) withAuthRetry(fn func() error) error {
	err := fn()
	if err == nil || !isAuthStatus(err) {
		return err
	}
	c.creds.Invalidate()
	return fn()
}

// isAuthStatus reports whether the error is a 401/403-class catalog response.
func isAuthStatus(err error) bool {
	var se spotifyapi.Error
	if errors.As(err, &se) {
		return se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden
	}
	return false
}

// convertTrack maps a heterogeneous remote record to the canonical Track
// entity: artist names comma-joined in remote order, first album image or
// the placeholder sentinel, millisecond duration carried as time.Duration.
func convertTrack(t *spotifyapi.FullTrack) track.Track {
	names := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		names[i] = a.Name
	}

	artwork := track.PlaceholderArtwork
	if len(t.Album.Images) > 0 {
		artwork = t.Album.Images[0].URL
	}

	return track.Track{
		ID:         string(t.ID),
		Title:      t.Name,
		Artist:     strings.Join(names, ", "),
		Album:      t.Album.Name,
		Duration:   time.Duration(t.Duration) * time.Millisecond,
		ArtworkURL: artwork,
		ExternalID: string(t.ID),
		PreviewURL: t.PreviewURL,
	}
}

// extractPlaylistID extracts the playlist ID from a Spotify URL or URI.
func extractPlaylistID(input string) string {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "spotify:playlist:") {
		return strings.TrimPrefix(input, "spotify:playlist:")
	}

	if strings.Contains(input, "open.spotify.com") && strings.Contains(input, "/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) >= 2 {
			id := strings.Split(parts[len(parts)-1], "?")[0]
			return strings.TrimRight(id, "/")
		}
	}

	return input
}
