package spotify

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTokenURL = "https://accounts.spotify.com/api/token" //nolint:gosec

	// renewalMargin forces proactive renewal strictly before the real
	// expiry. Applied at check time; the stored expiry is the real one.
	renewalMargin = 60 * time.Second
)

// ErrAuth marks credential exchange failures.
var ErrAuth = errors.New("spotify: credential exchange failed")

// CredentialCache owns the single client-credentials token shared by all
// catalog calls. It implements oauth2.TokenSource so it plugs directly into
// an oauth2 transport. At most one renewal is in flight at a time; callers
// that race on an expired credential all observe the same new token.
type CredentialCache struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client

	mu  sync.RWMutex
	tok *oauth2.Token

	renew singleflight.Group
}

// NewCredentialCache creates a credential cache for the given client
// credentials. One instance is created at session start and shared by every
// catalog caller.
func NewCredentialCache(clientID, clientSecret string) (*CredentialCache, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("spotify client credentials are required")
	}
	return &CredentialCache{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Token returns the cached credential while it is inside the renewal margin,
// otherwise performs a single coalesced credential exchange. A failed renewal
// keeps serving the previous credential until its real expiry; once nothing
// valid remains the failure surfaces marked with ErrAuth.
func (c *CredentialCache) Token() (*oauth2.Token, error) {
	if tok := c.fresh(); tok != nil {
		return tok, nil
	}

	v, err, _ := c.renew.Do("token", func() (any, error) {
		// Re-check: another caller may have renewed while we waited.
		if tok := c.fresh(); tok != nil {
			return tok, nil
		}

		tok, err := c.exchange()
		if err != nil {
			c.mu.RLock()
			prev := c.tok
			c.mu.RUnlock()
			if prev != nil && time.Now().Before(prev.Expiry) {
				zlog.Warn().Msgf("credential renewal failed, keeping previous token until expiry: %v", err)
				return prev, nil
			}
			return nil, errors.Mark(err, ErrAuth)
		}

		c.mu.Lock()
		c.tok = tok
		c.mu.Unlock()
		zlog.Debug().Msgf("catalog credential renewed, expires at %s", tok.Expiry.Format(time.TimeOnly))
		return tok, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

// Invalidate drops the cached credential so the next Token call performs an
// exchange. Used for the single forced refresh after an auth-class response.
func (c *CredentialCache) Invalidate() {
	c.mu.Lock()
	c.tok = nil
	c.mu.Unlock()
}

// fresh returns the cached token when now is strictly before expiry minus
// the renewal margin, nil otherwise.
func (c *CredentialCache) fresh() *oauth2.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tok != nil && time.Now().Before(c.tok.Expiry.Add(-renewalMargin)) {
		return c.tok
	}
	return nil
}

// exchange performs the client-credentials flow against the token endpoint.
func (c *CredentialCache) exchange() (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequest(http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token endpoint unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to parse token response")
	}
	if payload.AccessToken == "" || payload.ExpiresIn <= 0 {
		return nil, errors.New("token response missing access_token or expires_in")
	}

	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
		Expiry:      time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
	}, nil
}
