// Package weather provides a current-conditions lookup client backed by
// OpenWeatherMap.
package weather

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Condition represents an observed weather condition.
type Condition struct {
	Condition   string  // normalized lowercase label, e.g. "clear", "rain"
	TempC       float64 // temperature in Celsius
	Humidity    int     // relative humidity percentage
	Description string  // free-text description from the provider
}

// Client is a weather lookup client.
type Client struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

// Config represents weather client configuration.
type Config struct {
	APIKey string
}

// New creates a weather client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("weather API key is required")
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: defaultBaseURL,
		http:    resty.New().SetTimeout(10 * time.Second),
	}, nil
}

// Lookup resolves the current weather for the given coordinates.
func (c *Client) Lookup(ctx context.Context, lat, lon float64) (*Condition, error) {
	var payload struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(lat, 'f', 4, 64),
			"lon":   strconv.FormatFloat(lon, 'f', 4, 64),
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&payload).
		Get(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	if resp.IsError() {
		return nil, errors.Newf("weather endpoint returned status %d", resp.StatusCode())
	}
	if len(payload.Weather) == 0 {
		return nil, errors.New("weather response missing conditions")
	}

	return &Condition{
		Condition:   strings.ToLower(payload.Weather[0].Main),
		TempC:       payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Description: payload.Weather[0].Description,
	}, nil
}
