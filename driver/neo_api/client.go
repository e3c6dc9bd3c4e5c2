package neo_api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"cosmowatch/config"
)

// Client talks to the NASA NeoWs REST API. Pure I/O adapter; the gateway
// layer maps its response types onto domain values.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a NeoWs client from the NASA section of the config.
func NewClient(cfg config.NASAConfig, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ClientTimeout,
		},
		logger: logger,
	}
}

// FetchFeed retrieves the close-approach feed for a YYYY-MM-DD date range.
func (c *Client) FetchFeed(ctx context.Context, startDate, endDate string) (*FeedResponse, error) {
	params := url.Values{
		"start_date": {startDate},
		"end_date":   {endDate},
		"api_key":    {c.apiKey},
	}
	fullURL := fmt.Sprintf("%s/feed?%s", c.baseURL, params.Encode())

	var feed FeedResponse
	if err := c.doRequest(ctx, fullURL, "feed", &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

// FetchNeo retrieves the detail record of a single asteroid by its NeoWs identifier.
func (c *Client) FetchNeo(ctx context.Context, asteroidID string) (*NeoObject, error) {
	params := url.Values{
		"api_key": {c.apiKey},
	}
	fullURL := fmt.Sprintf("%s/neo/%s?%s", c.baseURL, url.PathEscape(asteroidID), params.Encode())

	var neo NeoObject
	if err := c.doRequest(ctx, fullURL, "lookup", &neo); err != nil {
		return nil, err
	}
	return &neo, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL, source string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("NeoWs API error", "source", source, "status", resp.StatusCode)
		return fmt.Errorf("NeoWs API error: status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
