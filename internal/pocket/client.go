package pocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iksnae/bookmark-tag/internal"
)

// DefaultBaseURL is Pocket's v3 API
const DefaultBaseURL = "https://getpocket.com/v3"

const (
	pageSize = 1000
	maxPages = 50
)

// ErrMissingCredentials is returned when the consumer key or access token is empty
var ErrMissingCredentials = errors.New("pocket consumer key and access token are required")

// Client talks to the Pocket retrieve API
type Client struct {
	ConsumerKey string
	AccessToken string
	BaseURL     string
	HTTPClient  *http.Client
}

// NewClient creates a client for the public API
func NewClient(consumerKey, accessToken string) *Client {
	return &Client{
		ConsumerKey: consumerKey,
		AccessToken: accessToken,
		BaseURL:     DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Retrieve fetches one page of items
func (c *Client) Retrieve(ctx context.Context, opts RetrieveOptions) (*RetrieveResponse, error) {
	if c.ConsumerKey == "" || c.AccessToken == "" {
		return nil, ErrMissingCredentials
	}

	req := retrieveRequest{
		ConsumerKey: c.ConsumerKey,
		AccessToken: c.AccessToken,
		Count:       opts.Count,
		Offset:      opts.Offset,
	}
	if opts.Favorite {
		one := 1
		req.Favorite = &one
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(base, "/")+"/get", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=UTF-8")
	httpReq.Header.Set("X-Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("retrieve offset %d: %w", opts.Offset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := resp.Header.Get("X-Error")
		if msg == "" {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			msg = strings.TrimSpace(string(b))
		}
		return nil, fmt.Errorf("retrieve offset %d: status %d: %s", opts.Offset, resp.StatusCode, msg)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode offset %d: %w", opts.Offset, err)
	}
	if len(raw.List) == 0 {
		return nil, fmt.Errorf("decode offset %d: response has no list", opts.Offset)
	}

	out := &RetrieveResponse{Status: raw.Status}
	if err := json.Unmarshal(raw.List, &out.List); err != nil {
		return nil, fmt.Errorf("decode offset %d: %w", opts.Offset, err)
	}
	return out, nil
}

// FetchAllFavorites pages through every favorite item. It stops at the first
// short page or after maxPages pages.
func (c *Client) FetchAllFavorites(ctx context.Context) (ItemList, error) {
	all := ItemList{}

	for page := 0; page < maxPages; page++ {
		resp, err := c.Retrieve(ctx, RetrieveOptions{
			Count:    pageSize,
			Offset:   page * pageSize,
			Favorite: true,
		})
		if err != nil {
			return nil, err
		}

		for id, item := range resp.List {
			all[id] = item
		}
		internal.LogDebug("Fetched page %d: %d items (total: %d)", page, len(resp.List), len(all))

		if len(resp.List) < pageSize {
			break
		}
	}

	return all, nil
}
