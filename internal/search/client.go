package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds a single search request.
const defaultTimeout = 15 * time.Second

// Listing is one marketplace result. Order within a response is the
// service's ranking and is preserved.
type Listing struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	URL      string  `json:"url"`
}

// Result contains the listings returned for one query.
type Result struct {
	// Query is the negative-keyword augmented query that was sent.
	Query string `json:"query"`

	// Listings are the ranked results, best match first.
	Listings []Listing `json:"listings"`

	// Count is the number of listings returned.
	Count int `json:"count"`
}

// BuildQuery renders a negative-keyword augmented query: the vehicle's
// full text followed by one "-keyword" term per exclusion. Keywords are
// trimmed of whitespace and leading dashes; blank keywords are skipped.
func BuildQuery(fullText string, exclude []string) string {
	parts := make([]string, 0, 1+len(exclude))
	if trimmed := strings.TrimSpace(fullText); trimmed != "" {
		parts = append(parts, trimmed)
	}
	for _, kw := range exclude {
		kw = strings.TrimLeft(strings.TrimSpace(kw), "-")
		if kw == "" {
			continue
		}
		parts = append(parts, "-"+kw)
	}
	return strings.Join(parts, " ")
}

// Client queries a marketplace search endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search client for the given endpoint URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Search runs a negative-keyword augmented query for one vehicle's full
// text and returns the listings in the service's rank order.
func (c *Client) Search(ctx context.Context, fullText string, exclude []string) (*Result, error) {
	query := BuildQuery(fullText, exclude)

	reqURL := fmt.Sprintf("%s?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var listings []Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &Result{
		Query:    query,
		Listings: listings,
		Count:    len(listings),
	}, nil
}
