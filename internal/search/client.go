// Package search implements the HTTP client for the remote product
// search endpoint. The endpoint is an opaque collaborator: anything
// answering GET <base>?q=<query> with a {"products": [...]} JSON body
// is substitutable.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"searchbox/internal/domain"
)

// Client queries the product search endpoint.
type Client struct {
	// BaseURL is the search endpoint without query parameters,
	// e.g. "https://dummyjson.com/products/search".
	BaseURL string

	// HTTPClient is the transport. Defaults to a client with a
	// generous timeout when nil.
	HTTPClient *http.Client

	// MaxResults is passed as the limit parameter when positive.
	MaxResults int
}

// NewClient creates a search client for the given endpoint.
func NewClient(baseURL string, maxResults int) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		MaxResults: maxResults,
	}
}

// searchResponse mirrors the endpoint's body. Fields beyond products
// (total, skip, limit) are ignored.
type searchResponse struct {
	Products []domain.Product `json:"products"`
}

// Search issues one GET against the endpoint with the query text as the
// q parameter, percent-encoded. It returns the product list on a 2xx
// response with a parseable body, and an error for transport failures,
// non-2xx statuses, and unparseable bodies alike.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	params := url.Values{"q": {query}}
	if c.MaxResults > 0 {
		params.Set("limit", strconv.Itoa(c.MaxResults))
	}
	reqURL := c.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search endpoint returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return sr.Products, nil
}
