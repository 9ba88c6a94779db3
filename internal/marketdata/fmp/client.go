// Package fmp adapts the Financial Modeling Prep REST API: quotes, daily
// history, company profiles, TTM ratios, growth, and headlines.
package fmp

import (
	"fmt"
	"net/url"

	"tradescan/pkg/config"
	"tradescan/pkg/httputil"
)

// Client talks to FMP through the shared rate-limited HTTP client.
type Client struct {
	http    *httputil.Client
	baseURL string
	apiKey  string
}

// New creates an FMP client.
func New(cfg config.FMPConfig, http *httputil.Client) *Client {
	return &Client{
		http:    http,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// endpoint builds a request URL with the API key and extra query parameters.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
}
