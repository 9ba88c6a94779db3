package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tradescan/internal/contracts"
	"tradescan/pkg/logger"
	"tradescan/pkg/ratelimit"
)

// Client is the HTTP client every provider adapter goes through. It acquires
// a permit from the shared limiter before each request and retries 429/5xx
// with bounded exponential backoff. After retries are exhausted the call
// fails as Transient; the batch degrades, it never aborts.
type Client struct {
	httpClient  *http.Client
	limiter     *ratelimit.Limiter
	logger      *logger.Logger
	retryConfig RetryConfig
}

// RetryConfig holds retry behavior.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryConfig mirrors the provider budget: three attempts total.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   2,
		InitialDelay: 1 * time.Second,
		MaxDelay:     10 * time.Second,
	}
}

// New creates a client. The limiter is required: there is exactly one per
// process and it is injected, never constructed here.
func New(limiter *ratelimit.Limiter, log *logger.Logger, timeout time.Duration) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     limiter,
		logger:      log,
		retryConfig: DefaultRetryConfig(),
	}
}

// WithRetry overrides retry behavior. Tests shrink the delays.
func (c *Client) WithRetry(cfg RetryConfig) *Client {
	c.retryConfig = cfg
	return c
}

// Get performs a GET with rate limiting and retry. A non-2xx status is not
// an error here; GetJSON maps statuses to the error taxonomy.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create GET request: %w", err)
	}
	return c.do(req)
}

// GetJSON performs a GET and decodes the body into v, mapping provider
// failures into the shared taxonomy: 404 is NotFound, retry-exhausted
// 429/5xx is Transient, an unparseable body is MalformedPayload.
func (c *Client) GetJSON(ctx context.Context, url string, v interface{}) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("%w: %v", contracts.ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return contracts.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d after retries", contracts.ErrTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", contracts.ErrTransient, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", contracts.ErrTransient, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", contracts.ErrMalformedPayload, err)
	}
	return nil
}

// do executes the request under the limiter with retry.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	delay := c.retryConfig.InitialDelay
	url := req.URL.String()

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		start := time.Now()
		resp, err = c.httpClient.Do(req)
		if err == nil && !isRetryableStatus(resp.StatusCode) {
			c.logger.WithFields(map[string]interface{}{
				"url":         url,
				"status_code": resp.StatusCode,
				"duration":    time.Since(start),
			}).Debug("HTTP request completed")
			return resp, nil
		}

		if attempt == c.retryConfig.MaxRetries {
			break
		}

		if resp != nil {
			resp.Body.Close()
		}

		c.logger.WithFields(map[string]interface{}{
			"attempt": attempt + 1,
			"delay":   delay,
			"url":     url,
		}).Warn("Retrying HTTP request")

		select {
		case <-time.After(delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}

		delay *= 2
		if delay > c.retryConfig.MaxDelay {
			delay = c.retryConfig.MaxDelay
		}
	}

	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		}).Error("HTTP request failed")
		return nil, err
	}
	return resp, nil
}

// isRetryableStatus reports whether the status warrants another attempt.
func isRetryableStatus(statusCode int) bool {
	return statusCode >= 500 || statusCode == http.StatusTooManyRequests
}
