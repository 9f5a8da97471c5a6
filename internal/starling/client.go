// Package starling is a client for the Starling Bank REST API. It speaks all
// three API generations (v1 transactions, v2 transactions, v2 feed items) and
// returns typed payload structs; nothing above this package sees raw JSON.
package starling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Starling API host.
const DefaultBaseURL = "https://api.starlingbank.com"

const (
	defaultTimeout = 30 * time.Second
	backoffBase    = 500 * time.Millisecond
	backoffCap     = 8 * time.Second
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	// RequestsPerSecond throttles outgoing requests. Zero disables the
	// limiter. Starling blocks clients after bursts of quick successive
	// requests; the exact threshold is undocumented, so this stays
	// configurable rather than guessed.
	RequestsPerSecond float64
	// MaxRetries bounds retry attempts on 429 and 5xx responses.
	MaxRetries int
	Logger     zerolog.Logger
}

// Client issues authenticated requests against one Starling deployment.
// Safe for sequential use within a single export job.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
	log        zerolog.Logger
	sleep      func(time.Duration)

	// feed-API account resolution, cached for the duration of one job
	account *Account
}

// New creates a Client. The access token is held for the lifetime of the
// client and attached to every request; it is never stored globally.
func New(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL:    baseURL,
		token:      opts.AccessToken,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		maxRetries: opts.MaxRetries,
		log:        opts.Logger,
		sleep:      time.Sleep,
	}
}

// get issues an authenticated GET for path (relative to the base URL) and
// decodes the JSON response into out. Retries 429 and 5xx responses with
// exponential backoff and jitter, up to MaxRetries additional attempts.
func (c *Client) get(ctx context.Context, path string, out any) error {
	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return fmt.Errorf("waiting for rate limiter: %w", err)
			}
		}

		status, body, err := c.doGet(ctx, path)
		if err != nil {
			return err
		}

		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return &AuthError{Endpoint: path, Status: status}
		case status == http.StatusTooManyRequests || status >= 500:
			if attempt >= c.maxRetries {
				return &UpstreamError{Endpoint: path, Status: status, Body: string(body)}
			}
			delay := backoffDelay(attempt)
			c.log.Warn().Str("endpoint", path).Int("status", status).
				Dur("backoff", delay).Msg("retrying throttled request")
			c.sleep(delay)
			continue
		case status < 200 || status > 299:
			return &UpstreamError{Endpoint: path, Status: status, Body: string(body)}
		}

		if err := json.Unmarshal(body, out); err != nil {
			return &UpstreamError{Endpoint: path, Status: status, Err: fmt.Errorf("decoding response: %w", err)}
		}
		return nil
	}
}

func (c *Client) doGet(ctx context.Context, path string) (int, []byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("endpoint", path).Msg("GET")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &UpstreamError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &UpstreamError{Endpoint: path, Status: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return resp.StatusCode, body, nil
}

// backoffDelay returns the exponential backoff for attempt (0-based),
// jittered between 50% and 150% of the nominal delay.
func backoffDelay(attempt int) time.Duration {
	d := backoffBase << uint(attempt)
	if d > backoffCap {
		d = backoffCap
	}
	return time.Duration(rand.Int63n(int64(d)) + int64(d)/2)
}
