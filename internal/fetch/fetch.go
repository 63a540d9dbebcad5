// Package fetch wraps outbound JSON calls with a timeout, status-based error
// classification and bounded exponential-backoff retry. Every provider
// adapter goes through this client so retry policy lives in one place.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrNotFound marks a permanent failure: the upstream confirmed the resource
// does not exist (HTTP 404). Never retried.
var ErrNotFound = errors.New("not found")

// ErrUpstream marks a transient failure: 5xx responses and transport or
// timeout errors. Retried up to the configured attempt limit.
var ErrUpstream = errors.New("upstream error")

const (
	backoffBase = 500 * time.Millisecond
	backoffCap  = 4 * time.Second
)

type Client struct {
	http     *http.Client
	attempts int
}

// NewClient returns a client applying the given per-request timeout and total
// attempt count (first try included) to every call.
func NewClient(timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		attempts: maxAttempts,
	}
}

// GetJSON issues a GET against rawURL with the given headers and query
// params, decoding the response body into out. Transient failures are
// retried with exponential backoff; exhausting the attempts returns the last
// transient error.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, params url.Values, out any) error {
	u := rawURL
	if len(params) > 0 {
		u = rawURL + "?" + params.Encode()
	}

	b := retry.NewExponential(backoffBase)
	b = retry.WithCappedDuration(backoffCap, b)
	b = retry.WithMaxRetries(uint64(c.attempts-1), b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := c.getOnce(ctx, u, headers, out)
		if errors.Is(err, ErrUpstream) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) getOnce(ctx context.Context, u string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
