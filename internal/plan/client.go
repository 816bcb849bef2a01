package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// FetchError wraps an upstream failure with a coarse reason used for
// fallback accounting.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string { return e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// Fallback reasons reported when the upstream plan API cannot be used.
const (
	ReasonTransport = "transport"
	ReasonStatus    = "status"
	ReasonDecode    = "decode"
)

// Client calls the external plan-generation API. Zero-value fields fall back
// to sensible defaults; the HTTP client is injectable for tests.
type Client struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type upstreamRequest struct {
	Prompt string `json:"prompt"`
	Period Period `json:"period"`
}

// Fetch posts the prompt and period to the upstream and decodes the plan.
// Failures come back as *FetchError so the caller can account for them.
func (c *Client) Fetch(ctx context.Context, prompt string, period Period) (*Plan, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(upstreamRequest{Prompt: prompt, Period: period})
	if err != nil {
		return nil, &FetchError{Reason: ReasonDecode, Err: fmt.Errorf("marshal plan request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &FetchError{Reason: ReasonTransport, Err: fmt.Errorf("create plan request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: ReasonTransport, Err: fmt.Errorf("execute plan request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Reason: ReasonTransport, Err: fmt.Errorf("read plan response: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Reason: ReasonStatus, Err: fmt.Errorf("plan request failed with status %d", resp.StatusCode)}
	}

	var plan Plan
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, &FetchError{Reason: ReasonDecode, Err: fmt.Errorf("decode plan response: %w", err)}
	}
	if !plan.Valid() || plan.Period != period {
		return nil, &FetchError{Reason: ReasonDecode, Err: fmt.Errorf("plan response shape does not match period %q", period)}
	}

	return &plan, nil
}
