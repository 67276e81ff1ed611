// Package connector pushes scheduled blocks to external services. All
// connectors default to dry-run: nothing leaves the process unless the caller
// explicitly asks for a live apply.
package connector

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotConfigured means the connector is missing a token or credentials.
	ErrNotConfigured = errors.New("connector is not configured")
	// ErrRetryExhausted means a request kept failing after all retry attempts.
	ErrRetryExhausted = errors.New("retries exhausted")
)

const (
	maxRetries     = 5
	retryWait      = 500 * time.Millisecond
	retryMaxWait   = 16 * time.Second
	requestTimeout = 15 * time.Second
)

// PushItem is one scheduled block prepared for an external service.
type PushItem struct {
	TaskID      string
	Title       string
	Description string
	StartTS     *time.Time
	EndTS       *time.Time
}

// Result records the outcome of pushing a single item.
type Result struct {
	TaskID     string
	ExternalID string
	Success    bool
	Reason     string
}

// Preview summarizes what a live apply would send. No network calls happen
// when building one.
type Preview struct {
	Count  int
	Sample []map[string]any
}

func newPreview(payloads []map[string]any) Preview {
	sample := payloads
	if len(sample) > 5 {
		sample = sample[:5]
	}
	return Preview{Count: len(payloads), Sample: sample}
}

// newHTTPClient returns a resty client with the retry policy shared by all
// connectors: exponential backoff on network errors, 408, 429 and 5xx, and a
// Retry-After header on 429 takes precedence over the computed wait.
func newHTTPClient() *resty.Client {
	client := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(maxRetries - 1).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait)

	client.AddRetryCondition(retryCondition)
	client.SetRetryAfter(retryAfter)
	return client
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

func retryAfter(_ *resty.Client, r *resty.Response) (time.Duration, error) {
	if r == nil || r.StatusCode() != 429 {
		return 0, nil
	}
	if header := r.Header().Get("Retry-After"); header != "" {
		if secs, err := strconv.ParseFloat(header, 64); err == nil && secs >= 0 {
			return time.Duration(secs * float64(time.Second)), nil
		}
	}
	return 0, nil
}
