// Package api assembles and executes requests against the remote service.
// All resource operations funnel through Caller.Do, which owns credential
// headers, the per-attempt timeout, and the retry loop.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	apierrors "github.com/filevault/filevault-go/internal/errors"
	"github.com/filevault/filevault-go/internal/types"
)

const (
	headerAPIKey    = "x-api-key"
	headerAPISecret = "x-api-secret"
	headerRequestID = "X-Request-Id"
)

// Config is the mutable client configuration read by the Caller on every
// attempt. It is owned by the public Client; setters mutate it in place.
// It is not safe for concurrent mutation while requests are in flight.
type Config struct {
	BaseURL   string // no trailing slash
	APIKey    string
	APISecret string
	Timeout   time.Duration // per-attempt budget
	Retry     types.RetryPolicy
}

// Caller executes one logical request as a sequence of bounded attempts.
type Caller struct {
	http *http.Client
	cfg  *Config
}

// NewCaller wires the executor to the shared HTTP client and configuration.
// The http.Client must not carry its own Timeout; the per-attempt budget is
// enforced through a context deadline so it can be reconfigured between
// attempts.
func NewCaller(httpClient *http.Client, cfg *Config) *Caller {
	return &Caller{http: httpClient, cfg: cfg}
}

// Result is the decoded success payload of a 2xx response.
type Result struct {
	StatusCode int
	Message    string
	Data       json.RawMessage // set when the response declared JSON
	RawText    string          // set otherwise
}

// Do executes method+path with the given headers and optional body, retrying
// per the configured policy. Attempts are strictly sequential; the fixed
// delay is waited before every retried attempt. The last observed error is
// surfaced when the budget is exhausted.
func (c *Caller) Do(ctx context.Context, method, path string, header http.Header, body []byte) (*Result, error) {
	cfg := c.cfg
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, apierrors.NewUnauthorizedError("missing API key or secret; configure credentials before calling")
	}

	pol := cfg.Retry
	// One request ID spans every attempt of this logical request.
	reqID := uuid.NewString()

	var (
		res     *Result
		attempt int
	)
	op := func() error {
		if attempt > 0 {
			retriesTotal.Inc()
		}
		attempt++
		attemptsTotal.WithLabelValues(method).Inc()

		r, aerr := c.attempt(ctx, method, path, header, body, reqID)
		if aerr != nil {
			if !aerr.Transport() && !pol.Retryable(aerr.StatusCode) {
				return backoff.Permanent(aerr)
			}
			return aerr
		}
		res = r
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(pol.RetryDelay), uint64(pol.MaxRetries())),
		ctx,
	)
	if err := backoff.Retry(op, bo); err != nil {
		var ae *apierrors.Error
		if errors.As(err, &ae) {
			failuresTotal.WithLabelValues(string(ae.Code)).Inc()
		}
		return nil, err
	}
	return res, nil
}

// attempt issues a single network call bounded by the per-attempt timeout.
// The deadline timer is released on every exit path via cancel.
func (c *Caller) attempt(ctx context.Context, method, path string, header http.Header, body []byte, reqID string) (*Result, *apierrors.Error) {
	cfg := c.cfg

	actx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(actx, method, cfg.BaseURL+path, rd)
	if err != nil {
		return nil, apierrors.NewRequestError(err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerAPIKey, cfg.APIKey)
	req.Header.Set(headerAPISecret, cfg.APISecret)
	req.Header.Set(headerRequestID, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, apierrors.NewTimeoutError(cfg.Timeout, err)
		}
		return nil, apierrors.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		res := &Result{StatusCode: resp.StatusCode}
		if isJSON(resp.Header.Get("Content-Type")) {
			var env types.Envelope
			if jerr := json.Unmarshal(raw, &env); jerr != nil {
				return nil, apierrors.NewDecodeError(resp.StatusCode, raw, jerr)
			}
			res.Message = env.Message
			res.Data = env.Data
		} else {
			res.RawText = string(raw)
		}
		return res, nil
	}

	return nil, apierrors.NewHTTPError(resp.StatusCode, raw)
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "json")
}
