package filevault

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Option configures a Client during construction in New.
//
// Options are applied in order and must be deterministic and side-effect
// free. Transport-related options (like debug logging) wrap whatever
// transport the client holds at the time they run.
type Option func(*Client) error

// WithAuth sets the credential pair attached to every request.
func WithAuth(apiKey, apiSecret string) Option {
	return func(c *Client) error {
		c.cfg.APIKey = apiKey
		c.cfg.APISecret = apiSecret
		return nil
	}
}

// WithHTTPTimeout sets the per-attempt timeout.
//
// The timeout bounds a single attempt (connection, TLS handshake, redirects,
// and reading the response); a retried request gets a fresh budget for each
// attempt. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.cfg.Timeout = d
		return nil
	}
}

// WithRetryPolicy sets the retry policy applied to every request.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) error {
		if p.RetryDelay < 0 {
			return fmt.Errorf("retry delay must be >= 0")
		}
		c.cfg.Retry = p
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client, e.g. to install a
// custom transport in tests. The client should not carry its own Timeout;
// the per-attempt budget is enforced via context deadlines.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) error {
		if h == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.http = h
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and may include headers and body payloads in logs.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// envSettings is the environment surface read by NewFromEnv, prefixed with
// FILEVAULT_ (e.g. FILEVAULT_BASE_URL, FILEVAULT_API_KEY).
type envSettings struct {
	BaseURL     string        `envconfig:"BASE_URL" required:"true"`
	APIKey      string        `envconfig:"API_KEY"`
	APISecret   string        `envconfig:"API_SECRET"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	MaxRetries  int           `envconfig:"MAX_RETRIES" default:"0"`
	RetryDelay  time.Duration `envconfig:"RETRY_DELAY" default:"300ms"`
	RetryOn     []int         `envconfig:"RETRY_ON"`
}

// NewFromEnv constructs a Client from FILEVAULT_* environment variables.
// Explicit options are applied after the environment and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	var s envSettings
	if err := envconfig.Process("filevault", &s); err != nil {
		return nil, err
	}
	all := []Option{
		WithAuth(s.APIKey, s.APISecret),
		WithHTTPTimeout(s.HTTPTimeout),
		WithRetryPolicy(RetryPolicy{
			Retries:    s.MaxRetries,
			RetryDelay: s.RetryDelay,
			RetryOn:    s.RetryOn,
		}),
	}
	all = append(all, opts...)
	return New(s.BaseURL, all...), nil
}
