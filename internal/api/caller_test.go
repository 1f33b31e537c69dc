package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apierrors "github.com/filevault/filevault-go/internal/errors"
	"github.com/filevault/filevault-go/internal/types"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func testCaller(baseURL string, pol types.RetryPolicy) *Caller {
	return NewCaller(&http.Client{}, &Config{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		APISecret: "test-secret",
		Timeout:   time.Second,
		Retry:     pol,
	})
}

func writeEnvelope(w http.ResponseWriter, status int, data string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"status":%d,"message":"ok","data":%s}`, status, data)
}

func asClassified(t *testing.T, err error) *apierrors.Error {
	t.Helper()
	var ae *apierrors.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected classified error, got %T: %v", err, err)
	}
	return ae
}

func TestDo_RetriesOnConfiguredStatus(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, 200, `{"_id":"f1"}`)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{Retries: 2, RetryDelay: time.Millisecond, RetryOn: []int{503}})
	res, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(res.Data) != `{"_id":"f1"}` {
		t.Fatalf("unexpected data: %s", res.Data)
	}
	if n := hits.Load(); n != 3 {
		t.Fatalf("server hit %d times, want 3", n)
	}
}

func TestDo_SurfacesLastErrorAfterBudget(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{Retries: 1, RetryDelay: time.Millisecond, RetryOn: []int{500}})
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/metrics", nil, nil)
	ae := asClassified(t, err)
	if ae.StatusCode != 500 || ae.Code != apierrors.CodeUnknown {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("server hit %d times, want 2", n)
	}
}

func TestDo_NoRetryWhenStatusNotRetryable(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"file not found"}`)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{Retries: 3, RetryDelay: time.Millisecond, RetryOn: []int{503}})
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files/metadata/x", nil, nil)
	ae := asClassified(t, err)
	if ae.Code != apierrors.CodeNotFound || ae.Message != "file not found" {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("server hit %d times, want 1", n)
	}
}

func TestDo_ZeroRetriesFailsImmediately(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	// 503 is in the retryable set, but the budget allows no retries.
	c := testCaller(srv.URL, types.RetryPolicy{Retries: 0, RetryDelay: time.Second, RetryOn: []int{503}})
	start := time.Now()
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("no delay should be waited with a zero budget; took %s", elapsed)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("server hit %d times, want 1", n)
	}
}

func TestDo_MissingCredentials(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{})
	c.cfg.APISecret = ""
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil)
	ae := asClassified(t, err)
	if ae.Code != apierrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if n := hits.Load(); n != 0 {
		t.Fatalf("no network call should be made; server hit %d times", n)
	}
}

func TestDo_TransportErrorAlwaysRetried(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, io.ErrUnexpectedEOF
	})
	// Empty retryable set: transport failures retry regardless.
	c := NewCaller(&http.Client{Transport: rt}, &Config{
		BaseURL:   "http://example.com",
		APIKey:    "k",
		APISecret: "s",
		Timeout:   time.Second,
		Retry:     types.RetryPolicy{Retries: 2, RetryDelay: time.Millisecond},
	})
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil)
	ae := asClassified(t, err)
	if !ae.Transport() || ae.StatusCode != 0 {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected underlying transport error in chain, got %v", err)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("transport called %d times, want 3", n)
	}
}

func TestDo_TimeoutRetriedThenSurfacesAs408(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{Retries: 1, RetryDelay: time.Millisecond})
	c.cfg.Timeout = 20 * time.Millisecond
	_, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil)
	ae := asClassified(t, err)
	if ae.Code != apierrors.CodeTimeout || ae.StatusCode != 408 || !ae.Transport() {
		t.Fatalf("unexpected error: %+v", ae)
	}
	if n := hits.Load(); n != 2 {
		t.Fatalf("server hit %d times, want 2", n)
	}
}

func TestDo_PlainTextSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "pong")
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{})
	res, err := c.Do(context.Background(), http.MethodGet, "/ping", nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if res.RawText != "pong" || res.Data != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDo_CredentialAndRequestIDHeaders(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var ids []string
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" || r.Header.Get("x-api-secret") != "test-secret" {
			t.Errorf("credential headers missing: %v", r.Header)
		}
		mu.Lock()
		ids = append(ids, r.Header.Get("X-Request-Id"))
		mu.Unlock()
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeEnvelope(w, 200, `null`)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{Retries: 1, RetryDelay: time.Millisecond, RetryOn: []int{503}})
	if _, err := c.Do(context.Background(), http.MethodGet, "/api/v1/files", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(ids) != 2 || ids[0] == "" || ids[0] != ids[1] {
		t.Fatalf("request ID must be stable across attempts: %v", ids)
	}
}

func TestDo_CallerHeadersMerged(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		writeEnvelope(w, 200, `null`)
	}))
	defer srv.Close()

	c := testCaller(srv.URL, types.RetryPolicy{})
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	if _, err := c.Do(context.Background(), http.MethodPost, "/api/v1/folders", hdr, []byte(`{}`)); err != nil {
		t.Fatalf("Do: %v", err)
	}
}
