package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestNewHTTPError_MessagePreference(t *testing.T) {
	t.Parallel()
	e := NewHTTPError(404, []byte(`{"message":"file not found","error":"ignored"}`))
	if e.Code != CodeNotFound || e.Message != "file not found" {
		t.Fatalf("unexpected error: %+v", e)
	}

	e = NewHTTPError(404, []byte(`{"error":"no such file"}`))
	if e.Message != "no such file" {
		t.Fatalf("expected error field fallback, got %q", e.Message)
	}

	// Neither field present: status line text.
	e = NewHTTPError(404, []byte(`{}`))
	if e.Message != "Not Found" {
		t.Fatalf("expected status text fallback, got %q", e.Message)
	}

	// Non-JSON body: status line text, raw body preserved.
	e = NewHTTPError(502, []byte("<html>bad gateway</html>"))
	if e.Message != "Bad Gateway" || string(e.Raw) != "<html>bad gateway</html>" {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestNewHTTPError_Classifies(t *testing.T) {
	t.Parallel()
	e := NewHTTPError(413, []byte(`{"message":"Storage limit exceeded"}`))
	if e.Code != CodeStorageLimit {
		t.Fatalf("got %s, want %s", e.Code, CodeStorageLimit)
	}
	if e.Transport() {
		t.Fatalf("application failure must not be transport-class")
	}
}

func TestTransportErrors(t *testing.T) {
	t.Parallel()
	ne := NewNetworkError(io.ErrUnexpectedEOF)
	if !ne.Transport() || ne.StatusCode != 0 || ne.Code != CodeUnknown {
		t.Fatalf("unexpected network error: %+v", ne)
	}
	if !errors.Is(ne, io.ErrUnexpectedEOF) {
		t.Fatalf("expected underlying error in chain")
	}

	te := NewTimeoutError(50*time.Millisecond, io.ErrUnexpectedEOF)
	if !te.Transport() || te.StatusCode != 408 || te.Code != CodeTimeout {
		t.Fatalf("unexpected timeout error: %+v", te)
	}
	if !strings.Contains(te.Error(), "TIMEOUT") {
		t.Fatalf("unexpected error string: %s", te.Error())
	}
}

func TestUnauthorizedError(t *testing.T) {
	t.Parallel()
	e := NewUnauthorizedError("missing credentials")
	if e.Code != CodeUnauthorized || e.StatusCode != 401 || e.Transport() {
		t.Fatalf("unexpected error: %+v", e)
	}
}
