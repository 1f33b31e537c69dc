// Package errors provides error classification for the client SDK.
// Every failure, transport-level or application-level, is normalized into a
// single Error shape carrying a stable machine-readable code.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Code is a stable machine-readable identifier for a failure class.
// The set is closed; servers may reword messages but codes do not change.
type Code string

const (
	CodeFileTooLarge           Code = "FILE_TOO_LARGE"
	CodeStorageLimit           Code = "STORAGE_LIMIT"
	CodeFileCountLimit         Code = "FILE_COUNT_LIMIT"
	CodeMimeTypeNotAllowed     Code = "MIME_TYPE_NOT_ALLOWED"
	CodeCompressionNotAllowed  Code = "COMPRESSION_NOT_ALLOWED"
	CodeSubscriptionInactive   Code = "SUBSCRIPTION_INACTIVE"
	CodeFolderCountLimit       Code = "FOLDER_COUNT_LIMIT"
	CodeEmailAlreadyRegistered Code = "EMAIL_ALREADY_REGISTERED"
	CodeEmailNotVerified       Code = "EMAIL_NOT_VERIFIED"
	CodeInvalidCredentials     Code = "INVALID_CREDENTIALS"
	CodeInvalidOTP             Code = "INVALID_OTP"
	CodeUnauthorized           Code = "UNAUTHORIZED"
	CodeNotFound               Code = "NOT_FOUND"
	CodeTimeout                Code = "TIMEOUT"
	CodeUnknown                Code = "UNKNOWN"
)

// Error is the normalized failure shape returned by every SDK operation.
// StatusCode is 0 for failures that occurred before an HTTP response was
// received (except timeouts, which surface as 408).
type Error struct {
	Code       Code
	StatusCode int
	Message    string
	Raw        []byte // response body as received, if any

	transport  bool
	underlying error
}

var _ error = &Error{}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("filevault: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("filevault: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.underlying
}

// Transport reports whether the failure occurred before or without an HTTP
// response (timeout, connection error). Transport failures are always
// eligible for retry regardless of the configured retryable status set.
func (e *Error) Transport() bool {
	return e.transport
}

// errorBody is the optional shape of a non-2xx response body.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// NewHTTPError builds a classified error from a non-2xx response. The
// message is taken from the body's "message" field, then its "error" field,
// then the status line text.
func NewHTTPError(statusCode int, body []byte) *Error {
	msg := ""
	if len(body) > 0 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			if eb.Message != "" {
				msg = eb.Message
			} else if eb.Err != "" {
				msg = eb.Err
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &Error{
		Code:       Classify(statusCode, msg),
		StatusCode: statusCode,
		Message:    msg,
		Raw:        body,
	}
}

// NewNetworkError builds a classified error for a connection-level failure.
func NewNetworkError(err error) *Error {
	return &Error{
		Code:       CodeUnknown,
		StatusCode: 0,
		Message:    err.Error(),
		transport:  true,
		underlying: err,
	}
}

// NewTimeoutError builds a classified error for an attempt that exceeded the
// per-attempt timeout.
func NewTimeoutError(timeout time.Duration, err error) *Error {
	return &Error{
		Code:       CodeTimeout,
		StatusCode: http.StatusRequestTimeout,
		Message:    fmt.Sprintf("request timed out after %s", timeout),
		transport:  true,
		underlying: err,
	}
}

// NewUnauthorizedError builds the error returned when credentials are missing.
// No request is sent in that case, so there is no body to classify.
func NewUnauthorizedError(msg string) *Error {
	return &Error{
		Code:       CodeUnauthorized,
		StatusCode: http.StatusUnauthorized,
		Message:    msg,
	}
}

// NewRequestError builds an error for a request that could not be assembled.
// These fail deterministically and are never retried.
func NewRequestError(err error) *Error {
	return &Error{
		Code:       CodeUnknown,
		StatusCode: 0,
		Message:    err.Error(),
		underlying: err,
	}
}

// NewDecodeError builds an error for a 2xx response whose body could not be
// decoded as the declared content type.
func NewDecodeError(statusCode int, body []byte, err error) *Error {
	return &Error{
		Code:       CodeUnknown,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("decoding response body: %v", err),
		Raw:        body,
		underlying: err,
	}
}
