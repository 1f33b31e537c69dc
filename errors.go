package filevault

import (
	"errors"

	apierrors "github.com/filevault/filevault-go/internal/errors"
)

// Error is the normalized failure returned by every operation: a stable
// machine-readable code, the originating HTTP status (0 for transport
// failures, 408 for timeouts), a message, and the raw response body if any.
type Error = apierrors.Error

// ErrorCode enumerates the closed set of failure classes.
type ErrorCode = apierrors.Code

const (
	ErrCodeFileTooLarge           = apierrors.CodeFileTooLarge
	ErrCodeStorageLimit           = apierrors.CodeStorageLimit
	ErrCodeFileCountLimit         = apierrors.CodeFileCountLimit
	ErrCodeMimeTypeNotAllowed     = apierrors.CodeMimeTypeNotAllowed
	ErrCodeCompressionNotAllowed  = apierrors.CodeCompressionNotAllowed
	ErrCodeSubscriptionInactive   = apierrors.CodeSubscriptionInactive
	ErrCodeFolderCountLimit       = apierrors.CodeFolderCountLimit
	ErrCodeEmailAlreadyRegistered = apierrors.CodeEmailAlreadyRegistered
	ErrCodeEmailNotVerified       = apierrors.CodeEmailNotVerified
	ErrCodeInvalidCredentials     = apierrors.CodeInvalidCredentials
	ErrCodeInvalidOTP             = apierrors.CodeInvalidOTP
	ErrCodeUnauthorized           = apierrors.CodeUnauthorized
	ErrCodeNotFound               = apierrors.CodeNotFound
	ErrCodeTimeout                = apierrors.CodeTimeout
	ErrCodeUnknown                = apierrors.CodeUnknown
)

// AsError extracts the classified error from err's chain.
func AsError(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	ae, ok := AsError(err)
	return ok && ae.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND error.
func IsNotFound(err error) bool { return IsCode(err, ErrCodeNotFound) }

// IsUnauthorized reports whether err is an UNAUTHORIZED error.
func IsUnauthorized(err error) bool { return IsCode(err, ErrCodeUnauthorized) }

// IsTimeout reports whether err is a TIMEOUT error.
func IsTimeout(err error) bool { return IsCode(err, ErrCodeTimeout) }
