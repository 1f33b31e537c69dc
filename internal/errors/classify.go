package errors

import "strings"

// Classify maps an HTTP status code plus the response message onto exactly
// one Code. The first matching rule wins; order matters because several
// rules share a status code (413 and 403 in particular). Matching is a
// best-effort substring check against the server's free-text message, so the
// rule order below must not be rearranged.
func Classify(statusCode int, message string) Code {
	msg := strings.ToLower(message)
	switch {
	case statusCode == 413 && strings.Contains(msg, "storage limit"):
		return CodeStorageLimit
	case statusCode == 413:
		return CodeFileTooLarge
	case statusCode == 415:
		return CodeMimeTypeNotAllowed
	case statusCode == 402:
		return CodeSubscriptionInactive
	case statusCode == 403 && strings.Contains(msg, "compression"):
		return CodeCompressionNotAllowed
	case statusCode == 403 && strings.Contains(msg, "folder"):
		return CodeFolderCountLimit
	case statusCode == 403 && (strings.Contains(msg, "file") || strings.Contains(msg, "maximum")):
		return CodeFileCountLimit
	case statusCode == 403 && strings.Contains(msg, "email"):
		return CodeEmailNotVerified
	case statusCode == 400 && strings.Contains(msg, "already registered"):
		return CodeEmailAlreadyRegistered
	case statusCode == 400 && (strings.Contains(msg, "invalid email or password") || strings.Contains(msg, "invalid credentials")):
		return CodeInvalidCredentials
	case statusCode == 400 && strings.Contains(msg, "otp"):
		return CodeInvalidOTP
	case statusCode == 401:
		return CodeUnauthorized
	case statusCode == 404:
		return CodeNotFound
	case statusCode == 408:
		return CodeTimeout
	default:
		return CodeUnknown
	}
}
