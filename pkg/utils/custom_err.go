package utils

import "errors"

// Service-level error kinds. Collaborator adapters classify raw provider
// errors into these once, at the boundary; HandleServiceError maps them to
// HTTP status codes.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDescriptionTooShort = errors.New("description too short")

	ErrRecordNotFound     = errors.New("record not found")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// AI collaborator kinds (quota/rate, auth, network, everything else).
	ErrAIQuotaExceeded = errors.New("ai quota or rate limit exceeded")
	ErrAIAuthFailed    = errors.New("ai authentication failed")
	ErrAIUnavailable   = errors.New("ai service unreachable")
	ErrAIUnexpected    = errors.New("unexpected ai response")

	// Billing collaborator kinds.
	ErrUnknownPlan     = errors.New("unknown plan or interval")
	ErrUnknownProvider = errors.New("unknown billing provider")
	ErrCheckoutFailed  = errors.New("checkout could not be initiated")
	ErrCancelFailed    = errors.New("subscription cancellation failed")
)
