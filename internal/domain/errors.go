package domain

import "errors"

var (
	// ErrEntryNotFound is returned when a journal entry ID does not exist
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrProfileNotFound is returned when no user profile has been stored
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrStoreUnavailable is returned when the backing document store fails
	ErrStoreUnavailable = errors.New("document store unavailable")
)
