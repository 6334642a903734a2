package usecase

import "errors"

// Sentinels shared by every service. Handlers map them to HTTP statuses, so
// wrap with %w rather than replacing them.
var (
	// ErrInvalidInput covers malformed ids, unknown zones and unsupported languages.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a team or fixture is absent upstream.
	ErrNotFound = errors.New("resource not found")
	// ErrDependencyUnavailable marks upstream outages, including an open breaker.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
