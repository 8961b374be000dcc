package tracknum

import "errors"

// Sentinel errors for classification lookups. The validators themselves never
// return errors: a malformed candidate is a non-match, not a failure.
var (
	// ErrNoMatch indicates the candidate validates for no registered service.
	ErrNoMatch = errors.New("no matching carrier")

	// ErrServiceNotFound indicates the requested service is not registered.
	ErrServiceNotFound = errors.New("service not found")
)
