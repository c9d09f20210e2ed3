package client

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the collaborator could
	// not be reached at all. Callers report it as a transient condition.
	ErrUnavailable = errors.New("server unavailable")
)
