package client

import "errors"

// ErrNotFound reports that the service does not know the requested alias.
// It stays distinct from RemoteError so callers can tell a missing id from
// a transient failure.
var ErrNotFound = errors.New("short link not found")

// RemoteError is a transport or server failure, including timeouts.
type RemoteError struct {
	// StatusCode is zero when the request never reached the server.
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}
