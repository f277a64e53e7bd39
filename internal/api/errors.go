package api

import "errors"

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized means the identity endpoint rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the requested entity does not exist upstream.
	ErrNotFound = errors.New("not found")
)
