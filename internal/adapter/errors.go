package adapter

import "errors"

var (
	// ErrUnauthorized is returned for 401 responses and when an
	// authenticated call is attempted without a usable token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded
	// into the expected shape. The caller must treat this like a fetch
	// failure: nothing gets merged.
	ErrMalformedResponse = errors.New("malformed server response")
)
