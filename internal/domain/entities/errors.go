package entities

import "errors"

var (
	// ErrNotFound is returned when a source path does not exist or is not a directory.
	ErrNotFound = errors.New("not found")

	// ErrMissingCredential is returned before any generator call when the
	// selected provider needs an API key that is not configured.
	ErrMissingCredential = errors.New("missing credential")

	// ErrGeneratorFailure wraps transport, status and decoding errors raised by a generator.
	ErrGeneratorFailure = errors.New("generator failure")

	// ErrUnsupportedResponseFormat is returned when a generator payload cannot be parsed.
	ErrUnsupportedResponseFormat = errors.New("unsupported response format")
)
