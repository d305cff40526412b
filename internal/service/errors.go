package service

import "net/http"

// notReadyError signals that the pipeline is not loaded yet (or was released).
// The HTTP layer maps it to 503 Service Unavailable via StatusCode.
type notReadyError struct{}

func (notReadyError) Error() string   { return "generation service is not ready" }
func (notReadyError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrNotReady constructs a not-ready error.
func ErrNotReady() error { return notReadyError{} }

// IsNotReady reports whether err indicates the service is not ready.
func IsNotReady(err error) bool {
	_, ok := err.(notReadyError)
	return ok
}

// initError signals that the pipeline failed to load. Fatal to startup:
// a service that cannot load its model should not accept traffic.
type initError struct{ err error }

func (e initError) Error() string { return "initialization failed: " + e.err.Error() }
func (e initError) Unwrap() error { return e.err }

// ErrInitialization wraps err as an initialization failure.
func ErrInitialization(err error) error { return initError{err: err} }

// IsInitialization reports whether err is an initialization failure.
func IsInitialization(err error) bool {
	_, ok := err.(initError)
	return ok
}

// generationError signals that an inference call failed mid-run. Reported
// per-request; the pipeline remains usable for subsequent requests.
type generationError struct{ err error }

func (e generationError) Error() string { return "generation failed: " + e.err.Error() }
func (e generationError) Unwrap() error { return e.err }

// ErrGeneration wraps err as a per-request generation failure.
func ErrGeneration(err error) error { return generationError{err: err} }

// IsGeneration reports whether err is a generation failure.
func IsGeneration(err error) bool {
	_, ok := err.(generationError)
	return ok
}
