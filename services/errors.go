package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a movie id has no row behind it.
	ErrNotFound = errors.New("movie not found")

	// ErrDuplicateTitle is returned when an insert trips the unique title
	// constraint.
	ErrDuplicateTitle = errors.New("a movie with that title already exists")
)

// UpstreamError reports a failed call to the metadata provider. Either Err or
// Status is set depending on whether the call failed in transit or came back
// with a non-success status.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tmdb %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StorageError wraps a persistence failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
