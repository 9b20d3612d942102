package database

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaTooNew is returned when the store was created by a newer schema.
	ErrSchemaTooNew = errors.New("store schema is newer than supported")
	// ErrClosed is returned by Open after Close won the race to start it.
	ErrClosed = errors.New("store closed")
)

// InitError reports that the store could not be opened. Callers degrade to
// in-memory editing.
type InitError struct {
	Store string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("open store %s: %v", e.Store, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ReadError reports a failed Get.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read draft %q: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed Put.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write draft %q: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
