// Package errors provides an API for errors across the application.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrStateUnavailable is matched by every error returned when the
	// application state could not be acquired.
	ErrStateUnavailable = errors.New("application state unavailable")
	ErrStorageRead      = errors.New("settings storage read failed")
	ErrStorageWrite     = errors.New("settings storage write failed")
	ErrNotFound         = errors.New("settings record not found")
	ErrDeserialization  = errors.New("deserialization failed")
)

type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// InitializationError is returned when the application state failed to
// construct. It matches ErrStateUnavailable.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("state initialization failed: %s", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

func (e *InitializationError) Is(target error) bool {
	return target == ErrStateUnavailable
}

type StorageOp string

const (
	OpRead  StorageOp = "read"
	OpWrite StorageOp = "write"
)

// StorageError wraps a failure of the settings store. Read failures match
// ErrStorageRead and write failures match ErrStorageWrite.
type StorageError struct {
	Op  StorageOp
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("settings %s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	switch e.Op {
	case OpRead:
		return target == ErrStorageRead
	case OpWrite:
		return target == ErrStorageWrite
	}
	return false
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
