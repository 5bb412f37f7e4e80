package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInputUnreadable indicates an input (drafts, index document, manifest) could not be read
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrMarkerMissing indicates a marker is absent from the index document
	ErrMarkerMissing = errors.New("marker not found")

	// ErrMarkerOrder indicates the end marker appears before the start marker
	ErrMarkerOrder = errors.New("end marker precedes start marker")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")
)

// ScanError represents a failure to read the drafts input
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read drafts at %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrInputUnreadable, e.Err}
}

// NewScanError creates a new ScanError
func NewScanError(path string, err error) *ScanError {
	return &ScanError{Path: path, Err: err}
}

// MarkerError represents a malformed index document
type MarkerError struct {
	Path   string
	Marker string
	Err    error
}

func (e *MarkerError) Error() string {
	target := e.Path
	if target == "" {
		target = "index document"
	}
	return fmt.Sprintf("%s: %v: %q", target, e.Err, e.Marker)
}

func (e *MarkerError) Unwrap() error {
	return e.Err
}

// NewMarkerError creates a new MarkerError
func NewMarkerError(marker string, err error) *MarkerError {
	return &MarkerError{Marker: marker, Err: err}
}

// WriteError represents a failure writing an output file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWriteFailed, e.Err}
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

// IsFatal reports whether err belongs to one of the build-aborting categories
func IsFatal(err error) bool {
	return errors.Is(err, ErrInputUnreadable) ||
		errors.Is(err, ErrMarkerMissing) ||
		errors.Is(err, ErrMarkerOrder) ||
		errors.Is(err, ErrWriteFailed)
}
