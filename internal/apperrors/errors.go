package apperrors

import "fmt"

// ErrInputNotFound is returned when the URL list file does not exist.
type ErrInputNotFound struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrInputNotFound) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *ErrInputNotFound) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrInputNotFound) Is(target error) bool {
	_, ok := target.(*ErrInputNotFound)
	return ok
}

// ErrMalformedInput is returned when the URL list file is not valid JSON.
type ErrMalformedInput struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrMalformedInput) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid JSON format in '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid JSON format in '%s'", e.Path)
}

// Unwrap returns the underlying decode error.
func (e *ErrMalformedInput) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedInput) Is(target error) bool {
	_, ok := target.(*ErrMalformedInput)
	return ok
}

// ErrInvalidShape is returned when the URL list decodes but is not a non-empty array.
// It ends the batch early without being treated as a failure.
type ErrInvalidShape struct {
	Path string
}

// Error implements the error interface.
func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("no valid URL array found in '%s'", e.Path)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidShape) Is(target error) bool {
	_, ok := target.(*ErrInvalidShape)
	return ok
}

// ErrInvalidEntry is returned for a list element that is not an http-prefixed string.
type ErrInvalidEntry struct {
	Value interface{}
}

// Error implements the error interface.
func (e *ErrInvalidEntry) Error() string {
	return fmt.Sprintf("invalid URL: %v", e.Value)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidEntry) Is(target error) bool {
	_, ok := target.(*ErrInvalidEntry)
	return ok
}

// Stages at which a single transfer can fail.
const (
	StageURL     = "url"
	StageFolder  = "folder"
	StageRequest = "request"
	StageWrite   = "write"
)

// ErrTransferFailed wraps any failure while downloading one URL to disk.
type ErrTransferFailed struct {
	URL   string
	Stage string
	Err   error
}

// Error implements the error interface.
func (e *ErrTransferFailed) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Stage, e.URL, e.Err)
}

// Unwrap returns the cause of the failure.
func (e *ErrTransferFailed) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrTransferFailed) Is(target error) bool {
	_, ok := target.(*ErrTransferFailed)
	return ok
}

// NewTransferError creates an ErrTransferFailed for the given stage.
func NewTransferError(url, stage string, err error) *ErrTransferFailed {
	return &ErrTransferFailed{
		URL:   url,
		Stage: stage,
		Err:   err,
	}
}

// ErrUnexpectedStatus is returned when a download URL answers with a non-2xx status.
type ErrUnexpectedStatus struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnexpectedStatus) Is(target error) bool {
	_, ok := target.(*ErrUnexpectedStatus)
	return ok
}
