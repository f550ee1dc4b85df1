// Package errors provides standardized error types and helpers for the hexview codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidConfig indicates a configuration value outside its allowed set
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// ConfigError represents a configuration value rejected before a dump runs
type ConfigError struct {
	Field   string // Configuration field (e.g., "columns", "log-level")
	Value   string // Offending value
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidConfig
}

// ReadError represents a byte-source failure mid-dump, carrying the stream
// offset where the read failed
type ReadError struct {
	Stream  string // Input stream label (usually the file path)
	Address uint32 // Stream offset at the failed read
	Err     error  // Underlying error
}

func (e *ReadError) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("failed to read %s at 0x%08x: %v", e.Stream, e.Address, e.Err)
	}
	return fmt.Sprintf("failed to read at 0x%08x: %v", e.Address, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError represents an output-sink failure mid-dump
type WriteError struct {
	Sink    string // Output sink label (file path or "stdout")
	Address uint32 // Stream offset reached when the write failed
	Err     error  // Underlying error
}

func (e *WriteError) Error() string {
	if e.Sink != "" {
		return fmt.Sprintf("failed to write %s at 0x%08x: %v", e.Sink, e.Address, e.Err)
	}
	return fmt.Sprintf("failed to write at 0x%08x: %v", e.Address, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewConfig creates a ConfigError
func NewConfig(field, value, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewRead creates a ReadError
func NewRead(stream string, address uint32, err error) *ReadError {
	return &ReadError{
		Stream:  stream,
		Address: address,
		Err:     err,
	}
}

// NewWrite creates a WriteError
func NewWrite(sink string, address uint32, err error) *WriteError {
	return &WriteError{
		Sink:    sink,
		Address: address,
		Err:     err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
