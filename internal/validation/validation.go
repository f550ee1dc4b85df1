// Package validation provides input validation for values crossing the CLI
// boundary, before the dump engine runs.
package validation

import (
	"errors"
	"path/filepath"
	"strings"
)

// Limits on user-supplied paths.
const (
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrPathTooLong = errors.New("path too long")
	ErrNotAFile    = errors.New("path does not name a file")
)

// ValidateOutputPath checks a user-supplied output path before the dump
// engine opens it.
func ValidateOutputPath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	// A trailing separator names a directory, not a writable file.
	if strings.HasSuffix(path, string(filepath.Separator)) {
		return ErrNotAFile
	}
	return nil
}
