package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output path.
// It rejects empty paths, overlong paths and control characters; it does not
// check that the parent directory exists.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 1024 {
		return New(ErrCodeInvalidPath, "output path too long (max 1024 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}

// ValidateRange checks that v is a finite number within [lo, hi].
// name is used in the error message.
func ValidateRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number", name)
	}
	if v < lo || v > hi {
		return New(ErrCodeInvalidConfig, "%s = %g out of range [%g, %g]", name, v, lo, hi)
	}
	return nil
}
