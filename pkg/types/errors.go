// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Sentinel errors for the three fatal error classes. Callers wrap them with
// fmt.Errorf("...: %w") and test with errors.Is.
var (
	// ErrUsage reports a malformed command line, such as no input files.
	ErrUsage = errors.New("usage error")

	// ErrUnsupportedFormat reports a file extension or format tag outside
	// the supported set.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrExtraction reports a converter that failed, exited non-zero, or is
	// not installed, or a plain-text copy that could not complete.
	ErrExtraction = errors.New("extraction failed")
)

// Diagnostic codes printed next to the fatal marker.
const (
	CodeUsage             = "E001"
	CodeUnsupportedFormat = "E002"
	CodeExtraction        = "E003"
	CodeInternal          = "E099"
)

// DiagnosticCode maps an error to its fixed diagnostic code.
func DiagnosticCode(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return CodeUsage
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrExtraction):
		return CodeExtraction
	default:
		return CodeInternal
	}
}
