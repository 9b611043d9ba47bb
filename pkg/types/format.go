// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the medscan pipeline:
// format tags, scan results, run summaries, configuration, and the error
// taxonomy reported by the CLI.
package types

// Format identifies which extraction strategy applies to a file. The tag is
// the file extension without the leading dot.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatTXT  Format = "txt"
)

// SupportedFormats returns the supported format tags in dispatch order.
func SupportedFormats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatXLSX, FormatTXT}
}

// Valid reports whether f is one of the supported format tags.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatXLSX, FormatTXT:
		return true
	}
	return false
}

func (f Format) String() string { return string(f) }
