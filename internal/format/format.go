// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format resolves a file path to its format tag.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/medscan/pkg/types"
)

// Resolver maps file extensions to format tags. The zero value matches
// extensions case-sensitively, so "report.PDF" is rejected.
type Resolver struct {
	foldCase bool
}

// NewResolver returns a Resolver. When foldCase is true, extensions are
// lower-cased before the membership check.
func NewResolver(foldCase bool) *Resolver {
	return &Resolver{foldCase: foldCase}
}

// Resolve returns the format tag for path: the text after the final dot of
// the base name. It fails with types.ErrUnsupportedFormat when that text is
// not a supported tag, including when the name has no extension at all.
func (r *Resolver) Resolve(path string) (types.Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if r.foldCase {
		ext = strings.ToLower(ext)
	}

	f := types.Format(ext)
	if !f.Valid() {
		if ext == "" {
			return "", fmt.Errorf("%s has no extension: %w", path, types.ErrUnsupportedFormat)
		}
		return "", fmt.Errorf("%s has extension %q: %w", path, ext, types.ErrUnsupportedFormat)
	}
	return f, nil
}
