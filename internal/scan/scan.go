// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan checks extracted text for sensitive medical terms.
package scan

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/medscan/pkg/types"
)

// defaultTerms is the sensitive-term vocabulary in scan order. Earlier terms
// win when several are present.
var defaultTerms = []string{
	"dossier médical",
	"confidentiel médical",
	"PHI",
	"health information",
}

// TermList is an ordered, immutable list of sensitive terms.
type TermList struct {
	terms  []string
	folded []string
}

// NewTermList builds a TermList from terms in the given order.
func NewTermList(terms ...string) TermList {
	l := TermList{
		terms:  make([]string, len(terms)),
		folded: make([]string, len(terms)),
	}
	copy(l.terms, terms)
	for i, t := range terms {
		l.folded[i] = fold(t)
	}
	return l
}

// DefaultTerms returns the built-in sensitive-term list.
func DefaultTerms() TermList {
	return NewTermList(defaultTerms...)
}

// Terms returns a copy of the terms in scan order.
func (l TermList) Terms() []string {
	return append([]string(nil), l.terms...)
}

// Len returns the number of terms.
func (l TermList) Len() int { return len(l.terms) }

// fold normalises s to NFC and applies Unicode case folding, so "MÉDICAL"
// and the decomposed form of "médical" compare equal to "médical".
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Scanner tests extracted text against a TermList.
type Scanner struct {
	terms TermList
}

// NewScanner returns a Scanner for terms.
func NewScanner(terms TermList) *Scanner {
	return &Scanner{terms: terms}
}

// ScanText returns the first term, in list order, that occurs anywhere in
// text, compared case-insensitively. At most one term is reported.
func (s *Scanner) ScanText(text string) types.ScanResult {
	haystack := fold(text)
	for i, needle := range s.terms.folded {
		if strings.Contains(haystack, needle) {
			return types.ScanResult{Matched: true, Term: s.terms.terms[i]}
		}
	}
	return types.NoMatch
}

// ScanFile reads the extracted text at path and scans it. The format tag is
// checked first and must be a supported one.
func (s *Scanner) ScanFile(path string, f types.Format) (types.ScanResult, error) {
	if !f.Valid() {
		return types.NoMatch, fmt.Errorf("scanning %s as %q: %w", path, f, types.ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.NoMatch, fmt.Errorf("reading extracted text %s: %w", path, err)
	}
	return s.ScanText(string(data)), nil
}
