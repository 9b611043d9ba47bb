// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScanResult is the outcome of scanning one extracted text. When Matched is
// true, Term holds the sensitive term exactly as it appears in the term list.
type ScanResult struct {
	Matched bool   `json:"matched" yaml:"matched"`
	Term    string `json:"term,omitempty" yaml:"term,omitempty"`
}

// NoMatch is the ScanResult for text containing none of the listed terms.
var NoMatch = ScanResult{}

// FileResult records what the pipeline did with one input file.
type FileResult struct {
	// Path is the input path as supplied by the caller.
	Path string `json:"path" yaml:"path"`

	// Format is the resolved format tag.
	Format Format `json:"format" yaml:"format"`

	// TextPath is the extracted text location inside the run workspace. It no
	// longer exists once the run has finished.
	TextPath string `json:"text_path" yaml:"text_path"`

	Result ScanResult `json:"result" yaml:"result"`
}

// Summary holds the outcome of a completed run.
type Summary struct {
	RunID string       `json:"run_id" yaml:"run_id"`
	Files []FileResult `json:"files" yaml:"files"`
}

// Scanned returns the number of files that were extracted and scanned.
func (s Summary) Scanned() int {
	return len(s.Files)
}

// Matched returns the number of files with a sensitive-term match.
func (s Summary) Matched() int {
	n := 0
	for _, f := range s.Files {
		if f.Result.Matched {
			n++
		}
	}
	return n
}
