// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ExtractionBackend selects how binary formats are turned into text.
type ExtractionBackend string

const (
	// BackendExternal shells out to converter programs on PATH.
	BackendExternal ExtractionBackend = "external"

	// BackendLibrary uses in-process Go libraries instead of external programs.
	BackendLibrary ExtractionBackend = "library"
)

// Placeholders substituted into ToolConfig.Args.
const (
	PlaceholderInput  = "{input}"
	PlaceholderOutput = "{output}"
)

// ToolConfig describes one external converter invocation. Args may contain
// PlaceholderInput and PlaceholderOutput. When no argument mentions
// PlaceholderOutput, the program is expected to write text to stdout.
type ToolConfig struct {
	// Bin is the program name looked up on PATH (e.g. "pdftotext").
	Bin string `json:"bin" yaml:"bin" mapstructure:"bin"`

	// Args is the argument template passed to Bin.
	Args []string `json:"args" yaml:"args" mapstructure:"args"`
}

// ConvertersConfig lists converter candidates per binary format, in order of
// preference. The first candidate found on PATH is used.
type ConvertersConfig struct {
	PDF  []ToolConfig `json:"pdf" yaml:"pdf" mapstructure:"pdf"`
	DOCX []ToolConfig `json:"docx" yaml:"docx" mapstructure:"docx"`
	XLSX []ToolConfig `json:"xlsx" yaml:"xlsx" mapstructure:"xlsx"`
}

// For returns the candidates configured for f. Plain text has none.
func (c ConvertersConfig) For(f Format) []ToolConfig {
	switch f {
	case FormatPDF:
		return c.PDF
	case FormatDOCX:
		return c.DOCX
	case FormatXLSX:
		return c.XLSX
	}
	return nil
}

// Config holds the settings for one medscan run.
type Config struct {
	// Debug switches diagnostic logging to the human-readable development logger.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`

	// WorkspaceDir is the parent directory of the temporary workspace.
	// Empty means the system temp directory.
	WorkspaceDir string `json:"workspace_dir" yaml:"workspace_dir" mapstructure:"workspace_dir"`

	// FoldExtensionCase makes ".PDF" resolve like ".pdf". Off by default, so
	// only lower-case extensions are accepted.
	FoldExtensionCase bool `json:"fold_extension_case" yaml:"fold_extension_case" mapstructure:"fold_extension_case"`

	// Backend selects external converter programs or in-process libraries.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	Converters ConvertersConfig `json:"converters" yaml:"converters" mapstructure:"converters"`
}

// DefaultConfig returns the configuration used when no file, environment
// variable, or flag overrides a setting.
func DefaultConfig() Config {
	return Config{
		Backend: BackendExternal,
		Converters: ConvertersConfig{
			PDF: []ToolConfig{
				{Bin: "pdftotext", Args: []string{PlaceholderInput, PlaceholderOutput}},
			},
			DOCX: []ToolConfig{
				{Bin: "docx2txt", Args: []string{PlaceholderInput, PlaceholderOutput}},
				{Bin: "pandoc", Args: []string{"-t", "plain", "-o", PlaceholderOutput, PlaceholderInput}},
			},
			XLSX: []ToolConfig{
				{Bin: "xlsx2csv", Args: []string{PlaceholderInput}},
				{Bin: "in2csv", Args: []string{PlaceholderInput}},
			},
		},
	}
}

// Validate checks that the backend is known and, for the external backend,
// that every binary format has at least one named converter.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendExternal:
	case BackendLibrary:
		return nil
	default:
		return fmt.Errorf("%w: unknown backend %q (want %s or %s)", ErrUsage, c.Backend, BackendExternal, BackendLibrary)
	}

	for _, f := range []Format{FormatPDF, FormatDOCX, FormatXLSX} {
		tools := c.Converters.For(f)
		if len(tools) == 0 {
			return fmt.Errorf("%w: no converter configured for %s", ErrUsage, f)
		}
		for i, t := range tools {
			if t.Bin == "" {
				return fmt.Errorf("%w: converter %d for %s has no bin", ErrUsage, i, f)
			}
		}
	}
	return nil
}
