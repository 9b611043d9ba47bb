// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/lu4p/cat/docxtxt"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/medscan/pkg/types"
)

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, input, output string) error

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, input, output string) error {
	return f(ctx, input, output)
}

func libraryExtractor(f types.Format) Extractor {
	switch f {
	case types.FormatPDF:
		return ExtractorFunc(extractPDF)
	case types.FormatDOCX:
		return ExtractorFunc(extractDOCX)
	case types.FormatXLSX:
		return ExtractorFunc(extractXLSX)
	}
	return CopyExtractor{}
}

func libraryName(f types.Format) string {
	switch f {
	case types.FormatPDF:
		return "ledongthuc/pdf"
	case types.FormatDOCX:
		return "lu4p/cat"
	case types.FormatXLSX:
		return "excelize"
	}
	return "copy"
}

// extractPDF writes the plain text of every page. The pdf reader panics on
// some malformed files, so panics are turned into errors.
func extractPDF(_ context.Context, input, output string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF %s: %v", input, r)
		}
	}()

	f, r, err := pdf.Open(input)
	if err != nil {
		return fmt.Errorf("opening PDF %s: %w", input, err)
	}
	defer f.Close()

	text, err := r.GetPlainText()
	if err != nil {
		return fmt.Errorf("reading PDF %s: %w", input, err)
	}
	return writeFrom(output, text)
}

// extractDOCX reads input strictly as a docx archive; anything else fails
// rather than being passed through as raw text.
func extractDOCX(_ context.Context, input, output string) error {
	text, err := docxtxt.ToStr(input)
	if err != nil {
		return fmt.Errorf("reading document %s: %w", input, err)
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

// extractXLSX renders every sheet as CSV rows, then flattens the rows onto
// one line, matching what an external xlsx-to-CSV converter produces.
func extractXLSX(_ context.Context, input, output string) error {
	f, err := excelize.OpenFile(input)
	if err != nil {
		return fmt.Errorf("opening spreadsheet %s: %w", input, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("reading rows of sheet %q: %w", sheet, err)
		}
		if err := w.WriteAll(rows); err != nil {
			return fmt.Errorf("encoding sheet %q: %w", sheet, err)
		}
	}

	if err := os.WriteFile(output, Flatten(buf.Bytes()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return nil
}

func writeFrom(output string, r io.Reader) error {
	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", output, err)
	}
	return out.Close()
}
