// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract renders documents as plain text. Each format has one
// Extractor; a Dispatcher picks the Extractor for a file's format tag and
// maps every failure to types.ErrExtraction.
package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/medscan/internal/command"
	"github.com/pdiddy/medscan/pkg/types"
)

// Extractor writes a plain-text rendering of input to output. It must not
// modify input.
type Extractor interface {
	Extract(ctx context.Context, input, output string) error
}

// Selection describes the Extractor chosen for one format, for reporting.
type Selection struct {
	Format  types.Format
	Program string
	Err     error
}

// Dispatcher routes each file to the Extractor for its format.
type Dispatcher struct {
	extractors map[types.Format]Extractor
	selections []Selection
	log        *zap.Logger
}

// NewDispatcher builds the extractors for cfg.Backend. With the external
// backend, converter programs are detected on PATH now; a format with no
// available program still gets an Extractor, one that fails with
// types.ErrExtraction when used, so runs that never see that format succeed.
func NewDispatcher(cfg types.Config, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		extractors: map[types.Format]Extractor{types.FormatTXT: CopyExtractor{}},
		log:        log,
	}

	for _, f := range []types.Format{types.FormatPDF, types.FormatDOCX, types.FormatXLSX} {
		if cfg.Backend == types.BackendLibrary {
			d.extractors[f] = libraryExtractor(f)
			d.selections = append(d.selections, Selection{Format: f, Program: "library:" + libraryName(f)})
			continue
		}

		conv, err := command.Detect(cfg.Converters.For(f))
		if err != nil {
			log.Debug("no converter available", zap.String("format", f.String()), zap.Error(err))
			d.extractors[f] = unavailable{format: f, err: err}
			d.selections = append(d.selections, Selection{Format: f, Err: err})
			continue
		}
		log.Debug("converter selected", zap.String("format", f.String()), zap.String("program", conv.Name()))
		d.extractors[f] = &CommandExtractor{conv: conv, flatten: f == types.FormatXLSX, log: log}
		d.selections = append(d.selections, Selection{Format: f, Program: conv.Name()})
	}
	d.selections = append(d.selections, Selection{Format: types.FormatTXT, Program: "copy"})
	return d
}

// Selections reports which program serves each format, in dispatch order.
func (d *Dispatcher) Selections() []Selection {
	return append([]Selection(nil), d.selections...)
}

// Extract renders input, of format f, as plain text at output.
func (d *Dispatcher) Extract(ctx context.Context, input string, f types.Format, output string) error {
	e, ok := d.extractors[f]
	if !ok {
		return fmt.Errorf("extracting %s as %q: %w", input, f, types.ErrUnsupportedFormat)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrExtraction, input, err)
	}

	start := time.Now()
	if err := e.Extract(ctx, input, output); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrExtraction, input, err)
	}
	d.log.Debug("extracted",
		zap.String("input", input),
		zap.String("format", f.String()),
		zap.String("output", output),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// CopyExtractor handles plain text: the output is a byte-for-byte copy.
type CopyExtractor struct{}

// Extract copies input to output.
func (CopyExtractor) Extract(ctx context.Context, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", input, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}
	return nil
}

// unavailable stands in for a format whose converter could not be found.
type unavailable struct {
	format types.Format
	err    error
}

func (u unavailable) Extract(context.Context, string, string) error {
	return fmt.Errorf("no %s converter: %w", u.format, u.err)
}
