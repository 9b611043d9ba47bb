// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// converter is the part of command.Converter that CommandExtractor uses.
type converter interface {
	Name() string
	WritesStdout() bool
	Run(ctx context.Context, input, output string, stdout io.Writer) error
}

// CommandExtractor runs an external converter program. When flatten is set,
// the program's output is collapsed onto a single line afterwards, which is
// how spreadsheet CSV is turned into scannable text.
type CommandExtractor struct {
	conv    converter
	flatten bool
	log     *zap.Logger
}

// Extract runs the converter for input and leaves its text at output.
func (c *CommandExtractor) Extract(ctx context.Context, input, output string) error {
	start := time.Now()
	c.log.Debug("running converter",
		zap.String("program", c.conv.Name()),
		zap.String("input", input),
	)

	if c.conv.WritesStdout() {
		var buf bytes.Buffer
		if err := c.conv.Run(ctx, input, output, &buf); err != nil {
			return err
		}
		data := buf.Bytes()
		if c.flatten {
			data = Flatten(data)
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing %s output: %w", c.conv.Name(), err)
		}
	} else {
		if err := c.conv.Run(ctx, input, output, nil); err != nil {
			return err
		}
		if _, err := os.Stat(output); err != nil {
			return fmt.Errorf("%s produced no output: %w", c.conv.Name(), err)
		}
		if c.flatten {
			if err := flattenFile(output); err != nil {
				return err
			}
		}
	}

	c.log.Debug("converter finished",
		zap.String("program", c.conv.Name()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Flatten replaces every line break ("\n" or "\r\n") with a single space,
// joining all rows into one line.
func Flatten(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte(" "))
	return bytes.ReplaceAll(data, []byte("\n"), []byte(" "))
}

func flattenFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := os.WriteFile(path, Flatten(data), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
