// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command runs external converter programs. It owns the only
// process-invocation boundary in medscan, kept behind a small executor
// interface so tests never spawn real processes.
package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/medscan/pkg/types"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run starts name and waits for it. Cancelling ctx kills the process.
func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Converter is one configured external program, such as pdftotext or
// xlsx2csv, together with its argument template.
type Converter struct {
	bin  string
	args []string
	exec executor
}

func newConverter(cfg types.ToolConfig, exec executor) *Converter {
	return &Converter{
		bin:  cfg.Bin,
		args: append([]string(nil), cfg.Args...),
		exec: exec,
	}
}

// Name returns the program name.
func (c *Converter) Name() string { return c.bin }

// Available reports whether the program exists on PATH.
func (c *Converter) Available() bool {
	_, err := c.exec.LookPath(c.bin)
	return err == nil
}

// WritesStdout reports whether the program prints its text to stdout rather
// than writing the output path itself.
func (c *Converter) WritesStdout() bool {
	for _, a := range c.args {
		if strings.Contains(a, types.PlaceholderOutput) {
			return false
		}
	}
	return true
}

// Args expands the argument template for one input/output pair.
func (c *Converter) Args(input, output string) []string {
	r := strings.NewReplacer(types.PlaceholderInput, input, types.PlaceholderOutput, output)
	out := make([]string, len(c.args))
	for i, a := range c.args {
		out[i] = r.Replace(a)
	}
	return out
}

// Run invokes the program for input. Text printed on stdout goes to stdout,
// which may be nil when the program writes output itself. A non-zero exit
// status is returned as an error carrying the program's stderr.
func (c *Converter) Run(ctx context.Context, input, output string, stdout io.Writer) error {
	var stderr bytes.Buffer
	if err := c.exec.Run(ctx, c.bin, c.Args(input, output), stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("running %s: %w: %s", c.bin, err, msg)
		}
		return fmt.Errorf("running %s: %w", c.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// Detect returns a Converter for the first candidate whose program is on
// PATH. It returns an error naming every program tried if none is found.
func Detect(candidates []types.ToolConfig) (*Converter, error) {
	return detect(candidates, defaultExec)
}

func detect(candidates []types.ToolConfig, exec executor) (*Converter, error) {
	names := make([]string, 0, len(candidates))
	for _, cfg := range candidates {
		c := newConverter(cfg, exec)
		if c.Available() {
			return c, nil
		}
		names = append(names, cfg.Bin)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no converter configured")
	}
	return nil, fmt.Errorf("no converter available: tried %s", strings.Join(names, ", "))
}
