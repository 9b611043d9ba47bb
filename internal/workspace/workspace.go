// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages the temporary directory that holds extracted text
// for the duration of one run.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	dirPattern = "medscan-*"
	textSuffix = ".txt"
)

// Workspace is a temporary directory owned by a single run. Close removes it
// together with every extracted file.
type Workspace struct {
	dir  string
	used map[string]bool
}

// New creates a workspace under parent, or under the system temp directory
// when parent is empty.
func New(parent string) (*Workspace, error) {
	if parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("creating workspace parent %s: %w", parent, err)
		}
	}
	dir, err := os.MkdirTemp(parent, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return &Workspace{dir: dir, used: make(map[string]bool)}, nil
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string { return w.dir }

// PathFor returns the extracted-text path for input: the input's base name
// with its extension replaced by ".txt". When that name is already taken in
// this run, "-2", "-3", ... is appended until the name is free, so no two
// inputs share an output file.
func (w *Workspace) PathFor(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := base + textSuffix
	for n := 2; w.used[name]; n++ {
		name = base + "-" + strconv.Itoa(n) + textSuffix
	}
	w.used[name] = true
	return filepath.Join(w.dir, name)
}

// Close removes the workspace directory and everything in it. It is safe to
// call more than once.
func (w *Workspace) Close() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("removing workspace %s: %w", w.dir, err)
	}
	return nil
}
