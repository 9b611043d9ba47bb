// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives a scan run: for each input file in order it
// resolves the format, extracts text into the run workspace, and scans the
// text for sensitive terms. The first error ends the run; the workspace is
// removed on every exit path.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/medscan/internal/format"
	"github.com/pdiddy/medscan/internal/scan"
	"github.com/pdiddy/medscan/internal/workspace"
	"github.com/pdiddy/medscan/pkg/types"
)

// Extractor is the extraction step. extract.Dispatcher implements it; tests
// supply fakes.
type Extractor interface {
	Extract(ctx context.Context, input string, f types.Format, output string) error
}

// Pipeline holds the collaborators for a run. All fields except Log are
// required.
type Pipeline struct {
	Resolver  *format.Resolver
	Extractor Extractor
	Scanner   *scan.Scanner

	// WorkspaceDir is the parent of the temporary workspace; empty means the
	// system temp directory.
	WorkspaceDir string

	// Out receives the banner and one progress line per lifecycle event.
	Out io.Writer

	Log *zap.Logger
}

// Run processes files sequentially. It returns a types.ErrUsage error when
// files is empty. Any resolve, extract, or scan error aborts the run and is
// returned as is; the summary then holds the files completed so far.
func (p *Pipeline) Run(ctx context.Context, files []string) (types.Summary, error) {
	var summary types.Summary
	if len(files) == 0 {
		return summary, fmt.Errorf("%w: no input files", types.ErrUsage)
	}

	summary.RunID = uuid.NewString()
	log := p.logger().With(zap.String("run_id", summary.RunID))

	printBanner(p.Out)

	ws, err := workspace.New(p.WorkspaceDir)
	if err != nil {
		return summary, err
	}
	log.Debug("workspace created", zap.String("dir", ws.Dir()))
	defer func() {
		if err := ws.Close(); err != nil {
			log.Error("workspace cleanup failed", zap.Error(err))
			return
		}
		log.Debug("workspace removed", zap.String("dir", ws.Dir()))
	}()

	fmt.Fprintf(p.Out, "starting: %d file(s)\n", len(files))
	for _, path := range files {
		res, err := p.processFile(ctx, ws, path)
		if err != nil {
			log.Debug("run aborted", zap.String("file", path), zap.Error(err))
			return summary, err
		}
		summary.Files = append(summary.Files, res)
	}

	fmt.Fprintf(p.Out, "done: %d file(s) scanned, %d with matches\n", summary.Scanned(), summary.Matched())
	return summary, nil
}

func (p *Pipeline) processFile(ctx context.Context, ws *workspace.Workspace, path string) (types.FileResult, error) {
	res := types.FileResult{Path: path}
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("interrupted before %s: %w", path, err)
	}

	fmt.Fprintf(p.Out, "checking: %s\n", path)
	f, err := p.Resolver.Resolve(path)
	if err != nil {
		return res, err
	}
	res.Format = f
	res.TextPath = ws.PathFor(path)

	fmt.Fprintf(p.Out, "extracting: %s (%s)\n", path, f)
	if err := p.Extractor.Extract(ctx, path, f, res.TextPath); err != nil {
		if ctx.Err() != nil {
			return res, fmt.Errorf("interrupted while extracting %s: %w", path, ctx.Err())
		}
		return res, err
	}

	res.Result, err = p.Scanner.ScanFile(res.TextPath, f)
	if err != nil {
		return res, err
	}
	if res.Result.Matched {
		matchColor.Fprintf(p.Out, "match: %s contains %q\n", path, res.Result.Term)
	} else {
		cleanColor.Fprintf(p.Out, "clean: %s\n", path)
	}
	return res, nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
