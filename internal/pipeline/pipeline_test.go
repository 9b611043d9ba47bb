// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/medscan/internal/extract"
	"github.com/pdiddy/medscan/internal/format"
	"github.com/pdiddy/medscan/internal/scan"
	"github.com/pdiddy/medscan/pkg/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeExtractor writes canned text for each input, or fails for the inputs
// listed in errs.
type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error

	calls []string
}

func (f *fakeExtractor) Extract(ctx context.Context, input string, _ types.Format, output string) error {
	f.calls = append(f.calls, input)
	if err, ok := f.errs[input]; ok {
		return err
	}
	return os.WriteFile(output, []byte(f.texts[input]), 0o644)
}

func newPipeline(t *testing.T, ext Extractor) (*Pipeline, *bytes.Buffer, string) {
	t.Helper()
	var out bytes.Buffer
	wsParent := filepath.Join(t.TempDir(), "work")
	return &Pipeline{
		Resolver:     format.NewResolver(false),
		Extractor:    ext,
		Scanner:      scan.NewScanner(scan.DefaultTerms()),
		WorkspaceDir: wsParent,
		Out:          &out,
		Log:          zap.NewNop(),
	}, &out, wsParent
}

// assertWorkspaceRemoved checks that no run workspace is left under parent.
func assertWorkspaceRemoved(t *testing.T, parent string) {
	t.Helper()
	entries, err := os.ReadDir(parent)
	if os.IsNotExist(err) {
		return
	}
	require.NoError(t, err)
	assert.Empty(t, entries, "workspace directory should be removed")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_EndToEndPlainText(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "intake.txt", "Patient health information attached")

	d := extract.NewDispatcher(types.DefaultConfig(), zap.NewNop())
	p, out, wsParent := newPipeline(t, d)

	summary, err := p.Run(context.Background(), []string{input})
	require.NoError(t, err)

	require.Len(t, summary.Files, 1)
	got := summary.Files[0]
	assert.Equal(t, types.FormatTXT, got.Format)
	assert.Equal(t, types.ScanResult{Matched: true, Term: "health information"}, got.Result)
	assert.NotEmpty(t, summary.RunID)

	log := out.String()
	assert.Equal(t, 1, strings.Count(log, "PRIVACY NOTICE"), "banner printed once")
	assert.Contains(t, log, `match: `+input+` contains "health information"`)
	assert.Contains(t, log, "done: 1 file(s) scanned, 1 with matches")

	_, statErr := os.Stat(got.TextPath)
	assert.True(t, os.IsNotExist(statErr), "extracted text should be deleted")
	assertWorkspaceRemoved(t, wsParent)

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "Patient health information attached", string(data), "input must be untouched")
}

func TestRun_MultipleFilesInOrder(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{
		"a.pdf":  "PHI inside; see dossier médical",
		"b.docx": "nothing sensitive",
		"c.xlsx": "Name Confidentiel Médical",
	}}
	p, out, wsParent := newPipeline(t, ext)

	summary, err := p.Run(context.Background(), []string{"a.pdf", "b.docx", "c.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.pdf", "b.docx", "c.xlsx"}, ext.calls)
	require.Len(t, summary.Files, 3)
	assert.Equal(t, "dossier médical", summary.Files[0].Result.Term)
	assert.False(t, summary.Files[1].Result.Matched)
	assert.Equal(t, "confidentiel médical", summary.Files[2].Result.Term)
	assert.Equal(t, 2, summary.Matched())

	log := out.String()
	assert.Contains(t, log, "starting: 3 file(s)")
	assert.Contains(t, log, "clean: b.docx")
	assert.Less(t, strings.Index(log, "extracting: a.pdf (pdf)"), strings.Index(log, "extracting: b.docx (docx)"))
	assert.Contains(t, log, "done: 3 file(s) scanned, 2 with matches")
	assertWorkspaceRemoved(t, wsParent)
}

func TestRun_NoFiles(t *testing.T) {
	p, out, wsParent := newPipeline(t, &fakeExtractor{})

	_, err := p.Run(context.Background(), nil)
	require.ErrorIs(t, err, types.ErrUsage)
	assert.Equal(t, types.CodeUsage, types.DiagnosticCode(err))
	assert.Empty(t, out.String())
	assertWorkspaceRemoved(t, wsParent)
}

func TestRun_UnsupportedFormatBeforeExtraction(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{"a.txt": "PHI"}}
	p, out, wsParent := newPipeline(t, ext)

	summary, err := p.Run(context.Background(), []string{"a.txt", "data.csv", "z.txt"})
	require.ErrorIs(t, err, types.ErrUnsupportedFormat)
	assert.Equal(t, types.CodeUnsupportedFormat, types.DiagnosticCode(err))

	assert.Equal(t, []string{"a.txt"}, ext.calls, "data.csv must not reach extraction")
	assert.Len(t, summary.Files, 1)
	assert.NotContains(t, out.String(), "extracting: data.csv")
	assert.NotContains(t, out.String(), "done:")
	assertWorkspaceRemoved(t, wsParent)
}

func TestRun_ExtractionFailureAbortsRun(t *testing.T) {
	ext := &fakeExtractor{
		texts: map[string]string{"a.pdf": "clean", "c.pdf": "PHI"},
		errs: map[string]error{
			"b.pdf": errors.Join(types.ErrExtraction, errors.New("running pdftotext: exit status 1")),
		},
	}
	p, _, wsParent := newPipeline(t, ext)

	_, err := p.Run(context.Background(), []string{"a.pdf", "b.pdf", "c.pdf"})
	require.ErrorIs(t, err, types.ErrExtraction)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ext.calls, "no file is processed after a failure")
	assertWorkspaceRemoved(t, wsParent)
}

func TestRun_Cancelled(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{"a.txt": "x"}}
	p, _, wsParent := newPipeline(t, ext)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Run(ctx, []string{"a.txt"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, ext.calls)
	assertWorkspaceRemoved(t, wsParent)
}

// cancellingExtractor cancels the run while "extracting".
type cancellingExtractor struct {
	cancel context.CancelFunc
}

func (c *cancellingExtractor) Extract(ctx context.Context, _ string, _ types.Format, _ string) error {
	c.cancel()
	return ctx.Err()
}

func TestRun_CancelledDuringExtraction(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p, _, wsParent := newPipeline(t, &cancellingExtractor{cancel: cancel})

	_, err := p.Run(ctx, []string{"a.pdf", "b.pdf"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "interrupted while extracting a.pdf")
	assertWorkspaceRemoved(t, wsParent)
}

func TestRun_FoldExtensionCase(t *testing.T) {
	ext := &fakeExtractor{texts: map[string]string{"SCAN.PDF": "phi"}}
	p, _, _ := newPipeline(t, ext)

	_, err := p.Run(context.Background(), []string{"SCAN.PDF"})
	require.ErrorIs(t, err, types.ErrUnsupportedFormat)

	p.Resolver = format.NewResolver(true)
	summary, err := p.Run(context.Background(), []string{"SCAN.PDF"})
	require.NoError(t, err)
	assert.Equal(t, types.FormatPDF, summary.Files[0].Format)
	assert.Equal(t, "PHI", summary.Files[0].Result.Term)
}
