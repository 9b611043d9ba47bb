// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/medscan/pkg/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		foldCase bool
		path     string
		want     types.Format
		wantErr  bool
	}{
		{name: "pdf", path: "scans/report.pdf", want: types.FormatPDF},
		{name: "docx", path: "letter.docx", want: types.FormatDOCX},
		{name: "xlsx", path: "/tmp/sheet.xlsx", want: types.FormatXLSX},
		{name: "txt", path: "notes.txt", want: types.FormatTXT},
		{name: "last dot wins", path: "archive.tar.txt", want: types.FormatTXT},
		{name: "csv rejected", path: "data.csv", wantErr: true},
		{name: "no extension", path: "README", wantErr: true},
		{name: "dot in directory only", path: "v1.2/README", wantErr: true},
		{name: "trailing dot", path: "odd.", wantErr: true},
		{name: "upper case rejected by default", path: "REPORT.PDF", wantErr: true},
		{name: "mixed case rejected by default", path: "notes.Txt", wantErr: true},
		{name: "upper case accepted when folding", foldCase: true, path: "REPORT.PDF", want: types.FormatPDF},
		{name: "folding still rejects csv", foldCase: true, path: "DATA.CSV", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResolver(tt.foldCase).Resolve(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrUnsupportedFormat)
				assert.Contains(t, err.Error(), tt.path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveReturnsExtensionUnchanged(t *testing.T) {
	r := &Resolver{}
	for _, f := range types.SupportedFormats() {
		got, err := r.Resolve("file." + string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
