// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"io"

	"github.com/fatih/color"
)

// Banner is the privacy notice printed once at the start of every run.
const Banner = `PRIVACY NOTICE
Documents are processed on this machine only. Extracted text is kept in a
temporary workspace that is deleted when the run ends, whether it succeeds or
fails. Findings are printed to this terminal and are not stored.`

var (
	bannerColor = color.New(color.FgCyan)
	matchColor  = color.New(color.FgYellow, color.Bold)
	cleanColor  = color.New(color.FgGreen)
)

func printBanner(w io.Writer) {
	bannerColor.Fprintln(w, Banner)
	io.WriteString(w, "\n")
}
