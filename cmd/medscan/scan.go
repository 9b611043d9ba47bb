// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medscan/internal/extract"
	"github.com/pdiddy/medscan/internal/format"
	"github.com/pdiddy/medscan/internal/logging"
	"github.com/pdiddy/medscan/internal/pipeline"
	"github.com/pdiddy/medscan/internal/scan"
	"github.com/pdiddy/medscan/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Extract text from files and report sensitive medical terms",
	Long: `Scan processes each file in the order given: it checks the extension
(pdf, docx, xlsx, txt), extracts plain text into a temporary workspace, and
reports the first sensitive medical term found, if any.

The first unsupported file or failed extraction stops the run with a non-zero
exit status. The workspace is removed however the run ends, including on
interrupt.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provide one or more files to scan", types.ErrUsage)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &pipeline.Pipeline{
		Resolver:     format.NewResolver(cfg.FoldExtensionCase),
		Extractor:    extract.NewDispatcher(cfg, log),
		Scanner:      scan.NewScanner(scan.DefaultTerms()),
		WorkspaceDir: cfg.WorkspaceDir,
		Out:          cmd.OutOrStdout(),
		Log:          log,
	}
	_, err = p.Run(ctx, args)
	return err
}
