// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/medscan/internal/extract"
	"github.com/pdiddy/medscan/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which converter handles each format",
	Long: `Check resolves the converter for every supported format using the current
configuration and reports the program that would run. It exits non-zero when
a format has no usable converter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d := extract.NewDispatcher(cfg, zap.NewNop())
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		missing := 0
		for _, s := range d.Selections() {
			if s.Err != nil {
				missing++
				fmt.Fprintf(tw, "%s\tunavailable (%v)\n", s.Format, s.Err)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\n", s.Format, s.Program)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("%w: %d format(s) have no converter", types.ErrExtraction, missing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
