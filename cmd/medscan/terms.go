// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medscan/internal/scan"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the sensitive terms in scan order",
	Long: `Terms prints the built-in sensitive-term list. Terms are checked in this
order and the first one present in a file is the one reported.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, t := range scan.DefaultTerms().Terms() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, t)
		}
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
}
