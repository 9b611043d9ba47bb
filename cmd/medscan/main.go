// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medscan CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medscan/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the medscan CLI.
var rootCmd = &cobra.Command{
	Use:   "medscan",
	Short: "Scan documents for sensitive medical terms",
	Long: `medscan converts PDF, DOCX, XLSX, and plain-text files to text and reports
the first sensitive medical term found in each one.

Conversion is done by external programs (pdftotext, docx2txt, xlsx2csv) or,
with --backend library, by built-in Go libraries. Extracted text lives in a
temporary workspace that is removed when the run ends.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("%w: no command given; run \"medscan scan [files...]\" or see --help", types.ErrUsage)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./medscan.yaml or ~/.config/medscan/medscan.yaml)")
	flags.Bool("debug", false, "enable diagnostic logging on stderr")
	flags.String("workspace-dir", "", "parent directory for the temporary workspace (default: system temp dir)")
	flags.Bool("fold-extension-case", false, "accept upper- and mixed-case extensions such as .PDF")
	flags.String("backend", string(types.BackendExternal), "extraction backend: external or library")

	for key, flag := range map[string]string{
		"debug":               "debug",
		"workspace_dir":       "workspace-dir",
		"fold_extension_case": "fold-extension-case",
		"backend":             "backend",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medscan"))
		}
	}

	viper.SetEnvPrefix("MEDSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

var fatalMarker = color.New(color.FgRed, color.Bold)

// printFatal writes the single-line diagnostic for a fatal error.
func printFatal(w io.Writer, err error) {
	fatalMarker.Fprint(w, "[FATAL]")
	fmt.Fprintf(w, " %s %v\n", types.DiagnosticCode(err), err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printFatal(os.Stderr, err)
		os.Exit(1)
	}
}
