// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medscan/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the settings a scan would use after merging the defaults,
the config file, MEDSCAN_* environment variables, and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// loadConfig decodes viper's merged settings (defaults, config file,
// MEDSCAN_* environment, flags) and validates the result.
func loadConfig() (types.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.Config, error) {
	setDefaults(v)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setDefaults registers types.DefaultConfig leaf by leaf, so a config file
// that lists its own converters for one format replaces that list whole.
func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault("debug", def.Debug)
	v.SetDefault("workspace_dir", def.WorkspaceDir)
	v.SetDefault("fold_extension_case", def.FoldExtensionCase)
	v.SetDefault("backend", string(def.Backend))
	v.SetDefault("converters.pdf", def.Converters.PDF)
	v.SetDefault("converters.docx", def.Converters.DOCX)
	v.SetDefault("converters.xlsx", def.Converters.XLSX)
}
