package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var showDefault bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration that play would use, as YAML, after the
config search order and flag overrides are applied.

Use --default to print the built-in file, a starting point for
~/.game2048/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showDefault {
				_, err := out.Write(config.DefaultYAML())
				return err
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showDefault, "default", false, "Print the built-in default config")

	return cmd
}
