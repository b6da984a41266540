package main

import (
	"github.com/spf13/cobra"

	"github.com/quiltui/quilt/layout"
)

var configPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quilt",
		Short: "Inspect quilt layout trees",
		Long: "quilt runs the layout engine over TOML tree descriptions\n" +
			"and reports the computed geometry.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "layout config file (TOML)")
	cmd.AddCommand(inspectCmd())
	return cmd
}

func loadLayoutConfig() (layout.Config, error) {
	if configPath == "" {
		return layout.DefaultConfig(), nil
	}
	return layout.LoadConfig(configPath)
}
