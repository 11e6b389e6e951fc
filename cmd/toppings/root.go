package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	variant    string
	sizes      []string
	toppings   []string
	logLevel   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "toppings",
		Short:         "Build a pizza or cookie and preview the toppings",
		Long:          "Interactive builder: pick a size and toppings and watch the preview update.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuilder(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a builder configuration file")
	cmd.PersistentFlags().StringVar(&flags.variant, "variant", "", "Catalog to build with (pizza, cookie)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.PersistentFlags().StringSliceVar(&flags.sizes, "sizes", nil, "Size options to offer, in order")
	cmd.PersistentFlags().StringSliceVar(&flags.toppings, "toppings", nil, "Topping options to offer, in order")

	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file while the interactive builder runs")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
