package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	seedPath   string
	theme      string
	category   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cookieshop",
		Short:         "Browse the cookie shop catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to draw on; print the catalog instead.
			if !isTerminal(cmd.OutOrStdout()) {
				return runListCommand(cmd, flags, &listOptions{})
			}
			return runBrowseCommand(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a config file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&flags.seedPath, "seed", "", "Path to a seed catalog (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Initial theme: light or dark")
	cmd.PersistentFlags().StringVar(&flags.category, "category", "", "Catalog section: cookies or products")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
