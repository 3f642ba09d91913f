package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cookieshop/internal/config"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
)

func newThemesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Print the color palette of every theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Path:      flags.configPath,
				Overrides: flagOverrides(cmd, flags),
			})
			if err != nil {
				return newCommandError("themes", "loading configuration", err, "Check the config file, COOKIESHOP_* variables and flags.")
			}
			return renderThemes(cmd, cfg.ThemeName())
		},
	}

	return cmd
}

func renderThemes(cmd *cobra.Command, current theme.Name) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "THEME\tMAIN\tBACKGROUND\tACCENT PINK\tACCENT RED\tPREVIEW")

	for _, name := range theme.Names {
		p := theme.PaletteFor(name)
		label := name.String()
		if name == current {
			label += " *"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			label,
			p.MainColor,
			p.BackgroundColor,
			p.AccentPink,
			p.AccentRed,
			swatch(p),
		)
	}

	return writer.Flush()
}

func swatch(p theme.Palette) string {
	block := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Background(c).Render("  ")
	}
	return block(p.MainColor) + block(p.BackgroundColor) + block(p.AccentPink) + block(p.AccentRed)
}
