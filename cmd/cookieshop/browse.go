package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cookieshop/internal/tui"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive catalog browser",
		Long:  `Launch the interactive TUI to browse, inspect and remove catalog items.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowseCommand(cmd, flags)
		},
	}

	return cmd
}

func runBrowseCommand(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, "browse", true)
	if err != nil {
		return err
	}
	defer app.Close()

	s, err := app.NewShop()
	if err != nil {
		return newCommandError("browse", "building the shop", err, "Make sure every item in the seed has a unique id.")
	}

	ctx := app.CommandContext(cmd)
	app.Logger.Info("launching browser")

	program := tea.NewProgram(
		tui.NewModel(ctx, s),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		app.Logger.Error(err, "browser exited with error")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		app.Logger.InfoFields("browser closed", map[string]any{
			"items_left": len(m.Snapshot().Items),
			"theme":      m.Snapshot().Theme.String(),
		})
	}

	return nil
}
