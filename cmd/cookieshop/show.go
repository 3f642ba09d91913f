package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/router"
	"github.com/alexisbeaulieu97/cookieshop/internal/shop"
	"github.com/alexisbeaulieu97/cookieshop/internal/theme"
	"github.com/alexisbeaulieu97/cookieshop/internal/tui/components"
	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <path-or-id>",
		Short: "Render the page at a path, or the detail page of an item id",
		Example: `  cookieshop show 3
  cookieshop show /cookies/3
  cookieshop show /`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowCommand(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the resolved route and item as JSON")

	return cmd
}

func runShowCommand(cmd *cobra.Command, flags *rootFlags, target string, opts *showOptions) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return newCommandError("show", "validating the target", shoperrors.NewValidationError("target", "must not be empty", nil), "Pass an item id or a path such as /cookies/1.")
	}

	app, err := newAppContext(cmd, flags, "show", false)
	if err != nil {
		return err
	}
	defer app.Close()

	s, err := app.NewShop()
	if err != nil {
		return newCommandError("show", "building the shop", err, "Make sure every item in the seed has a unique id.")
	}

	path := target
	if !strings.HasPrefix(path, "/") {
		path = "/" + s.Snapshot().Section.String() + "/" + target
	}

	route := s.Actions(app.CommandContext(cmd)).Navigate(path)
	snap := s.Snapshot()

	if route.View == router.ViewNotFound {
		err := newCommandError("show", fmt.Sprintf("resolving %q", target), notFoundFor(snap, path), "Run 'cookieshop list' to see the available ids.")
		app.logFailure("show", err)
		return err
	}

	if opts.jsonOutput {
		return renderShowJSON(cmd, snap)
	}

	styles := theme.For(snap.Theme)
	out := cmd.OutOrStdout()
	switch route.View {
	case router.ViewLanding:
		fmt.Fprintln(out, components.Landing(snap.Name, snap.Section, styles))
	case router.ViewList:
		return renderListTable(out, snap)
	case router.ViewDetail:
		fmt.Fprintln(out, components.ItemDetail(*snap.Selected, snap.Section, styles))
	}
	return nil
}

// notFoundFor names the missing item when path looks like a detail path.
func notFoundFor(snap shop.Snapshot, path string) error {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 2 {
		if _, err := catalog.ParseCategory(segments[0]); err != nil {
			return shoperrors.NewNotFoundError("page", path)
		}
		return shoperrors.NewNotFoundError(snap.Section.Singular(), segments[1])
	}
	return shoperrors.NewNotFoundError("page", path)
}

type showJSONPayload struct {
	View string `json:"view"`
	Path string `json:"path"`
	Item any    `json:"item,omitempty"`
}

func renderShowJSON(cmd *cobra.Command, snap shop.Snapshot) error {
	payload := showJSONPayload{
		View: snap.Route.View.String(),
		Path: snap.Path,
	}
	if snap.Selected != nil {
		payload.Item = snap.Selected
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
