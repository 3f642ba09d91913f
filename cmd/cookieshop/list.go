package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cookieshop/internal/catalog"
	"github.com/alexisbeaulieu97/cookieshop/internal/events"
	"github.com/alexisbeaulieu97/cookieshop/internal/shop"
)

type listOptions struct {
	jsonOutput bool
	search     string
	deleteIDs  []string
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Long: `Print the catalog as a table or JSON.

--delete removes items from this session's copy of the catalog before printing.
Ids that are not in the catalog are ignored; the seed file is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCommand(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only show items whose name contains this text")
	cmd.Flags().StringSliceVarP(&opts.deleteIDs, "delete", "d", nil, "Remove items by id before printing (repeatable)")

	return cmd
}

func runListCommand(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(cmd, flags, "list", false)
	if err != nil {
		return err
	}
	defer app.Close()

	s, err := app.NewShop()
	if err != nil {
		return newCommandError("list", "building the shop", err, "Make sure every item in the seed has a unique id.")
	}

	sub, err := app.Publisher.Subscribe(events.EventItemRemoveMissed, func(_ context.Context, event events.Event) error {
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "note: no item with id %v, nothing removed\n", event.Payload["item_id"])
		return err
	})
	if err != nil {
		return newCommandError("list", "subscribing to shop events", err, "This is a bug; please report it.")
	}
	defer sub.Unsubscribe()

	actions := s.Actions(app.CommandContext(cmd))
	for _, raw := range opts.deleteIDs {
		if _, err := actions.DeleteRaw(raw); err != nil {
			err = newCommandError("list", fmt.Sprintf("removing item %q", raw), err, "Item ids are whole numbers, e.g. --delete 2.")
			app.logFailure("list", err)
			return err
		}
	}
	actions.Search(opts.search)

	snap := s.Snapshot()
	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), snap)
	}
	return renderListTable(cmd.OutOrStdout(), snap)
}

func renderListTable(out io.Writer, snap shop.Snapshot) error {
	if len(snap.Visible) == 0 {
		return renderEmptyList(out, snap)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tPRICE\tCATEGORY\tIMAGE")
	for _, item := range snap.Visible {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n",
			item.ID,
			valueOrFallback(item.Name, "(no name)"),
			item.DisplayPrice(),
			item.Category,
			valueOrFallback(item.Image, "-"),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d of %d %s shown\n", len(snap.Visible), len(snap.Items), snap.Section)
	return nil
}

func renderEmptyList(out io.Writer, snap shop.Snapshot) error {
	if snap.Query != "" {
		fmt.Fprintf(out, "No %s match %q.\n", snap.Section, snap.Query)
		return nil
	}
	fmt.Fprintf(out, "No %s left.\n", snap.Section)
	return nil
}

type listJSONPayload struct {
	Version string         `json:"version"`
	Shop    string         `json:"shop"`
	Section string         `json:"section"`
	Theme   string         `json:"theme"`
	Query   string         `json:"query,omitempty"`
	Total   int            `json:"total"`
	Count   int            `json:"count"`
	Items   []catalog.Item `json:"items"`
}

func renderListJSON(out io.Writer, snap shop.Snapshot) error {
	payload := listJSONPayload{
		Version: "1.0",
		Shop:    snap.Name,
		Section: snap.Section.String(),
		Theme:   snap.Theme.String(),
		Query:   snap.Query,
		Total:   len(snap.Items),
		Count:   len(snap.Visible),
		Items:   snap.Visible,
	}
	if payload.Items == nil {
		payload.Items = []catalog.Item{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
