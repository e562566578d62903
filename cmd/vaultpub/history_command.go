package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vaultpub/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent publishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				entries, err := store.Recent(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Journal: %s\n", store.Path())
				if len(entries) == 0 {
					fmt.Fprintln(out, "No publishes recorded")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					kind := "mirror"
					if e.AssetBearing {
						kind = "post"
					}
					rows = append(rows, []string{
						e.PublishedAt.Local().Format("2006-01-02 15:04:05"),
						e.Source,
						e.Target,
						kind,
						strconv.Itoa(e.ImageCount),
						shortRunID(e.RunID),
					})
				}
				headers := []string{"Published", "Source", "Target", "Kind", "Images", "Run"}
				align := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(out, headers, rows, align))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
