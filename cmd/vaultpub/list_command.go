package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultpub/internal/publish"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show registered mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.registryStore()
			if err != nil {
				return err
			}
			mappings, err := store.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(mappings) == 0 {
				fmt.Fprintf(out, "No mappings registered in %s\n", store.Path())
				return nil
			}

			rows := make([][]string, 0, len(mappings))
			for i, m := range mappings {
				kind := "-"
				if m.Target != "" {
					kind = publish.Classify(m.Target, cfg.Publish.PublishedMarker).String()
				}
				rows = append(rows, []string{fmt.Sprintf("%d", i+1), m.Source, m.Target, kind})
			}
			fmt.Fprintln(out, renderTable(out, []string{"#", "Source", "Target", "Kind"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}
}
