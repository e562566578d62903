package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vaultpub/internal/publish"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Publish every registered mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			return ctx.withPipeline(cmd.Context(), func(p *publish.Pipeline) error {
				results, err := p.PublishAll(cmd.Context(), mappings)
				for _, r := range results {
					fmt.Fprintln(out, describeResult(r))
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Published %d of %d mappings\n", len(results), len(mappings))
				return nil
			})
		},
	}
}

func describeResult(r publish.Result) string {
	name := filepath.Base(r.Mapping.Source)
	if r.Classification != publish.AssetBearing {
		return fmt.Sprintf("%s -> %s (%s)", name, r.Mapping.Target, r.Classification)
	}
	return fmt.Sprintf("%s -> %s (%s, %s)", name, r.Mapping.Target, r.Classification, pluralize(len(r.Images), "image"))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
