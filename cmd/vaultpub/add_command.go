package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vaultpub/internal/registry"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var private bool
	cmd := &cobra.Command{
		Use:   "add <source> [target]",
		Short: "Register a note for publishing",
		Long: "Register a note for publishing.\n\n" +
			"When target is omitted it defaults to <date>-<filename> under the\n" +
			"public target root, or the private root with --private.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.registryStore()
			if err != nil {
				return err
			}
			req := registry.AddRequest{Source: args[0], Private: private}
			if len(args) == 2 {
				req.Target = args[1]
			}
			mapping, err := store.Add(req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s -> %s\n", mapping.Source, mapping.Target)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&private, "private", "p", false, "Use the private target root for the default target")
	return cmd
}
