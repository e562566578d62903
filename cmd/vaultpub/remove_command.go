package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <source>",
		Short: "Deregister every mapping whose source has the given filename",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.registryStore()
			if err != nil {
				return err
			}
			removed, err := store.Remove(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range removed {
				fmt.Fprintf(out, "Removed %s -> %s\n", m.Source, m.Target)
			}
			return nil
		},
	}
}
