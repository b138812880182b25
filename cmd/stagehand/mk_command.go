package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMkCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mk CHAIN",
		Short: "Create the final segment of a chain",
		Long: `Create the branch named by the final chain segment.

Parents must already exist: mk sh01 creates a show, mk sh01/shot a category
inside it, and so on down to mk sh01/shot/sq010/sq010_0010/comp for a part.
Every subdirectory the schema declares for that level is created with it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := parseChain(args[0])
			if err != nil {
				return err
			}
			tree, err := ctx.tree()
			if err != nil {
				return err
			}
			path, err := createNode(tree, segments)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	return cmd
}
