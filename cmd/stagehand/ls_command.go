package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "ls [CHAIN]",
		Short: "List the entries one level below a chain",
		Long: `List the entries one level below a chain address.

Without arguments ls lists shows. A chain such as sh01/shot/sq010 lists the
next level down; a full five-segment chain lists the part's programs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var segments []string
			if len(args) == 1 {
				parsed, err := parseChain(args[0])
				if err != nil {
					return err
				}
				segments = parsed
			}
			tree, err := ctx.tree()
			if err != nil {
				return err
			}
			names, label, err := listChildren(tree, segments)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"chain":   chainString(segments),
					"entries": names,
				})
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{label}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
