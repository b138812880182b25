package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPinCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Manage pinned chains",
	}
	cmd.AddCommand(newPinAddCommand(ctx))
	cmd.AddCommand(newPinRemoveCommand(ctx))
	cmd.AddCommand(newPinListCommand(ctx))
	return cmd
}

func newPinAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add CHAIN",
		Short: "Pin a chain for quick access",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := parseChain(args[0])
			if err != nil {
				return err
			}
			tree, err := ctx.tree()
			if err != nil {
				return err
			}
			if err := resolveChain(tree, segments); err != nil {
				return err
			}
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			chain := chainString(segments)
			if err := store.AddPin(chain); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pinned %s\n", chain)
			return nil
		},
	}
}

func newPinRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm CHAIN",
		Short: "Remove a pinned chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No existence check: stale pins referring to deleted branches
			// must stay removable.
			segments, err := parseChain(args[0])
			if err != nil {
				return err
			}
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			chain := chainString(segments)
			if err := store.RemovePin(chain); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %s\n", chain)
			return nil
		},
	}
}

func newPinListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pinned chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			pins, err := store.Pins()
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, map[string]any{"pins": pins})
			}
			if len(pins) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pins.")
				return nil
			}
			for _, pin := range pins {
				fmt.Fprintln(cmd.OutOrStdout(), pin)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of plain lines")
	return cmd
}

func newRecentCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the last-used selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			recents, err := store.Recents()
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, recents)
			}
			if len(recents) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recent selections.")
				return nil
			}

			keys := make([]string, 0, len(recents))
			for key := range recents {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				rows = append(rows, []string{titleLabel(key), recents[key]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Selection", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
