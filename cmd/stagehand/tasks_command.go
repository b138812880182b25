package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTasksCommand(ctx *commandContext) *cobra.Command {
	var programFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tasks CHAIN",
		Short: "List scene tasks and versions for a part",
		Long: `List the tasks discovered in a part's scene directories.

The chain must be a full five-segment part address. Tasks come from decoding
the scene file names on disk, so the listing reflects what artists actually
saved, including files created outside stagehand.`,
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
			part, err := resolvePart(tree, segments)
			if err != nil {
				return err
			}

			programs := part.Programs()
			if name := strings.TrimSpace(programFlag); name != "" {
				programs = []string{name}
			}

			type taskRow struct {
				Program  string   `json:"program"`
				Task     string   `json:"task"`
				Versions []string `json:"versions"`
			}
			var listing []taskRow
			for _, program := range programs {
				index, err := part.Tasks(program)
				if err != nil {
					return err
				}
				for _, task := range index.Tasks() {
					listing = append(listing, taskRow{
						Program:  program,
						Task:     task,
						Versions: index[task],
					})
				}
			}

			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"chain": chainString(segments),
					"tasks": listing,
				})
			}
			if len(listing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			rows := make([][]string, 0, len(listing))
			for _, entry := range listing {
				latest := ""
				if len(entry.Versions) > 0 {
					latest = entry.Versions[len(entry.Versions)-1]
				}
				rows = append(rows, []string{
					entry.Program,
					entry.Task,
					strconv.Itoa(len(entry.Versions)),
					latest,
				})
			}
			headers := []string{"Program", "Task", "Versions", "Latest"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().StringVarP(&programFlag, "program", "p", "", "Limit the listing to one program")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
