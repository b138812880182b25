package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"stagehand/internal/platform"
)

func newProgramsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "programs",
		Short: "List the programs the schema registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := ctx.ensureSchema()
			if err != nil {
				return err
			}

			names := sch.ProgramNames()

			if jsonOut {
				return writeJSON(cmd, sch.Programs)
			}

			placeholder := func(command string, ok bool) string {
				if !ok {
					return "-"
				}
				return command
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				program, _ := sch.Program(name)
				create, createOK := platform.CommandFor(runtime.GOOS, program.Create)
				open, openOK := platform.CommandFor(runtime.GOOS, program.Open)
				rows = append(rows, []string{
					name,
					program.Name,
					program.Extension,
					placeholder(create, createOK),
					placeholder(open, openOK),
				})
			}
			headers := []string{"Program", "Label", "Extension", "Create", "Open"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
