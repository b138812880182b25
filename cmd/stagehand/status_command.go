package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"stagehand/internal/deps"
	"stagehand/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report pipeline readiness",
		Long: `Check the configured roots, the schema, and the launcher commands the
schema registers for this platform, then summarize what is usable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report := preflight.Run(cfg, runtime.GOOS)
			if jsonOut {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			var lines []string
			lines = append(lines, renderSectionHeader("Checks", colorize)...)
			for _, result := range report.Results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				lines = append(lines, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if len(report.Commands) > 0 {
				lines = append(lines, "")
				lines = append(lines, renderSectionHeader("Launcher commands", colorize)...)
				for _, status := range report.Commands {
					lines = append(lines, renderStatusLine(status.Name, commandKind(status), commandMessage(status), colorize))
				}
			}

			lines = append(lines, "")
			if report.Passed() {
				lines = append(lines, "Ready.")
			} else {
				lines = append(lines, "Not ready; fix the failing checks above.")
			}
			fmt.Fprintln(out, strings.Join(lines, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of the readable report")
	return cmd
}

func commandKind(status deps.Status) statusKind {
	switch {
	case status.Available:
		return statusOK
	case status.Optional:
		return statusWarn
	default:
		return statusError
	}
}

func commandMessage(status deps.Status) string {
	if status.Available {
		return status.Command
	}
	return status.Detail
}
