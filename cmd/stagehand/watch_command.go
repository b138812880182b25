package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"stagehand/internal/logging"
	"stagehand/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [CHAIN]",
		Short: "Stream entry changes below a chain",
		Long: `Watch the directory one level below a chain and print a line whenever
an entry appears or disappears. Without arguments the show root is watched.
Interrupt the command to stop.`,
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
			dir, err := watchTarget(tree, segments)
			if err != nil {
				return err
			}

			logger := logging.NewComponentLogger(ctx.ensureLogger(), "watch")
			if !ctx.verbose() {
				logger = logging.WithLevelOverride(logger, slog.LevelWarn)
			}
			watcher, err := watch.New(dir, logger)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			done := make(chan error, 1)
			go func() {
				done <- watcher.Run(runCtx)
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s\n", dir)
			for event := range watcher.Events() {
				fmt.Fprintf(out, "%-8s %s\n", event.Op, event.Name)
			}

			if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	return cmd
}
