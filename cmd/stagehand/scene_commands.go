package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"stagehand/internal/branch"
	"stagehand/internal/config"
	"stagehand/internal/logging"
)

func newSceneCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Create and open scene files through program launchers",
	}
	cmd.AddCommand(newSceneCreateCommand(ctx))
	cmd.AddCommand(newSceneOpenCommand(ctx))
	return cmd
}

func newSceneCreateCommand(ctx *commandContext) *cobra.Command {
	var programFlag string
	var versionFlag string

	cmd := &cobra.Command{
		Use:   "create CHAIN TASK",
		Short: "Create a new scene version",
		Long: `Create a scene file by running the program's create launcher.

The chain must be a full five-segment part address. The launcher receives the
scene path as its argument plus the chain identity in the environment, and
the command waits for it to finish.`,
		Args: cobra.ExactArgs(2),
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
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			program, err := resolveProgram(cfg, part, programFlag)
			if err != nil {
				return err
			}
			task, err := part.Task(program, args[1])
			if err != nil {
				return err
			}
			runner, err := ctx.runner()
			if err != nil {
				return err
			}
			scenePath, err := runner.CreateScene(cmd.Context(), task, versionFlag)
			if err != nil {
				return err
			}
			rememberSelection(ctx, chainString(segments), program)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", scenePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&programFlag, "program", "p", "", "Program whose launcher creates the scene")
	cmd.Flags().StringVar(&versionFlag, "version", "", "Scene version, e.g. v001")
	_ = cmd.MarkFlagRequired("version")
	return cmd
}

func newSceneOpenCommand(ctx *commandContext) *cobra.Command {
	var programFlag string
	var versionFlag string
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "open CHAIN TASK",
		Short: "Open an existing scene version",
		Long: `Open a scene file by running the program's open launcher, detached.

Without --version the newest version on disk is opened. The command briefly
waits for early launcher failures, then leaves the program running and
returns; later failures land in the launch log directory.`,
		Args: cobra.ExactArgs(2),
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
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			program, err := resolveProgram(cfg, part, programFlag)
			if err != nil {
				return err
			}
			task, err := part.Task(program, args[1])
			if err != nil {
				return err
			}
			runner, err := ctx.runner()
			if err != nil {
				return err
			}

			failures := make(chan error, 1)
			opened, err := runner.OpenScene(task, versionFlag, func(launchErr error) {
				select {
				case failures <- launchErr:
				default:
				}
			})
			if err != nil {
				return err
			}

			// Fast launcher failures surface here; anything slower is
			// background-only and lands in the launch log.
			select {
			case launchErr := <-failures:
				return launchErr
			case <-time.After(wait):
			}

			rememberSelection(ctx, chainString(segments), program)
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s %s (launch %s)\n", opened.Program, opened.Version, opened.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&programFlag, "program", "p", "", "Program whose launcher opens the scene")
	cmd.Flags().StringVar(&versionFlag, "version", "", "Scene version; defaults to the newest on disk")
	cmd.Flags().DurationVar(&wait, "wait", 2*time.Second, "How long to wait for early launcher failures")
	return cmd
}

// resolveProgram picks the program for a scene command: the flag wins, then
// the configured default when the part registers it, then a sole registered
// program.
func resolveProgram(cfg *config.Config, part *branch.Part, flag string) (string, error) {
	if name := strings.TrimSpace(flag); name != "" {
		return name, nil
	}
	programs := part.Programs()
	if cfg.DefaultProgram != "" {
		for _, name := range programs {
			if name == cfg.DefaultProgram {
				return cfg.DefaultProgram, nil
			}
		}
	}
	if len(programs) == 1 {
		return programs[0], nil
	}
	if len(programs) == 0 {
		return "", fmt.Errorf("part %q registers no programs", part.Name())
	}
	return "", fmt.Errorf("part %q registers programs %s; pick one with --program", part.Name(), strings.Join(programs, ", "))
}

// rememberSelection records the last-used chain and program for front-ends.
// Failures are logged, never surfaced; preferences must not gate pipeline
// work.
func rememberSelection(ctx *commandContext, chain, program string) {
	store, err := ctx.prefsStore()
	if err != nil {
		return
	}
	logger := ctx.ensureLogger()
	if err := store.SetRecent("chain", chain); err != nil {
		logger.Warn("record recent chain failed", logging.Error(err))
	}
	if err := store.SetRecent("program", program); err != nil {
		logger.Warn("record recent program failed", logging.Error(err))
	}
}
