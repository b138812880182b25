package launch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"stagehand/internal/branch"
	"stagehand/internal/logging"
	"stagehand/internal/platform"
)

// Executor abstracts launcher process execution for testability.
type Executor interface {
	// RunSync runs command to completion and returns captured stderr.
	RunSync(ctx context.Context, command string, args, env []string) (string, error)
	// StartDetached starts command in its own session. A start failure is
	// returned directly and onExit is never called; otherwise onExit fires
	// exactly once after the process exits.
	StartDetached(command string, args, env []string, onExit func(stderr string, err error)) error
}

// Option configures the runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Runner) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithGOOS overrides the operating system used for command resolution.
func WithGOOS(goos string) Option {
	return func(r *Runner) {
		if goos != "" {
			r.goos = goos
		}
	}
}

// WithLogDir enables per-launch failure logs under dir.
func WithLogDir(dir string) Option {
	return func(r *Runner) {
		r.logDir = dir
	}
}

// Runner resolves and executes the per-program launcher commands.
type Runner struct {
	goos   string
	logDir string
	logger *slog.Logger
	exec   Executor
}

// Launch describes a detached scene open that has been handed to the
// operating system.
type Launch struct {
	ID        string
	Program   string
	Version   string
	ScenePath string
}

// New constructs a runner. A nil logger silences it.
func New(logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		goos:   runtime.GOOS,
		logger: logging.NewNop(),
		exec:   commandExecutor{},
	}
	if logger != nil {
		runner.logger = logger
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// CreateScene resolves the scene path for version and runs the program's
// create command with it, blocking until the command exits. The command
// owns writing the file; the runner only refuses paths that already exist
// and prepares the scene directory.
func (r *Runner) CreateScene(ctx context.Context, task *branch.Task, version string) (string, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return "", fmt.Errorf("create scene: version required: %w", ErrNoVersion)
	}

	command, ok := platform.CommandFor(r.goos, task.ProgramSpec().Create)
	if !ok {
		return "", fmt.Errorf("program %q has no create command for %s: %w", task.Program(), r.goos, ErrUnsupportedPlatform)
	}

	scenePath := task.ScenePath(version)
	if _, err := os.Stat(scenePath); err == nil {
		return "", fmt.Errorf("scene %q: %w", filepath.Base(scenePath), branch.ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat scene: %w", err)
	}

	// Program scene directories carry no schema mode; artists write into
	// them directly, so they follow the group-writable studio default.
	if err := os.MkdirAll(task.Path(), 0o775); err != nil {
		return "", fmt.Errorf("create scene directory: %w", err)
	}

	log := r.logger.With(
		logging.String(logging.FieldProgram, task.Program()),
		logging.String(logging.FieldVersion, version),
		logging.String(logging.FieldPath, scenePath),
	)
	log.Info("creating scene", logging.String("command", command))

	stderr, err := r.exec.RunSync(ctx, command, []string{scenePath}, environ(task, version, scenePath))
	if err != nil {
		return "", commandError(command, stderr, err)
	}

	log.Info("scene created")
	return scenePath, nil
}

// OpenScene launches the program's open command against a scene version,
// detached from the calling process. An empty version resolves to the
// newest discovered one. Spawn failures and non-zero exits are both
// delivered through onError exactly once; a successful exit produces no
// callback.
func (r *Runner) OpenScene(task *branch.Task, version string, onError func(error)) (*Launch, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		versions, err := task.Versions()
		if err != nil {
			return nil, fmt.Errorf("discover versions: %w", err)
		}
		if len(versions) == 0 {
			return nil, fmt.Errorf("task %q has no versions to open: %w", task.Name(), ErrNoVersion)
		}
		version = versions[len(versions)-1]
	}

	command, ok := platform.CommandFor(r.goos, task.ProgramSpec().Open)
	if !ok {
		return nil, fmt.Errorf("program %q has no open command for %s: %w", task.Program(), r.goos, ErrUnsupportedPlatform)
	}

	scenePath := task.ScenePath(version)
	launch := &Launch{
		ID:        uuid.NewString(),
		Program:   task.Program(),
		Version:   version,
		ScenePath: scenePath,
	}

	log := r.logger.With(
		logging.String(logging.FieldLaunchID, launch.ID),
		logging.String(logging.FieldProgram, launch.Program),
		logging.String(logging.FieldVersion, launch.Version),
		logging.String(logging.FieldPath, launch.ScenePath),
	)

	report := func(failure error) {
		log.Error("scene open failed", logging.Error(failure))
		r.writeFailureLog(launch, failure)
		if onError != nil {
			onError(failure)
		}
	}

	log.Info("opening scene", logging.String("command", command))

	err := r.exec.StartDetached(command, []string{scenePath}, environ(task, version, scenePath), func(stderr string, err error) {
		if err != nil {
			report(commandError(command, stderr, err))
		}
	})
	if err != nil {
		report(commandError(command, "", err))
	}
	return launch, nil
}

// writeFailureLog records a failed launch under the log directory so the
// error survives after the callback consumer is gone.
func (r *Runner) writeFailureLog(launch *Launch, failure error) {
	if r.logDir == "" {
		return
	}
	if err := os.MkdirAll(r.logDir, 0o755); err != nil {
		r.logger.Warn("create launch log directory failed", logging.String(logging.FieldPath, r.logDir), logging.Error(err))
		return
	}
	path := filepath.Join(r.logDir, "launch-"+launch.ID+".log")
	body := fmt.Sprintf("time: %s\nprogram: %s\nversion: %s\nscene: %s\nerror: %v\n",
		time.Now().Format(time.RFC3339), launch.Program, launch.Version, launch.ScenePath, failure)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		r.logger.Warn("write launch log failed", logging.String(logging.FieldPath, path), logging.Error(err))
	}
}

// commandError folds an execution failure into ErrCommandFailed. Exit
// failures compose the exit code with captured stderr; start failures keep
// the raw error text.
func commandError(command, stderr string, err error) error {
	base := filepath.Base(command)
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		message := fmt.Sprintf("%s exited with code %d", base, exit.ExitCode())
		if detail := strings.TrimSpace(stderr); detail != "" {
			message += ": " + detail
		}
		return fmt.Errorf("%s: %w", message, ErrCommandFailed)
	}
	return fmt.Errorf("%s: %v: %w", base, err, ErrCommandFailed)
}

type commandExecutor struct{}

func (commandExecutor) RunSync(ctx context.Context, command string, args, env []string) (string, error) {
	cmd := exec.CommandContext(ctx, command, args...) //nolint:gosec
	cmd.Env = env
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

func (commandExecutor) StartDetached(command string, args, env []string, onExit func(stderr string, err error)) error {
	cmd := exec.Command(command, args...) //nolint:gosec
	cmd.Env = env
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// Launcher scripts commonly exec the application, which inherits the
	// stderr pipe; cap the pipe wait so the exit status still gets
	// reported while the application keeps running.
	cmd.WaitDelay = 10 * time.Second
	platform.Detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		err := cmd.Wait()
		if errors.Is(err, exec.ErrWaitDelay) {
			// The launcher exited cleanly and only the inherited pipe
			// outlived the grace window.
			err = nil
		}
		onExit(stderr.String(), err)
	}()
	return nil
}
