package launch

import "errors"

var (
	// ErrUnsupportedPlatform reports that a program declares no launcher
	// command for the current operating system.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrNoVersion reports that no scene version was supplied and none
	// could be inferred from existing scene files.
	ErrNoVersion = errors.New("no version")

	// ErrCommandFailed reports that a launcher command could not be
	// spawned or exited non-zero. It is terminal for the call; nothing
	// here retries.
	ErrCommandFailed = errors.New("command failed")
)
