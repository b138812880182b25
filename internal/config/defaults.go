package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultSchemaPath       = "~/.config/stagehand/schema.toml"
	defaultPrefsPath        = "~/.config/stagehand/prefs.json"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// Default returns a Config populated with repository defaults. The root
// locations stay empty on purpose: they must come from the config file or
// the environment.
func Default() Config {
	return Config{
		SchemaPath:       defaultSchemaPath,
		PrefsPath:        defaultPrefsPath,
		LogDir:           defaultLogDir(),
		LogLevel:         defaultLogLevel,
		LogFormat:        defaultLogFormat,
		LogRetentionDays: defaultLogRetentionDays,
	}
}

func defaultLogDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "stagehand", "logs")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/state/stagehand/logs"
	}
	return filepath.Join(home, ".local", "state", "stagehand", "logs")
}
