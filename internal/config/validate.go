package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root must be set (set %s or root in the config file)", EnvRoot)
	}
	if c.ShowRoot == "" {
		return fmt.Errorf("show_root must be set (set %s or show_root in the config file)", EnvShowRoot)
	}
	if c.SchemaPath == "" {
		return errors.New("schema_path must be set")
	}
	if c.PrefsPath == "" {
		return errors.New("prefs_path must be set")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.LogRetentionDays < 0 {
		return errors.New("log_retention_days must be >= 0")
	}
	return nil
}
