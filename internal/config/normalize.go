package config

import "strings"

// normalize trims every field, lowercases the enumerated ones, and
// expands the path fields to absolute form. It runs after environment
// overrides and before validation.
func (c *Config) normalize() error {
	c.Root = strings.TrimSpace(c.Root)
	c.ShowRoot = strings.TrimSpace(c.ShowRoot)
	c.SchemaPath = strings.TrimSpace(c.SchemaPath)
	c.PrefsPath = strings.TrimSpace(c.PrefsPath)
	c.DefaultProgram = strings.TrimSpace(c.DefaultProgram)
	c.LogDir = strings.TrimSpace(c.LogDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}

	for _, field := range []*string{&c.Root, &c.ShowRoot, &c.SchemaPath, &c.PrefsPath, &c.LogDir} {
		if *field == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}
