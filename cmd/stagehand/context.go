package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"stagehand/internal/branch"
	"stagehand/internal/config"
	"stagehand/internal/launch"
	"stagehand/internal/logging"
	"stagehand/internal/prefs"
	"stagehand/internal/schema"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	schemaOnce sync.Once
	schema     *schema.Schema
	schemaErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// ensureLogger builds the process logger once per invocation. When the
// config is unusable the commands still need somewhere to log, so this
// falls back to a silent logger instead of failing the command.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		c.logger = logging.NewNop()
		cfg, err := c.ensureConfig()
		if err != nil {
			return
		}
		logCfg := *cfg
		if c.verbose() {
			logCfg.LogLevel = "debug"
		}
		logger, err := logging.NewFromConfig(&logCfg)
		if err != nil {
			return
		}
		c.logger = logger
		logging.CleanupOldLogs(
			logging.NewComponentLogger(logger, "retention"),
			cfg.LogRetentionDays,
			logging.RetentionTarget{Dir: cfg.LogDir, Pattern: "launch-*.log"},
		)
	})
	return c.logger
}

func (c *commandContext) ensureSchema() (*schema.Schema, error) {
	c.schemaOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.schemaErr = err
			return
		}
		sch, err := schema.LoadFile(cfg.SchemaPath)
		if err != nil {
			c.schemaErr = err
			return
		}
		c.schema = sch
	})
	return c.schema, c.schemaErr
}

func (c *commandContext) tree() (*branch.Tree, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	sch, err := c.ensureSchema()
	if err != nil {
		return nil, err
	}
	return branch.NewTree(sch, cfg.ShowRoot), nil
}

func (c *commandContext) prefsStore() (*prefs.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return prefs.NewStore(cfg.PrefsPath), nil
}

func (c *commandContext) runner() (*launch.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewComponentLogger(c.ensureLogger(), "launch")
	return launch.New(logger, launch.WithLogDir(cfg.LogDir)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
