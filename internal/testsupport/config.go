package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"stagehand/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per
// test. The show root and log directory are created; the schema document
// is not, so use WithSchemaDocument when a test loads it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Root = base
	cfgVal.ShowRoot = filepath.Join(base, "shows")
	cfgVal.SchemaPath = filepath.Join(base, "schema.toml")
	cfgVal.PrefsPath = filepath.Join(base, "prefs.json")
	cfgVal.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("prepare test config directories: %v", err)
	}
	return builder.cfg
}

// WithShowRoot overrides the show root on the test config.
func WithShowRoot(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.ShowRoot = path
	}
}

// WithDefaultProgram sets the program assumed when --program is omitted.
func WithDefaultProgram(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.DefaultProgram = name
	}
}

// WithSchemaDocument writes doc to the config's schema path.
func WithSchemaDocument(doc string) ConfigOption {
	return func(b *configBuilder) {
		if err := os.WriteFile(b.cfg.SchemaPath, []byte(doc), 0o644); err != nil {
			b.t.Fatalf("write schema document: %v", err)
		}
	}
}
