package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"stagehand/internal/config"
	"stagehand/internal/testsupport"
)

// schemaTemplate is the taxonomy the CLI tests run against: one shot
// category with a nuke-driven comp part. The verbs receive the GOOS key
// and the create and open launcher commands.
const schemaTemplate = `
[show]
label = "Show"
child = "work"

[[show.dirs]]
name = "work"
mode = "2775"

[category]
label = "Category"
child = "groups"

[[category.dirs]]
name = "groups"
mode = "2775"

[categories.shot.group]
label = "Sequence"
child = "shots"

[[categories.shot.group.dirs]]
name = "shots"
mode = "2775"

[categories.shot.unit]
label = "Shot"
child = "parts"

[[categories.shot.unit.dirs]]
name = "parts"
mode = "2775"

[categories.shot.parts.comp]
label = "Compositing"

[[categories.shot.parts.comp.dirs]]
name = "scenes"
mode = "2775"

[categories.shot.parts.comp.programs]
nuke = "scenes/nuke"

[programs.nuke]
name = "Nuke"
extension = ".nk"

[programs.nuke.create]
%[1]s = %[2]q

[programs.nuke.open]
%[1]s = %[3]q
`

type cliTestEnv struct {
	baseDir    string
	configPath string
	schemaPath string
	showRoot   string
	prefsPath  string
	markerPath string
}

// setupCLITestEnv lays out a complete studio under a temp dir: stub
// launchers, a schema pointing at them, and a config file wiring it all
// together. The open launcher records its scene argument in markerPath.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	for _, key := range []string{config.EnvRoot, config.EnvShowRoot, config.EnvSchema} {
		t.Setenv(key, "")
	}

	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}

	createCmd := testsupport.WriteLauncher(t, binDir, "nuke-create", "#!/bin/sh\ntouch \"$1\"\n")
	markerPath := filepath.Join(base, "opened.txt")
	openCmd := testsupport.WriteLauncher(t, binDir, "nuke-open",
		fmt.Sprintf("#!/bin/sh\necho \"$1\" > %q\n", markerPath))

	schemaPath := filepath.Join(base, "schema.toml")
	schemaDoc := fmt.Sprintf(schemaTemplate, runtime.GOOS, createCmd, openCmd)
	if err := os.WriteFile(schemaPath, []byte(schemaDoc), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		schemaPath: schemaPath,
		showRoot:   filepath.Join(base, "shows"),
		prefsPath:  filepath.Join(base, "prefs.json"),
		markerPath: markerPath,
	}

	content := fmt.Sprintf(
		"root = %q\nshow_root = %q\nschema_path = %q\nprefs_path = %q\nlog_dir = %q\nlog_level = \"warn\"\nlog_format = \"console\"\n",
		base,
		env.showRoot,
		schemaPath,
		env.prefsPath,
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

// repointCreateLauncher swaps the schema's create command for a fresh stub
// with the given body. Commands reload the schema per invocation, so the
// next runCLI call sees it.
func repointCreateLauncher(t *testing.T, env *cliTestEnv, body string) {
	t.Helper()
	binDir := filepath.Join(env.baseDir, "bin")
	failing := testsupport.WriteLauncher(t, binDir, "nuke-create-alt", body)
	openCmd := filepath.Join(binDir, "nuke-open")
	doc := fmt.Sprintf(schemaTemplate, runtime.GOOS, failing, openCmd)
	if err := os.WriteFile(env.schemaPath, []byte(doc), 0o644); err != nil {
		t.Fatalf("rewrite schema: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func waitFor(t *testing.T, duration time.Duration, fn func() bool) {
	t.Helper()
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", duration)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
