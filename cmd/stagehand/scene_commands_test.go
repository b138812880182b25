package main

import (
	"os"
	"strings"
	"testing"
	"time"
)

const compChain = "sh01/shot/sq010/sq010_0010/comp"

func makeCompPart(t *testing.T, env *cliTestEnv) {
	t.Helper()
	for _, chain := range []string{
		"sh01",
		"sh01/shot",
		"sh01/shot/sq010",
		"sh01/shot/sq010/sq010_0010",
		compChain,
	} {
		if _, _, err := runCLI(t, []string{"mk", chain}, env.configPath); err != nil {
			t.Fatalf("mk %s: %v", chain, err)
		}
	}
}

func TestSceneCreateThenTasks(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	out, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", "v001"}, env.configPath)
	if err != nil {
		t.Fatalf("scene create: %v", err)
	}
	requireContains(t, out, "Created ")
	requireContains(t, out, "sh01_sq010_sq010_0010_comp_main_v001.nk")

	out, _, err = runCLI(t, []string{"tasks", compChain}, env.configPath)
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	requireContains(t, out, "main")
	requireContains(t, out, "v001")
}

func TestSceneCreateRejectsExistingVersion(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	if _, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", "v001"}, env.configPath); err != nil {
		t.Fatalf("scene create: %v", err)
	}
	_, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", "v001"}, env.configPath)
	if err == nil {
		t.Fatal("expected duplicate scene create to fail")
	}
	requireContains(t, err.Error(), "already exists")
}

func TestSceneCreateRequiresVersionFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	_, _, err := runCLI(t, []string{"scene", "create", compChain, "main"}, env.configPath)
	if err == nil {
		t.Fatal("expected scene create without --version to fail")
	}
	requireContains(t, err.Error(), "version")
}

func TestSceneOpenDefaultsToNewest(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	for _, version := range []string{"v001", "v002"} {
		if _, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", version}, env.configPath); err != nil {
			t.Fatalf("scene create %s: %v", version, err)
		}
	}

	out, _, err := runCLI(t, []string{"scene", "open", compChain, "main", "--wait", "200ms"}, env.configPath)
	if err != nil {
		t.Fatalf("scene open: %v", err)
	}
	requireContains(t, out, "Opened nuke v002")

	waitFor(t, 5*time.Second, func() bool {
		_, err := os.Stat(env.markerPath)
		return err == nil
	})
	marker, err := os.ReadFile(env.markerPath)
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	requireContains(t, string(marker), "sh01_sq010_sq010_0010_comp_main_v002.nk")
}

func TestSceneOpenWithoutScenesFails(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	_, _, err := runCLI(t, []string{"scene", "open", compChain, "main", "--wait", "50ms"}, env.configPath)
	if err == nil {
		t.Fatal("expected scene open without versions to fail")
	}
	requireContains(t, err.Error(), "no versions")
}

func TestSceneCommandsRecordRecents(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	out, _, err := runCLI(t, []string{"recent"}, env.configPath)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	requireContains(t, out, "No recent selections.")

	if _, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", "v001"}, env.configPath); err != nil {
		t.Fatalf("scene create: %v", err)
	}

	out, _, err = runCLI(t, []string{"recent"}, env.configPath)
	if err != nil {
		t.Fatalf("recent after create: %v", err)
	}
	requireContains(t, out, compChain)
	requireContains(t, out, "nuke")
}

func TestSceneCreateReportsLauncherFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	makeCompPart(t, env)

	repointCreateLauncher(t, env, "#!/bin/sh\necho 'render license pool exhausted' >&2\nexit 3\n")

	_, _, err := runCLI(t, []string{"scene", "create", compChain, "main", "--version", "v001"}, env.configPath)
	if err == nil {
		t.Fatal("expected failing launcher to surface an error")
	}
	requireContains(t, err.Error(), "exited with code 3")
	requireContains(t, err.Error(), "render license pool exhausted")
	if !strings.Contains(err.Error(), "nuke-create-alt") {
		t.Fatalf("expected command name in error, got %v", err)
	}
}
