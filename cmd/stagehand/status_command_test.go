package main

import (
	"encoding/json"
	"os"
	"testing"
)

func TestStatusReportsReady(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "== Checks ==")
	requireContains(t, out, "== Launcher commands ==")
	requireContains(t, out, "nuke create")
	requireContains(t, out, "Ready.")
}

func TestStatusReportsMissingLauncher(t *testing.T) {
	env := setupCLITestEnv(t)

	repointCreateLauncher(t, env, "#!/bin/sh\nexit 0\n")
	if err := os.Remove(env.baseDir + "/bin/nuke-create-alt"); err != nil {
		t.Fatalf("remove launcher: %v", err)
	}

	out, _, err := runCLI(t, []string{"status"}, env.configPath)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "Not ready")
}

func TestStatusEmitsJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"status", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("status --json: %v", err)
	}
	var report struct {
		Results []struct {
			Name   string
			Passed bool
		}
		Commands []struct {
			Name      string
			Available bool
		}
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode status output: %v", err)
	}
	if len(report.Results) == 0 {
		t.Fatal("expected at least one check result")
	}
	if len(report.Commands) != 2 {
		t.Fatalf("expected 2 launcher commands, got %d", len(report.Commands))
	}
}

func TestProgramsListsSchemaPrograms(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"programs"}, env.configPath)
	if err != nil {
		t.Fatalf("programs: %v", err)
	}
	requireContains(t, out, "nuke")
	requireContains(t, out, "Nuke")
	requireContains(t, out, ".nk")
	requireContains(t, out, "nuke-create")
}
