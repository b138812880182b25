package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMkAndLsWalkTheHierarchy(t *testing.T) {
	env := setupCLITestEnv(t)

	chains := []string{
		"sh01",
		"sh01/shot",
		"sh01/shot/sq010",
		"sh01/shot/sq010/sq010_0010",
		"sh01/shot/sq010/sq010_0010/comp",
	}
	for _, chain := range chains {
		out, _, err := runCLI(t, []string{"mk", chain}, env.configPath)
		if err != nil {
			t.Fatalf("mk %s: %v", chain, err)
		}
		requireContains(t, out, "Created ")
	}

	out, _, err := runCLI(t, []string{"ls"}, env.configPath)
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	requireContains(t, out, "sh01")

	// go-pretty renders headers uppercase, so the unit label "Shot"
	// appears as SHOT.
	out, _, err = runCLI(t, []string{"ls", "sh01/shot/sq010"}, env.configPath)
	if err != nil {
		t.Fatalf("ls units: %v", err)
	}
	requireContains(t, out, "SHOT")
	requireContains(t, out, "sq010_0010")

	out, _, err = runCLI(t, []string{"ls", "sh01/shot/sq010/sq010_0010/comp"}, env.configPath)
	if err != nil {
		t.Fatalf("ls programs: %v", err)
	}
	requireContains(t, out, "nuke")
}

func TestLsEmitsJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"mk", "sh01"}, env.configPath); err != nil {
		t.Fatalf("mk: %v", err)
	}

	out, _, err := runCLI(t, []string{"ls", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("ls --json: %v", err)
	}
	var payload struct {
		Chain   string   `json:"chain"`
		Entries []string `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode ls output: %v", err)
	}
	if len(payload.Entries) != 1 || payload.Entries[0] != "sh01" {
		t.Fatalf("unexpected entries: %v", payload.Entries)
	}
}

func TestMkRequiresExistingParents(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"mk", "sh01/shot"}, env.configPath)
	if err == nil {
		t.Fatal("expected mk without parent show to fail")
	}
	requireContains(t, err.Error(), "sh01")
}

func TestMkRejectsDuplicates(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"mk", "sh01"}, env.configPath); err != nil {
		t.Fatalf("mk: %v", err)
	}
	_, _, err := runCLI(t, []string{"mk", "sh01"}, env.configPath)
	if err == nil {
		t.Fatal("expected duplicate mk to fail")
	}
	requireContains(t, err.Error(), "already exists")
}

func TestMkRejectsUndeclaredCategory(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"mk", "sh01"}, env.configPath); err != nil {
		t.Fatalf("mk: %v", err)
	}
	_, _, err := runCLI(t, []string{"mk", "sh01/render"}, env.configPath)
	if err == nil {
		t.Fatal("expected undeclared category to fail")
	}
	requireContains(t, err.Error(), "render")
}

func TestChainParsingRejectsMalformedAddresses(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, chain := range []string{"a//b", "a/b/c/d/e/f"} {
		_, _, err := runCLI(t, []string{"ls", chain}, env.configPath)
		if err == nil {
			t.Fatalf("expected ls %s to fail", chain)
		}
		if !strings.Contains(err.Error(), "chain") {
			t.Fatalf("expected chain error for %s, got %v", chain, err)
		}
	}
}
