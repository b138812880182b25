package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"stagehand/internal/deps"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("studio root", statusError, "does not exist", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "studio root:", "[ERROR] does not exist")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("schema", statusOK, "loaded", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestCommandKindMapsAvailability(t *testing.T) {
	cases := []struct {
		status deps.Status
		want   statusKind
	}{
		{deps.Status{Available: true}, statusOK},
		{deps.Status{Optional: true}, statusWarn},
		{deps.Status{}, statusError},
	}
	for _, tc := range cases {
		if got := commandKind(tc.status); got != tc.want {
			t.Fatalf("commandKind(%+v) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
