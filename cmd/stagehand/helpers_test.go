package main

import (
	"reflect"
	"testing"
)

func TestParseChain(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"sh01", []string{"sh01"}},
		{"/sh01/shot/", []string{"sh01", "shot"}},
		{" sh01/shot/sq010/sq010_0010/comp ", []string{"sh01", "shot", "sq010", "sq010_0010", "comp"}},
	}
	for _, tc := range cases {
		got, err := parseChain(tc.in)
		if err != nil {
			t.Fatalf("parseChain(%q): %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parseChain(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseChainRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "  ", "///", "a//b", "a/b/c/d/e/f"} {
		if _, err := parseChain(in); err == nil {
			t.Fatalf("expected parseChain(%q) to fail", in)
		}
	}
}

func TestTitleLabel(t *testing.T) {
	cases := map[string]string{
		"part":       "Part",
		"asset_type": "Asset Type",
		"program":    "Program",
	}
	for in, want := range cases {
		if got := titleLabel(in); got != want {
			t.Fatalf("titleLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
