package scene_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"stagehand/internal/scene"
)

func TestFileNameRoundTrip(t *testing.T) {
	name := scene.FileName("sh01", "g1", "u1", "comp", "main", "v002", ".nk")
	if name != "sh01_g1_u1_comp_main_v002.nk" {
		t.Fatalf("unexpected scene name: %q", name)
	}

	prefix := scene.Prefix("sh01", "g1", "u1", "comp")
	task, version, ok := scene.ParseName(name, prefix, ".nk")
	if !ok {
		t.Fatalf("ParseName rejected %q", name)
	}
	if task != "main" || version != "v002" {
		t.Fatalf("ParseName(%q) = %q, %q", name, task, version)
	}
}

func TestParseNameKeepsUnderscoreTasks(t *testing.T) {
	prefix := scene.Prefix("sh01", "g1", "u1", "comp")
	task, version, ok := scene.ParseName("sh01_g1_u1_comp_layout_fix_v001.nk", prefix, ".nk")
	if !ok {
		t.Fatal("ParseName rejected underscore task")
	}
	if task != "layout_fix" {
		t.Fatalf("task = %q, want layout_fix", task)
	}
	if version != "v001" {
		t.Fatalf("version = %q, want v001", version)
	}
}

func TestParseNameRejections(t *testing.T) {
	prefix := scene.Prefix("sh01", "g1", "u1", "comp")
	cases := []struct {
		name string
		file string
	}{
		{"foreign extension", "sh01_g1_u1_comp_main_v001.ma"},
		{"foreign prefix", "sh02_g1_u1_comp_main_v001.nk"},
		{"no version token", "sh01_g1_u1_comp_main.nk"},
		{"empty task", "sh01_g1_u1_comp__v001.nk"},
		{"version zero", "sh01_g1_u1_comp_main_v000.nk"},
		{"non-numeric version", "sh01_g1_u1_comp_main_vFinal.nk"},
		{"bare v", "sh01_g1_u1_comp_main_v.nk"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := scene.ParseName(tc.file, prefix, ".nk"); ok {
				t.Fatalf("ParseName accepted %q", tc.file)
			}
		})
	}
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
}

func TestScanCollectsSortedVersions(t *testing.T) {
	dir := t.TempDir()
	prefix := scene.Prefix("sh01", "g1", "u1", "comp")

	touch(t, dir, "sh01_g1_u1_comp_main_v010.nk")
	touch(t, dir, "sh01_g1_u1_comp_main_v002.nk")
	touch(t, dir, "sh01_g1_u1_comp_main_v001.nk")
	touch(t, dir, "sh01_g1_u1_comp_layout_fix_v001.nk")
	touch(t, dir, "sh01_g1_u1_comp_main_v000.nk")
	touch(t, dir, "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "sh01_g1_u1_comp_fake_v001.nk"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	index, err := scene.Scan(dir, prefix, ".nk")
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}

	if got, want := index.Tasks(), []string{"layout_fix", "main"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("tasks = %v, want %v", got, want)
	}
	if got, want := index["main"], []string{"v001", "v002", "v010"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("main versions = %v, want %v", got, want)
	}
	if latest, ok := index.Latest("main"); !ok || latest != "v010" {
		t.Fatalf("Latest(main) = %q, %v", latest, ok)
	}
}

func TestScanOrdersVersionsLexicographically(t *testing.T) {
	dir := t.TempDir()
	prefix := scene.Prefix("sh01", "g1", "u1", "comp")

	touch(t, dir, "sh01_g1_u1_comp_main_v20.nk")
	touch(t, dir, "sh01_g1_u1_comp_main_v100.nk")

	index, err := scene.Scan(dir, prefix, ".nk")
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	// Lexicographic, not numeric: v100 sorts before v20.
	if got, want := index["main"], []string{"v100", "v20"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("main versions = %v, want %v", got, want)
	}
}

func TestScanMissingDirectoryIsEmpty(t *testing.T) {
	index, err := scene.Scan(filepath.Join(t.TempDir(), "absent"), "p_", ".nk")
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}
