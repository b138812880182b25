package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"stagehand/internal/schema"
)

// NewSchema returns a validated two-category schema shared by the test
// suites: a "shot" category with a compositing part driven by nuke, and
// an "asset" category with a modeling part driven by maya.
func NewSchema(t testing.TB) *schema.Schema {
	t.Helper()

	s := &schema.Schema{
		Show: schema.BranchSpec{
			Label: "Show",
			Dirs: []schema.DirSpec{
				{Name: "work", Mode: "2775"},
				{Name: "publish", Mode: "2775"},
			},
			Child: "work",
		},
		Category: schema.BranchSpec{
			Label: "Category",
			Dirs:  []schema.DirSpec{{Name: "groups", Mode: "2775"}},
			Child: "groups",
		},
		Categories: map[string]schema.CategorySpec{
			"shot": {
				Group: schema.BranchSpec{
					Label: "Sequence",
					Dirs:  []schema.DirSpec{{Name: "shots", Mode: "2775"}},
					Child: "shots",
				},
				Unit: schema.BranchSpec{
					Label: "Shot",
					Dirs: []schema.DirSpec{
						{Name: "parts", Mode: "2775"},
						{Name: "plates", Mode: "0775"},
					},
					Child: "parts",
				},
				Parts: map[string]schema.PartSpec{
					"comp": {
						Label: "Compositing",
						Dirs: []schema.DirSpec{
							{Name: "scenes", Mode: "2775"},
							{Name: "renders", Mode: "0775"},
						},
						Programs: map[string]string{"nuke": "scenes/nuke"},
					},
				},
			},
			"asset": {
				Group: schema.BranchSpec{
					Label: "Asset Type",
					Dirs:  []schema.DirSpec{{Name: "assets", Mode: "2775"}},
					Child: "assets",
				},
				Unit: schema.BranchSpec{
					Label: "Asset",
					Dirs:  []schema.DirSpec{{Name: "parts", Mode: "2775"}},
					Child: "parts",
				},
				Parts: map[string]schema.PartSpec{
					"model": {
						Label:    "Modeling",
						Dirs:     []schema.DirSpec{{Name: "scenes", Mode: "2775"}},
						Programs: map[string]string{"maya": "scenes/maya"},
					},
				},
			},
		},
		Programs: map[string]schema.Program{
			"nuke": {
				Name:      "Nuke",
				Extension: ".nk",
				Create:    map[string]string{runtime.GOOS: "/studio/bin/nuke-create"},
				Open:      map[string]string{runtime.GOOS: "/studio/bin/nuke-open"},
			},
			"maya": {
				Name:      "Maya",
				Extension: ".ma",
				Create:    map[string]string{runtime.GOOS: "/studio/bin/maya-create"},
				Open:      map[string]string{runtime.GOOS: "/studio/bin/maya-open"},
			},
		},
	}

	if err := s.Validate(); err != nil {
		t.Fatalf("test schema failed validation: %v", err)
	}
	return s
}

// WriteLauncher writes an executable shell script into dir and returns
// its path. Tests point program create/open commands at these stubs.
func WriteLauncher(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write launcher stub %s: %v", name, err)
	}
	return path
}
