package branch_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"stagehand/internal/branch"
	"stagehand/internal/testsupport"
)

func newTree(t *testing.T) *branch.Tree {
	t.Helper()
	return branch.NewTree(testsupport.NewSchema(t), t.TempDir())
}

func TestCreateShowThenGet(t *testing.T) {
	tree := newTree(t)

	created, err := tree.CreateShow("sh01")
	if err != nil {
		t.Fatalf("CreateShow returned error: %v", err)
	}
	got, err := tree.Show("sh01")
	if err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if created.Path() != got.Path() {
		t.Fatalf("create and get disagree on path: %q vs %q", created.Path(), got.Path())
	}

	for _, sub := range []string{"work", "publish"} {
		info, err := os.Stat(filepath.Join(created.Path(), sub))
		if err != nil {
			t.Fatalf("declared subdirectory %s missing: %v", sub, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", sub)
		}
		if info.Mode().Perm() != 0o775 {
			t.Fatalf("%s permissions = %o, want 775", sub, info.Mode().Perm())
		}
		if info.Mode()&fs.ModeSetgid == 0 {
			t.Fatalf("%s is missing the setgid bit", sub)
		}
	}
}

func TestCreateShowTwiceFails(t *testing.T) {
	tree := newTree(t)
	if _, err := tree.CreateShow("sh01"); err != nil {
		t.Fatalf("first CreateShow returned error: %v", err)
	}
	if _, err := tree.CreateShow("sh01"); !errors.Is(err, branch.ErrExists) {
		t.Fatalf("second CreateShow = %v, want ErrExists", err)
	}
}

func TestShowMissingFails(t *testing.T) {
	tree := newTree(t)
	if _, err := tree.Show("nope"); !errors.Is(err, branch.ErrNotFound) {
		t.Fatalf("Show(nope) = %v, want ErrNotFound", err)
	}
}

func TestUndeclaredCategoryIsRejected(t *testing.T) {
	tree := newTree(t)
	show, err := tree.CreateShow("sh01")
	if err != nil {
		t.Fatalf("CreateShow returned error: %v", err)
	}
	if _, err := show.CreateCategory("weird"); !errors.Is(err, branch.ErrInvalidCategory) {
		t.Fatalf("CreateCategory(weird) = %v, want ErrInvalidCategory", err)
	}
	if _, err := show.Category("weird"); !errors.Is(err, branch.ErrInvalidCategory) {
		t.Fatalf("Category(weird) = %v, want ErrInvalidCategory", err)
	}
}

// buildChain creates sh01/shot/g1/u1/comp and returns the leaf part.
func buildChain(t *testing.T, tree *branch.Tree) *branch.Part {
	t.Helper()

	show, err := tree.CreateShow("sh01")
	if err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	cat, err := show.CreateCategory("shot")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	group, err := cat.CreateGroup("g1")
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}
	unit, err := group.CreateUnit("u1")
	if err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}
	part, err := unit.CreatePart("comp")
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	return part
}

func TestListingsAreSortedAndFiltered(t *testing.T) {
	tree := newTree(t)
	part := buildChain(t, tree)

	shows, err := tree.Shows()
	if err != nil {
		t.Fatalf("Shows: %v", err)
	}
	if !reflect.DeepEqual(shows, []string{"sh01"}) {
		t.Fatalf("Shows = %v", shows)
	}

	cat, ok := part.Ancestor(branch.KindCategory)
	if !ok {
		t.Fatal("part has no category ancestor")
	}
	show, err := tree.Show("sh01")
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	categories, err := show.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if !reflect.DeepEqual(categories, []string{cat.Name()}) {
		t.Fatalf("Categories = %v", categories)
	}

	// Groups list name-sorted regardless of creation order.
	category, err := show.Category("shot")
	if err != nil {
		t.Fatalf("Category: %v", err)
	}
	if _, err := category.CreateGroup("zz"); err != nil {
		t.Fatalf("CreateGroup zz: %v", err)
	}
	if _, err := category.CreateGroup("aa"); err != nil {
		t.Fatalf("CreateGroup aa: %v", err)
	}
	groups, err := category.Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if !reflect.DeepEqual(groups, []string{"aa", "g1", "zz"}) {
		t.Fatalf("Groups = %v", groups)
	}

	// Part listings keep only schema-declared names. Stray directories
	// and files are skipped, not errors.
	unitBranch, ok := part.Ancestor(branch.KindUnit)
	if !ok {
		t.Fatal("part has no unit ancestor")
	}
	group, err := category.Group("g1")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	unit, err := group.Unit(unitBranch.Name())
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if err := os.Mkdir(filepath.Join(unit.ChildRootPath(), "legacy"), 0o755); err != nil {
		t.Fatalf("mkdir legacy: %v", err)
	}
	if err := os.WriteFile(filepath.Join(unit.ChildRootPath(), "notes.txt"), nil, 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	parts, err := unit.Parts()
	if err != nil {
		t.Fatalf("Parts: %v", err)
	}
	if !reflect.DeepEqual(parts, []string{"comp"}) {
		t.Fatalf("Parts = %v", parts)
	}
}

func TestAncestorAndIdentity(t *testing.T) {
	tree := newTree(t)
	part := buildChain(t, tree)

	task, err := part.Task("nuke", "main")
	if err != nil {
		t.Fatalf("Task: %v", err)
	}

	id := task.Identity()
	want := branch.Identity{
		Show:     "sh01",
		Category: "shot",
		Group:    "g1",
		Unit:     "u1",
		Part:     "comp",
		Task:     "main",
	}
	if id != want {
		t.Fatalf("Identity = %+v, want %+v", id, want)
	}

	showBranch, ok := task.Ancestor(branch.KindShow)
	if !ok {
		t.Fatal("task has no show ancestor")
	}
	show, err := tree.Show("sh01")
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	if showBranch.Path() != show.Path() {
		t.Fatalf("ancestor path %q != show path %q", showBranch.Path(), show.Path())
	}
	if _, ok := task.Ancestor(branch.Kind("studio")); ok {
		t.Fatal("unknown kind should have no ancestor")
	}
}

func TestTaskScenesAndVersions(t *testing.T) {
	tree := newTree(t)
	part := buildChain(t, tree)

	task, err := part.Task("nuke", "main")
	if err != nil {
		t.Fatalf("Task: %v", err)
	}
	if got, want := task.SceneName("v002"), "sh01_g1_u1_comp_main_v002.nk"; got != want {
		t.Fatalf("SceneName = %q, want %q", got, want)
	}
	if got, want := task.ScenePath("v002"), filepath.Join(task.Path(), "sh01_g1_u1_comp_main_v002.nk"); got != want {
		t.Fatalf("ScenePath = %q, want %q", got, want)
	}

	// No scene directory yet: discovery reports no versions, no error.
	versions, err := task.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if len(versions) != 0 {
		t.Fatalf("expected no versions, got %v", versions)
	}

	if err := os.MkdirAll(task.Path(), 0o755); err != nil {
		t.Fatalf("mkdir scene dir: %v", err)
	}
	for _, name := range []string{
		"sh01_g1_u1_comp_main_v001.nk",
		"sh01_g1_u1_comp_main_v003.nk",
		"sh01_g1_u1_comp_roto_v001.nk",
	} {
		if err := os.WriteFile(filepath.Join(task.Path(), name), nil, 0o644); err != nil {
			t.Fatalf("touch %s: %v", name, err)
		}
	}

	versions, err = task.Versions()
	if err != nil {
		t.Fatalf("Versions: %v", err)
	}
	if !reflect.DeepEqual(versions, []string{"v001", "v003"}) {
		t.Fatalf("Versions = %v", versions)
	}

	index, err := part.Tasks("nuke")
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if !reflect.DeepEqual(index.Tasks(), []string{"main", "roto"}) {
		t.Fatalf("task index = %v", index.Tasks())
	}
}

func TestUnregisteredProgramIsRejected(t *testing.T) {
	tree := newTree(t)
	part := buildChain(t, tree)

	if _, err := part.ProgramDir("katana"); !errors.Is(err, branch.ErrNotFound) {
		t.Fatalf("ProgramDir(katana) = %v, want ErrNotFound", err)
	}
	if _, err := part.Task("katana", "main"); !errors.Is(err, branch.ErrNotFound) {
		t.Fatalf("Task(katana) = %v, want ErrNotFound", err)
	}
	if _, err := part.Task("nuke", "../evil"); err == nil {
		t.Fatal("task name with separators should be rejected")
	}
}

func TestUndeclaredPartIsRejected(t *testing.T) {
	tree := newTree(t)
	part := buildChain(t, tree)

	unitBranch, ok := part.Ancestor(branch.KindUnit)
	if !ok {
		t.Fatal("part has no unit ancestor")
	}
	show, err := tree.Show("sh01")
	if err != nil {
		t.Fatalf("Show: %v", err)
	}
	category, err := show.Category("shot")
	if err != nil {
		t.Fatalf("Category: %v", err)
	}
	group, err := category.Group("g1")
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	unit, err := group.Unit(unitBranch.Name())
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if _, err := unit.CreatePart("paint"); !errors.Is(err, branch.ErrNotFound) {
		t.Fatalf("CreatePart(paint) = %v, want ErrNotFound", err)
	}
}
