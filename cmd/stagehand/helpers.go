package main

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stagehand/internal/branch"
)

const chainDepth = 5

// parseChain splits a show/category/group/unit/part address into its
// segments. Partial chains are fine; empty segments are not.
func parseChain(arg string) ([]string, error) {
	trimmed := strings.Trim(strings.TrimSpace(arg), "/")
	if trimmed == "" {
		return nil, errors.New("chain is empty")
	}
	segments := strings.Split(trimmed, "/")
	if len(segments) > chainDepth {
		return nil, fmt.Errorf("chain %q has %d segments; the deepest address is show/category/group/unit/part", arg, len(segments))
	}
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return nil, fmt.Errorf("chain %q contains an empty segment", arg)
		}
	}
	return segments, nil
}

func chainString(segments []string) string {
	return strings.Join(segments, "/")
}

func resolveCategory(tree *branch.Tree, segments []string) (*branch.Category, error) {
	show, err := tree.Show(segments[0])
	if err != nil {
		return nil, err
	}
	return show.Category(segments[1])
}

func resolveGroup(tree *branch.Tree, segments []string) (*branch.Group, error) {
	category, err := resolveCategory(tree, segments[:2])
	if err != nil {
		return nil, err
	}
	return category.Group(segments[2])
}

func resolveUnit(tree *branch.Tree, segments []string) (*branch.Unit, error) {
	group, err := resolveGroup(tree, segments[:3])
	if err != nil {
		return nil, err
	}
	return group.Unit(segments[3])
}

// resolvePart walks a full five-segment chain down to its part.
func resolvePart(tree *branch.Tree, segments []string) (*branch.Part, error) {
	if len(segments) != chainDepth {
		return nil, fmt.Errorf("chain %q must name show/category/group/unit/part", chainString(segments))
	}
	unit, err := resolveUnit(tree, segments[:4])
	if err != nil {
		return nil, err
	}
	return unit.Part(segments[4])
}

// resolveChain verifies that a chain of any depth exists on disk.
func resolveChain(tree *branch.Tree, segments []string) error {
	var err error
	switch len(segments) {
	case 1:
		_, err = tree.Show(segments[0])
	case 2:
		_, err = resolveCategory(tree, segments)
	case 3:
		_, err = resolveGroup(tree, segments)
	case 4:
		_, err = resolveUnit(tree, segments)
	case chainDepth:
		_, err = resolvePart(tree, segments)
	default:
		err = errors.New("chain is empty")
	}
	return err
}

// listChildren returns the names one level below the addressed chain along
// with a display label for what those names are.
func listChildren(tree *branch.Tree, segments []string) ([]string, string, error) {
	sch := tree.Schema()
	switch len(segments) {
	case 0:
		names, err := tree.Shows()
		return names, orTitle(sch.Show.Label, "show"), err
	case 1:
		show, err := tree.Show(segments[0])
		if err != nil {
			return nil, "", err
		}
		names, err := show.Categories()
		return names, orTitle(sch.Category.Label, "category"), err
	case 2:
		category, err := resolveCategory(tree, segments)
		if err != nil {
			return nil, "", err
		}
		names, err := category.Groups()
		return names, orTitle(category.Spec().Group.Label, "group"), err
	case 3:
		group, err := resolveGroup(tree, segments)
		if err != nil {
			return nil, "", err
		}
		category, err := resolveCategory(tree, segments[:2])
		if err != nil {
			return nil, "", err
		}
		names, err := group.Units()
		return names, orTitle(category.Spec().Unit.Label, "unit"), err
	case 4:
		unit, err := resolveUnit(tree, segments)
		if err != nil {
			return nil, "", err
		}
		names, err := unit.Parts()
		return names, titleLabel("part"), err
	default:
		part, err := resolvePart(tree, segments)
		if err != nil {
			return nil, "", err
		}
		return part.Programs(), titleLabel("program"), nil
	}
}

// createNode creates the final chain segment; every parent must already
// exist. It returns the path of the new branch.
func createNode(tree *branch.Tree, segments []string) (string, error) {
	switch len(segments) {
	case 1:
		show, err := tree.CreateShow(segments[0])
		if err != nil {
			return "", err
		}
		return show.Path(), nil
	case 2:
		show, err := tree.Show(segments[0])
		if err != nil {
			return "", err
		}
		category, err := show.CreateCategory(segments[1])
		if err != nil {
			return "", err
		}
		return category.Path(), nil
	case 3:
		category, err := resolveCategory(tree, segments[:2])
		if err != nil {
			return "", err
		}
		group, err := category.CreateGroup(segments[2])
		if err != nil {
			return "", err
		}
		return group.Path(), nil
	case 4:
		group, err := resolveGroup(tree, segments[:3])
		if err != nil {
			return "", err
		}
		unit, err := group.CreateUnit(segments[3])
		if err != nil {
			return "", err
		}
		return unit.Path(), nil
	case chainDepth:
		unit, err := resolveUnit(tree, segments[:4])
		if err != nil {
			return "", err
		}
		part, err := unit.CreatePart(segments[4])
		if err != nil {
			return "", err
		}
		return part.Path(), nil
	default:
		return "", errors.New("chain is empty")
	}
}

// watchTarget maps a chain to the directory whose entries change when
// children are added: the child root for branches, the part directory for
// parts, and the show root for an empty chain.
func watchTarget(tree *branch.Tree, segments []string) (string, error) {
	switch len(segments) {
	case 0:
		return tree.ShowRoot(), nil
	case 1:
		show, err := tree.Show(segments[0])
		if err != nil {
			return "", err
		}
		return show.ChildRootPath(), nil
	case 2:
		category, err := resolveCategory(tree, segments)
		if err != nil {
			return "", err
		}
		return category.ChildRootPath(), nil
	case 3:
		group, err := resolveGroup(tree, segments)
		if err != nil {
			return "", err
		}
		return group.ChildRootPath(), nil
	case 4:
		unit, err := resolveUnit(tree, segments)
		if err != nil {
			return "", err
		}
		return unit.ChildRootPath(), nil
	default:
		part, err := resolvePart(tree, segments)
		if err != nil {
			return "", err
		}
		return part.Path(), nil
	}
}

var titleCaser = cases.Title(language.Und)

// titleLabel turns a machine name into a display label when the schema
// offers none.
func titleLabel(name string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
	return titleCaser.String(cleaned)
}

func orTitle(label, fallback string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return titleLabel(fallback)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
