package main

import (
	"os"
	"path/filepath"
	"testing"
)

func collectOutcomes(t *testing.T, forest []*Node, root string) ([]Outcome, error) {
	t.Helper()
	var outcomes []Outcome
	err := materializeForest(forest, root, func(o Outcome) {
		outcomes = append(outcomes, o)
	})
	return outcomes, err
}

func TestMaterializeCreatesTreeInOrder(t *testing.T) {
	root := t.TempDir()
	forest := parseOutline("a\n    b\n    c\n")

	outcomes, err := collectOutcomes(t, forest, root)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}

	want := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "c"),
	}
	if len(outcomes) != len(want) {
		t.Fatalf("len(outcomes) = %d, want %d", len(outcomes), len(want))
	}
	for i, o := range outcomes {
		if o.Path != want[i] {
			t.Fatalf("outcomes[%d].Path = %q, want %q", i, o.Path, want[i])
		}
		if !o.Created {
			t.Fatalf("outcomes[%d] not reported created: %+v", i, o)
		}
		info, err := os.Stat(o.Path)
		if err != nil || !info.IsDir() {
			t.Fatalf("stat %s: err=%v, dir=%v", o.Path, err, info != nil && info.IsDir())
		}
	}
}

func TestMaterializeIsIdempotent(t *testing.T) {
	root := t.TempDir()
	forest := parseOutline("a\n    b\n    c\n")

	if _, err := collectOutcomes(t, forest, root); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before := countEntries(t, root)

	outcomes, err := collectOutcomes(t, forest, root)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, o := range outcomes {
		if o.Created {
			t.Fatalf("second run reported created for %s", o.Path)
		}
	}
	if after := countEntries(t, root); after != before {
		t.Fatalf("entry count changed from %d to %d on re-run", before, after)
	}
}

func TestMaterializePreOrderSubtreesDoNotInterleave(t *testing.T) {
	root := t.TempDir()
	forest := parseOutline("a\n    b\n        c\n    d\ne\n")

	outcomes, err := collectOutcomes(t, forest, root)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}

	want := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
		filepath.Join(root, "a", "b", "c"),
		filepath.Join(root, "a", "d"),
		filepath.Join(root, "e"),
	}
	if len(outcomes) != len(want) {
		t.Fatalf("len(outcomes) = %d, want %d", len(outcomes), len(want))
	}
	for i, o := range outcomes {
		if o.Path != want[i] {
			t.Fatalf("outcomes[%d].Path = %q, want %q", i, o.Path, want[i])
		}
	}
}

func TestMaterializeSkipsLevelsWithMkdirAll(t *testing.T) {
	root := t.TempDir()
	forest := parseOutline("a\n        b\n")

	outcomes, err := collectOutcomes(t, forest, root)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}
	if got, want := outcomes[1].Path, filepath.Join(root, "a", "b"); got != want {
		t.Fatalf("child path = %q, want %q", got, want)
	}
}

func TestMaterializeReportsExistingFileAndFailsOnItsChildren(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a"), []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("write collision file: %v", err)
	}

	// The colliding path itself is a normal "exists" outcome.
	outcomes, err := collectOutcomes(t, parseOutline("a\n"), root)
	if err != nil {
		t.Fatalf("materialize onto file: %v", err)
	}
	if len(outcomes) != 1 || outcomes[0].Created {
		t.Fatalf("outcomes = %+v, want single exists report", outcomes)
	}

	// Creating children beneath it is fatal and nothing is reported created.
	outcomes, err = collectOutcomes(t, parseOutline("a\n    b\n"), root)
	if err == nil {
		t.Fatal("expected error creating child under a regular file")
	}
	for _, o := range outcomes {
		if o.Created {
			t.Fatalf("reported created despite failure: %+v", o)
		}
	}
}

func TestMaterializeEmptyForestTouchesNothing(t *testing.T) {
	root := t.TempDir()
	outcomes, err := collectOutcomes(t, parseOutline("\n   \n"), root)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if len(outcomes) != 0 {
		t.Fatalf("outcomes = %+v, want none", outcomes)
	}
	if n := countEntries(t, root); n != 0 {
		t.Fatalf("root has %d entries, want 0", n)
	}
}

func TestPreviewForestTouchesNothing(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "a"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var outcomes []Outcome
	previewForest(parseOutline("a\n    b\n"), root, func(o Outcome) {
		outcomes = append(outcomes, o)
	})

	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}
	if outcomes[0].Created {
		t.Fatalf("existing dir predicted as created: %+v", outcomes[0])
	}
	if !outcomes[1].Created {
		t.Fatalf("missing dir not predicted as created: %+v", outcomes[1])
	}
	if _, err := os.Stat(filepath.Join(root, "a", "b")); !os.IsNotExist(err) {
		t.Fatalf("preview created %s", filepath.Join(root, "a", "b"))
	}
}

func countEntries(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(path string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return n
}
