package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

func names(entries []FileEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	touch(t, a)
	touch(t, b)

	entries, errs := Collect([]string{a, b}, false, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(entries) != 2 || entries[0].Name != "a.txt" || entries[1].Name != "b.txt" {
		t.Errorf("entries = %v", names(entries))
	}
	if entries[0].IsDir {
		t.Error("regular file flagged as directory")
	}
}

func TestCollectDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"zebra.txt", "apple.txt", "mango.txt"} {
		touch(t, filepath.Join(dir, n))
	}

	entries, errs := Collect([]string{dir}, false, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	// Children in sorted order, then the directory argument itself.
	got := names(entries)
	want := []string{"apple.txt", "mango.txt", "zebra.txt", filepath.Base(dir)}
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !entries[len(entries)-1].IsDir {
		t.Error("directory argument should be flagged as a directory")
	}
}

func TestCollectNonRecursiveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	touch(t, filepath.Join(sub, "inner.txt"))
	touch(t, filepath.Join(dir, "outer.txt"))

	entries, _ := Collect([]string{dir}, false, nil)
	for _, e := range entries {
		if e.Name == "inner.txt" || e.Name == "sub" {
			t.Errorf("non-recursive collect should not include %q", e.Name)
		}
	}
}

func TestCollectRecursiveChildrenBeforeParent(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	touch(t, filepath.Join(sub, "inner.txt"))

	entries, errs := Collect([]string{dir}, true, nil)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	innerIdx, subIdx := -1, -1
	for i, e := range entries {
		switch e.Name {
		case "inner.txt":
			innerIdx = i
		case "sub":
			subIdx = i
			if !e.IsDir {
				t.Error("sub should be flagged as a directory")
			}
		}
	}
	if innerIdx == -1 || subIdx == -1 {
		t.Fatalf("recursive collect missing entries: %v", names(entries))
	}
	if innerIdx > subIdx {
		t.Error("children must be listed before their containing directory")
	}
}

func TestCollectExcludes(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.txt"))
	touch(t, filepath.Join(dir, "skip.bak"))
	touch(t, filepath.Join(dir, "draft-skipme.txt"))

	entries, _ := Collect([]string{dir}, false, []string{"*.bak", "skipme"})
	got := names(entries)
	for _, n := range got {
		if n == "skip.bak" || n == "draft-skipme.txt" {
			t.Errorf("excluded entry %q was collected", n)
		}
	}
	found := false
	for _, n := range got {
		if n == "keep.txt" {
			found = true
		}
	}
	if !found {
		t.Errorf("keep.txt missing from %v", got)
	}
}

func TestCollectMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	entries, errs := Collect([]string{missing}, false, nil)
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", names(entries))
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want one", errs)
	}
	var scanErr *ScanError
	if !errors.As(errs[0], &scanErr) || scanErr.Type != PathNotFound {
		t.Errorf("error = %v, want PathNotFound", errs[0])
	}
}

func TestCollectContinuesPastErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	touch(t, good)

	entries, errs := Collect([]string{filepath.Join(dir, "absent"), good}, false, nil)
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want one", errs)
	}
	if len(entries) != 1 || entries[0].Name != "good.txt" {
		t.Errorf("entries = %v, want [good.txt]", names(entries))
	}
}
