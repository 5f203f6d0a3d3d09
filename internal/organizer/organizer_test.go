package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "blah.TXT")
	if err := os.WriteFile(oldPath, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	newPath, err := Rename(oldPath, "2015-01-01-blah.txt")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if newPath != filepath.Join(dir, "2015-01-01-blah.txt") {
		t.Errorf("newPath = %q", newPath)
	}

	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Error("source still exists after rename")
	}
	data, err := os.ReadFile(newPath)
	if err != nil {
		t.Fatalf("destination missing: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("content = %q", data)
	}
}

func TestRenameRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.txt")
	existing := filepath.Join(dir, "b.txt")
	for _, p := range []string{oldPath, existing} {
		if err := os.WriteFile(p, []byte(p), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	_, err := Rename(oldPath, "b.txt")
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Type != DestinationExists {
		t.Fatalf("error = %v, want DestinationExists", err)
	}

	// Neither file was touched.
	if _, err := os.Stat(oldPath); err != nil {
		t.Error("source was removed despite the refusal")
	}
	data, _ := os.ReadFile(existing)
	if string(data) != existing {
		t.Error("existing destination was overwritten")
	}
}

func TestRenameMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Rename(filepath.Join(dir, "absent.txt"), "anything.txt")
	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Type != SourceNotFound {
		t.Fatalf("error = %v, want SourceNotFound", err)
	}
}

func TestRenameDirectory(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "Photos-2015-01-01")
	if err := os.Mkdir(oldPath, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	newPath, err := Rename(oldPath, "2015-01-01-Photos")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	info, err := os.Stat(newPath)
	if err != nil || !info.IsDir() {
		t.Errorf("renamed directory missing: %v", err)
	}
}
