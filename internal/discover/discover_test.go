package discover_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scriptctl/internal/discover"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<root/>"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesRecursiveSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.xml"))
	touch(t, filepath.Join(root, "a.xml"))
	touch(t, filepath.Join(root, "nested", "deep", "c.xml"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "nested", "d.ctl"))

	res, err := discover.Files(root, ".xml")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	want := []string{
		filepath.Join(root, "a.xml"),
		filepath.Join(root, "b.xml"),
		filepath.Join(root, "nested", "deep", "c.xml"),
	}
	if strings.Join(res.Files, "|") != strings.Join(want, "|") {
		t.Fatalf("Files = %v, want %v", res.Files, want)
	}
	if len(res.SkippedDirs) != 0 {
		t.Fatalf("unexpected skipped dirs: %v", res.SkippedDirs)
	}
}

func TestFilesReportsMatchingDirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "bundle.xml", "inner.xml"))

	res, err := discover.Files(root, ".xml")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(res.SkippedDirs) != 1 || res.SkippedDirs[0] != filepath.Join(root, "bundle.xml") {
		t.Fatalf("SkippedDirs = %v", res.SkippedDirs)
	}
	if len(res.Files) != 1 || res.Files[0] != filepath.Join(root, "bundle.xml", "inner.xml") {
		t.Fatalf("Files = %v", res.Files)
	}
	if res.Total() != 2 {
		t.Fatalf("Total = %d, want 2", res.Total())
	}
}

func TestFilesReportsDirectorySymlinkAsSkipped(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "target")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "linked.xml")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	touch(t, filepath.Join(root, "real.xml"))

	res, err := discover.Files(root, ".xml")
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(res.Files) != 1 || res.Files[0] != filepath.Join(root, "real.xml") {
		t.Fatalf("Files = %v, want only real.xml", res.Files)
	}
	if len(res.SkippedDirs) != 1 || res.SkippedDirs[0] != link {
		t.Fatalf("SkippedDirs = %v, want [%s]", res.SkippedDirs, link)
	}
}

func TestFilesRejectsNonDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.xml")
	touch(t, path)
	if _, err := discover.Files(path, ".xml"); err == nil {
		t.Fatal("expected error for file root")
	}
	if _, err := discover.Files(filepath.Join(t.TempDir(), "missing"), ".xml"); err == nil {
		t.Fatal("expected error for missing root")
	}
}
