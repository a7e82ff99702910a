package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestTempFileString(t *testing.T) {
	path := TempFileString(t, "note.txt", "hello\n")

	if got := ReadFileString(t, path); got != "hello\n" {
		t.Errorf("content = %q, want %q", got, "hello\n")
	}
	AssertFile(t, path)
}

func TestWriteFiles(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.txt":         "a",
		"nested/b.txt":  "b",
		"nested/c/d.md": "d",
	}

	WriteFiles(t, root, files)

	for path, want := range files {
		if got := ReadFileString(t, filepath.Join(root, path)); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
	AssertDir(t, filepath.Join(root, "nested", "c"))
}

func TestListDir(t *testing.T) {
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{"x": "", "y/z": ""})

	names := ListDir(t, root)
	sort.Strings(names)

	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("ListDir = %v, want [x y]", names)
	}
}

func TestAssertNotExist(t *testing.T) {
	AssertNotExist(t, filepath.Join(t.TempDir(), "missing"))
}

func TestGitOutput(t *testing.T) {
	RequireGit(t)

	out := GitOutput(t, t.TempDir(), "--version")
	if out == "" {
		t.Error("git --version returned empty output")
	}
}

func TestRunGit_Failure(t *testing.T) {
	RequireGit(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "f"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runGit(t, dir, "rev-parse", "--git-dir"); err == nil {
		t.Error("expected rev-parse outside a repository to fail")
	}
}
