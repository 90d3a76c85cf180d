package combine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeLister serves canned recursive listings keyed by absolute directory.
type fakeLister struct {
	byDir map[string][]string
	err   error
}

func (f *fakeLister) TrackedItems(dir string, recursive bool) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byDir[dir], nil
}

// expandRoot builds a repository-like directory tree on disk.
func expandRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	for _, d := range []string{"src", "deep"} {
		if err := os.Mkdir(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("readme"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestExpandDirectory(t *testing.T) {
	root := expandRoot(t)
	lister := &fakeLister{byDir: map[string][]string{
		filepath.Join(root, "src"): {"src/main.py", "src/utils.py"},
	}}

	got, err := Expand([]string{"src"}, root, lister, root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"src/main.py", "src/utils.py"}
	if !equalStrings(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandFilePassthrough(t *testing.T) {
	root := expandRoot(t)

	got, err := Expand([]string{"README.md"}, root, &fakeLister{}, root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(got, []string{"README.md"}) {
		t.Fatalf("Expand = %v, want [README.md]", got)
	}
}

func TestExpandMissingNameIsFile(t *testing.T) {
	root := expandRoot(t)

	// A name that no longer exists on disk passes through as a file; the
	// formatter reports the read failure later.
	got, err := Expand([]string{"ghost.txt"}, root, &fakeLister{}, root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalStrings(got, []string{"ghost.txt"}) {
		t.Fatalf("Expand = %v, want [ghost.txt]", got)
	}
}

func TestExpandDepthCutoff(t *testing.T) {
	root := expandRoot(t)
	lister := &fakeLister{byDir: map[string][]string{
		filepath.Join(root, "deep"): {
			"deep/a.txt",         // 2 segments
			"deep/a/b/c.txt",     // 4 segments: kept at depth 3
			"deep/a/b/c/d.txt",   // 5 segments: dropped at depth 3
			"deep/a/b/c/d/e.txt", // 6 segments: dropped
		},
	}}

	got, err := Expand([]string{"deep"}, root, lister, root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"deep/a.txt", "deep/a/b/c.txt"}
	if !equalStrings(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}

	// A larger limit keeps the deeper entries.
	got, err = Expand([]string{"deep"}, root, lister, root, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"deep/a.txt", "deep/a/b/c.txt", "deep/a/b/c/d.txt"}
	if !equalStrings(got, want) {
		t.Fatalf("Expand(depth 4) = %v, want %v", got, want)
	}
}

func TestExpandSelectionOrder(t *testing.T) {
	root := expandRoot(t)
	lister := &fakeLister{byDir: map[string][]string{
		filepath.Join(root, "src"): {"src/main.py"},
	}}

	got, err := Expand([]string{"README.md", "src", "README.md"}, root, lister, root, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"README.md", "src/main.py", "README.md"}
	if !equalStrings(got, want) {
		t.Fatalf("Expand = %v, want %v", got, want)
	}
}

func TestExpandListingFailureAborts(t *testing.T) {
	root := expandRoot(t)
	boom := errors.New("ls-files failed")
	lister := &fakeLister{err: boom}

	got, err := Expand([]string{"README.md", "src"}, root, lister, root, 3)
	if !errors.Is(err, boom) {
		t.Fatalf("expected listing failure to propagate, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
}
