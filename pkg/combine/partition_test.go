package combine

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestPartition(t *testing.T) {
	base := t.TempDir()
	for _, d := range []string{"src", "tests", "Language.Tests"} {
		if err := os.Mkdir(filepath.Join(base, d), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	for _, f := range []string{"README.md", "main.go"} {
		if err := os.WriteFile(filepath.Join(base, f), []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	items := []string{"tests", "README.md", "src", "main.go", "Language.Tests", "ghost.txt"}
	dirs, files := Partition(items, base)

	// A directory with a dot in its name is still a directory, and a name
	// that does not exist on disk counts as a file.
	wantDirs := []string{"Language.Tests", "src", "tests"}
	wantFiles := []string{"README.md", "ghost.txt", "main.go"}
	if !equalStrings(dirs, wantDirs) {
		t.Fatalf("dirs = %v, want %v", dirs, wantDirs)
	}
	if !equalStrings(files, wantFiles) {
		t.Fatalf("files = %v, want %v", files, wantFiles)
	}
}

func TestPartitionCompleteness(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "a"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "b.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	items := []string{"a", "b.txt", "missing1", "missing2"}
	dirs, files := Partition(items, base)

	if len(dirs)+len(files) != len(items) {
		t.Fatalf("partition lost items: %d + %d != %d", len(dirs), len(files), len(items))
	}
	for _, d := range dirs {
		for _, f := range files {
			if d == f {
				t.Fatalf("item %q appears in both groups", d)
			}
		}
	}
	if !sort.StringsAreSorted(dirs) || !sort.StringsAreSorted(files) {
		t.Fatalf("partition outputs are not sorted: %v / %v", dirs, files)
	}
}

func TestPartitionEmpty(t *testing.T) {
	dirs, files := Partition(nil, t.TempDir())
	if len(dirs) != 0 || len(files) != 0 {
		t.Fatalf("expected empty partition, got %v / %v", dirs, files)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
