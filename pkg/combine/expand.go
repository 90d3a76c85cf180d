package combine

import (
	"os"
	"path/filepath"
	"strings"

	"gitcat/pkg/gitrepo"
)

// Lister enumerates tracked paths under a directory. *gitrepo.Repo satisfies it.
type Lister interface {
	TrackedItems(dir string, recursive bool) ([]string, error)
}

// segmentCount counts the path segments of a normalized relative path.
func segmentCount(path string) int {
	return strings.Count(path, "/") + 1
}

// Expand flattens selected item names into repo-root-relative file paths, in
// selection order. The filesystem decides what is a directory; a directory
// named like a file (src.v2, Language.Tests) still expands. Directories
// contribute every tracked descendant whose segment count from the repository
// root stays within maxDepth+1; deeper entries are silently dropped. Anything
// that is not an existing directory passes through as a single file path.
// One failed listing aborts the whole expansion.
func Expand(selected []string, targetDir string, lister Lister, root string, maxDepth int) ([]string, error) {
	var out []string
	for _, name := range selected {
		abs, err := filepath.Abs(filepath.Join(targetDir, name))
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil {
			return nil, err
		}
		rel = gitrepo.Normalize(rel)

		info, err := os.Stat(abs)
		if err == nil && info.IsDir() {
			tracked, err := lister.TrackedItems(abs, true)
			if err != nil {
				return nil, err
			}
			for _, p := range tracked {
				if segmentCount(p) <= maxDepth+1 {
					out = append(out, p)
				}
			}
			continue
		}

		out = append(out, rel)
	}
	return out, nil
}
