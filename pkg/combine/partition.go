package combine

import (
	"os"
	"path/filepath"
	"sort"
)

// Partition splits tracked item names into directories and files, each sorted
// lexicographically. The decision comes from the filesystem: an item that is
// not an existing directory under baseDir counts as a file, including items
// that no longer exist on disk (those surface later as per-file read errors).
// The concatenation directories ++ files is the canonical display order.
func Partition(items []string, baseDir string) (dirs, files []string) {
	for _, item := range items {
		info, err := os.Stat(filepath.Join(baseDir, item))
		if err == nil && info.IsDir() {
			dirs = append(dirs, item)
		} else {
			files = append(files, item)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	return dirs, files
}
