// Package gitrepo resolves the enclosing git repository and lists its tracked
// paths. All paths it hands out are slash-normalized and relative either to
// the repository root or to a queried subdirectory.
package gitrepo

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotRepository is returned when no enclosing git repository can be found.
var ErrNotRepository = errors.New("not a git repository")

// DirectoryError reports a target directory that is missing or lies outside
// the repository. Dir carries the original user input for display.
type DirectoryError struct {
	Dir string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory %s does not exist", e.Dir)
}

// ListingError reports a failed tracked-path query.
type ListingError struct {
	Err error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("failed to list tracked files: %v", e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

// Normalize rewrites a path into the forward-slash form used for prefix
// comparisons against git output. It performs no other cleanup; dot segments
// and symlinks are resolved by the filesystem calls that precede it.
func Normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Repo is an opened repository. The root is resolved once per invocation and
// never changes afterwards.
type Repo struct {
	root string
}

// Open locates the repository enclosing dir via `git rev-parse --show-toplevel`.
// A non-zero exit or empty output yields ErrNotRepository.
func Open(dir string) (*Repo, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil, ErrNotRepository
	}

	root := strings.TrimSpace(string(out))
	if root == "" {
		return nil, ErrNotRepository
	}
	return &Repo{root: filepath.FromSlash(root)}, nil
}

// Root returns the absolute repository root.
func (r *Repo) Root() string {
	return r.root
}

// Prefix expresses dir as a repository-root-relative prefix: "" for the root
// itself, "sub/dir/" otherwise. A directory outside the repository yields a
// DirectoryError carrying the original input.
func (r *Repo) Prefix(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &DirectoryError{Dir: dir}
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", &DirectoryError{Dir: dir}
	}

	rel = Normalize(rel)
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", &DirectoryError{Dir: dir}
	}
	return rel + "/", nil
}

// TrackedItems lists tracked paths under dir. Non-recursive mode returns the
// immediate child names below dir; recursive mode returns the full
// repo-root-relative path of every tracked file beneath it. The result is
// deduplicated preserving first-seen order, since many files collapse onto
// one directory name in non-recursive mode.
func (r *Repo) TrackedItems(dir string, recursive bool) ([]string, error) {
	prefix, err := r.Prefix(dir)
	if err != nil {
		return nil, err
	}

	out, err := exec.Command("git", "-C", r.root, "ls-files", "--full-name").Output()
	if err != nil {
		return nil, &ListingError{Err: err}
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var items []string
	for _, line := range strings.Split(trimmed, "\n") {
		path := Normalize(strings.TrimSpace(line))
		if path == "" || !strings.HasPrefix(path, prefix) {
			continue
		}

		item := path
		if !recursive {
			rest := strings.TrimPrefix(path, prefix)
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				rest = rest[:i]
			}
			if rest == "" {
				continue
			}
			item = rest
		}

		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items, nil
}
