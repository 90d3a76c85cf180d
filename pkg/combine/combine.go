// Package combine implements the selection pipeline: partition the tracked
// listing, take the user's selection, expand directories within the depth
// cutoff, and render the chosen files into one marker-delimited output.
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gitcat/pkg/gitrepo"

	"go.uber.org/zap"
)

// Runner executes the pipeline for one invocation. The IO streams are
// injectable so interactive runs can be driven from tests.
type Runner struct {
	Config Config
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Execute runs the pipeline against the process streams.
func Execute(args Arguments, cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		Config: cfg,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
	return r.Run(args)
}

// Run drives one invocation: locate the repository, list and partition the
// tracked items, take the selection, expand it, and write the output.
// User-facing messages are printed here; the returned error carries the
// classification the command layer maps to an exit status.
func (r *Runner) Run(args Arguments) error {
	start := time.Now()
	r.Logger.Info("Starting run",
		zap.String("directory", args.Directory),
		zap.Bool("all", args.All))

	if info, err := os.Stat(args.Directory); err != nil || !info.IsDir() {
		fmt.Fprintf(r.Stderr, msgDirNotExist+"\n", args.Directory)
		return &gitrepo.DirectoryError{Dir: args.Directory}
	}

	repo, err := gitrepo.Open(args.Directory)
	if err != nil {
		fmt.Fprintln(r.Stderr, msgNotGitRepo)
		return err
	}
	r.Logger.Debug("Resolved repository root", zap.String("root", repo.Root()))

	items, err := repo.TrackedItems(args.Directory, false)
	if err != nil {
		r.reportFatal(err)
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(r.Stdout, msgNoTrackedFiles)
		return nil
	}

	dirs, files := Partition(items, args.Directory)
	listing := make([]string, 0, len(dirs)+len(files))
	listing = append(listing, dirs...)
	listing = append(listing, files...)
	r.Logger.Debug("Partitioned tracked items",
		zap.Int("directories", len(dirs)),
		zap.Int("files", len(files)))

	selected := listing
	if !args.All {
		r.printListing(listing, len(dirs))
		selected, err = r.promptLoop(listing)
		if err != nil {
			return err
		}
	}

	expanded, err := Expand(selected, args.Directory, repo, repo.Root(), r.Config.MaxDepth)
	if err != nil {
		r.reportFatal(err)
		return err
	}
	r.Logger.Debug("Expanded selection",
		zap.Int("selected", len(selected)),
		zap.Int("files", len(expanded)))

	text := NewFormatter(r.Config, r.Logger).Format(expanded, repo.Root())

	if err := r.writeOutput(args.Output, text); err != nil {
		fmt.Fprintln(r.Stderr, err)
		return err
	}

	r.Logger.Info("Run completed",
		zap.Int("files", len(expanded)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// printListing shows the numbered directories ++ files list. The first
// dirCount rows are directories and carry the directory label.
func (r *Runner) printListing(listing []string, dirCount int) {
	fmt.Fprintf(r.Stdout, "\n%s\n", msgItemsHeader)
	for i, item := range listing {
		if i < dirCount {
			fmt.Fprintf(r.Stdout, "%d. %s %s\n", i+1, r.Config.DirLabel, item)
		} else {
			fmt.Fprintf(r.Stdout, "%d. %s\n", i+1, item)
		}
	}
}

// reportFatal prints the fixed message for environment failures and the plain
// error text for everything else.
func (r *Runner) reportFatal(err error) {
	var dirErr *gitrepo.DirectoryError
	if errors.As(err, &dirErr) {
		fmt.Fprintf(r.Stderr, msgDirNotExist+"\n", dirErr.Dir)
		return
	}
	fmt.Fprintln(r.Stderr, err)
}

// writeOutput sends the rendered text to stdout, or to the named file,
// creating parent directories as needed.
func (r *Runner) writeOutput(path, text string) error {
	if path == "" {
		_, err := io.WriteString(r.Stdout, text)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	r.Logger.Debug("Wrote output file", zap.String("path", path))
	return nil
}
