package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Formatter renders an ordered file list into marker-delimited text.
type Formatter struct {
	cfg    Config
	logger *zap.Logger
}

// NewFormatter builds a Formatter. A nil logger disables logging.
func NewFormatter(cfg Config, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{cfg: cfg, logger: logger}
}

// Format reads every file relative to root and renders one block per path:
//
//	<blank line>
//	// BEGIN FILE: <relative/path>
//	<raw content, line endings untouched>
//	// END FILE
//
// Blocks concatenate so that one block's trailing newline and the next
// block's leading newline form the blank separators. Reads fan out over a
// bounded worker pool, but the output order is exactly the input order.
// Per-file failures become the block body; Format itself never fails.
func (f *Formatter) Format(paths []string, root string) string {
	if len(paths) == 0 {
		return ""
	}

	bodies := make([]string, len(paths))
	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup

	workers := f.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		f.logger.Debug("Adjusted worker count", zap.Int("workers", workers))
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				bodies[i] = f.readBody(paths[i], root)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var sb strings.Builder
	for i, path := range paths {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf(f.cfg.BeginMarkerFormat, path))
		sb.WriteString("\n")
		sb.WriteString(bodies[i])
		sb.WriteString("\n")
		sb.WriteString(f.cfg.EndMarker)
		sb.WriteString("\n")
	}
	return sb.String()
}

// readBody returns the file's content, or the error text standing in for it.
// The fixed encoding is UTF-8; content that fails validation is reported the
// same way as an unreadable file.
func (f *Formatter) readBody(path, root string) string {
	full := filepath.Join(root, filepath.FromSlash(path))

	data, err := os.ReadFile(full)
	if err != nil {
		f.logger.Debug("Failed to read file", zap.String("path", path), zap.Error(err))
		return fmt.Sprintf(msgFileReadError, err)
	}

	if !utf8.Valid(data) {
		f.logger.Debug("File content is not valid UTF-8", zap.String("path", path))
		return fmt.Sprintf(msgFileReadError, path+": invalid UTF-8 data")
	}

	return string(data)
}
