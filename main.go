package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"gitcat/cmd"
	"gitcat/pkg/combine"
	"gitcat/pkg/logging"
	"gitcat/pkg/version"

	"golang.org/x/term"
)

func main() {
	logger, err := logging.New(false, "gitcat", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	runErr := cmd.Execute(logger)

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if runErr != nil {
		if errors.Is(runErr, combine.ErrInterrupted) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
