package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"projectsnap/cmd"
	"projectsnap/pkg/logging"
	"projectsnap/pkg/version"
)

func main() {
	logger, err := logging.New(false, version.AppName, version.Get().Version)
	if err != nil {
		log.Printf("Failed to initialize logger, falling back to example logger: %v", err)
		zap.ReplaceGlobals(logger)
	}

	runErr := cmd.Execute(logger)

	// --debug may have replaced the logger; the active one is global.
	active := zap.L()
	if runErr != nil {
		active.Error("projectsnap execution failed", zap.Error(runErr))
	}

	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := active.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}

	if runErr != nil {
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
