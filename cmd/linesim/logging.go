package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	logFileName = "linesim.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to <dir>/linesim.log when debug
// is set and discards it otherwise. The terminal belongs to the live view,
// so nothing is ever logged to stderr. A log over maxLogSize is rotated to
// linesim.log.old first.
func setupLogging(dir string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	return tea.LogToFile(path, "linesim")
}
