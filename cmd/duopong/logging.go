package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging sends the standard logger to path, or discards it when path is empty.
// The terminal frontend owns stdout/stderr while running, so logs never go there.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
