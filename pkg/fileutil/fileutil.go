// Package fileutil provides small helpers for reading and writing report files.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/githubnext/boomi-validate/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFile replaces the contents of path, creating parent directories as needed.
func WriteFile(path string, content []byte) error {
	log.Printf("Writing file: path=%s, size=%d bytes", path, len(content))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AppendFile appends content to path, creating the file if needed.
func AppendFile(path string, content []byte) error {
	log.Printf("Appending to file: path=%s, size=%d bytes", path, len(content))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}
