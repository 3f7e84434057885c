// Package sink provides output destinations for generated binding files.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sink receives generated file content.
// Implementations must be safe for concurrent calls.
type Sink interface {
	// WriteFile writes content to the specified relative path.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes to a directory on the local filesystem.
// Existing files are replaced.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode
}

// NewFilesystemSink creates a FilesystemSink writing under root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644}
}

// WriteFile writes content to path within the root directory, creating
// parent directories as needed. Writes are atomic via temp file + rename.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Root, filepath.FromSlash(path))

	// Reject paths that resolve outside the root.
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) && absPath != absRoot {
		return fmt.Errorf("path escapes root directory: %q", path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tempFile, err := os.CreateTemp(dir, ".mlbind-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	_, writeErr := tempFile.Write(content)
	closeErr := tempFile.Close()
	if writeErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	if err := os.Chmod(tempPath, mode); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tempPath, fullPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// MemorySink stores generated files in memory. All operations are
// thread-safe.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates a MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = contentCopy
	return nil
}

// Get returns the content of a single file, or nil if not found.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return nil
	}
	contentCopy := make([]byte, len(content))
	copy(contentCopy, content)
	return contentCopy
}

// Paths returns the written paths, in no particular order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	return paths
}

// ValidatePath checks that path is relative, clean, slash-separated, and
// free of traversal components.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) {
		return errors.New("absolute paths not allowed")
	}
	// Windows drive-letter paths are absolute even on Unix.
	if len(path) >= 2 && path[1] == ':' &&
		((path[0] >= 'A' && path[0] <= 'Z') || (path[0] >= 'a' && path[0] <= 'z')) {
		return errors.New("absolute paths not allowed")
	}
	if strings.Contains(path, "..") {
		return errors.New("path traversal not allowed")
	}
	cleaned := filepath.Clean(filepath.ToSlash(path))
	if cleaned != filepath.ToSlash(path) {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}
