// Package sandbox confines file access to a project root.
package sandbox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePath resolves relPath against projectRoot, following symlinks for
// the part of the path that exists, and rejects results outside the root.
func ValidatePath(projectRoot, relPath string) (string, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", fmt.Errorf("resolving project root: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", fmt.Errorf("resolving project root symlinks: %w", err)
	}

	resolved, err := resolveExisting(filepath.Clean(filepath.Join(realRoot, relPath)))
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}

	// Trailing separator keeps "/proj2" from matching "/proj".
	if resolved != realRoot && !strings.HasPrefix(resolved, realRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("path '%s' resolves to '%s' which is outside the project root '%s'", relPath, resolved, realRoot)
	}
	return resolved, nil
}

// resolveExisting evaluates symlinks on the longest existing prefix of path
// and re-attaches the rest.
func resolveExisting(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	if dir == path {
		return path, nil
	}
	parent, err := resolveExisting(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, filepath.Base(path)), nil
}

// SafeRead reads a file inside the project root. A missing file is not an
// error: it returns nil content and exists == false.
func SafeRead(projectRoot, relPath string) (content []byte, exists bool, err error) {
	resolved, err := ValidatePath(projectRoot, relPath)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", relPath, err)
	}
	return data, true, nil
}

// SafeWrite writes content to a path inside the project root, creating
// parent directories. The file is replaced by renaming a temp file written
// alongside it. perm applies to new files; an existing file keeps its mode.
func SafeWrite(projectRoot, relPath string, content []byte, perm os.FileMode) error {
	resolved, err := ValidatePath(projectRoot, relPath)
	if err != nil {
		return err
	}

	if fi, err := os.Stat(resolved); err == nil {
		perm = fi.Mode().Perm()
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".ai-tao-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, resolved); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", resolved, err)
	}

	success = true
	return nil
}
