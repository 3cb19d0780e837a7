// Package ignore keeps the project's .gitignore listing the files that
// ai-tao writes in local mode.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bianoble/ai-tao/internal/sandbox"
)

// FileName is the ignore file maintained in the project root.
const FileName = ".gitignore"

// Missing returns the names that do not already appear as a line of content,
// in input order and without duplicates. Lines are compared after trimming
// surrounding whitespace; no glob matching is done.
func Missing(content string, names []string) []string {
	present := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, name := range names {
		if present[name] {
			continue
		}
		present[name] = true
		missing = append(missing, name)
	}
	return missing
}

// Append returns content with names added one per line. A newline is inserted
// first when content does not already end with one.
func Append(content string, names []string) string {
	if len(names) == 0 {
		return content
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + strings.Join(names, "\n") + "\n"
}

// Ensure adds any of names missing from the ignore file in projectRoot,
// creating the file if needed. It reports whether the file was written.
func Ensure(projectRoot string, names []string) (bool, error) {
	content, missing, err := Plan(projectRoot, names)
	if err != nil {
		return false, err
	}
	if len(missing) == 0 {
		return false, nil
	}

	if err := sandbox.SafeWrite(projectRoot, FileName, []byte(Append(content, missing)), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", FileName, err)
	}
	return true, nil
}

// Plan reads the ignore file and returns its current content along with the
// names Ensure would add. A missing file reads as empty.
func Plan(projectRoot string, names []string) (string, []string, error) {
	path := filepath.Join(projectRoot, FileName)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)
	return content, Missing(content, names), nil
}
