package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readIgnore(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading %s: %v", FileName, err)
	}
	return string(data)
}

func TestEnsureCreatesFile(t *testing.T) {
	dir := t.TempDir()

	changed, err := Ensure(dir, []string{"CLAUDE.local.md"})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !changed {
		t.Error("expected change")
	}
	if got := readIgnore(t, dir); got != "CLAUDE.local.md\n" {
		t.Errorf("content = %q", got)
	}
}

func TestEnsureIdempotent(t *testing.T) {
	dir := t.TempDir()
	names := []string{"CLAUDE.local.md", ".cursorrules"}

	if _, err := Ensure(dir, names); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}
	changed, err := Ensure(dir, names)
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if changed {
		t.Error("second call should not change the file")
	}

	content := readIgnore(t, dir)
	for _, name := range names {
		if n := strings.Count(content, name+"\n"); n != 1 {
			t.Errorf("%s appears %d times in %q", name, n, content)
		}
	}
}

func TestEnsureAppendsWithoutTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("node_modules"), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := Ensure(dir, []string{"CLAUDE.local.md"})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if !changed {
		t.Error("expected change")
	}
	if got := readIgnore(t, dir); got != "node_modules\nCLAUDE.local.md\n" {
		t.Errorf("content = %q", got)
	}
}

func TestEnsureAppendsAfterTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("dist/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Ensure(dir, []string{"a", "b"}); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if got := readIgnore(t, dir); got != "dist/\na\nb\n" {
		t.Errorf("content = %q", got)
	}
}

func TestEnsureNoChangeLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	original := "  CLAUDE.local.md  \nother"
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	changed, err := Ensure(dir, []string{"CLAUDE.local.md"})
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if changed {
		t.Error("trimmed line should count as present")
	}
	if got := readIgnore(t, dir); got != original {
		t.Errorf("file modified: %q", got)
	}
}

func TestEnsureEmptyNames(t *testing.T) {
	dir := t.TempDir()
	changed, err := Ensure(dir, nil)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if changed {
		t.Error("expected no change")
	}
	if _, err := os.Stat(filepath.Join(dir, FileName)); !os.IsNotExist(err) {
		t.Error("ignore file should not be created")
	}
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		names   []string
		want    []string
	}{
		{"empty file", "", []string{"a", "b"}, []string{"a", "b"}},
		{"all present", "a\nb\n", []string{"b", "a"}, nil},
		{"order kept", "b\n", []string{"c", "b", "a"}, []string{"c", "a"}},
		{"no substring match", "CLAUDE.local.md.bak\n", []string{"CLAUDE.local.md"}, []string{"CLAUDE.local.md"}},
		{"no glob match", "*.md\n", []string{"CLAUDE.local.md"}, []string{"CLAUDE.local.md"}},
		{"duplicate input", "", []string{"a", "a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Missing(tt.content, tt.names)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Missing = %v, want %v", got, tt.want)
			}
		})
	}
}
