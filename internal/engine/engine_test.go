package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// mockSource returns predefined content and counts fetches.
type mockSource struct {
	template string
	flavors  map[source.Flavor]string
	err      error

	templateCalls int
}

func (m *mockSource) FetchTemplate(ctx context.Context) (string, error) {
	m.templateCalls++
	if m.err != nil {
		return "", m.err
	}
	return m.template, nil
}

func (m *mockSource) FetchFlavor(ctx context.Context, f source.Flavor) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	text, ok := m.flavors[f]
	if !ok {
		return "", &source.SourceError{Source: "flavor '" + string(f) + "'", Operation: "fetch", Err: errors.New("HTTP 404")}
	}
	return text, nil
}

// mockPrompter answers with a fixed selection and records whether it was asked.
type mockPrompter struct {
	sel   Selection
	asked bool
}

func (m *mockPrompter) SelectTools(ctx context.Context, defs []target.Definition) ([]target.Tool, error) {
	m.asked = true
	return m.sel.Tools, nil
}

func (m *mockPrompter) SelectLocal(ctx context.Context) (bool, error) {
	return m.sel.Local, nil
}

func (m *mockPrompter) SelectFlavors(ctx context.Context, flavors []source.Flavor) ([]source.Flavor, error) {
	return m.sel.Flavors, nil
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func newTestEngine(root string, src source.ContentSource, p Prompter) *RunEngine {
	return &RunEngine{
		Registry:    target.NewRegistry(),
		Source:      src,
		Prompter:    p,
		ProjectRoot: root,
	}
}
