package target

import (
	"fmt"
	"strings"
)

// Tool identifies a supported AI coding assistant.
type Tool string

const (
	Claude   Tool = "claude"
	Cursor   Tool = "cursor"
	Windsurf Tool = "windsurf"
	Copilot  Tool = "copilot"
)

// DefaultTool is used when a selection resolves to nothing.
const DefaultTool = Claude

// Definition describes where a tool keeps its instruction file.
type Definition struct {
	Tool        Tool
	DisplayName string
	SharedFile  string // committed to version control
	LocalFile   string // personal copy; may equal SharedFile
}

// File returns the relative path used for the given mode.
func (d Definition) File(local bool) string {
	if local {
		return d.LocalFile
	}
	return d.SharedFile
}

// HasLocalVariant reports whether local mode writes to a different file.
func (d Definition) HasLocalVariant() bool {
	return d.LocalFile != d.SharedFile
}

// builtinTools is the fixed tool table, in presentation order.
var builtinTools = []Definition{
	{Tool: Claude, DisplayName: "Claude Code", SharedFile: "CLAUDE.md", LocalFile: "CLAUDE.local.md"},
	{Tool: Cursor, DisplayName: "Cursor", SharedFile: ".cursorrules", LocalFile: ".cursorrules"},
	{Tool: Windsurf, DisplayName: "Windsurf", SharedFile: ".windsurfrules", LocalFile: ".windsurfrules"},
	{Tool: Copilot, DisplayName: "GitHub Copilot", SharedFile: ".github/copilot-instructions.md", LocalFile: ".github/copilot-instructions.md"},
}

// Registry resolves tools to their file definitions. It is immutable after
// construction and safe to share.
type Registry struct {
	defs []Definition
}

// NewRegistry returns a Registry holding the built-in tool table.
func NewRegistry() *Registry {
	defs := make([]Definition, len(builtinTools))
	copy(defs, builtinTools)
	return &Registry{defs: defs}
}

// Definitions returns all definitions in registry order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Tools returns the tool identifiers in registry order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.defs))
	for i, d := range r.defs {
		out[i] = d.Tool
	}
	return out
}

// Lookup returns the definition for tool.
func (r *Registry) Lookup(tool Tool) (Definition, error) {
	for _, d := range r.defs {
		if d.Tool == tool {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown tool '%s' — supported tools: %s", tool, r.names())
}

// Parse converts a user-supplied name into a Tool. Matching is
// case-insensitive and ignores surrounding whitespace.
func (r *Registry) Parse(name string) (Tool, error) {
	tool := Tool(strings.ToLower(strings.TrimSpace(name)))
	if _, err := r.Lookup(tool); err != nil {
		return "", err
	}
	return tool, nil
}

func (r *Registry) names() string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = string(d.Tool)
	}
	return strings.Join(names, ", ")
}
