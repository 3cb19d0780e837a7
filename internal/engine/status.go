package engine

import (
	"strings"

	"github.com/bianoble/ai-tao/internal/marker"
	"github.com/bianoble/ai-tao/internal/sandbox"
	"github.com/bianoble/ai-tao/internal/target"
)

// StatusEngine reports the state of every registered tool's files.
type StatusEngine struct {
	Registry    *target.Registry
	ProjectRoot string
}

// FileStatus describes one tool file on disk.
type FileStatus struct {
	Tool    target.Tool
	Path    string
	IsLocal bool
	State   string // "managed", "empty", "malformed", "unmanaged", "missing"
}

// Status returns the state of each distinct tool file in registry order.
// Tools whose local and shared files coincide are listed once, as shared.
func (e *StatusEngine) Status() ([]FileStatus, error) {
	var statuses []FileStatus
	for _, def := range e.Registry.Definitions() {
		s, err := e.fileStatus(def.Tool, def.SharedFile, false)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)

		if def.HasLocalVariant() {
			s, err := e.fileStatus(def.Tool, def.LocalFile, true)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, s)
		}
	}
	return statuses, nil
}

func (e *StatusEngine) fileStatus(tool target.Tool, relPath string, local bool) (FileStatus, error) {
	s := FileStatus{Tool: tool, Path: relPath, IsLocal: local}

	data, exists, err := sandbox.SafeRead(e.ProjectRoot, relPath)
	if err != nil {
		return s, err
	}

	switch inner, ok := marker.Extract(string(data)); {
	case !exists:
		s.State = "missing"
	case !marker.HasSection(string(data)):
		s.State = "unmanaged"
	case !ok:
		s.State = "malformed"
	case strings.TrimSpace(inner) == "":
		s.State = "empty"
	default:
		s.State = "managed"
	}
	return s, nil
}
