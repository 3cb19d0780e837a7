package engine

import (
	"github.com/bianoble/ai-tao/internal/marker"
	"github.com/bianoble/ai-tao/internal/sandbox"
	"github.com/bianoble/ai-tao/internal/target"
)

// Detect reports, in registry order, each tool whose local or shared file
// already contains a managed section. A tool's local file takes priority over
// its shared file, so every tool is reported at most once. Detect only reads.
func Detect(projectRoot string, reg *target.Registry) ([]Detection, error) {
	var found []Detection
	for _, def := range reg.Definitions() {
		if def.HasLocalVariant() {
			managed, err := isManaged(projectRoot, def.LocalFile)
			if err != nil {
				return nil, err
			}
			if managed {
				found = append(found, Detection{Tool: def.Tool, Path: def.LocalFile, IsLocal: true})
				continue
			}
		}

		managed, err := isManaged(projectRoot, def.SharedFile)
		if err != nil {
			return nil, err
		}
		if managed {
			found = append(found, Detection{Tool: def.Tool, Path: def.SharedFile, IsLocal: false})
		}
	}
	return found, nil
}

func isManaged(projectRoot, relPath string) (bool, error) {
	data, exists, err := sandbox.SafeRead(projectRoot, relPath)
	if err != nil || !exists {
		return false, err
	}
	return marker.HasSection(string(data)), nil
}
