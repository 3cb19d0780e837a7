package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Layout of a LocalSource directory.
const (
	localTemplateFile = "base.md"
	localFlavorDir    = "flavors"
)

// LocalSource reads template text from a directory: base.md holds the
// template and flavors/<name>.md holds each flavor.
type LocalSource struct {
	Dir string
}

func (l *LocalSource) FetchTemplate(ctx context.Context) (string, error) {
	return l.read(filepath.Join(l.Dir, localTemplateFile), templateSource)
}

func (l *LocalSource) FetchFlavor(ctx context.Context, flavor Flavor) (string, error) {
	return l.read(filepath.Join(l.Dir, localFlavorDir, string(flavor)+".md"), flavorName(flavor))
}

func (l *LocalSource) read(path, sourceName string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", &SourceError{
			Source:    sourceName,
			Operation: "fetch",
			Err:       fmt.Errorf("%s does not exist", path),
			Hint:      "check template_dir in your config",
		}
	}
	if err != nil {
		return "", &SourceError{Source: sourceName, Operation: "fetch", Err: fmt.Errorf("reading %s: %w", path, err)}
	}
	return string(data), nil
}
