package engine

import (
	"errors"

	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// ErrNoTools is returned when a run resolves to an empty tool selection.
var ErrNoTools = errors.New("no tools selected")

// Mode is the run mode chosen from the detector output.
type Mode string

const (
	// ModeSetup means no managed files were found; selections are collected.
	ModeSetup Mode = "setup"
	// ModeUpdate means managed files exist and are refreshed in place.
	ModeUpdate Mode = "update"
)

// File actions reported in ManagedFile.Action.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionUnchanged = "unchanged"
)

// Detection records a tool whose file already carries a managed section.
type Detection struct {
	Tool    target.Tool
	Path    string // relative to the project root
	IsLocal bool
}

// ManagedFile is the outcome of applying content to one tool's file.
type ManagedFile struct {
	Tool    target.Tool
	Path    string // relative to the project root
	IsLocal bool
	Created bool // the file did not exist before this run
	Action  string
}

// Selection holds the first-time setup answers.
type Selection struct {
	Tools   []target.Tool
	Local   bool
	Flavors []source.Flavor
}

// RunResult summarizes a run.
type RunResult struct {
	Mode          Mode
	Local         bool
	Files         []ManagedFile
	IgnoreUpdated bool
	Flavors       []source.Flavor // applied flavors; always empty in update mode
	DryRun        bool
}
