package aitao

import (
	"github.com/bianoble/ai-tao/internal/engine"
	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// Type aliases re-export engine types as the public API.

type Tool = target.Tool
type Flavor = source.Flavor
type Mode = engine.Mode
type Detection = engine.Detection
type ManagedFile = engine.ManagedFile
type Selection = engine.Selection
type RunResult = engine.RunResult
type FileStatus = engine.FileStatus
type Prompter = engine.Prompter
type ContentSource = source.ContentSource
type SourceError = source.SourceError

const (
	Claude   = target.Claude
	Cursor   = target.Cursor
	Windsurf = target.Windsurf
	Copilot  = target.Copilot
)

const (
	ModeSetup  = engine.ModeSetup
	ModeUpdate = engine.ModeUpdate
)

// ErrNoTools is returned when a run resolves to an empty tool selection.
var ErrNoTools = engine.ErrNoTools
