package engine

import (
	"context"
	"fmt"

	"github.com/bianoble/ai-tao/internal/ignore"
	"github.com/bianoble/ai-tao/internal/marker"
	"github.com/bianoble/ai-tao/internal/sandbox"
	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

// Prompter collects first-time setup answers from the operator. Each call
// blocks until an answer is available.
type Prompter interface {
	SelectTools(ctx context.Context, defs []target.Definition) ([]target.Tool, error)
	SelectLocal(ctx context.Context) (bool, error)
	SelectFlavors(ctx context.Context, flavors []source.Flavor) ([]source.Flavor, error)
}

// RunEngine orchestrates a single run: detect, select, fetch, apply, ignore.
type RunEngine struct {
	Registry    *target.Registry
	Source      source.ContentSource
	Prompter    Prompter
	ProjectRoot string
}

// RunOptions configures a run.
type RunOptions struct {
	// Selection answers setup mode without prompting. Ignored in update mode.
	Selection *Selection
	DryRun    bool
}

// Run brings every selected tool's file up to date with the fetched content.
//
// When managed files already exist, the run refreshes exactly those tools.
// Local mode is then on if any detected file is local, and applies to all
// of them. Flavors are only applied during first-time setup.
//
// Content is fetched before any file is touched. File writes are not rolled
// back: an error leaves earlier files written.
func (e *RunEngine) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	detections, err := Detect(e.ProjectRoot, e.Registry)
	if err != nil {
		return nil, fmt.Errorf("detecting managed files: %w", err)
	}

	result := &RunResult{DryRun: opts.DryRun}
	var sel Selection
	if len(detections) > 0 {
		result.Mode = ModeUpdate
		sel = updateSelection(detections)
	} else {
		result.Mode = ModeSetup
		sel, err = e.setupSelection(ctx, opts.Selection)
		if err != nil {
			return nil, err
		}
	}

	defs, err := e.resolveTools(sel.Tools)
	if err != nil {
		return nil, err
	}
	result.Local = sel.Local

	content, err := source.FetchAll(ctx, e.Source, sel.Flavors)
	if err != nil {
		return nil, fmt.Errorf("fetching content: %w", err)
	}
	result.Flavors = sel.Flavors

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		mf, err := e.apply(def, sel.Local, content, opts.DryRun)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, mf)
		names = append(names, mf.Path)
	}

	if sel.Local {
		result.IgnoreUpdated, err = e.finalizeIgnore(names, opts.DryRun)
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func updateSelection(detections []Detection) Selection {
	sel := Selection{Tools: make([]target.Tool, 0, len(detections))}
	for _, d := range detections {
		sel.Tools = append(sel.Tools, d.Tool)
		if d.IsLocal {
			sel.Local = true
		}
	}
	return sel
}

func (e *RunEngine) setupSelection(ctx context.Context, supplied *Selection) (Selection, error) {
	if supplied != nil {
		return *supplied, nil
	}
	if e.Prompter == nil {
		return Selection{}, fmt.Errorf("first-time setup needs a selection or a prompter")
	}

	var sel Selection
	var err error
	if sel.Tools, err = e.Prompter.SelectTools(ctx, e.Registry.Definitions()); err != nil {
		return Selection{}, fmt.Errorf("selecting tools: %w", err)
	}
	if sel.Local, err = e.Prompter.SelectLocal(ctx); err != nil {
		return Selection{}, fmt.Errorf("selecting mode: %w", err)
	}
	if sel.Flavors, err = e.Prompter.SelectFlavors(ctx, source.Flavors()); err != nil {
		return Selection{}, fmt.Errorf("selecting flavors: %w", err)
	}
	return sel, nil
}

// resolveTools maps tools to definitions, dropping repeats.
func (e *RunEngine) resolveTools(tools []target.Tool) ([]target.Definition, error) {
	seen := make(map[target.Tool]bool, len(tools))
	defs := make([]target.Definition, 0, len(tools))
	for _, tool := range tools {
		if seen[tool] {
			continue
		}
		seen[tool] = true
		def, err := e.Registry.Lookup(tool)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, ErrNoTools
	}
	return defs, nil
}

func (e *RunEngine) apply(def target.Definition, local bool, content string, dryRun bool) (ManagedFile, error) {
	relPath := def.File(local)
	mf := ManagedFile{Tool: def.Tool, Path: relPath, IsLocal: local}

	existing, exists, err := sandbox.SafeRead(e.ProjectRoot, relPath)
	if err != nil {
		return mf, err
	}

	var out string
	if exists {
		out = marker.Update(string(existing), content)
	} else {
		out = marker.Wrap(content) + "\n"
	}

	switch {
	case !exists:
		mf.Created = true
		mf.Action = ActionCreated
	case out == string(existing):
		mf.Action = ActionUnchanged
		return mf, nil
	default:
		mf.Action = ActionUpdated
	}

	if dryRun {
		return mf, nil
	}
	if err := sandbox.SafeWrite(e.ProjectRoot, relPath, []byte(out), 0644); err != nil {
		return mf, fmt.Errorf("writing %s: %w", relPath, err)
	}
	return mf, nil
}

func (e *RunEngine) finalizeIgnore(names []string, dryRun bool) (bool, error) {
	if dryRun {
		_, missing, err := ignore.Plan(e.ProjectRoot, names)
		return len(missing) > 0, err
	}
	return ignore.Ensure(e.ProjectRoot, names)
}
