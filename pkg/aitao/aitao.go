// Package aitao provides the public Go library API for ai-tao.
//
// ai-tao keeps AI assistant instruction files (CLAUDE.md, .cursorrules and
// friends) in sync with a shared template. The template lives in a managed
// section between marker comments; anything outside the markers is left
// alone.
//
// # Basic Usage
//
//	client, err := aitao.New(aitao.Options{ProjectRoot: "/path/to/project"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// First run: answers supplied up front instead of prompting.
//	result, err := client.Run(ctx, aitao.RunOptions{
//	    Selection: &aitao.Selection{Tools: []aitao.Tool{aitao.Claude}},
//	})
//
//	// Which tools are already managed?
//	detections, err := client.Detect()
package aitao

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bianoble/ai-tao/internal/config"
	"github.com/bianoble/ai-tao/internal/engine"
	"github.com/bianoble/ai-tao/internal/target"
)

// Options configures an ai-tao Client.
type Options struct {
	// ProjectRoot is the directory holding the instruction files.
	// Default: the current directory.
	ProjectRoot string

	// ConfigPath is the config file. Default: .ai-tao.yaml in ProjectRoot.
	// A missing file means built-in defaults.
	ConfigPath string

	// Source overrides the content source named by the config.
	Source ContentSource

	// Prompter answers setup questions when RunOptions.Selection is nil.
	Prompter Prompter
}

// RunOptions configures a run.
type RunOptions struct {
	// Selection answers first-time setup without prompting.
	Selection *Selection
	DryRun    bool
}

// Client is the main entry point for the ai-tao library.
type Client struct {
	registry    *target.Registry
	source      ContentSource
	prompter    Prompter
	projectRoot string
}

// New creates a Client, loading the config file if present.
func New(opts Options) (*Client, error) {
	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	src := opts.Source
	if src == nil {
		cfgPath := opts.ConfigPath
		if cfgPath == "" {
			cfgPath = config.PathIn(root)
		}
		cfg, err := config.LoadOrDefault(cfgPath)
		if err != nil {
			return nil, err
		}
		src = cfg.ContentSource(root)
	}

	return &Client{
		registry:    target.NewRegistry(),
		source:      src,
		prompter:    opts.Prompter,
		projectRoot: root,
	}, nil
}

// Run detects managed files, then either refreshes them or performs
// first-time setup for the selected tools.
func (c *Client) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	eng := &engine.RunEngine{
		Registry:    c.registry,
		Source:      c.source,
		Prompter:    c.prompter,
		ProjectRoot: c.projectRoot,
	}
	return eng.Run(ctx, engine.RunOptions{Selection: opts.Selection, DryRun: opts.DryRun})
}

// Detect reports which tools already have a managed section.
func (c *Client) Detect() ([]Detection, error) {
	return engine.Detect(c.projectRoot, c.registry)
}

// Status reports the state of every tool file.
func (c *Client) Status() ([]FileStatus, error) {
	eng := &engine.StatusEngine{Registry: c.registry, ProjectRoot: c.projectRoot}
	return eng.Status()
}
