package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bianoble/ai-tao/internal/config"
	"github.com/bianoble/ai-tao/internal/engine"
	"github.com/bianoble/ai-tao/internal/prompt"
	"github.com/bianoble/ai-tao/internal/source"
	"github.com/bianoble/ai-tao/internal/target"
)

var (
	runTools   []string
	runLocal   bool
	runFlavors []string
	runYes     bool
	runDryRun  bool
)

func init() {
	rootCmd.Flags().StringSliceVar(&runTools, "tool", nil, "assistant to set up (repeatable): claude, cursor, windsurf, copilot")
	rootCmd.Flags().BoolVar(&runLocal, "local", false, "keep files out of version control via .gitignore")
	rootCmd.Flags().StringSliceVar(&runFlavors, "flavor", nil, "flavor to append on first setup (repeatable): nextjs, react, python, go")
	rootCmd.Flags().BoolVar(&runYes, "yes", false, "do not prompt; use flags, then config defaults")
	rootCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "show what would change without writing files")
}

func runRoot(cmd *cobra.Command, args []string) error {
	root, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	reg := target.NewRegistry()
	sel, err := suppliedSelection(cmd, reg, cfg)
	if err != nil {
		return err
	}

	eng := &engine.RunEngine{
		Registry:    reg,
		Source:      cfg.ContentSource(root),
		Prompter:    prompt.New(cmd.InOrStdin(), stdout),
		ProjectRoot: root,
	}

	detail("project root: %s", root)
	if cfg.TemplateDir != "" {
		detail("template dir: %s", cfg.TemplateDir)
	} else {
		detail("template url: %s", cfg.TemplateURL)
	}

	result, err := eng.Run(cmd.Context(), engine.RunOptions{Selection: sel, DryRun: runDryRun})
	if result != nil {
		report(result)
	}
	return err
}

// suppliedSelection builds setup answers from flags and config defaults. It
// returns nil when the operator should be prompted instead.
func suppliedSelection(cmd *cobra.Command, reg *target.Registry, cfg *config.Config) (*engine.Selection, error) {
	flags := cmd.Flags()
	fromFlags := flags.Changed("tool") || flags.Changed("local") || flags.Changed("flavor")
	if !fromFlags && !nonInteractive(cmd.InOrStdin()) {
		return nil, nil
	}

	toolNames := runTools
	if len(toolNames) == 0 {
		toolNames = cfg.Defaults.Tools
	}
	flavorNames := runFlavors
	if !flags.Changed("flavor") {
		flavorNames = cfg.Defaults.Flavors
	}

	sel := &engine.Selection{Local: cfg.Defaults.Local}
	if flags.Changed("local") {
		sel.Local = runLocal
	}

	for _, name := range toolNames {
		tool, err := reg.Parse(name)
		if err != nil {
			return nil, err
		}
		sel.Tools = append(sel.Tools, tool)
	}
	if len(sel.Tools) == 0 {
		sel.Tools = []target.Tool{target.DefaultTool}
	}

	for _, name := range flavorNames {
		f, err := source.ParseFlavor(name)
		if err != nil {
			return nil, err
		}
		sel.Flavors = append(sel.Flavors, f)
	}
	return sel, nil
}

// nonInteractive reports whether prompting is off: --yes, the environment,
// or a stdin that is not a terminal.
func nonInteractive(in io.Reader) bool {
	if runYes || config.EnvNonInteractive() {
		return true
	}
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func report(result *engine.RunResult) {
	prefix := ""
	if result.DryRun {
		prefix = "would be "
	}

	switch result.Mode {
	case engine.ModeUpdate:
		tools := make([]string, len(result.Files))
		for i, f := range result.Files {
			tools[i] = string(f.Tool)
		}
		info("Existing configuration found, updating: %s", strings.Join(tools, ", "))
		if result.Local {
			detail("local mode is on because at least one managed file is local")
		}
	case engine.ModeSetup:
		mode := "shared"
		if result.Local {
			mode = "local"
		}
		info("Setting up %d assistant(s) in %s mode", len(result.Files), mode)
	}

	for _, f := range result.Files {
		switch f.Action {
		case engine.ActionUnchanged:
			info("  %s %s", dimStyle.paint("="), dimStyle.paint(f.Path+" (unchanged)"))
		default:
			info("  %s %s", okStyle.paint("✓"), fmt.Sprintf("%s %s%s", f.Path, prefix, f.Action))
		}
	}

	if len(result.Flavors) > 0 {
		names := make([]string, len(result.Flavors))
		for i, f := range result.Flavors {
			names[i] = f.Label()
		}
		info("Flavors: %s", strings.Join(names, ", "))
	}

	if result.IgnoreUpdated {
		info("  %s %s %supdated", okStyle.paint("✓"), ".gitignore", prefix)
	}

	if result.DryRun {
		info("\n%s", warnStyle.paint("Dry run — no files written."))
	}
}
