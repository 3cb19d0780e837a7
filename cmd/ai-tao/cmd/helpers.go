package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/bianoble/ai-tao/internal/config"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// style wraps a lipgloss style so it can be switched off by --no-color.
type style struct {
	lipgloss.Style
}

var (
	okStyle   = style{lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)}
	warnStyle = style{lipgloss.NewStyle().Foreground(lipgloss.Color("3"))}
	errStyle  = style{lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)}
	dimStyle  = style{lipgloss.NewStyle().Faint(true)}
)

func (s style) paint(text string) string {
	if noColor || config.EnvNoColor() {
		return text
	}
	return s.Render(text)
}

// projectRoot returns the absolute project directory.
func projectRoot() (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}

// resolvedConfigPath returns --config, or the default file in root.
func resolvedConfigPath(root string) string {
	if configPath != "" {
		return configPath
	}
	return config.PathIn(root)
}

// loadConfig reads the config file, falling back to built-in defaults.
func loadConfig(root string) (*config.Config, error) {
	path := resolvedConfigPath(root)
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Fprintf(stdout, "  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(stderr, errStyle.paint("error:")+" "+format+"\n", args...)
}
