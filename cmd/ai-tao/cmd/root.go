package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	projectDir string
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "ai-tao",
	Short: "Keep AI assistant instruction files in sync with a shared template",
	Long: `ai-tao writes a shared template into the instruction files of your AI coding
assistants (CLAUDE.md, .cursorrules, .windsurfrules, .github/copilot-instructions.md).

The template lives in a managed section between marker comments:

  <!-- AI-TAO:START -->
  ...
  <!-- AI-TAO:END -->

Anything outside the markers is yours and is never touched. On the first run
ai-tao asks which assistants you use, whether to keep the files local
(listed in .gitignore) and which framework flavors to add. Later runs find
the managed files and refresh them in place.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "ai-tao %s\n", version)
		fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		fmt.Fprintf(stdout, "  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectDir, "dir", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default <dir>/.ai-tao.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "minimal output (errors only)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		errorf("%s", err)
		return err
	}
	return nil
}
