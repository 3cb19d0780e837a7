package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default .ai-tao.yaml scaffold.
const initTemplate = `# ai-tao configuration
version: 1

# Where the base template and flavors are fetched from.
# template_url: https://raw.githubusercontent.com/ai-tao/ai-tao/main/templates/base.md
# flavor_url: https://raw.githubusercontent.com/ai-tao/ai-tao/main/templates/flavors/{flavor}.md

# Or read them from a local directory (base.md, flavors/<name>.md).
# template_dir: ./ai-templates

# Answers used for first-time setup with --yes or without a terminal.
# defaults:
#   tools: [claude, cursor]     # claude, cursor, windsurf, copilot
#   local: false
#   flavors: [react]            # nextjs, react, python, go
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter .ai-tao.yaml configuration",
	Long: `Creates a .ai-tao.yaml file in the project directory with the available
settings documented and commented out. Without a config file ai-tao uses its
built-in template location.

Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}
		outPath := resolvedConfigPath(root)

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the file to point at your templates")
		info("  2. Run 'ai-tao' to set up your assistants")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
