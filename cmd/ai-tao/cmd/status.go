package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bianoble/ai-tao/internal/engine"
	"github.com/bianoble/ai-tao/internal/target"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which assistant files carry a managed section",
	Long: `Lists every supported assistant file with its mode (shared or local) and
state: managed, empty (section present but blank), malformed (markers out of
order), unmanaged (file exists without a section) or missing.

The tools that a plain 'ai-tao' run would update are marked with '*'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		reg := target.NewRegistry()
		eng := &engine.StatusEngine{Registry: reg, ProjectRoot: root}
		statuses, err := eng.Status()
		if err != nil {
			return err
		}

		detections, err := engine.Detect(root, reg)
		if err != nil {
			return err
		}
		detected := make(map[string]bool, len(detections))
		for _, d := range detections {
			detected[d.Path] = true
		}

		table := tablewriter.NewWriter(stdout)
		table.SetHeader([]string{"", "Tool", "File", "Mode", "State"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, s := range statuses {
			mark := ""
			if detected[s.Path] {
				mark = "*"
			}
			mode := "shared"
			if s.IsLocal {
				mode = "local"
			}
			table.Append([]string{mark, string(s.Tool), s.Path, mode, s.State})
		}
		table.Render()

		if len(detections) == 0 {
			info("\nNo managed files found; the next run performs first-time setup.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
