package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// statsCmd 表示stats命令，用于显示集合的统计信息
var statsCmd = &cobra.Command{
	Use:   "stats [set-name]",
	Short: "Display set statistics",
	Long: `Display detailed statistics for a specified set.
This includes size, tree height, order and operation counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		stats, err := GetSetService().SetStats(name)
		if err != nil {
			return fmt.Errorf("failed to get set statistics: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Statistics for set '%s':\n\n", name)
		fmt.Fprint(cmd.OutOrStdout(), setservice.FormatSetStats(stats))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
