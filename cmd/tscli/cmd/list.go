package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// listCmd 表示list命令，用于列出所有集合
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all sets",
	Long:    `Display a list of all sets and their basic information, ordered by name.`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		sets := GetSetService().ListSets()

		if len(sets) == 0 {
			fmt.Fprintln(out, "No sets available.")
			return nil
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			// 详细模式：显示每个集合的完整信息
			fmt.Fprintf(out, "Found %d set(s):\n\n", len(sets))
			for i, info := range sets {
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprint(out, setservice.FormatSetInfo(info))
			}
			return nil
		}

		// 表格模式
		data := pterm.TableData{{"NAME", "ORDER", "SIZE", "HEIGHT", "OPERATIONS"}}
		for _, info := range sets {
			data = append(data, []string{
				info.Name,
				string(info.Stats.Order),
				strconv.Itoa(info.Stats.Size),
				strconv.Itoa(info.Stats.Height),
				fmt.Sprintf("%d add, %d rm", info.Stats.Added, info.Stats.Removed),
			})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprintln(out, table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("verbose", "v", false, "Show detailed information for each set")
}
