package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// addCmd 表示add命令，用于向集合添加元素
var addCmd = &cobra.Command{
	Use:   "add [set-name] [item...]",
	Short: "Add items to a set",
	Long: `Add one or more items to a set. Items already present are ignored.
Items can be given as arguments or as a comma separated list with --items.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		items := collectItems(cmd, args[1:])
		if len(items) == 0 {
			return fmt.Errorf("no items given")
		}

		added, err := GetSetService().AddItems(name, items...)
		if err != nil {
			return fmt.Errorf("failed to add items: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d item(s) to set '%s'\n", added, len(items), name)
		return nil
	},
}

// collectItems 合并位置参数与--items中的元素
func collectItems(cmd *cobra.Command, args []string) []string {
	items := append([]string(nil), args...)
	if list, _ := cmd.Flags().GetString("items"); list != "" {
		items = append(items, setservice.ParseItems(list)...)
	}
	return items
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("items", "i", "", "Comma separated items to add")
}
