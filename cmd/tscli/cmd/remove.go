package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// removeCmd 表示remove命令，用于从集合删除元素
var removeCmd = &cobra.Command{
	Use:     "remove [set-name] [item...]",
	Short:   "Remove items from a set",
	Long:    `Remove one or more items from a set. Items that are not present are ignored.`,
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		items := collectItems(cmd, args[1:])
		if len(items) == 0 {
			return fmt.Errorf("no items given")
		}

		removed, err := GetSetService().RemoveItems(name, items...)
		if err != nil {
			return fmt.Errorf("failed to remove items: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d of %d item(s) from set '%s'\n", removed, len(items), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().StringP("items", "i", "", "Comma separated items to remove")
}
