package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// containsCmd 表示contains命令，用于检查集合是否包含元素
var containsCmd = &cobra.Command{
	Use:   "contains [set-name] [item]",
	Short: "Check whether a set contains an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := GetSetService().Contains(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to check item: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
}
