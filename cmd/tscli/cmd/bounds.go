package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// firstCmd 表示first命令，输出集合中最小的元素
var firstCmd = &cobra.Command{
	Use:   "first [set-name]",
	Short: "Print the smallest item of a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := GetSetService().First(args[0])
		if err != nil {
			return fmt.Errorf("failed to get first item: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), item)
		return nil
	},
}

// lastCmd 表示last命令，输出集合中最大的元素
var lastCmd = &cobra.Command{
	Use:   "last [set-name]",
	Short: "Print the largest item of a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := GetSetService().Last(args[0])
		if err != nil {
			return fmt.Errorf("failed to get last item: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), item)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(lastCmd)
}
