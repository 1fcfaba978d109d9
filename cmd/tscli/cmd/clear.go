package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd 表示clear命令，用于清空集合
var clearCmd = &cobra.Command{
	Use:   "clear [set-name]",
	Short: "Remove all items from a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetSetService().ClearSet(args[0]); err != nil {
			return fmt.Errorf("failed to clear set: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set '%s' cleared.\n", args[0])
		return nil
	},
}

// deleteCmd 表示delete命令，用于删除集合
var deleteCmd = &cobra.Command{
	Use:     "delete [set-name]",
	Short:   "Delete a set",
	Aliases: []string{"drop"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := GetSetService().DeleteSet(args[0]); err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set '%s' deleted.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(deleteCmd)
}
