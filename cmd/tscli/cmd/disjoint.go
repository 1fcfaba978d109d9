package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// disjointCmd 表示disjoint命令，检查两个集合是否没有公共元素
var disjointCmd = &cobra.Command{
	Use:   "disjoint [set-a] [set-b]",
	Short: "Check whether two sets share no items",
	Long: `Check whether no item of the second set is contained in the first.
Items are compared with the order of the first set.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		disjoint, err := GetSetService().IsDisjoint(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to compare sets: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), disjoint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disjointCmd)
}
