package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// createCmd 表示create命令，用于创建新集合
var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new set",
	Long: `Create a new named set with the given order.
Supported orders: natural (n), reverse (r), nocase (i) and numeric (num).
When --order is omitted the default_order from the config file is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		orderStr, _ := cmd.Flags().GetString("order")
		if orderStr == "" && cfg != nil {
			orderStr = cfg.DefaultOrder
		}

		order, err := setservice.ParseOrder(orderStr)
		if err != nil {
			return fmt.Errorf("invalid order: %w", err)
		}

		service := GetSetService()
		if err := service.CreateSet(name, setservice.SetOptions{Order: order}); err != nil {
			return fmt.Errorf("failed to create set: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set '%s' created successfully.\n", name)
		fmt.Fprintf(cmd.OutOrStdout(), "Order: %s\n", order)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("order", "o", "", "Set order: natural, reverse, nocase or numeric")
}
