package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// showCmd 表示show命令，按顺序输出集合的所有元素
var showCmd = &cobra.Command{
	Use:   "show [set-name]",
	Short: "Print the items of a set in order",
	Long: `Print every item of a set, one per line, in the order of the set.
Use --reverse to print from largest to smallest, or --json to export
the set together with its metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		service := GetSetService()
		out := cmd.OutOrStdout()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := service.ExportSet(name)
			if err != nil {
				return fmt.Errorf("failed to export set: %w", err)
			}
			raw, err := setservice.SerializeSetData(data)
			if err != nil {
				return fmt.Errorf("failed to encode set: %w", err)
			}
			fmt.Fprintln(out, string(raw))
			return nil
		}

		reverse, _ := cmd.Flags().GetBool("reverse")
		items, err := service.Items(name, reverse)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if len(items) == 0 {
			fmt.Fprintf(out, "Set '%s' is empty.\n", name)
			return nil
		}
		for _, item := range items {
			fmt.Fprintln(out, item)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("reverse", "r", false, "Print items from largest to smallest")
	showCmd.Flags().Bool("json", false, "Print the set as JSON")
}
