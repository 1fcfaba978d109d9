package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/setservice"
)

// loadCmd 表示load命令，从脚本文件批量修改集合
var loadCmd = &cobra.Command{
	Use:   "load [set-name]",
	Short: "Apply a script file to a set",
	Long: `Read a script file and apply it to a set, one command per line:

  +item   add item
  -item   remove item
  ?item   check whether item is present

Blank lines and lines starting with '#' are ignored. Loading stops at the
first line that does not match, keeping the changes made before it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			return fmt.Errorf("must specify --file flag")
		}

		service := GetSetService()

		create, _ := cmd.Flags().GetBool("create")
		if create {
			if err := createIfMissing(service, name); err != nil {
				return err
			}
		}

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		result, err := service.LoadScript(name, file)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d line(s) into set '%s': %d added, %d removed, %d ignored\n",
			result.Lines, name, result.Added, result.Removed, result.Rejected)
		if result.Probes > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Lookups: %d of %d found\n", result.Hits, result.Probes)
		}
		return nil
	},
}

// createIfMissing 集合不存在时使用默认排序方式创建
func createIfMissing(service setservice.Service, name string) error {
	var order setservice.Order
	if cfg != nil {
		parsed, err := setservice.ParseOrder(cfg.DefaultOrder)
		if err != nil {
			return fmt.Errorf("invalid default order: %w", err)
		}
		order = parsed
	}

	err := service.CreateSet(name, setservice.SetOptions{Order: order})
	if err != nil && !errors.Is(err, setservice.ErrSetExists) {
		return fmt.Errorf("failed to create set: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringP("file", "f", "", "Script file to apply")
	loadCmd.Flags().BoolP("create", "c", false, "Create the set if it does not exist")
}
