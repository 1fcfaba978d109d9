package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/config"
)

// configCmd 表示config命令，用于查看和初始化配置文件
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "default_order: %s\n", cfg.DefaultOrder)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "prompt: %q\n", cfg.Prompt)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("failed to locate home directory: %w", err)
			}
			path = p
		}

		if err := config.Save(path, config.Default()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
