package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-shellwords"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// interactiveCmd 表示交互式命令，用于启动一个REPL
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start an interactive session",
	Long: `Start an interactive session with the set CLI.
Commands can be entered directly at the prompt.
Items starting with '-' must follow '--', e.g. "add nums -- -5".
--config and --log-level only take effect when tscli starts.
Type 'exit' or 'quit' to exit, or press Ctrl+C.`,
	Aliases: []string{"i", "shell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if inInteractive {
			return fmt.Errorf("already in interactive mode")
		}
		return runInteractiveMode(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func printBanner(w io.Writer) error {
	examples, err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "create words -o nocase"},
		{Level: 0, Text: "add words Lima mike alfa"},
		{Level: 0, Text: "show words"},
		{Level: 0, Text: "tree words"},
	}).Srender()
	if err != nil {
		return fmt.Errorf("failed to render banner: %w", err)
	}

	fmt.Fprint(w, pterm.DefaultBasicText.Sprintln("TreeSet CLI Interactive Mode"))
	fmt.Fprint(w, examples)
	fmt.Fprint(w, pterm.DefaultBasicText.Sprintln("Type 'help' for available commands or 'exit' to quit"))
	return nil
}

func runInteractiveMode(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if err := printBanner(out); err != nil {
		return err
	}

	inInteractive = true
	defer func() { inInteractive = false }()

	// 设置信号处理，捕获Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// 创建一个channel，用于通知主循环何时退出
	doneChan := make(chan struct{})
	stopChan := make(chan struct{})
	defer close(stopChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nReceived interrupt signal, exiting...")
			close(doneChan)
		case <-stopChan:
		}
	}()

	prompt := "> "
	if cfg != nil && cfg.Prompt != "" {
		prompt = cfg.Prompt
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		select {
		case <-doneChan:
			return nil
		default:
		}

		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Fprintln(out, "Exiting...")
			return nil
		}

		executeCommand(input)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	return nil
}

func executeCommand(input string) {
	// 使用shellwords解析命令行参数
	parser := shellwords.NewParser()
	args, err := parser.Parse(input)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error parsing command: %v\n", err)
		return
	}

	if len(args) == 0 {
		return
	}

	// 上一条命令设置的标志值会保留在命令上，执行前恢复默认值
	resetFlags(rootCmd)

	rootCmd.SetArgs(args)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
}

// resetFlags 将命令树上所有标志恢复为默认值
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
