package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fyerfyer/treeset/internal/config"
	"github.com/fyerfyer/treeset/internal/logging"
	"github.com/fyerfyer/treeset/internal/setservice"
)

var (
	// 集合服务实例，所有命令共享
	setSvc setservice.Service

	// 当前生效的配置
	cfg *config.Config

	logger zerolog.Logger
	cliLog zerolog.Logger

	cfgFile  string
	logLevel string

	// 是否已经处于交互模式
	inInteractive bool

	// errStartupOnly 表示交互模式中使用了只在启动时生效的标志
	errStartupOnly = errors.New("--config and --log-level only apply when tscli starts")
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "tscli",
	Short: "A CLI tool for managing ordered sets",
	Long: `TreeSet CLI (tscli) is a command line interface for creating and managing
named ordered sets. Each set keeps its items sorted by the order chosen at creation
(natural, reverse, nocase or numeric) and stays balanced as items are added and removed.

Running tscli without a subcommand starts an interactive session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 配置和日志只在启动时初始化一次
		if inInteractive && (cmd.Flags().Changed("config") || cmd.Flags().Changed("log-level")) {
			return errStartupOnly
		}
		return setup()
	},
}

// Execute 运行根命令并处理任何错误
func Execute() {
	err := rootCmd.Execute()

	// 在程序结束时关闭集合服务
	if setSvc != nil {
		_ = setSvc.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// 交互模式会回到rootCmd分发命令，RunE不能写在rootCmd的初始化表达式里
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		// 交互模式中不再嵌套启动交互模式
		if inInteractive {
			return cmd.Help()
		}
		return runInteractiveMode(cmd)
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides the config file)")
}

// setup 读取配置并创建日志记录器和集合服务，只在第一次调用时生效
// 交互模式中再次传入--config或--log-level会被拒绝
func setup() error {
	if setSvc != nil {
		return nil
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	levelStr := cfg.LogLevel
	if logLevel != "" {
		levelStr = logLevel
	}
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	logger = logging.New(os.Stderr, level)
	setSvc = setservice.NewInMemoryService(logging.WithScope(logger, "setservice"))

	cliLog = logging.WithScope(logger, "tscli")
	cliLog.Debug().
		Str("config", cfgFile).
		Str("default_order", cfg.DefaultOrder).
		Msg("cli initialized")
	return nil
}

// GetSetService 返回集合服务实例，供子命令使用
func GetSetService() setservice.Service {
	return setSvc
}
