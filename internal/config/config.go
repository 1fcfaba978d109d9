package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName 配置文件在用户主目录下的默认文件名
const DefaultFileName = ".tscli.yaml"

// Config 表示CLI的配置
type Config struct {
	// 新建集合时默认使用的排序方式
	DefaultOrder string `yaml:"default_order"`
	// 日志级别
	LogLevel string `yaml:"log_level"`
	// 交互模式的提示符
	Prompt string `yaml:"prompt"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		DefaultOrder: "natural",
		LogLevel:     "warn",
		Prompt:       "> ",
	}
}

// DefaultPath 返回默认配置文件路径
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, DefaultFileName), nil
}

// Load 读取配置文件
// path为空时使用默认路径，文件不存在时返回默认配置
// 文件中未设置的字段保留默认值
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save 将配置写入文件
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
