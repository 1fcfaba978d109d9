package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName 结构化日志中表示组件名的字段
const scopeFieldName = "scope"

// New 创建一个输出到w的控制台日志记录器
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		FormatPrepare: func(m map[string]any) error {
			// 组件名显示为 [scope]
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[app]"
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope 为组件创建带有组件名的子日志记录器
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
