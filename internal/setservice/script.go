package setservice

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// LoadScript 从r逐行读取命令并作用于集合
//
// 每行一个命令：
//
//	+item  添加元素
//	-item  删除元素
//	?item  查询元素是否存在
//
// 空行和以#开头的行被忽略，行首尾空白会被去掉。
// 遇到无法识别的行时停止执行并返回ErrMalformedLine，之前的修改保留。
// 整个脚本在同一把锁内执行，其他调用者看不到中间状态。
func (s *InMemoryService) LoadScript(name string, r io.Reader) (ScriptResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result ScriptResult

	e, err := s.entry(name)
	if err != nil {
		return result, err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if len(line) < 2 {
			return result, s.malformed(name, lineNo, line)
		}
		item := line[1:]

		switch line[0] {
		case '+':
			if e.add(item) {
				result.Added++
			} else {
				result.Rejected++
			}
		case '-':
			if e.remove(item) {
				result.Removed++
			} else {
				result.Rejected++
			}
		case '?':
			result.Probes++
			if e.s.Contains(item) {
				result.Hits++
			}
		default:
			return result, s.malformed(name, lineNo, line)
		}
		result.Lines++
	}

	if err := scanner.Err(); err != nil {
		return result, errors.Wrapf(err, "read script for %q", name)
	}

	s.logger.Info().
		Str("set", name).
		Int("lines", result.Lines).
		Int("added", result.Added).
		Int("removed", result.Removed).
		Msg("script loaded")
	return result, nil
}

func (s *InMemoryService) malformed(name string, lineNo int, line string) error {
	s.logger.Warn().Str("set", name).Int("line", lineNo).Str("text", line).Msg("malformed script line")
	return errors.Wrapf(ErrMalformedLine, "line %d: %q", lineNo, line)
}
