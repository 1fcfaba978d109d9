package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/treeset/internal/config"
	"github.com/fyerfyer/treeset/internal/setservice"
	"github.com/fyerfyer/treeset/set"
)

func TestMain(m *testing.M) {
	// 输出中不带颜色控制符，便于比较
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// resetState 每个测试使用新的服务和默认配置
func resetState(t *testing.T) {
	t.Helper()
	setSvc = setservice.NewInMemoryService(zerolog.Nop())
	cfg = config.Default()
	t.Cleanup(func() { _ = setSvc.Close() })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SilenceErrors = true

	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err, "tscli %s", strings.Join(args, " "))
	return out
}

func TestCLI_CreateAddShow(t *testing.T) {
	resetState(t)

	out := mustRun(t, "create", "words", "-o", "nocase")
	assert.Contains(t, out, "Order: nocase")

	out = mustRun(t, "add", "words", "Lima", "mike", "alfa", "Zulu", "ALFA")
	assert.Contains(t, out, "Added 4 of 5")

	assert.Equal(t, "alfa\nLima\nmike\nZulu\n", mustRun(t, "show", "words"))
	assert.Equal(t, "Zulu\nmike\nLima\nalfa\n", mustRun(t, "show", "words", "-r"))

	// 上一条命令的--reverse不能影响下一条命令
	assert.Equal(t, "alfa\nLima\nmike\nZulu\n", mustRun(t, "show", "words"))

	assert.Equal(t, "alfa\n", mustRun(t, "first", "words"))
	assert.Equal(t, "Zulu\n", mustRun(t, "last", "words"))
	assert.Equal(t, "true\n", mustRun(t, "contains", "words", "MIKE"))
}

func TestCLI_DefaultOrderFromConfig(t *testing.T) {
	resetState(t)
	cfg.DefaultOrder = "numeric"

	mustRun(t, "create", "nums")
	mustRun(t, "add", "nums", "10", "9", "100", "--items", "1.5, 2")

	assert.Equal(t, "1.5\n2\n9\n10\n100\n", mustRun(t, "show", "nums"))
}

func TestCLI_Errors(t *testing.T) {
	resetState(t)

	_, err := run(t, "show", "missing")
	assert.True(t, errors.Is(err, setservice.ErrSetNotFound), "got %v", err)

	_, err = run(t, "create", "s", "-o", "sideways")
	assert.True(t, errors.Is(err, setservice.ErrUnknownOrder), "got %v", err)

	mustRun(t, "create", "s")
	_, err = run(t, "create", "s")
	assert.True(t, errors.Is(err, setservice.ErrSetExists), "got %v", err)

	_, err = run(t, "first", "s")
	assert.True(t, errors.Is(err, set.ErrEmptyCollection), "got %v", err)

	_, err = run(t, "add", "s")
	assert.Error(t, err)
}

func TestCLI_RemoveClearDelete(t *testing.T) {
	resetState(t)

	mustRun(t, "create", "s")
	mustRun(t, "add", "s", "a", "b", "c")

	out := mustRun(t, "remove", "s", "b", "zz")
	assert.Contains(t, out, "Removed 1 of 2")
	assert.Equal(t, "a\nc\n", mustRun(t, "show", "s"))

	mustRun(t, "clear", "s")
	assert.Contains(t, mustRun(t, "show", "s"), "is empty")

	mustRun(t, "delete", "s")
	assert.Contains(t, mustRun(t, "list"), "No sets available.")
}

func TestCLI_TreeAndList(t *testing.T) {
	resetState(t)

	mustRun(t, "create", "s")
	mustRun(t, "add", "s", "1", "2", "3")

	out := mustRun(t, "tree", "s")
	assert.Contains(t, out, "2 (h=1)")
	assert.Contains(t, out, "L: 1 (h=0)")
	assert.Contains(t, out, "R: 3 (h=0)")

	mustRun(t, "create", "other", "-o", "reverse")
	out = mustRun(t, "list")
	assert.Contains(t, out, "other")
	assert.Contains(t, out, "reverse")
	assert.Less(t, strings.Index(out, "other"), strings.Index(out, "natural"))

	out = mustRun(t, "list", "-v")
	assert.Contains(t, out, "Set: s")
	assert.Contains(t, out, "Size: 3 (height 1)")
}

func TestCLI_ShowJSON(t *testing.T) {
	resetState(t)

	mustRun(t, "create", "s")
	mustRun(t, "add", "s", "b", "a")

	out := mustRun(t, "show", "s", "--json")
	data, err := setservice.DeserializeSetData([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "s", data.Name)
	assert.Equal(t, []string{"a", "b"}, data.Items)
}

func TestCLI_Disjoint(t *testing.T) {
	resetState(t)

	mustRun(t, "create", "a")
	mustRun(t, "create", "b")
	mustRun(t, "add", "a", "1", "2")
	mustRun(t, "add", "b", "3")
	assert.Equal(t, "true\n", mustRun(t, "disjoint", "a", "b"))

	mustRun(t, "add", "b", "2")
	assert.Equal(t, "false\n", mustRun(t, "disjoint", "a", "b"))
}

func TestCLI_Load(t *testing.T) {
	resetState(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# fruit\n+pear\n+apple\n-pear\n?apple\n"), 0644))

	_, err := run(t, "load", "fruit", "-f", path)
	assert.True(t, errors.Is(err, setservice.ErrSetNotFound), "got %v", err)

	out := mustRun(t, "load", "fruit", "-f", path, "--create")
	assert.Contains(t, out, "4 line(s)")
	assert.Contains(t, out, "Lookups: 1 of 1 found")
	assert.Equal(t, "apple\n", mustRun(t, "show", "fruit"))

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("+kiwi\nkiwi\n"), 0644))
	_, err = run(t, "load", "fruit", "-f", bad)
	assert.True(t, errors.Is(err, setservice.ErrMalformedLine), "got %v", err)
}

func TestCLI_InteractiveSession(t *testing.T) {
	resetState(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("create s\nadd s b a\nshow s -r\nshow s\nshow missing\n\"unterminated\nexit\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	require.NoError(t, runInteractiveMode(rootCmd))

	got := out.String()
	assert.Contains(t, got, "TreeSet CLI Interactive Mode")
	assert.Contains(t, got, "> b\na\n> a\nb\n")
	assert.Contains(t, got, "Error: failed to list items")
	assert.Contains(t, got, "Error parsing command")
	assert.Contains(t, got, "Exiting...")
	assert.False(t, inInteractive)
}

func TestCLI_ConfigShowAndInit(t *testing.T) {
	resetState(t)
	cfg.DefaultOrder = "nocase"
	cfg.Prompt = "tscli> "

	out := mustRun(t, "config", "show")
	assert.Contains(t, out, "default_order: nocase")
	assert.Contains(t, out, "log_level: warn")
	assert.Contains(t, out, `prompt: "tscli> "`)

	path := filepath.Join(t.TempDir(), "tscli.yaml")
	out = mustRun(t, "config", "init", "--config", path)
	assert.Contains(t, out, "Config written to "+path)

	written, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), written)

	// --config只影响init写入的位置，不会替换已加载的配置
	assert.Equal(t, "nocase", cfg.DefaultOrder)
}

func TestCLI_StartupFlagsRejectedInInteractiveMode(t *testing.T) {
	resetState(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader("list --log-level debug\nlist --config other.yaml\nlist\nexit\n"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	require.NoError(t, runInteractiveMode(rootCmd))

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Error: "+errStartupOnly.Error()))
	assert.Contains(t, got, "No sets available.")

	// 启动时传入这些标志不受影响
	_, err := run(t, "list", "--log-level", "debug")
	assert.NoError(t, err)
}
