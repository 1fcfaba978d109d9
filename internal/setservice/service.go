package setservice

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/fyerfyer/treeset/set"
)

var (
	// ErrSetNotFound 表示请求的集合不存在
	ErrSetNotFound = errors.New("set not found")

	// ErrSetExists 表示集合已存在
	ErrSetExists = errors.New("set already exists")

	// ErrEmptyName 表示集合名称为空
	ErrEmptyName = errors.New("set name must not be empty")

	// ErrUnknownOrder 表示不支持的排序方式
	ErrUnknownOrder = errors.New("unknown order")

	// ErrMalformedLine 表示脚本中存在无法识别的行
	ErrMalformedLine = errors.New("malformed script line")
)

// SetOptions 表示创建集合时的选项
type SetOptions struct {
	// 排序方式，为空时使用natural
	Order Order
}

// Stats 表示集合的统计信息
type Stats struct {
	// 创建时间
	CreatedAt time.Time
	// 排序方式
	Order Order
	// 当前元素数量
	Size int
	// 当前树高
	Height int
	// 成功添加次数
	Added uint64
	// 成功删除次数
	Removed uint64
	// 被拒绝的操作次数（重复添加或删除不存在的元素）
	Rejected uint64
	// 清空次数
	Cleared uint64
}

// SetInfo 包含集合的基本信息
type SetInfo struct {
	// 集合标识
	ID uuid.UUID
	// 集合名称
	Name string
	// 集合状态
	Stats Stats
}

// ScriptResult 表示执行命令脚本的结果
type ScriptResult struct {
	// 已执行的命令行数，不含空行和注释
	Lines int
	// 成功添加的元素数量
	Added int
	// 成功删除的元素数量
	Removed int
	// 重复添加或删除不存在元素的次数
	Rejected int
	// 成员查询次数
	Probes int
	// 成员查询命中次数
	Hits int
}

// Service 定义集合服务接口
// 服务内部加锁，对单个集合的操作互斥执行
type Service interface {
	// CreateSet 创建一个新集合
	CreateSet(name string, opts SetOptions) error

	// GetSet 获取指定集合的副本
	GetSet(name string) (set.OrderedSet[string], error)

	// ListSets 按名称顺序列出所有集合
	ListSets() []SetInfo

	// AddItems 向集合添加元素，返回成功添加的数量
	AddItems(name string, items ...string) (int, error)

	// RemoveItems 从集合删除元素，返回成功删除的数量
	RemoveItems(name string, items ...string) (int, error)

	// Contains 检查集合是否包含元素
	Contains(name string, item string) (bool, error)

	// First 返回集合的最小元素
	First(name string) (string, error)

	// Last 返回集合的最大元素
	Last(name string) (string, error)

	// Items 按顺序返回集合中的所有元素，reverse为true时从大到小
	Items(name string, reverse bool) ([]string, error)

	// IsDisjoint 检查集合b中是否没有任何元素存在于集合a
	IsDisjoint(a, b string) (bool, error)

	// ClearSet 清空集合
	ClearSet(name string) error

	// DeleteSet 删除集合
	DeleteSet(name string) error

	// SetStats 获取集合统计信息
	SetStats(name string) (Stats, error)

	// Snapshot 获取集合的树结构快照，空集合返回nil
	Snapshot(name string) (*set.TreeNode[string], error)

	// ExportSet 导出集合的可序列化数据
	ExportSet(name string) (SetData, error)

	// LoadScript 从r逐行读取命令并作用于集合
	LoadScript(name string, r io.Reader) (ScriptResult, error)

	// Close 删除所有集合
	Close() error
}
