// Package set 提供基于比较器排序的集合实现
package set

import "iter"

// Set 定义集合的基本操作
// 元素的相等性由集合自身的比较规则决定，而不是Go的==运算
type Set[T any] interface {
	// 基本操作
	Add(item T) bool      // 添加元素，如果元素已存在返回false，否则返回true
	Remove(item T) bool   // 删除元素，如果元素不存在返回false，否则返回true
	Contains(item T) bool // 检查元素是否存在
	Size() int            // 返回集合大小
	Clear()               // 清空集合
	IsEmpty() bool        // 检查集合是否为空
	ToSlice() []T         // 将集合转换为切片

	// 批量操作
	AddAll(items ...T) int       // 批量添加元素，返回成功添加的元素数量
	RemoveAll(items ...T) int    // 批量删除元素，返回成功删除的元素数量
	ContainsAll(items ...T) bool // 检查是否包含所有指定元素

	// 迭代
	ForEach(f func(T) bool) // 遍历集合，返回false可停止遍历
}

// OrderedSet 在Set的基础上按比较器顺序提供首尾元素和有序遍历
type OrderedSet[T any] interface {
	Set[T]

	First() (T, error)     // 返回最小元素，集合为空时返回ErrEmptyCollection
	Last() (T, error)      // 返回最大元素，集合为空时返回ErrEmptyCollection
	Height() int           // 返回树高，空集合为-1
	All() iter.Seq[T]      // 从小到大遍历
	Backward() iter.Seq[T] // 从大到小遍历
}

var (
	_ OrderedSet[int]    = (*TreeSet[int])(nil)
	_ OrderedSet[string] = (*TreeSet[string])(nil)
)
