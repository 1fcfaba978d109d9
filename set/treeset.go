package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// TreeSet 基于AVL树的有序集合
//
// 特性:
//   - 元素按比较器顺序存储，比较结果为0的两个元素视为同一元素
//   - Add/Remove/Contains 时间复杂度 O(log n)
//   - Height 时间复杂度 O(1)，高度在每个节点上增量维护
//   - 每次修改返回前，所有节点左右子树高度差不超过1
//
// TreeSet 不是并发安全的，并发修改需要调用方自行加锁。
// 遍历过程中修改集合，遍历结果未定义。
//
// 示例:
//
//	s := set.NewTree(5, 7, 11)
//	s.Add(7)        // false
//	s.Remove(7)     // true
//	first, _ := s.First() // 5
type TreeSet[T any] struct {
	root *node[T]
	size int
	cmp  Comparator[T]
}

// NewTree 创建一个新的TreeSet，使用自然顺序
func NewTree[T cmp.Ordered](items ...T) *TreeSet[T] {
	return NewTreeWithComparator(NaturalOrder[T](), items...)
}

// NewTreeWithComparator 创建一个新的TreeSet，使用自定义比较函数
// 比较函数在集合的整个生命周期内必须保持一致
func NewTreeWithComparator[T any](c Comparator[T], items ...T) *TreeSet[T] {
	if c == nil {
		panic("set: nil comparator")
	}
	s := &TreeSet[T]{cmp: c}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Comparator 返回集合使用的比较函数
func (s *TreeSet[T]) Comparator() Comparator[T] {
	return s.cmp
}

// Add 添加元素，元素已存在时返回false且不做任何修改
func (s *TreeSet[T]) Add(item T) bool {
	if s.root == nil {
		s.root = newNode(item, nil)
		s.size = 1
		return true
	}

	n := s.root
	for {
		c := s.cmp(item, n.key)
		if c == 0 {
			return false
		}
		next := &n.right
		if c < 0 {
			next = &n.left
		}
		if *next == nil {
			*next = newNode(item, n)
			s.size++
			s.rebalance(n)
			return true
		}
		n = *next
	}
}

// Remove 删除元素，元素不存在时返回false
func (s *TreeSet[T]) Remove(item T) bool {
	n := s.lookup(item)
	if n == nil {
		return false
	}

	// 有两个子节点时用中序后继的值覆盖，转而删除后继节点
	// 后继节点最多只有一个右子节点
	if n.left != nil && n.right != nil {
		succ := n.right.minNode()
		n.key = succ.key
		n = succ
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	s.replace(n, child)
	n.parent, n.left, n.right = nil, nil, nil
	s.size--

	s.rebalance(parent)
	return true
}

// Contains 检查元素是否在集合中
func (s *TreeSet[T]) Contains(item T) bool {
	return s.lookup(item) != nil
}

func (s *TreeSet[T]) lookup(item T) *node[T] {
	n := s.root
	for n != nil {
		c := s.cmp(item, n.key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// First 返回最小元素
func (s *TreeSet[T]) First() (T, error) {
	if s.root == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s.root.minNode().key, nil
}

// Last 返回最大元素
func (s *TreeSet[T]) Last() (T, error) {
	if s.root == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s.root.maxNode().key, nil
}

// Height 返回树的高度，空集合为-1，只有一个元素时为0
func (s *TreeSet[T]) Height() int {
	return heightOf(s.root)
}

// Size 返回集合中的元素数量
func (s *TreeSet[T]) Size() int {
	return s.size
}

// IsEmpty 检查集合是否为空
func (s *TreeSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Clear 清空集合
func (s *TreeSet[T]) Clear() {
	s.root = nil
	s.size = 0
}

// All 按从小到大的顺序遍历集合
// 每次调用返回的序列都从当前状态重新开始
func (s *TreeSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root == nil {
			return
		}
		for n := s.root.minNode(); n != nil; n = n.next() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Backward 按从大到小的顺序遍历集合
func (s *TreeSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root == nil {
			return
		}
		for n := s.root.maxNode(); n != nil; n = n.prev() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// ForEach 按排序顺序遍历集合中的所有元素
func (s *TreeSet[T]) ForEach(f func(T) bool) {
	for item := range s.All() {
		if !f(item) {
			break
		}
	}
}

// ToSlice 将集合转换为有序切片
func (s *TreeSet[T]) ToSlice() []T {
	result := make([]T, 0, s.size)
	for item := range s.All() {
		result = append(result, item)
	}
	return result
}

// IsDisjoint 检查other中是否没有任何元素存在于当前集合
// 任一集合为空时返回true。两个集合的比较器需要相互兼容，这里不做校验
func (s *TreeSet[T]) IsDisjoint(other *TreeSet[T]) bool {
	if s.IsEmpty() || other == nil || other.IsEmpty() {
		return true
	}
	for item := range other.All() {
		if s.Contains(item) {
			return false
		}
	}
	return true
}

// AddAll 批量添加元素，返回成功添加的元素数量
func (s *TreeSet[T]) AddAll(items ...T) int {
	added := 0
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}

// RemoveAll 批量删除元素，返回成功删除的元素数量
func (s *TreeSet[T]) RemoveAll(items ...T) int {
	removed := 0
	for _, item := range items {
		if s.Remove(item) {
			removed++
		}
	}
	return removed
}

// ContainsAll 检查集合是否包含所有指定元素
func (s *TreeSet[T]) ContainsAll(items ...T) bool {
	for _, item := range items {
		if !s.Contains(item) {
			return false
		}
	}
	return true
}

// String 返回形如 TreeSet([1,2,3]) 的字符串
func (s *TreeSet[T]) String() string {
	parts := make([]string, 0, s.size)
	for item := range s.All() {
		parts = append(parts, fmt.Sprint(item))
	}
	return fmt.Sprintf("TreeSet([%s])", strings.Join(parts, ","))
}
