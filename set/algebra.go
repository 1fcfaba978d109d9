package set

// TreeNode 是树结构的只读快照，用于展示和调试
type TreeNode[T any] struct {
	Key    T
	Height int
	Left   *TreeNode[T]
	Right  *TreeNode[T]
}

// Snapshot 复制当前的树结构，空集合返回nil
// 返回值与集合不共享任何节点
func (s *TreeSet[T]) Snapshot() *TreeNode[T] {
	return snapshotNode(s.root)
}

func snapshotNode[T any](n *node[T]) *TreeNode[T] {
	if n == nil {
		return nil
	}
	return &TreeNode[T]{
		Key:    n.key,
		Height: n.height,
		Left:   snapshotNode(n.left),
		Right:  snapshotNode(n.right),
	}
}

// Clone 克隆集合，保留原有的树形状和比较器
func (s *TreeSet[T]) Clone() *TreeSet[T] {
	return &TreeSet[T]{
		root: cloneNode(s.root, nil),
		size: s.size,
		cmp:  s.cmp,
	}
}

// 递归深度等于树高
func cloneNode[T any](n, parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{key: n.key, parent: parent, height: n.height}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)
	return c
}

// Union 返回与另一个集合的并集，结果使用当前集合的比较器
func (s *TreeSet[T]) Union(other *TreeSet[T]) *TreeSet[T] {
	result := s.Clone()
	for item := range other.All() {
		result.Add(item)
	}
	return result
}

// Intersection 返回与另一个集合的交集
func (s *TreeSet[T]) Intersection(other *TreeSet[T]) *TreeSet[T] {
	result := NewTreeWithComparator(s.cmp)
	for item := range s.All() {
		if other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// Difference 返回与另一个集合的差集 (s - other)
func (s *TreeSet[T]) Difference(other *TreeSet[T]) *TreeSet[T] {
	result := NewTreeWithComparator(s.cmp)
	for item := range s.All() {
		if !other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

// IsSubset 检查当前集合是否是另一个集合的子集
func (s *TreeSet[T]) IsSubset(other *TreeSet[T]) bool {
	if s.Size() > other.Size() {
		return false
	}
	for item := range s.All() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IsSuperset 检查当前集合是否是另一个集合的超集
func (s *TreeSet[T]) IsSuperset(other *TreeSet[T]) bool {
	return other.IsSubset(s)
}
