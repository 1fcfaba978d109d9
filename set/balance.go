package set

// node 是AVL树中的节点
// left和right由当前节点独占，parent只用于向上回溯，不参与所有权
type node[T any] struct {
	key    T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	height int // 叶子节点为0
}

func newNode[T any](key T, parent *node[T]) *node[T] {
	return &node[T]{key: key, parent: parent}
}

// heightOf 返回节点高度，空节点为-1
func heightOf[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// balanceFactor 左子树高度减去右子树高度
func (n *node[T]) balanceFactor() int {
	return heightOf(n.left) - heightOf(n.right)
}

func (n *node[T]) minNode() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[T]) maxNode() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next 返回中序后继，不存在时返回nil
func (n *node[T]) next() *node[T] {
	if n.right != nil {
		return n.right.minNode()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// prev 返回中序前驱，不存在时返回nil
func (n *node[T]) prev() *node[T] {
	if n.left != nil {
		return n.left.maxNode()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// replace 让child接替n在父节点（或根）中的位置
func (s *TreeSet[T]) replace(n, child *node[T]) {
	p := n.parent
	switch {
	case p == nil:
		s.root = child
	case p.left == n:
		p.left = child
	default:
		p.right = child
	}
	if child != nil {
		child.parent = p
	}
}

// rotateLeft 以n为轴左旋，返回新的子树根
//
//	  n                 r
//	 / \               / \
//	a   r     =>      n   c
//	   / \           / \
//	  b   c         a   b
func (s *TreeSet[T]) rotateLeft(n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent = n
	}
	s.replace(n, pivot)
	pivot.left = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotateRight 以n为轴右旋，返回新的子树根
//
//	    n             l
//	   / \           / \
//	  l   c   =>    a   n
//	 / \               / \
//	a   b             b   c
func (s *TreeSet[T]) rotateRight(n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent = n
	}
	s.replace(n, pivot)
	pivot.right = n
	n.parent = pivot

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// balance 修复n处的失衡并返回该位置新的子树根
// n已平衡时不做任何修改
func (s *TreeSet[T]) balance(n *node[T]) *node[T] {
	switch bf := n.balanceFactor(); {
	case bf > 1:
		// 左-右型先把左子树转成左-左型
		if n.left.balanceFactor() < 0 {
			s.rotateLeft(n.left)
		}
		return s.rotateRight(n)
	case bf < -1:
		// 右-左型先把右子树转成右-右型
		if n.right.balanceFactor() > 0 {
			s.rotateRight(n.right)
		}
		return s.rotateLeft(n)
	}
	return n
}

// rebalance 从n开始沿父指针向上更新高度并旋转
// 某个子树平衡且高度与修改前一致时，祖先不受影响，提前结束
func (s *TreeSet[T]) rebalance(n *node[T]) {
	for n != nil {
		before := n.height
		n.updateHeight()
		n = s.balance(n)
		if n.height == before {
			return
		}
		n = n.parent
	}
}
