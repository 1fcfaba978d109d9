package set

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_InsertRotations(t *testing.T) {
	testCases := []struct {
		name  string
		input []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"left-right", []int{3, 1, 2}},
		{"right-right", []int{1, 2, 3}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewTree(tc.input...)

			root := s.Snapshot()
			require.NotNil(t, root)
			assert.Equal(t, 2, root.Key)
			assert.Equal(t, 1, root.Height)
			require.NotNil(t, root.Left)
			require.NotNil(t, root.Right)
			assert.Equal(t, 1, root.Left.Key)
			assert.Equal(t, 3, root.Right.Key)
			verifyTree(t, s)
		})
	}
}

func TestBalance_RemoveRotation(t *testing.T) {
	//   2            3
	//  / \          / \
	// 1   3   =>   2   4
	//      \
	//       4
	s := NewTree(2, 1, 3, 4)
	require.True(t, s.Remove(1))

	root := s.Snapshot()
	assert.Equal(t, 3, root.Key)
	assert.Equal(t, 2, root.Left.Key)
	assert.Equal(t, 4, root.Right.Key)
	verifyTree(t, s)
}

func TestBalance_RemoveWithBalancedHeavyChild(t *testing.T) {
	// 删除1后，2的右子树4左右等高，只需一次左旋
	s := NewTree(2, 1, 4, 3, 5)
	require.True(t, s.Remove(1))

	root := s.Snapshot()
	assert.Equal(t, 4, root.Key)
	assert.Equal(t, 2, root.Height)
	assert.Equal(t, 2, root.Left.Key)
	assert.Equal(t, 3, root.Left.Right.Key)
	assert.Equal(t, 5, root.Right.Key)
	verifyTree(t, s)
}

func TestBalance_RemoveNodeWithTwoChildren(t *testing.T) {
	s := NewTree(5, 3, 8, 7, 9)
	require.True(t, s.Remove(5))

	// 根节点的值被中序后继替换
	assert.Equal(t, 7, s.Snapshot().Key)
	assert.Equal(t, []int{3, 7, 8, 9}, s.ToSlice())
	verifyTree(t, s)
}

func TestBalance_IdempotentOnBalancedNode(t *testing.T) {
	s := NewTree(4, 2, 6, 1, 3, 5, 7)
	before := s.Snapshot()

	root := s.root
	assert.Same(t, root, s.balance(root))
	assert.Equal(t, before, s.Snapshot())

	s.rebalance(root.left)
	assert.Equal(t, before, s.Snapshot())
}

func TestBalance_RandomOperationsMatchOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(20240501))
	s := NewTree[int]()
	oracle := btree.NewG[int](4, func(a, b int) bool { return a < b })

	for i := 0; i < 4000; i++ {
		key := rng.Intn(256)
		if rng.Intn(3) == 0 {
			_, had := oracle.Delete(key)
			require.Equal(t, had, s.Remove(key), "op %d: remove %d", i, key)
		} else {
			_, had := oracle.ReplaceOrInsert(key)
			require.Equal(t, !had, s.Add(key), "op %d: add %d", i, key)
		}
		require.Equal(t, oracle.Len(), s.Size())
		if i%50 == 0 {
			verifyTree(t, s)
		}
	}
	verifyTree(t, s)

	var want []int
	oracle.Ascend(func(item int) bool {
		want = append(want, item)
		return true
	})
	if diff := cmp.Diff(want, s.ToSlice()); diff != "" {
		t.Fatalf("set diverged from oracle (-want +got):\n%s", diff)
	}

	for key := range s.All() {
		got, ok := oracle.Get(key)
		require.True(t, ok)
		require.Equal(t, key, got)
	}
}

func TestBalance_DrainKeepsBalance(t *testing.T) {
	s := NewTree(intRange(0, 512)...)
	rng := rand.New(rand.NewSource(7))
	order := rng.Perm(512)

	for i, key := range order {
		require.True(t, s.Remove(key))
		if n := s.Size(); n > 0 {
			require.LessOrEqual(t, s.Height(), 2*floorLog2(n+1), "after %d removals", i+1)
		}
	}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, -1, s.Height())
}
