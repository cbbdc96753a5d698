package bst_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/classics/bst"
)

// leaf is a shorthand for a childless node.
func leaf(v int) *bst.Node[int] { return &bst.Node[int]{Value: v} }

// fullTree is the five-node tree built from inserts 5, 3, 12, 15, 1.
func fullTree() *bst.Node[int] {
	return &bst.Node[int]{
		Value: 5,
		Left:  &bst.Node[int]{Value: 3, Left: leaf(1)},
		Right: &bst.Node[int]{Value: 12, Right: leaf(15)},
	}
}

// assertOrdered walks n and fails if any value breaks the left ≤ node < right rule.
func assertOrdered(t *testing.T, n *bst.Node[int], lo, hi *int) {
	t.Helper()
	if n == nil {
		return
	}
	if lo != nil {
		assert.Greater(t, n.Value, *lo, "right-subtree value must exceed its ancestor")
	}
	if hi != nil {
		assert.LessOrEqual(t, n.Value, *hi, "left-subtree value must not exceed its ancestor")
	}
	assertOrdered(t, n.Left, lo, &n.Value)
	assertOrdered(t, n.Right, &n.Value, hi)
}

func TestInsert_EmptyTreeBecomesRoot(t *testing.T) {
	tr := bst.New[int]()
	require.NoError(t, tr.Insert(3))
	assert.Equal(t, leaf(3), tr.Root())
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 0, tr.Height())
}

func TestInsert_ZeroValueTree(t *testing.T) {
	var tr bst.Tree[string]
	require.NoError(t, tr.Insert("m"))
	require.NoError(t, tr.Insert("a"))
	v, ok := tr.Search("a")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestInsert_PartialTree(t *testing.T) {
	tr := bst.New[int]()
	require.NoError(t, tr.Insert(5))
	require.NoError(t, tr.Insert(3))
	require.NoError(t, tr.Insert(12))

	want := &bst.Node[int]{Value: 5, Left: leaf(3), Right: leaf(12)}
	assert.Equal(t, want, tr.Root())
}

func TestInsert_FullTree(t *testing.T) {
	tr := bst.New[int]()
	for _, v := range []int{5, 3, 12, 15, 1} {
		require.NoError(t, tr.Insert(v))
	}
	assert.Equal(t, fullTree(), tr.Root())
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, 2, tr.Height())
}

func TestInsert_TiesGoLeft(t *testing.T) {
	tr := bst.New[int]()
	require.NoError(t, tr.Insert(7))
	require.NoError(t, tr.Insert(7))
	require.NoError(t, tr.Insert(7))

	root := tr.Root()
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Left.Left)
	assert.Nil(t, root.Right)
	assert.Nil(t, root.Left.Right)
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, []int{7, 7, 7}, tr.Values())
}

func TestInsert_SortedInputDegenerates(t *testing.T) {
	tr := bst.New[int]()
	for i := 0; i < 50; i++ {
		require.NoError(t, tr.Insert(i))
	}
	// every node only has a right child: height == n-1
	assert.Equal(t, 49, tr.Height())
	for n := tr.Root(); n != nil; n = n.Right {
		assert.Nil(t, n.Left)
	}
}

func TestSearch_EmptyTree(t *testing.T) {
	tr := bst.New[int]()
	v, ok := tr.Search(3)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSearch_ExistingAndMissing(t *testing.T) {
	tr := bst.New[int]()
	for _, v := range []int{5, 3, 12, 15, 1} {
		require.NoError(t, tr.Insert(v))
	}

	v, ok := tr.Search(15)
	assert.True(t, ok)
	assert.Equal(t, 15, v)

	for _, v := range []int{5, 3, 12, 1} {
		got, ok := tr.Search(v)
		assert.True(t, ok, "value %d must be found", v)
		assert.Equal(t, v, got)
	}

	_, ok = tr.Search(21)
	assert.False(t, ok)
	_, ok = tr.Search(4)
	assert.False(t, ok)
}

// TestRandomInserts checks the ordering invariant and search correctness
// over random insertion sequences.
func TestRandomInserts(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		tr := bst.New[int]()
		inserted := map[int]bool{}
		var all []int
		for i := 0; i < 200; i++ {
			v := rnd.Intn(500)
			require.NoError(t, tr.Insert(v))
			inserted[v] = true
			all = append(all, v)
		}

		assertOrdered(t, tr.Root(), nil, nil)
		assert.Equal(t, len(all), tr.Len())

		sort.Ints(all)
		assert.Equal(t, all, tr.Values(), "in-order walk must be sorted")

		for v := -10; v < 510; v++ {
			got, ok := tr.Search(v)
			assert.Equal(t, inserted[v], ok, "presence of %d", v)
			if ok {
				assert.Equal(t, v, got)
			}
		}
	}
}

func TestWalk_StopsEarly(t *testing.T) {
	tr := bst.New[int]()
	for _, v := range []int{5, 3, 12, 15, 1} {
		require.NoError(t, tr.Insert(v))
	}
	var seen []int
	tr.Walk(func(v int) bool {
		seen = append(seen, v)
		return v < 5
	})
	assert.Equal(t, []int{1, 3, 5}, seen)
}

func TestMinMax(t *testing.T) {
	tr := bst.New[float64]()
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)

	for _, v := range []float64{2.5, -1, 9.75, 0} {
		require.NoError(t, tr.Insert(v))
	}
	lo, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, -1.0, lo)
	hi, ok := tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 9.75, hi)
}

func TestMaxDepth(t *testing.T) {
	tr := bst.New[int](bst.WithMaxDepth(1))
	for _, v := range []int{5, 3, 12} {
		require.NoError(t, tr.Insert(v))
	}

	err := tr.Insert(1)
	assert.ErrorIs(t, err, bst.ErrCapacityExceeded)
	assert.Equal(t, 3, tr.Len(), "rejected insert must not change size")
	_, ok := tr.Search(1)
	assert.False(t, ok)
	assert.Equal(t, &bst.Node[int]{Value: 5, Left: leaf(3), Right: leaf(12)}, tr.Root())

	// zero means no limit
	unlimited := bst.New[int](bst.WithMaxDepth(0))
	for i := 0; i < 100; i++ {
		require.NoError(t, unlimited.Insert(i))
	}
}

func TestOptionViolation(t *testing.T) {
	tr := bst.New[int](bst.WithMaxDepth(-1))
	assert.ErrorIs(t, tr.Insert(1), bst.ErrOptionViolation)
	assert.Equal(t, 0, tr.Len())

	it := bst.NewInt32(bst.WithMaxDepth(-3))
	assert.ErrorIs(t, it.Insert(1), bst.ErrOptionViolation)
}
