package bst

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree over ordered keys.
// The zero value is an empty tree with no depth limit.
type Tree[K constraints.Ordered] struct {
	root *Node[K]
	size int
	opts Options
}

// New returns an empty Tree configured by opts.
func New[K constraints.Ordered](opts ...Option) *Tree[K] {
	return &Tree[K]{opts: buildOptions(opts)}
}

// Insert adds value, sending it right of every node it is greater than
// and left otherwise (ties go left).
// Returns ErrCapacityExceeded if the new node would exceed MaxDepth,
// leaving the tree unchanged.
func (t *Tree[K]) Insert(value K) error {
	if t.opts.err != nil {
		return t.opts.err
	}
	if t.root == nil {
		t.root = &Node[K]{Value: value}
		t.size++
		return nil
	}
	if err := t.root.insert(value, 1, t.opts); err != nil {
		return err
	}
	t.size++

	return nil
}

// insert places value below n; depth is the level a new child would occupy.
func (n *Node[K]) insert(value K, depth int, o Options) error {
	slot := &n.Left
	if value > n.Value {
		slot = &n.Right
	}
	if *slot != nil {
		return (*slot).insert(value, depth+1, o)
	}
	if !o.allows(depth) {
		return fmt.Errorf("%w: %v would land at depth %d (max %d)", ErrCapacityExceeded, value, depth, o.MaxDepth)
	}
	*slot = &Node[K]{Value: value}

	return nil
}

// Search returns the stored value equal to value and true, or the zero
// value and false when it is absent.
func (t *Tree[K]) Search(value K) (K, bool) {
	if n := t.root.search(value); n != nil {
		return n.Value, true
	}
	var zero K

	return zero, false
}

func (n *Node[K]) search(value K) *Node[K] {
	if n == nil {
		return nil
	}
	if n.Value == value {
		return n
	}
	if value > n.Value {
		return n.Right.search(value)
	}

	return n.Left.search(value)
}

// Len reports the number of stored values, duplicates included.
func (t *Tree[K]) Len() int { return t.size }

// Root exposes the root node (nil for an empty tree). Callers must not
// modify the returned structure.
func (t *Tree[K]) Root() *Node[K] { return t.root }
