package bst

import "fmt"

// Int32Tree is the int32-specialized binary search tree. It follows the
// same rules as Tree and satisfies Interface[int32].
type Int32Tree struct {
	root *Int32Node
	size int
	opts Options
}

// NewInt32 returns an empty Int32Tree configured by opts.
func NewInt32(opts ...Option) *Int32Tree {
	return &Int32Tree{opts: buildOptions(opts)}
}

// Insert adds value; ties go left.
func (t *Int32Tree) Insert(value int32) error {
	if t.opts.err != nil {
		return t.opts.err
	}
	if t.root == nil {
		t.root = &Int32Node{Value: value}
		t.size++
		return nil
	}
	if err := t.root.insert(value, 1, t.opts); err != nil {
		return err
	}
	t.size++

	return nil
}

func (n *Int32Node) insert(value int32, depth int, o Options) error {
	if value > n.Value {
		if n.Right != nil {
			return n.Right.insert(value, depth+1, o)
		}
		if !o.allows(depth) {
			return fmt.Errorf("%w: %d would land at depth %d (max %d)", ErrCapacityExceeded, value, depth, o.MaxDepth)
		}
		n.Right = &Int32Node{Value: value}
		return nil
	}
	if n.Left != nil {
		return n.Left.insert(value, depth+1, o)
	}
	if !o.allows(depth) {
		return fmt.Errorf("%w: %d would land at depth %d (max %d)", ErrCapacityExceeded, value, depth, o.MaxDepth)
	}
	n.Left = &Int32Node{Value: value}

	return nil
}

// Search returns (value, true) if value is stored, (0, false) otherwise.
func (t *Int32Tree) Search(value int32) (int32, bool) {
	n := t.root
	for n != nil {
		switch {
		case n.Value == value:
			return n.Value, true
		case value > n.Value:
			n = n.Right
		default:
			n = n.Left
		}
	}

	return 0, false
}

// Len reports the number of stored values, duplicates included.
func (t *Int32Tree) Len() int { return t.size }

// Root exposes the root node (nil for an empty tree).
func (t *Int32Tree) Root() *Int32Node { return t.root }

// Height returns -1 for an empty tree, otherwise the longest root-to-leaf
// path in edges.
func (t *Int32Tree) Height() int { return t.root.height() }

func (n *Int32Node) height() int {
	if n == nil {
		return -1
	}

	return max(n.Left.height(), n.Right.height()) + 1
}

// Values returns all stored values in ascending order.
func (t *Int32Tree) Values() []int32 {
	out := make([]int32, 0, t.size)
	var walk func(*Int32Node)
	walk = func(n *Int32Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Value)
		walk(n.Right)
	}
	walk(t.root)

	return out
}

var (
	_ Interface[int32] = (*Int32Tree)(nil)
	_ Interface[int32] = (*Tree[int32])(nil)
)
