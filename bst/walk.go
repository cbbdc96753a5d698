package bst

// Walk calls fn for every value in ascending (in-order) order until fn
// returns false.
func (t *Tree[K]) Walk(fn func(K) bool) {
	t.root.walk(fn)
}

// walk returns false once fn asked to stop.
func (n *Node[K]) walk(fn func(K) bool) bool {
	if n == nil {
		return true
	}

	return n.Left.walk(fn) && fn(n.Value) && n.Right.walk(fn)
}

// Values returns all stored values in ascending order.
func (t *Tree[K]) Values() []K {
	out := make([]K, 0, t.size)
	t.Walk(func(v K) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Height returns the number of edges on the longest root-to-leaf path:
// -1 for an empty tree, 0 for a single node.
func (t *Tree[K]) Height() int {
	return t.root.height()
}

func (n *Node[K]) height() int {
	if n == nil {
		return -1
	}

	return max(n.Left.height(), n.Right.height()) + 1
}

// Min returns the smallest stored value.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.Left != nil {
		n = n.Left
	}

	return n.Value, true
}

// Max returns the largest stored value.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.root == nil {
		return zero, false
	}
	n := t.root
	for n.Right != nil {
		n = n.Right
	}

	return n.Value, true
}
