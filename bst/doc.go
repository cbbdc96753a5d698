// Package bst implements an unbalanced binary search tree with insert and
// search, in two interchangeable flavors.
//
// What
//
//   - Tree[K]:   generic over any ordered key type (golang.org/x/exp/constraints.Ordered).
//   - Int32Tree: the same algorithm specialized to int32 keys.
//   - Both satisfy Interface[K] and behave identically; pick Int32Tree when a
//     concrete, monomorphic type is preferable (e.g. embedding, reflection).
//
// Ordering rule
//
//	Every node keeps values ≤ its own in the left subtree and values > its
//	own in the right subtree. Equal values go left, so duplicates are kept
//	and counted by Len.
//
//	Insert walks from the root: value > node → right, otherwise → left,
//	and fills the first empty child slot it meets.
//	Search mirrors the walk and stops on the first equal value.
//
// Limitations
//
//	There is no rebalancing and no deletion. Inserting an already sorted
//	sequence degenerates the tree into a linked list, so Insert and Search
//	cost O(h) where h may reach n-1. This is accepted behavior.
//
// Options
//
//   - WithMaxDepth(d): refuse to create nodes deeper than d edges below the
//     root (d > 0); d == 0 disables the limit; d < 0 is ErrOptionViolation.
//
// Errors
//
//   - ErrCapacityExceeded  insert would exceed the configured MaxDepth.
//   - ErrOptionViolation   an invalid Option was supplied.
//
// With default options Insert never fails.
//
// Usage
//
//	t := bst.New[int]()
//	for _, v := range []int{5, 3, 12, 15, 1} {
//		_ = t.Insert(v)
//	}
//	v, ok := t.Search(15) // 15, true
//	_, ok = t.Search(21)  // false
//
// Concurrency
//
//	A Tree is not safe for concurrent mutation. Guard it externally or give
//	each goroutine its own tree.
package bst
