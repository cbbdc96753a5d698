// Package bst defines the tree types, options and sentinel errors.
package bst

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree operations.
var (
	// ErrCapacityExceeded is returned when an insert would place a node
	// deeper than the configured MaxDepth.
	ErrCapacityExceeded = errors.New("bst: capacity exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bst: invalid option supplied")
)

// Interface is the behavior shared by Tree and Int32Tree.
type Interface[K any] interface {
	// Insert adds value to the tree.
	Insert(value K) error
	// Search returns the stored value equal to value, if any.
	Search(value K) (K, bool)
	// Len reports how many values were inserted.
	Len() int
}

// Option configures a tree at construction time.
// Invalid options are recorded and surfaced as ErrOptionViolation by Insert.
type Option func(*Options)

// Options holds tree limits.
type Options struct {
	// MaxDepth, if > 0, is the deepest level (edges below the root) at
	// which a node may be created. 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth limits the depth of newly created nodes.
//
//	d > 0:  nodes deeper than d edges are rejected with ErrCapacityExceeded
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// allows reports whether a node may be created at depth.
func (o Options) allows(depth int) bool {
	return o.MaxDepth == 0 || depth <= o.MaxDepth
}

// Node is a single tree node. Left and Right are nil when the slot is empty.
// A node owns its children exclusively.
type Node[K constraints.Ordered] struct {
	Value K
	Left  *Node[K]
	Right *Node[K]
}

// Int32Node is the node type of Int32Tree.
type Int32Node struct {
	Value int32
	Left  *Int32Node
	Right *Int32Node
}
