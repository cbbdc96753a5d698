// Package bfs provides tunable options, result types and error definitions
// for breadth-first shortest-path search over a Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned for a nil or empty graph.
	ErrGraphNil = errors.New("bfs: graph is nil or empty")

	// ErrVertexOutOfRange is returned when start or end is not a vertex index.
	ErrVertexOutOfRange = errors.New("bfs: vertex index out of range")

	// ErrInvalidGraph is returned when an adjacency list references a
	// vertex index outside the graph.
	ErrInvalidGraph = errors.New("bfs: adjacency list references unknown vertex")
)

// noParent marks a vertex with no recorded predecessor.
const noParent = -1

// Graph is a directed graph given as adjacency lists: g[v] holds the
// indices of the vertices reachable from v by one edge.
type Graph [][]int

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued.
	OnEnqueue func(v int)

	// OnDequeue is called when a vertex is taken off the queue,
	// before its neighbors are scanned.
	OnDequeue func(v int)

	// Validate checks every adjacency entry before the search starts.
	// Disabling it skips an O(V+E) pass; out-of-range neighbors then panic.
	Validate bool
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no-op hooks
//   - graph validation enabled
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
		Validate:  true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithValidate toggles the up-front adjacency check.
func WithValidate(on bool) Option {
	return func(o *BFSOptions) {
		o.Validate = on
	}
}

// BFSResult holds the outcome of a search:
//   - Start, End: the requested endpoints.
//   - Found: whether End was reached.
//   - Parent: Parent[v] is the vertex v was discovered from, or -1.
//   - Order: vertices in dequeue order.
type BFSResult struct {
	Start  int
	End    int
	Found  bool
	Parent []int
	Order  []int
}

// PathTo reconstructs the path from Start to End by walking Parent
// backwards. It reports false when End was not reached.
func (r *BFSResult) PathTo() ([]int, bool) {
	if r.Start == r.End {
		return []int{r.Start}, true
	}
	path := []int{}
	for cur := r.End; cur != noParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	path = lo.Reverse(path)
	if path[0] != r.Start {
		return nil, false
	}

	return path, true
}
