// Package bfs provides breadth-first search over a Graph of adjacency
// lists, returning the fewest-edge path between two vertices.
//
// The search stops the moment the target shows up in a neighbor list,
// so Parent and Order only cover the part of the graph explored so far.
package bfs

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []int
	visited []bool
	res     *BFSResult
}

// BFS searches g from start until end is discovered or the reachable
// part of the graph is exhausted.
// Returns ErrGraphNil, ErrVertexOutOfRange or ErrInvalidGraph for invalid
// input and the context error on cancellation. An unreachable end is not
// an error: the result has Found == false.
func BFS(g Graph, start, end int, opts ...Option) (*BFSResult, error) {
	if len(g) == 0 {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(g)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start %d (graph has %d vertices)", ErrVertexOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("%w: end %d (graph has %d vertices)", ErrVertexOutOfRange, end, n)
	}
	if o.Validate {
		if err := validate(g); err != nil {
			return nil, err
		}
	}

	res := &BFSResult{
		Start:  start,
		End:    end,
		Parent: make([]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range res.Parent {
		res.Parent[i] = noParent
	}
	if start == end {
		res.Found = true
		return res, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		res:     res,
	}
	w.enqueue(start, noParent)

	return w.res, w.loop()
}

// ShortestPath returns the vertices of a fewest-edge path from start to
// end, both inclusive, and true; or nil and false when end is unreachable.
func ShortestPath(g Graph, start, end int, opts ...Option) ([]int, bool, error) {
	res, err := BFS(g, start, end, opts...)
	if err != nil {
		return nil, false, err
	}
	path, ok := res.PathTo()

	return path, ok, nil
}

// validate rejects adjacency entries that do not name a vertex.
func validate(g Graph) error {
	for v, nbrs := range g {
		for _, u := range nbrs {
			if u < 0 || u >= len(g) {
				return fmt.Errorf("%w: %d -> %d", ErrInvalidGraph, v, u)
			}
		}
	}

	return nil
}

// enqueue marks v visited, records its parent, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(v, parent int) {
	w.visited[v] = true
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v)
	w.queue = append(w.queue, v)
}

// loop processes the queue until it drains, end is found, or the context is done.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.dequeue()
		done, err := w.scan(cur)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// dequeue pops the first vertex, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	v := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Order = append(w.res.Order, v)
	w.opts.OnDequeue(v)

	return v
}

// scan walks cur's neighbors in list order. It reports true as soon as
// end appears, without looking at the remaining neighbors.
func (w *walker) scan(cur int) (bool, error) {
	for _, nbr := range w.graph[cur] {
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		if nbr == w.res.End {
			w.res.Parent[nbr] = cur
			w.res.Found = true
			return true, nil
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, cur)
		}
	}

	return false, nil
}
