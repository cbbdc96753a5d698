// Package bfs finds fewest-edge paths in a directed graph given as
// adjacency lists of vertex indices.
//
// What
//
//   - Graph is [][]int: g[v] lists the vertices v has an edge to.
//   - BFS(g, start, end) explores from start in non-decreasing edge count
//     and returns a BFSResult:
//   - Found:  whether end was reached
//   - Parent: predecessor of each discovered vertex (-1 if none)
//   - Order:  vertices in dequeue order
//   - BFSResult.PathTo rebuilds the start → end path from Parent.
//   - ShortestPath(g, start, end) wraps both steps.
//
// Early exit
//
//	The search stops the instant end appears in the neighbor list being
//	scanned, even in the middle of that list. end itself is never queued.
//	Neighbor lists are scanned in the order given, so the returned path is
//	deterministic: among equally short paths the one discovered first wins.
//
// Start vertex
//
//	The start vertex is marked visited before the loop begins, whatever its
//	index. A start equal to end yields the single-vertex path [start]
//	without scanning any edge.
//
// Complexity (V = len(g), E = total adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited flags and Parent slice
//
// Usage
//
//	g := bfs.Graph{
//		{1, 2}, {0, 3, 4, 1}, {0, 4}, {1, 4, 5},
//		{1, 2, 3, 5}, {3, 4, 6}, {7, 5}, {6},
//	}
//	path, ok, err := bfs.ShortestPath(g, 0, 7)
//	// path == [0 1 3 5 6 7], ok == true, err == nil
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, validation on.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithOnEnqueue(fn):  hook when a vertex is queued.
//   - WithOnDequeue(fn):  hook when a vertex is taken off the queue.
//   - WithValidate(bool): toggle the up-front adjacency range check.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil or has no vertices.
//   - ErrVertexOutOfRange  if start or end is not a valid index.
//   - ErrInvalidGraph      if any adjacency entry is out of range (validation on).
//   - ctx.Err()            if the context is cancelled mid-search.
//
// An unreachable end is a normal outcome (Found == false), never an error.
package bfs
