// Package classics is a small shelf of textbook algorithms, each in its
// own package with its own tests, examples and benchmarks.
//
// 🚀 What is inside?
//
//	• bst/        unbalanced binary search tree: insert & search,
//	              generic Tree[K] plus an int32-specialized Int32Tree
//	• bfs/        breadth-first shortest path (by edge count) over
//	              adjacency lists, with path reconstruction
//	• quicksort/  in-place quicksort with Hoare-style partitioning
//
// ✨ Ground rules
//
//   - Pure in-memory computation: no I/O, no goroutines, no globals.
//   - Absence is a value, not an error: a missing key or an unreachable
//     vertex is reported with a boolean.
//   - Errors are package sentinels ("bst: ...", "bfs: ...") matched with errors.Is.
//   - Nothing is safe for concurrent mutation; give each goroutine its own data.
//
// Quick ASCII example (bfs):
//
//	0 → 1 → 3 → 5 → 6 → 7
//
// is the fewest-hop path ShortestPath returns on the package example graph.
//
//	go get github.com/katalvlaran/classics
package classics
