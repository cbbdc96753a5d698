// Package quicksort sorts slices in place with recursive quicksort and a
// Hoare-style two-cursor partition.
//
// Algorithm
//
//	The pivot is the rightmost element of the current range. A left cursor
//	skips elements smaller than the pivot, a right cursor skips elements
//	larger than it, and the two stopped elements are swapped. When the
//	cursors cross, the pivot is swapped into the left cursor's slot, which
//	is its final position. Both sides are then sorted recursively.
//
// Guarantees
//
//   - The result is a permutation of the input in non-decreasing order.
//   - Not stable: equal elements may change relative order.
//   - Slices of length 0 or 1 are left untouched.
//
// Complexity
//
//   - Time:  O(n log n) on average, O(n²) on sorted or reverse-sorted input.
//   - Stack: O(log n) on average, O(n) in the worst case.
//
// The rightmost-pivot choice is kept deliberately simple; there is no
// randomized or median-of-three pivot selection.
//
// Usage
//
//	xs := []int{10, 8, 4, 3, 1, 9, 2, 7, 5, 6}
//	quicksort.Sort(xs) // [1 2 3 4 5 6 7 8 9 10]
//
//	quicksort.SortFunc(people, func(a, b Person) bool { return a.Age < b.Age })
package quicksort
