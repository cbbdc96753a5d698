package quicksort

import "golang.org/x/exp/constraints"

// Sort sorts s in ascending order.
func Sort[S ~[]E, E constraints.Ordered](s S) {
	SortFunc(s, func(a, b E) bool { return a < b })
}

// SortFunc sorts s in place so that less(s[i+1], s[i]) is false for every i.
// less must be a strict weak ordering.
func SortFunc[S ~[]E, E any](s S, less func(a, b E) bool) {
	if len(s) > 1 {
		quickSort([]E(s), 0, len(s)-1, less)
	}
}

func quickSort[E any](s []E, left, right int, less func(a, b E) bool) {
	if left >= right {
		return
	}
	p := partition(s, left, right, less)
	quickSort(s, left, p-1, less)
	quickSort(s, p+1, right, less)
}

// partition places s[right] at its sorted position within s[left:right+1]
// and returns that index. Elements before it are ≤ the pivot, elements
// after it are ≥ the pivot.
func partition[E any](s []E, left, right int, less func(a, b E) bool) int {
	pivot := right
	i, j := left-1, right
	for {
		i++
		// stops at the latest at pivot itself
		for less(s[i], s[pivot]) {
			i++
		}
		j--
		for j >= left && less(s[pivot], s[j]) {
			j--
		}
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}
	s[i], s[pivot] = s[pivot], s[i]

	return i
}
