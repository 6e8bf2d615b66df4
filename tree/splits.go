package tree

import "iter"

// Splits yields every way to cut a sequence of n elements with k cuts into
// k+1 contiguous, non-empty parts. Each tuple is strictly increasing with
// values in [1, n-1]; tuples come lowest cut positions first, in
// lexicographic order, C(n-1, k) of them in total.
//
// The yielded slice is reused between iterations; clone it to keep it.
// Ranging over the result again restarts the enumeration.
func Splits(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || (k > 0 && k >= n) {
			return
		}
		cuts := make([]int, k)
		for i := range cuts {
			cuts[i] = i + 1
		}
		for {
			if !yield(cuts) {
				return
			}
			// advance the rightmost cut that still has room, then pack the
			// following cuts directly behind it
			i := k - 1
			for i >= 0 && cuts[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			cuts[i]++
			for j := i + 1; j < k; j++ {
				cuts[j] = cuts[j-1] + 1
			}
		}
	}
}
