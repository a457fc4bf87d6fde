package isd

import (
	"math/rand"

	"github.com/pqclabs/hqc/cyclic"
)

// gaussianEliminationForISDInstance row-reduces the n x n matrix matRows
// (each row a length-n cyclic.Vector) to the identity via bitwise Gaussian
// elimination with partial pivoting, applying every row operation to rhs in
// lockstep. It reports whether the matrix was invertible; on false, rhs and
// matRows are left in a partially reduced, unusable state and the caller
// must retry with a fresh column selection. Grounded on the reference
// harness's gaussian_elimination_for_isd_instance.
func gaussianEliminationForISDInstance(matRows []*cyclic.Vector, rhs *cyclic.Vector) bool {
	n := len(matRows)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if matRows[r].Get(col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return false
		}

		if pivot != col {
			matRows[pivot], matRows[col] = matRows[col], matRows[pivot]
			swapBits(rhs, pivot, col)
		}

		pivotRow := matRows[col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			if matRows[r].Get(col) {
				matRows[r].Add(pivotRow)
				if rhs.Get(col) {
					rhs.Toggle(r)
				}
			}
		}
	}
	return true
}

func swapBits(v *cyclic.Vector, i, j int) {
	bi, bj := v.Get(i), v.Get(j)
	if bi == bj {
		return
	}
	v.Toggle(i)
	v.Toggle(j)
}

// sampleCols performs the first n swaps of a Fisher-Yates shuffle over perm
// (length 2n), the partial shuffle the reference sample_cols implements:
// only the prefix perm[:n] needs to be randomized, since that's the column
// selection this call site consumes.
func sampleCols(rng *rand.Rand, perm []int, n int) {
	total := 2 * n
	for i := 0; i < n; i++ {
		j := i + rng.Intn(total-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
}

// clearMatrixRows zeroes every row in place, reusing their backing storage
// across Prange iterations.
func clearMatrixRows(rows []*cyclic.Vector) {
	for _, r := range rows {
		for i := range r.Words {
			r.Words[i] = 0
		}
	}
}

// hqcColumnInto writes column col of H' = [h | I] (width 2n) into out: for
// col < n it's the left-rotation of h by col; for col >= n it's the
// standard basis vector e_{col-n}.
func hqcColumnInto(h *cyclic.Vector, col int, out *cyclic.Vector, scratch *cyclic.Scratch) {
	n := h.N()
	if col < n {
		h.RotateLeftInto(col, out, scratch)
		return
	}
	for i := range out.Words {
		out.Words[i] = 0
	}
	out.Set(col - n)
}

// buildSquareMatrixFromSelectedColumns fills matRows (n rows, each length n)
// so that row r, column k holds bit r of H' column cols[k] — i.e. matRows
// is the transpose-by-construction square system Prange solves.
func buildSquareMatrixFromSelectedColumns(n int, h *cyclic.Vector, cols []int, matRows []*cyclic.Vector, colBuf *cyclic.Vector, scratch *cyclic.Scratch) {
	clearMatrixRows(matRows)
	for k, col := range cols {
		hqcColumnInto(h, col, colBuf, scratch)
		for _, r := range colBuf.Support() {
			if r < n {
				matRows[r].Set(k)
			}
		}
	}
}

// forEachCombination enumerates every size-k subset of {0,...,n-1} in
// lexicographic order, calling f with each subset's sorted indices. f
// returns false to stop enumeration early (a "break").
func forEachCombination(n, k int, f func(idx []int) bool) {
	if k == 0 {
		f(nil)
		return
	}
	if k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if !f(idx) {
			return
		}

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// nextCombination advances comb (currently a sorted k-subset of [0,n)) to
// the next one in lexicographic order, reporting whether there was a next
// one. Used by brute force's iterative enumeration instead of the
// closure-based forEachCombination, since brute force needs to interleave
// an iteration-count check between combinations.
func nextCombination(comb []int, n int) bool {
	k := len(comb)
	if k == 0 {
		return false
	}
	for i := k - 1; i >= 0; i-- {
		maxVal := n - (k - i)
		if comb[i] < maxVal {
			comb[i]++
			for j := i + 1; j < k; j++ {
				comb[j] = comb[j-1] + 1
			}
			return true
		}
	}
	return false
}
