package isd

import "github.com/pqclabs/hqc/cyclic"

// BruteForce enumerates size-w subsets of {0,...,n-1} in lexicographic
// order, testing each as a candidate y until one satisfies the instance
// equation or MaxIters is exhausted. Grounded on the reference
// isd/algorithm/brute_force.rs.
type BruteForce struct {
	// MaxIters caps the number of candidates tried; 0 means unbounded
	// (enumerate every size-w subset).
	MaxIters uint64
}

// NewBruteForce builds a BruteForce solver with the given iteration cap (0
// for unbounded).
func NewBruteForce(maxIters uint64) *BruteForce {
	return &BruteForce{MaxIters: maxIters}
}

func (*BruteForce) Name() string { return "brute-force" }

func (b *BruteForce) Solve(n, w int, h, s *cyclic.Vector) (*cyclic.Vector, error) {
	if h.N() != n || s.N() != n {
		return nil, &Error{Kind: InvalidParameter, Reason: "length mismatch: h.N() or s.N() != n"}
	}
	if w > n {
		return nil, &Error{Kind: InvalidParameter, Reason: "w must be <= n"}
	}

	comb := make([]int, w)
	for i := range comb {
		comb[i] = i
	}

	var iters uint64
	for {
		if b.MaxIters != 0 && iters >= b.MaxIters {
			return nil, nil
		}
		iters++

		y := cyclic.FromIndices(n, comb)
		if checkCandidate(w, h, s, y) {
			return y, nil
		}

		if !nextCombination(comb, n) {
			return nil, nil
		}
	}
}
