package isd

import (
	"math/rand"

	"github.com/pqclabs/hqc/cyclic"
)

// Prange repeatedly selects a random size-n set of columns from the 2n-wide
// parity matrix H' = [h | I], solves the resulting square linear system by
// Gaussian elimination, and checks whether the solution names a valid
// weight-w secret. Grounded on the reference isd/algorithm/prange.rs.
type Prange struct {
	// MaxIters caps the number of column-selection attempts; 0 means
	// unbounded.
	MaxIters uint64
	// Seed seeds the column-selection PRNG for reproducibility; if zero,
	// a fixed default is used (the spec's threat model exempts solver
	// iteration order from any constant-time or unpredictability
	// requirement).
	Seed int64
}

// NewPrange builds a Prange solver with the given iteration cap (0 for
// unbounded) and PRNG seed.
func NewPrange(maxIters uint64, seed int64) *Prange {
	return &Prange{MaxIters: maxIters, Seed: seed}
}

func (*Prange) Name() string { return "prange" }

func (p *Prange) Solve(n, w int, h, s *cyclic.Vector) (*cyclic.Vector, error) {
	if h.N() != n || s.N() != n {
		return nil, &Error{Kind: InvalidParameter, Reason: "length mismatch: h.N() or s.N() != n"}
	}
	if n == 0 {
		return nil, nil
	}

	maxIters := p.MaxIters
	rng := rand.New(rand.NewSource(p.Seed))

	matRows := make([]*cyclic.Vector, n)
	for i := range matRows {
		matRows[i] = cyclic.Zero(n)
	}
	rhs := cyclic.Zero(n)
	colBuf := cyclic.Zero(n)
	scratch := cyclic.NewScratch(n)
	perm := make([]int, 2*n)
	for i := range perm {
		perm[i] = i
	}

	for iter := uint64(0); maxIters == 0 || iter < maxIters; iter++ {
		sampleCols(rng, perm, n)
		cols := perm[:n]

		buildSquareMatrixFromSelectedColumns(n, h, cols, matRows, colBuf, scratch)
		rhs.CopyFrom(s)

		if !gaussianEliminationForISDInstance(matRows, rhs) {
			continue
		}

		y := cyclic.Zero(n)
		x := cyclic.Zero(n)
		for k, origCol := range cols {
			if rhs.Get(k) {
				if origCol < n {
					y.Set(origCol)
				} else {
					x.Set(origCol - n)
				}
			}
		}

		if y.Weight() != w || x.Weight() != w {
			continue
		}
		hy := cyclic.Multiply(h, y)
		lhs := x.Clone()
		lhs.Add(hy)
		if !lhs.Equal(s) {
			continue
		}

		return y, nil
	}

	return nil, nil
}
