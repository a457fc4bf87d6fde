// Package isd implements the pluggable information-set-decoding attack
// framework: a Solver capability (name + solve) with three implementations —
// brute force, Prange, and Stern — run against synthetic HQC-like
// key-recovery instances. The capability-interface-plus-registry shape
// follows the teacher's drlwe protocol layer, where distinct multiparty
// protocols (CKG, RKG, PCKS) all implement a common small interface and are
// selected by the caller rather than by a type switch buried in one package.
package isd

import "github.com/pqclabs/hqc/cyclic"

// Solver is an ISD attack: given an instance (n, w, h, s), it returns a
// candidate y with wt(y)=w and wt(s XOR h*y)=w, or (nil, nil) if it
// exhausted its search budget without finding one ("None" in the spec), or
// a non-nil error if given a structurally invalid instance or aborted for
// another hard reason.
type Solver interface {
	Name() string
	Solve(n, w int, h, s *cyclic.Vector) (*cyclic.Vector, error)
}

// checkCandidate reports whether y is a valid solution to the (n, w, h, s)
// instance: wt(y)=w and x := s XOR h*y has wt(x)=w.
func checkCandidate(w int, h, s, y *cyclic.Vector) bool {
	if y.Weight() != w {
		return false
	}
	hy := cyclic.Multiply(h, y)
	x := s.Clone()
	x.Add(hy)
	return x.Weight() == w
}
