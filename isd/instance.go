package isd

import (
	"fmt"

	"github.com/pqclabs/hqc/cyclic"
	"github.com/pqclabs/hqc/sampling"
	"github.com/pqclabs/hqc/xof"
)

// ParamError reports an invalid (n, w) experiment parameter pair, grounded
// on the reference harness's HqcParamError.
type ParamError struct {
	Reason string
}

func (e *ParamError) Error() string { return fmt.Sprintf("isd: invalid experiment parameters: %s", e.Reason) }

// KeygenError reports that a generated instance failed its own
// internal-consistency check — a bug in instance generation, not in an
// attacker.
type KeygenError struct {
	Reason string
}

func (e *KeygenError) Error() string { return fmt.Sprintf("isd: instance generation failed: %s", e.Reason) }

// ValidateParams checks (n, w) the way the reference harness does before
// generating an instance: n >= 2, w >= 1, w < n, and n at least 10w so the
// instance isn't so dense that ISD is meaningless.
func ValidateParams(n, w int) error {
	if n < 2 {
		return &ParamError{Reason: fmt.Sprintf("n must be >= 2, got %d", n)}
	}
	if w < 1 {
		return &ParamError{Reason: fmt.Sprintf("w must be >= 1, got %d", w)}
	}
	if w >= n {
		return &ParamError{Reason: fmt.Sprintf("w must be < n, got w=%d, n=%d", w, n)}
	}
	if n < w*10 {
		return &ParamError{Reason: fmt.Sprintf("n too small for a meaningful ISD experiment: n=%d, w=%d", n, w)}
	}
	return nil
}

// Instance is a synthetic HQC-like key-recovery instance: (h, s) with a
// secret (y, x) such that wt(y)=wt(x)=w and x XOR h*y = s. Solvers only ever
// see H and S; Y and X are kept so tests and harnesses can check a solver's
// answer against the planted secret.
type Instance struct {
	N, W int
	H, S *cyclic.Vector
	Y, X *cyclic.Vector
}

// GenerateInstance derives an instance deterministically from seedPKE, the
// same way PKE.Keygen does: I(seedPKE) splits into seed_dk/seed_ek, y and x
// (weight w) come from seed_dk, h (uniform) comes from seed_ek, and
// s = x XOR h*y.
func GenerateInstance(n, w int, seedPKE [32]byte) (*Instance, error) {
	if err := ValidateParams(n, w); err != nil {
		return nil, err
	}

	iOut := xof.I(seedPKE[:])
	var seedDK, seedEK [32]byte
	copy(seedDK[:], iOut[:32])
	copy(seedEK[:], iOut[32:64])

	dkSampler := sampling.New(xof.NewStream(seedDK[:]))
	y := dkSampler.FixedWeightVector(n, w)
	x := dkSampler.FixedWeightVector(n, w)

	ekSampler := sampling.New(xof.NewStream(seedEK[:]))
	h := ekSampler.Vector(n)

	s := cyclic.Multiply(h, y)
	s.Add(x)

	inst := &Instance{N: n, W: w, H: h, S: s, Y: y, X: x}
	if err := inst.verify(); err != nil {
		return nil, err
	}
	return inst, nil
}

func (inst *Instance) verify() error {
	if inst.Y.Weight() != inst.W {
		return &KeygenError{Reason: fmt.Sprintf("y has wrong weight: expected %d, got %d", inst.W, inst.Y.Weight())}
	}
	if inst.X.Weight() != inst.W {
		return &KeygenError{Reason: fmt.Sprintf("x has wrong weight: expected %d, got %d", inst.W, inst.X.Weight())}
	}
	hy := cyclic.Multiply(inst.H, inst.Y)
	rhs := inst.X.Clone()
	rhs.Add(hy)
	if !rhs.Equal(inst.S) {
		return &KeygenError{Reason: "key equation check failed: s != x XOR h*y"}
	}
	return nil
}
