// Package params defines HQC's three fixed parameter sets (HQC-1, HQC-3,
// HQC-5) along with the derived byte-size constants used throughout
// serialization. It follows the teacher's ParametersLiteral/Parameters split
// (see bgv.ParametersLiteral / bgv.NewParametersFromLiteral): a literal,
// publicly-settable struct documents the raw numbers, and a private,
// immutable Parameters struct is what the rest of the module actually
// carries around.
package params

import (
	"fmt"

	"github.com/pqclabs/hqc/gf256"
)

// Literal is the raw numeric description of one HQC parameter set, as fixed
// by the NIST submission. Field names mirror the submission's own notation.
type Literal struct {
	Name string

	N  int // length of the cyclic code, in bits
	N1 int // Reed-Solomon codeword length, in symbols
	N2 int // Reed-Muller codeword length, in bits (NBits * RM multiplicity)
	K  int // message length, in bits

	W  int // weight of the secret key vectors (x, y)
	WR int // weight of the encryption randomness r1, r2
	WE int // weight of the encryption error e

	RMMultiplicity int
	RSGenerator    gf256.Polynomial

	SecurityLevel int // claimed classical security level, in bits
}

// Parameters is an immutable, validated HQC parameter set plus its derived
// byte-size constants (spec's external-interface byte layout table, section
// 9's process-wide constants).
type Parameters struct {
	lit Literal

	nBytes     int
	kBytes     int
	n1n2Bits   int
	n1n2Bytes  int
	n2Bytes    int
	cPKEBytes  int
	cKEMBytes  int
}

const (
	seedBytes      = 32
	saltBytes      = 16
	sharedKeyBytes = 32
)

// New validates a Literal and derives its byte-size constants.
func New(lit Literal) (Parameters, error) {
	if lit.K%8 != 0 {
		return Parameters{}, fmt.Errorf("params: K must be a multiple of 8, got %d", lit.K)
	}
	if lit.N2%8 != 0 {
		return Parameters{}, fmt.Errorf("params: N2 must be a multiple of 8, got %d", lit.N2)
	}
	if lit.RMMultiplicity != 3 && lit.RMMultiplicity != 5 {
		return Parameters{}, fmt.Errorf("params: RM multiplicity must be 3 or 5, got %d", lit.RMMultiplicity)
	}
	if lit.N2 != 128*lit.RMMultiplicity {
		return Parameters{}, fmt.Errorf("params: N2 (%d) must equal 128*RMMultiplicity (%d)", lit.N2, 128*lit.RMMultiplicity)
	}
	if len(lit.RSGenerator) == 0 {
		return Parameters{}, fmt.Errorf("params: RS generator polynomial must not be empty")
	}

	nBytes := (lit.N + 7) / 8
	n1n2Bits := lit.N1 * lit.N2
	n1n2Bytes := (n1n2Bits + 7) / 8
	n2Bytes := lit.N2 / 8
	cPKEBytes := nBytes + n1n2Bytes

	return Parameters{
		lit:       lit,
		nBytes:    nBytes,
		kBytes:    lit.K / 8,
		n1n2Bits:  n1n2Bits,
		n1n2Bytes: n1n2Bytes,
		n2Bytes:   n2Bytes,
		cPKEBytes: cPKEBytes,
		cKEMBytes: cPKEBytes + saltBytes,
	}, nil
}

// MustNew is like New but panics on error; used for the fixed HQC-1/3/5
// constructors below, whose literals are known-good at compile time.
func MustNew(lit Literal) Parameters {
	p, err := New(lit)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Parameters) Name() string          { return p.lit.Name }
func (p Parameters) N() int                { return p.lit.N }
func (p Parameters) N1() int               { return p.lit.N1 }
func (p Parameters) N2() int               { return p.lit.N2 }
func (p Parameters) K() int                { return p.lit.K }
func (p Parameters) W() int                { return p.lit.W }
func (p Parameters) WR() int               { return p.lit.WR }
func (p Parameters) WE() int               { return p.lit.WE }
func (p Parameters) RMMultiplicity() int   { return p.lit.RMMultiplicity }
func (p Parameters) RSGenerator() gf256.Polynomial {
	return append(gf256.Polynomial(nil), p.lit.RSGenerator...)
}
func (p Parameters) SecurityLevel() int { return p.lit.SecurityLevel }

// K1 returns the Reed-Solomon outer code's message length in symbols
// (equivalently KBytes, since one symbol is one byte).
func (p Parameters) K1() int { return p.kBytes }

// Delta returns the Reed-Solomon outer code's error-correction capacity,
// derived from the generator polynomial's degree: deg(gen) = 2*delta.
func (p Parameters) Delta() int { return (len(p.lit.RSGenerator) - 1) / 2 }

func (p Parameters) SeedBytes() int      { return seedBytes }
func (p Parameters) SaltBytes() int      { return saltBytes }
func (p Parameters) SharedKeyBytes() int { return sharedKeyBytes }
func (p Parameters) NBytes() int         { return p.nBytes }
func (p Parameters) KBytes() int         { return p.kBytes }
func (p Parameters) N1N2Bits() int       { return p.n1n2Bits }
func (p Parameters) N1N2Bytes() int      { return p.n1n2Bytes }
func (p Parameters) N2Bytes() int        { return p.n2Bytes }
func (p Parameters) CPKEBytes() int      { return p.cPKEBytes }
func (p Parameters) CKEMBytes() int      { return p.cKEMBytes }

// String implements fmt.Stringer for log and CLI output.
func (p Parameters) String() string {
	return fmt.Sprintf("%s(n=%d,k=%d,w=%d,security=%d)", p.lit.Name, p.lit.N, p.lit.K, p.lit.W, p.lit.SecurityLevel)
}
