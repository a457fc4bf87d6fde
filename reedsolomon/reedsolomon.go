// Package reedsolomon implements the shortened Reed–Solomon outer code over
// GF(256) used as the outer layer of HQC's RMRS concatenated code.
//
// Encoding works on the high-degree-first (big-endian) polynomial
// representation from gf256.Polynomial. Decoding, following the reference
// HQC decoder, reverses the received word into a low-form representation
// (index i holds the coefficient of x^i) because syndromes, the
// Berlekamp–Massey locator, and the Chien/Forney search are all naturally
// expressed that way.
package reedsolomon

import (
	"fmt"

	"github.com/pqclabs/hqc/gf256"
)

// ErrorKind distinguishes the two ways RS decoding can fail: a structural
// rejection (too many errors to possibly correct) versus a numeric residual
// that survives "correction" (the corrected word still fails its own
// syndrome check).
type ErrorKind int

const (
	// Uncorrectable means the received word has more likely errors than the
	// code can structurally handle: wrong length, locator degree above
	// delta, or a Chien root count that doesn't match the locator degree.
	Uncorrectable ErrorKind = iota
	// CorrectionFailed means the numeric correction step did not produce a
	// valid codeword: a zero formal derivative at an error location, or a
	// non-zero syndrome after "correcting".
	CorrectionFailed
)

func (k ErrorKind) String() string {
	switch k {
	case Uncorrectable:
		return "uncorrectable"
	case CorrectionFailed:
		return "correction failed"
	default:
		return "unknown"
	}
}

// Error is returned by Decode when the received word could not be decoded.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string { return "reedsolomon: " + e.Kind.String() }

// Code is a shortened Reed–Solomon code RS(n1, k1, G) over GF(256), with
// delta = (n1-k1)/2 correctable errors and a generator polynomial of degree
// 2*delta (len(G) == 2*delta+1).
type Code struct {
	N1    int
	K1    int
	Delta int
	Gen   gf256.Polynomial
}

// New builds a Code. It panics if len(gen) != 2*delta+1 for delta=(n1-k1)/2,
// the same invariant the teacher's `rlwe.Parameters` constructors check on
// their own literal inputs.
func New(n1, k1 int, gen gf256.Polynomial) *Code {
	delta := (n1 - k1) / 2
	if len(gen) != 2*delta+1 {
		panic(fmt.Sprintf("reedsolomon: generator has degree %d, want %d", len(gen)-1, 2*delta))
	}
	return &Code{N1: n1, K1: k1, Delta: delta, Gen: gen}
}

// Encode encodes a k1-byte message into an n1-byte codeword: append 2*delta
// zero bytes, divide by the generator, and emit message||parity. The message
// must be exactly k1 bytes; shorter messages are not zero-padded but rejected
// with an Uncorrectable error, as are longer ones.
func (c *Code) Encode(message []byte) ([]byte, error) {
	if len(message) != c.K1 {
		return nil, &Error{Kind: Uncorrectable}
	}

	nk := c.N1 - c.K1
	dividend := make(gf256.Polynomial, c.K1+nk)
	copy(dividend, message)

	_, remainder := gf256.DivRem(dividend, c.Gen)

	codeword := make([]byte, c.N1)
	copy(codeword, message)
	copy(codeword[c.N1-len(remainder):], remainder)
	return codeword, nil
}

// Decode decodes a received n1-byte word, correcting up to delta errors, and
// returns the original k1-byte message.
func (c *Code) Decode(received []byte) ([]byte, error) {
	if len(received) != c.N1 {
		return nil, &Error{Kind: Uncorrectable}
	}

	rLow := reverse(received)
	twoDelta := 2 * c.Delta
	syndromes := make([]byte, twoDelta)
	hasError := false
	for i := 0; i < twoDelta; i++ {
		s := evalLow(rLow, gf256.PowAlpha(i+1))
		syndromes[i] = s
		if s != 0 {
			hasError = true
		}
	}

	if !hasError {
		return received[:c.K1], nil
	}

	sigma, l, err := berlekampMassey(syndromes, c.Delta)
	if err != nil {
		return nil, err
	}

	locations := chienSearch(sigma, c.N1)
	if len(locations) != l {
		return nil, &Error{Kind: Uncorrectable}
	}

	omegaFull := mulLow(syndromes, sigma)
	omega := omegaFull
	if len(omega) > l+1 {
		omega = omega[:l+1]
	}

	corrected := append([]byte(nil), rLow...)
	for _, loc := range locations {
		xInv := gf256.PowAlpha(255 - (loc % 255))
		omegaVal := evalLow(omega, xInv)
		sigmaPrime := formalDerivative(sigma, xInv)
		if sigmaPrime == 0 {
			return nil, &Error{Kind: CorrectionFailed}
		}
		errVal := gf256.Mul(omegaVal, gf256.Inv(sigmaPrime))
		corrected[loc] ^= errVal
	}

	for i := 0; i < twoDelta; i++ {
		if evalLow(corrected, gf256.PowAlpha(i+1)) != 0 {
			return nil, &Error{Kind: CorrectionFailed}
		}
	}

	out := reverse(corrected)
	return out[:c.K1], nil
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// evalLow evaluates a low-form polynomial (p[i] is the coefficient of x^i)
// at x via Horner's method starting from the highest-index term.
func evalLow(p []byte, x byte) byte {
	var acc byte
	for i := len(p) - 1; i >= 0; i-- {
		acc = gf256.Mul(acc, x) ^ p[i]
	}
	return acc
}

// formalDerivative evaluates sigma'(x) = sum_{i odd} sigma_i * x^(i-1), the
// Open Question resolved independently per SPEC_FULL.md/DESIGN.md: only the
// odd-indexed coefficients of the low-form locator contribute, each
// multiplied by x^(i-1).
func formalDerivative(sigma []byte, x byte) byte {
	var val byte
	xPow := byte(1)
	xSquared := gf256.Mul(x, x)
	for i := 1; i < len(sigma); i += 2 {
		val ^= gf256.Mul(sigma[i], xPow)
		xPow = gf256.Mul(xPow, xSquared)
	}
	return val
}

func addLow(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var ai, bi byte
		if i < len(a) {
			ai = a[i]
		}
		if i < len(b) {
			bi = b[i]
		}
		out[i] = ai ^ bi
	}
	return trimLow(out)
}

func mulLow(a, b []byte) []byte {
	if isZeroLow(a) || isZeroLow(b) {
		return []byte{0}
	}
	out := make([]byte, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			out[i+j] ^= gf256.Mul(ai, bj)
		}
	}
	return trimLow(out)
}

func isZeroLow(p []byte) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// trimLow drops trailing (high-degree) zero coefficients, keeping at least
// one byte, mirroring trim() on the big-endian side but from the other end.
func trimLow(p []byte) []byte {
	i := len(p)
	for i > 1 && p[i-1] == 0 {
		i--
	}
	return p[:i]
}

// berlekampMassey computes the error-locator polynomial sigma (low-form) and
// its degree l from the syndrome sequence. It rejects when l exceeds delta.
func berlekampMassey(s []byte, delta int) (sigma []byte, l int, err error) {
	n := len(s)
	sigma = []byte{1}
	bPoly := []byte{1}
	l = 0
	m := 1
	b := byte(1)

	for r := 0; r < n; r++ {
		d := s[r]
		for i := 1; i <= l; i++ {
			if len(sigma) > i && r-i >= 0 {
				d ^= gf256.Mul(sigma[i], s[r-i])
			}
		}

		if d == 0 {
			m++
			continue
		}

		if 2*l <= r {
			t := append([]byte(nil), sigma...)
			dInvB := gf256.Mul(d, gf256.Inv(b))
			correction := make([]byte, m, m+len(bPoly))
			for _, c := range bPoly {
				correction = append(correction, gf256.Mul(c, dInvB))
			}
			sigma = addLow(sigma, correction)
			bPoly = t
			l = r + 1 - l
			b = d
			m = 1
		} else {
			dInvB := gf256.Mul(d, gf256.Inv(b))
			correction := make([]byte, m, m+len(bPoly))
			for _, c := range bPoly {
				correction = append(correction, gf256.Mul(c, dInvB))
			}
			sigma = addLow(sigma, correction)
			m++
		}
	}

	if l > delta {
		return nil, 0, &Error{Kind: Uncorrectable}
	}
	return sigma, l, nil
}

// chienSearch returns the indices j in [0,n) where sigma(alpha^(255-j mod 255))
// vanishes: the candidate error locations.
func chienSearch(sigma []byte, n int) []int {
	var roots []int
	for j := 0; j < n; j++ {
		xInv := gf256.PowAlpha(255 - (j % 255))
		if evalLow(sigma, xInv) == 0 {
			roots = append(roots, j)
		}
	}
	return roots
}
