// Package sampling draws the random vectors HQC's PKE needs — uniform
// length-n cyclic vectors and fixed-weight support sets — from an xof.Stream.
// The struct-wrapping-a-stream shape follows the teacher's
// ring.UniformSampler (ring/sampler_uniform.go), which wraps a PRNG behind a
// sampler object rather than threading randomness through free functions.
package sampling

import (
	"encoding/binary"
	"sort"

	"github.com/pqclabs/hqc/cyclic"
	"github.com/pqclabs/hqc/xof"
)

// Sampler draws vectors and supports from a single xof.Stream. It holds no
// state of its own beyond the stream, so each call advances the stream by
// exactly the number of bytes it consumes — callers that need deterministic,
// reproducible output across HQC's fixed sampling order (e.g. r2, e, r1 in
// that order for PKE.Encrypt) must share one Sampler across the whole
// operation.
type Sampler struct {
	stream *xof.Stream
}

// New wraps an already-seeded xof.Stream in a Sampler.
func New(stream *xof.Stream) *Sampler {
	return &Sampler{stream: stream}
}

// Vector draws a uniformly random length-n cyclic vector by reading
// ceil(n/8) bytes from the stream and masking off the high bits of the
// partial last byte, following the reference sampler's sample_vect.
func (s *Sampler) Vector(n int) *cyclic.Vector {
	nBytes := (n + 7) / 8
	b := s.stream.Next(nBytes)

	if rem := n & 7; rem != 0 {
		mask := byte(1<<uint(rem)) - 1
		b[len(b)-1] &= mask
	}

	return cyclic.FromBytesLEBits(n, b)
}

// randU32 reads 4 little-endian bytes from the stream as a uint32, the
// reference sampler's rand_bits.
func (s *Sampler) randU32() uint32 {
	b := s.stream.Next(4)
	return binary.LittleEndian.Uint32(b)
}

// randBounded draws a value in [0, bound) by reduction modulo bound. This is
// the reference implementation's rand(): it accepts the resulting modulo
// bias (bound is never close to 2^32 for HQC's parameter sets) rather than
// rejection-sampling, to match the reference construction byte-for-byte.
// The Stern solver's window sampler does not use this; it has its own
// rejection-sampling randBounded in package isd.
func (s *Sampler) randBounded(bound int) int {
	return int(s.randU32()) % bound
}

// FixedWeightSupport draws a uniformly random w-subset of {0,...,n-1} using
// a reservoir-style Fisher-Yates variant: for i counting down from w-1 to 0,
// pick l in [i, n) and either place it at position i or, if l is already
// used, place i itself — then sort the result. This mirrors the reference
// generate_random_support exactly, including its sequencing of XOF reads.
func (s *Sampler) FixedWeightSupport(n, w int) []int {
	if w > n {
		panic("sampling: weight cannot exceed n")
	}

	pos := make([]int, w)
	used := make([]bool, n)

	for iRev := 0; iRev < w; iRev++ {
		i := w - 1 - iRev
		l := i + s.randBounded(n-i)
		chosen := l
		if used[l] {
			chosen = i
		}
		pos[i] = chosen
		used[chosen] = true
	}

	sort.Ints(pos)
	return pos
}

// FixedWeightVector draws a uniformly random length-n, weight-w cyclic
// vector by sampling a support set and converting it to a bit vector.
func (s *Sampler) FixedWeightVector(n, w int) *cyclic.Vector {
	support := s.FixedWeightSupport(n, w)
	return cyclic.FromIndices(n, support)
}
