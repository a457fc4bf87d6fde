// Package xof implements HQC's hash layer: four fixed-output SHA3 KDFs (G,
// H, I, J) and one SHAKE-256-based extendable output stream, each with a
// domain label appended to the hash input so the same seed never produces
// colliding output across uses. This mirrors the teacher's dbfv.PRNG, which
// wraps a single keyed hash.Hash behind a small stateful struct
// (dbfv/collective_CRS.go); here the "key" is a domain label rather than an
// explicit PRNG key, and the underlying primitive is golang.org/x/crypto/sha3
// rather than blake2b.
package xof

import (
	"golang.org/x/crypto/sha3"
)

// Domain labels, appended after all input parts and before finalization, so
// a hash call for one purpose can never be replayed as another.
var (
	domainXOF = []byte("HQC/XOF")
	domainG   = []byte("HQC/G")
	domainI   = []byte("HQC/I")
	domainH   = []byte("HQC/H")
	domainJ   = []byte("HQC/J")
)

func sha3_256WithDomain(domain []byte, parts ...[]byte) [32]byte {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	h.Write(domain)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func sha3_512WithDomain(domain []byte, parts ...[]byte) [64]byte {
	h := sha3.New512()
	for _, p := range parts {
		h.Write(p)
	}
	h.Write(domain)
	var out [64]byte
	h.Sum(out[:0])
	return out
}

// G derives 64 bytes of output: the KEM's (K, theta) pair, K being the first
// 32 bytes and theta the encryption randomness seed, domain-separated from
// H/I/J/XOF.
func G(parts ...[]byte) [64]byte { return sha3_512WithDomain(domainG, parts...) }

// I derives 64 bytes of output used to expand a keygen seed: seed_pke into
// (seed_dk, seed_ek) for PKE, or seed_kem into (seed_pke, sigma) for KEM.
func I(parts ...[]byte) [64]byte { return sha3_512WithDomain(domainI, parts...) }

// H derives 32 bytes of output used to compress the encryption key; the KEM
// feeds H(ek) into G and J.
func H(parts ...[]byte) [32]byte { return sha3_256WithDomain(domainH, parts...) }

// J derives 32 bytes of output used as the KEM's implicit-rejection key.
func J(parts ...[]byte) [32]byte { return sha3_256WithDomain(domainJ, parts...) }

// Stream is a SHAKE-256 extendable output stream, seeded once and then read
// from incrementally — the source of randomness behind fixed-weight vector
// sampling and uniform vector sampling alike. It is not safe for concurrent
// use by multiple goroutines.
type Stream struct {
	reader sha3.ShakeHash
}

// NewStream seeds a fresh SHAKE-256 stream from seed, domain-separated from
// the fixed-output hashes above.
func NewStream(seed []byte) *Stream {
	s := sha3.NewShake256()
	s.Write(seed)
	s.Write(domainXOF)
	return &Stream{reader: s}
}

// Read fills buf with the next len(buf) bytes of the stream.
func (s *Stream) Read(buf []byte) {
	if _, err := s.reader.Read(buf); err != nil {
		// sha3.ShakeHash.Read never returns an error; a non-nil error here
		// would mean the standard library's Hash contract was violated.
		panic("xof: shake256 read failed: " + err.Error())
	}
}

// Next returns the next n bytes of the stream as a freshly allocated slice.
func (s *Stream) Next(n int) []byte {
	buf := make([]byte, n)
	s.Read(buf)
	return buf
}
