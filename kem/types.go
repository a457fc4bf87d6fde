// Package kem implements HQC-KEM: an IND-CCA2 key-encapsulation mechanism
// built over pke's IND-CPA encryption via an HHK-style transform with
// implicit rejection. Key and ciphertext shapes follow the byte layouts in
// the external-interface table (ekKEM = ekPKE; dkKEM is a tagged Full or
// Compressed variant; cKEM = cPKE‖salt).
package kem

import (
	"fmt"

	"github.com/pqclabs/hqc/params"
	"github.com/pqclabs/hqc/pke"
)

// LengthError reports a byte-length mismatch, mirroring pke.LengthError at
// the KEM layer.
type LengthError struct {
	Expected, Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("kem: invalid length: expected %d, got %d", e.Expected, e.Got)
}

// EncryptionKey is ekKEM, identical in shape to ekPKE.
type EncryptionKey = pke.EncryptionKey

// Format selects which of the two equivalent dkKEM shapes Keygen produces.
type Format int

const (
	// Full stores the expanded key material directly: ek, dkPKE, sigma,
	// and the originating seed, trading storage for avoiding re-derivation
	// on every Decapsulate call.
	Full Format = iota
	// Compressed stores only the 32-byte seed_kem, re-deriving everything
	// else on each Decapsulate call.
	Compressed
)

// DecryptionKey is dkKEM: either the Full tuple or just the Compressed seed.
// Exactly one of the two shapes is populated, selected by Fmt.
type DecryptionKey struct {
	Fmt Format

	// Full fields.
	EK    *EncryptionKey
	DKPKE *pke.DecryptionKey
	Sigma []byte
	Seed  [32]byte

	// Compressed field; also holds the seed for Full (both shapes carry it).
	SeedKEM [32]byte
}

// MarshalBinary encodes dk per its Fmt: Full as ek‖dkPKE‖sigma‖seed_kem,
// Compressed as the raw 32-byte seed.
func (dk *DecryptionKey) MarshalBinary() ([]byte, error) {
	if dk.Fmt == Compressed {
		out := make([]byte, 32)
		copy(out, dk.SeedKEM[:])
		return out, nil
	}

	ekBytes, err := dk.EK.MarshalBinary()
	if err != nil {
		return nil, err
	}
	dkBytes, err := dk.DKPKE.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(ekBytes)+len(dkBytes)+len(dk.Sigma)+32)
	out = append(out, ekBytes...)
	out = append(out, dkBytes...)
	out = append(out, dk.Sigma...)
	out = append(out, dk.SeedKEM[:]...)
	return out, nil
}

// Ciphertext is cKEM = (cPKE, salt).
type Ciphertext struct {
	CPKE *pke.Ciphertext
	Salt [16]byte
}

// MarshalBinary encodes c as cPKE‖salt.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	cpkeBytes, err := c.CPKE.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(cpkeBytes)+16)
	out = append(out, cpkeBytes...)
	out = append(out, c.Salt[:]...)
	return out, nil
}

// UnmarshalCiphertext decodes a cKEM byte string for parameter set p.
func UnmarshalCiphertext(p params.Parameters, data []byte) (*Ciphertext, error) {
	expected := p.CKEMBytes()
	if len(data) != expected {
		return nil, &LengthError{Expected: expected, Got: len(data)}
	}
	cpke, err := pke.UnmarshalCiphertext(p, data[:p.CPKEBytes()])
	if err != nil {
		return nil, err
	}
	var salt [16]byte
	copy(salt[:], data[p.CPKEBytes():])
	return &Ciphertext{CPKE: cpke, Salt: salt}, nil
}
