// Package pke implements HQC-PKE: the IND-CPA public-key encryption scheme
// the KEM layer wraps. Key and ciphertext types follow the byte layouts in
// the external-interface table (seed_ek‖s, seed_dk, u‖v), each with a
// MarshalBinary/UnmarshalBinary pair in the teacher's style (see
// ring/poly.go's WriteTo/ReadFrom and bgv.Parameters's MarshalBinary for the
// convention this follows: a fixed-shape binary encoding, validated on read).
package pke

import "github.com/pqclabs/hqc/params"

// EncryptionKey is ekPKE = (seed_ek, s). s has exactly params.NBytes() bytes.
type EncryptionKey struct {
	SeedEK [32]byte
	S      []byte
}

// NewEncryptionKey validates s's length against p before constructing ek.
func NewEncryptionKey(p params.Parameters, seedEK [32]byte, s []byte) (*EncryptionKey, error) {
	if len(s) != p.NBytes() {
		return nil, &LengthError{Expected: p.NBytes(), Got: len(s)}
	}
	return &EncryptionKey{SeedEK: seedEK, S: s}, nil
}

// MarshalBinary encodes ek as seed_ek‖s.
func (ek *EncryptionKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 32+len(ek.S))
	out = append(out, ek.SeedEK[:]...)
	out = append(out, ek.S...)
	return out, nil
}

// UnmarshalEncryptionKey decodes an ekPKE byte string for parameter set p.
func UnmarshalEncryptionKey(p params.Parameters, data []byte) (*EncryptionKey, error) {
	expected := 32 + p.NBytes()
	if len(data) != expected {
		return nil, &LengthError{Expected: expected, Got: len(data)}
	}
	var seedEK [32]byte
	copy(seedEK[:], data[:32])
	s := append([]byte(nil), data[32:]...)
	return &EncryptionKey{SeedEK: seedEK, S: s}, nil
}

// DecryptionKey is dkPKE = seed_dk.
type DecryptionKey struct {
	SeedDK [32]byte
}

// MarshalBinary encodes dk as its raw 32-byte seed.
func (dk *DecryptionKey) MarshalBinary() ([]byte, error) {
	out := make([]byte, 32)
	copy(out, dk.SeedDK[:])
	return out, nil
}

// UnmarshalDecryptionKey decodes a dkPKE byte string.
func UnmarshalDecryptionKey(data []byte) (*DecryptionKey, error) {
	if len(data) != 32 {
		return nil, &LengthError{Expected: 32, Got: len(data)}
	}
	var seedDK [32]byte
	copy(seedDK[:], data)
	return &DecryptionKey{SeedDK: seedDK}, nil
}

// Ciphertext is cPKE = (u, v).
type Ciphertext struct {
	U []byte
	V []byte
}

// NewCiphertext validates u and v's lengths against p.
func NewCiphertext(p params.Parameters, u, v []byte) (*Ciphertext, error) {
	if len(u) != p.NBytes() {
		return nil, &LengthError{Expected: p.NBytes(), Got: len(u)}
	}
	if len(v) != p.N1N2Bytes() {
		return nil, &LengthError{Expected: p.N1N2Bytes(), Got: len(v)}
	}
	return &Ciphertext{U: u, V: v}, nil
}

// MarshalBinary encodes c as u‖v.
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, len(c.U)+len(c.V))
	out = append(out, c.U...)
	out = append(out, c.V...)
	return out, nil
}

// UnmarshalCiphertext decodes a cPKE byte string for parameter set p.
func UnmarshalCiphertext(p params.Parameters, data []byte) (*Ciphertext, error) {
	expected := p.NBytes() + p.N1N2Bytes()
	if len(data) != expected {
		return nil, &LengthError{Expected: expected, Got: len(data)}
	}
	u := append([]byte(nil), data[:p.NBytes()]...)
	v := append([]byte(nil), data[p.NBytes():]...)
	return &Ciphertext{U: u, V: v}, nil
}
