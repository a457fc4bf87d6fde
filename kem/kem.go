package kem

import (
	"github.com/pqclabs/hqc/params"
	"github.com/pqclabs/hqc/pke"
	"github.com/pqclabs/hqc/xof"
)

// KeygenFromSeed runs HQC-KEM.Keygen_from_seed(seedKEM, format) -> (ek, dk).
func KeygenFromSeed(p params.Parameters, seedKEM [32]byte, format Format) (*EncryptionKey, *DecryptionKey, error) {
	iOut := xof.I(seedKEM[:])

	var seedPKE [32]byte
	copy(seedPKE[:], iOut[:32])
	sigma := append([]byte(nil), iOut[32:32+p.KBytes()]...)

	ek, dkPKE := pke.Keygen(p, seedPKE)

	if format == Compressed {
		return ek, &DecryptionKey{Fmt: Compressed, SeedKEM: seedKEM}, nil
	}

	return ek, &DecryptionKey{
		Fmt:     Full,
		EK:      ek,
		DKPKE:   dkPKE,
		Sigma:   sigma,
		Seed:    seedKEM,
		SeedKEM: seedKEM,
	}, nil
}

// EncapsWith runs HQC-KEM.Encapsulate(ek, m, salt) -> (K, cKEM). The
// standard Encapsulate draws m and salt uniformly at random; EncapsWith
// takes them as explicit arguments so callers (and tests) control them.
func EncapsWith(p params.Parameters, ek *EncryptionKey, m []byte, salt [16]byte) ([32]byte, *Ciphertext, error) {
	var zero [32]byte

	if len(m) != p.KBytes() {
		return zero, nil, &LengthError{Expected: p.KBytes(), Got: len(m)}
	}

	ekBytes, err := ek.MarshalBinary()
	if err != nil {
		return zero, nil, err
	}
	hEK := xof.H(ekBytes)

	gOut := xof.G(hEK[:], m, salt[:])
	var k, theta [32]byte
	copy(k[:], gOut[:32])
	copy(theta[:], gOut[32:64])

	cPKE, err := pke.Encrypt(p, ek, m, theta)
	if err != nil {
		return zero, nil, err
	}

	return k, &Ciphertext{CPKE: cPKE, Salt: salt}, nil
}

// Decaps runs HQC-KEM.Decapsulate(dk, c) -> K. It never fails visibly: any
// PKE decryption or re-encryption failure is masked by an implicit
// rejection key derived from sigma, so the caller cannot distinguish "wrong
// key" from "malformed ciphertext" from any other decoding failure.
func Decaps(p params.Parameters, dk *DecryptionKey, c *Ciphertext) [32]byte {
	ek, dkPKE, sigma := resolveFull(p, dk)

	ekBytes, err := ek.MarshalBinary()
	if err != nil {
		// ek is reconstructed by pke.Keygen or carried from KeygenFromSeed;
		// its shape is always valid, so MarshalBinary cannot fail here.
		panic(err)
	}
	hEK := xof.H(ekBytes)

	cKEMBytes, err := c.MarshalBinary()
	if err != nil {
		panic(err)
	}
	kBar := xof.J(hEK[:], sigma, cKEMBytes)

	mPrime, ok := pke.Decrypt(p, dkPKE, c.CPKE)
	if !ok {
		return kBar
	}

	gOut := xof.G(hEK[:], mPrime, c.Salt[:])
	var kPrime, thetaPrime [32]byte
	copy(kPrime[:], gOut[:32])
	copy(thetaPrime[:], gOut[32:64])

	cPrime, err := pke.Encrypt(p, ek, mPrime, thetaPrime)
	if err != nil {
		return kBar
	}

	cPrimeBytes, err := cPrime.MarshalBinary()
	if err != nil {
		return kBar
	}
	cPKEBytes, err := c.CPKE.MarshalBinary()
	if err != nil {
		return kBar
	}

	if !constantTimeEqual(cPrimeBytes, cPKEBytes) {
		return kBar
	}
	return kPrime
}

// resolveFull returns (ek, dkPKE, sigma) for dk, re-deriving them from
// seed_kem when dk is Compressed.
func resolveFull(p params.Parameters, dk *DecryptionKey) (*EncryptionKey, *pke.DecryptionKey, []byte) {
	if dk.Fmt == Full {
		return dk.EK, dk.DKPKE, dk.Sigma
	}

	iOut := xof.I(dk.SeedKEM[:])
	var seedPKE [32]byte
	copy(seedPKE[:], iOut[:32])
	sigma := append([]byte(nil), iOut[32:32+p.KBytes()]...)

	ek, dkPKE := pke.Keygen(p, seedPKE)
	return ek, dkPKE, sigma
}

// constantTimeEqual compares two equal-length byte slices in constant time:
// XOR every byte pair into an accumulator and test it against zero only at
// the end, with no early exit on mismatch. Unequal lengths short-circuit —
// HQC ciphertexts of a fixed parameter set are always the same length, so
// this branch only ever fires on a caller error, not on secret data.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}
