package kem

import (
	"testing"

	"github.com/pqclabs/hqc/params"
	"github.com/stretchr/testify/require"
)

func seed32(b byte) [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

func salt16(b byte) [16]byte {
	var s [16]byte
	for i := range s {
		s[i] = b + byte(i)
	}
	return s
}

func TestEncapsDecapsAgreeFull(t *testing.T) {
	p := params.HQC1()
	ek, dk, err := KeygenFromSeed(p, seed32(1), Full)
	require.NoError(t, err)

	m := make([]byte, p.KBytes())
	for i := range m {
		m[i] = byte(i * 3)
	}

	k, c, err := EncapsWith(p, ek, m, salt16(2))
	require.NoError(t, err)

	got := Decaps(p, dk, c)
	require.Equal(t, k, got)
}

func TestEncapsDecapsAgreeCompressed(t *testing.T) {
	p := params.HQC1()
	ek, dk, err := KeygenFromSeed(p, seed32(3), Compressed)
	require.NoError(t, err)

	m := make([]byte, p.KBytes())
	for i := range m {
		m[i] = byte(i + 1)
	}

	k, c, err := EncapsWith(p, ek, m, salt16(4))
	require.NoError(t, err)

	got := Decaps(p, dk, c)
	require.Equal(t, k, got)
}

func TestDecapsImplicitRejectionOnCorruptedCiphertext(t *testing.T) {
	p := params.HQC1()
	ek, dk, err := KeygenFromSeed(p, seed32(5), Full)
	require.NoError(t, err)

	m := make([]byte, p.KBytes())
	k, c, err := EncapsWith(p, ek, m, salt16(6))
	require.NoError(t, err)

	c.CPKE.U[0] ^= 0xFF

	got := Decaps(p, dk, c)
	require.NotEqual(t, k, got)

	got2 := Decaps(p, dk, c)
	require.Equal(t, got, got2, "implicit rejection key must be deterministic for the same corrupted ciphertext")
}

func TestFullAndCompressedDkKEMAgree(t *testing.T) {
	p := params.HQC1()
	seed := seed32(7)
	ekFull, dkFull, err := KeygenFromSeed(p, seed, Full)
	require.NoError(t, err)
	ekCompressed, dkCompressed, err := KeygenFromSeed(p, seed, Compressed)
	require.NoError(t, err)

	ekFullBytes, err := ekFull.MarshalBinary()
	require.NoError(t, err)
	ekCompressedBytes, err := ekCompressed.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, ekFullBytes, ekCompressedBytes)

	m := make([]byte, p.KBytes())
	k, c, err := EncapsWith(p, ekFull, m, salt16(8))
	require.NoError(t, err)

	require.Equal(t, Decaps(p, dkFull, c), Decaps(p, dkCompressed, c))
	require.Equal(t, k, Decaps(p, dkCompressed, c))
}

func TestUnmarshalCiphertextRejectsBadLength(t *testing.T) {
	p := params.HQC1()
	_, err := UnmarshalCiphertext(p, make([]byte, 3))
	require.Error(t, err)
}
