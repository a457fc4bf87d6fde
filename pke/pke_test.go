package pke

import (
	"testing"

	"github.com/google/go-cmp/cmp"
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

func TestKeygenDeterministic(t *testing.T) {
	p := params.HQC1()
	ek1, dk1 := Keygen(p, seed32(1))
	ek2, dk2 := Keygen(p, seed32(1))

	require.Equal(t, ek1.SeedEK, ek2.SeedEK)
	require.Equal(t, ek1.S, ek2.S)
	require.Equal(t, dk1.SeedDK, dk2.SeedDK)
}

func TestKeygenByteSizes(t *testing.T) {
	p := params.HQC1()
	ek, dk := Keygen(p, seed32(2))

	ekBytes, err := ek.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, ekBytes, 32+p.NBytes())

	dkBytes, err := dk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, dkBytes, 32)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	p := params.HQC1()
	ek, dk := Keygen(p, seed32(3))

	m := make([]byte, p.KBytes())
	for i := range m {
		m[i] = byte(i * 7)
	}

	c, err := Encrypt(p, ek, m, seed32(4))
	require.NoError(t, err)

	cBytes, err := c.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, cBytes, p.CPKEBytes())

	got, ok := Decrypt(p, dk, c)
	require.True(t, ok)
	require.Equal(t, m, got)
}

func TestEncryptRejectsWrongMessageLength(t *testing.T) {
	p := params.HQC1()
	ek, _ := Keygen(p, seed32(5))
	_, err := Encrypt(p, ek, make([]byte, p.KBytes()-1), seed32(6))
	require.Error(t, err)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
}

func TestEncryptionKeyRoundTrip(t *testing.T) {
	p := params.HQC1()
	ek, _ := Keygen(p, seed32(7))
	b, err := ek.MarshalBinary()
	require.NoError(t, err)

	got, err := UnmarshalEncryptionKey(p, b)
	require.NoError(t, err)
	if diff := cmp.Diff(ek, got); diff != "" {
		t.Errorf("round-tripped EncryptionKey mismatch (-want +got):\n%s", diff)
	}
}

func TestCiphertextRejectsBadLength(t *testing.T) {
	p := params.HQC1()
	_, err := UnmarshalCiphertext(p, make([]byte, 3))
	require.Error(t, err)
}
