package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulIdentityAndZero(t *testing.T) {
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(a), Mul(byte(a), 1))
		require.Equal(t, byte(0), Mul(byte(a), 0))
	}
}

func TestMulCommutative(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			require.Equal(t, Mul(byte(a), byte(b)), Mul(byte(b), byte(a)))
		}
	}
}

func TestInvIsMultiplicativeInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		require.Equal(t, byte(1), Mul(byte(a), Inv(byte(a))))
	}
}

func TestDivUndoesMul(t *testing.T) {
	for a := 1; a < 256; a += 5 {
		for b := 1; b < 256; b += 7 {
			product := Mul(byte(a), byte(b))
			require.Equal(t, byte(a), Div(product, byte(b)))
		}
	}
}

func TestPowAlphaCyclesWithOrder255(t *testing.T) {
	require.Equal(t, PowAlpha(0), PowAlpha(255))
	require.Equal(t, PowAlpha(1), PowAlpha(256))
	require.NotEqual(t, PowAlpha(0), PowAlpha(1))
}

func TestAddIsXorAndSelfInverse(t *testing.T) {
	require.Equal(t, byte(0), Add(0x5A, 0x5A))
	require.Equal(t, byte(0xFF), Add(0xAA, 0x55))
	require.Equal(t, Add(3, 7), Sub(3, 7))
}
