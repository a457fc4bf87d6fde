package reedmuller

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripAllBytesBothMultiplicities(t *testing.T) {
	for _, mu := range []int{3, 5} {
		c := New(mu)
		for sym := 0; sym < 256; sym++ {
			cw := c.EncodeSymbol(byte(sym))
			got, err := c.DecodeSymbol(cw)
			require.NoError(t, err)
			require.Equal(t, byte(sym), got, "mu=%d sym=%d", mu, sym)
		}
	}
}

func TestDuplicationBlocksIdentical(t *testing.T) {
	c := New(5)
	cw := c.EncodeSymbol(0xA5)
	base := cw[:NBytes]
	for t2 := 1; t2 < c.Multiplicity; t2++ {
		require.Equal(t, base, cw[t2*NBytes:(t2+1)*NBytes])
	}
}

func TestLinearity(t *testing.T) {
	c := New(3)
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			ea := c.EncodeSymbol(byte(a))
			eb := c.EncodeSymbol(byte(b))
			eaXorB := c.EncodeSymbol(byte(a) ^ byte(b))

			xored := make([]byte, len(ea))
			for i := range xored {
				xored[i] = ea[i] ^ eb[i]
			}
			require.Equal(t, eaXorB, xored, "a=%d b=%d", a, b)
		}
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	c := New(3)
	_, err := c.DecodeSymbol(make([]byte, 10))
	require.Error(t, err)
	var invalidLen *ErrInvalidLength
	require.ErrorAs(t, err, &invalidLen)
}
