package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedSetsAreConsistent(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name(), func(t *testing.T) {
			require.Equal(t, p.K()/8, p.KBytes())
			require.Equal(t, (p.N()+7)/8, p.NBytes())
			require.Equal(t, p.N1()*p.N2(), p.N1N2Bits())
			require.Equal(t, p.NBytes()+p.N1N2Bytes(), p.CPKEBytes())
			require.Equal(t, p.CPKEBytes()+p.SaltBytes(), p.CKEMBytes())
			require.Equal(t, p.KBytes(), p.K1(), "RS message length must equal K in bytes")
			require.Equal(t, p.N1(), p.K1()+2*p.Delta(), "n1 = k1 + 2*delta")
			require.Equal(t, 128*p.RMMultiplicity(), p.N2())
		})
	}
}

func TestSecurityLevels(t *testing.T) {
	require.Equal(t, 128, HQC1().SecurityLevel())
	require.Equal(t, 192, HQC3().SecurityLevel())
	require.Equal(t, 256, HQC5().SecurityLevel())
}

func TestByName(t *testing.T) {
	p, ok := ByName("HQC-1")
	require.True(t, ok)
	require.Equal(t, "HQC-1", p.Name())

	_, ok = ByName("HQC-nope")
	require.False(t, ok)
}

func TestGeneratorPolynomialLengths(t *testing.T) {
	require.Len(t, g1Poly, 2*15+1)
	require.Len(t, g2Poly, 2*16+1)
	require.Len(t, g3Poly, 2*29+1)
}
