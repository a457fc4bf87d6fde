package sampling

import (
	"testing"

	"github.com/pqclabs/hqc/xof"
	"github.com/stretchr/testify/require"
)

func TestVectorLength(t *testing.T) {
	s := New(xof.NewStream([]byte("seed")))
	v := s.Vector(13)
	require.Equal(t, 13, v.N())
	require.LessOrEqual(t, v.Weight(), 13)
}

func TestVectorDeterministic(t *testing.T) {
	a := New(xof.NewStream([]byte("seed"))).Vector(100)
	b := New(xof.NewStream([]byte("seed"))).Vector(100)
	require.True(t, a.Equal(b))
}

func TestFixedWeightSupportHasCorrectWeight(t *testing.T) {
	s := New(xof.NewStream([]byte("weight-seed")))
	for trial := 0; trial < 20; trial++ {
		support := s.FixedWeightSupport(200, 40)
		require.Len(t, support, 40)

		seen := make(map[int]bool, len(support))
		for _, idx := range support {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 200)
			require.False(t, seen[idx], "support must not repeat an index")
			seen[idx] = true
		}
	}
}

func TestFixedWeightSupportSorted(t *testing.T) {
	s := New(xof.NewStream([]byte("sorted-seed")))
	support := s.FixedWeightSupport(500, 66)
	for i := 1; i < len(support); i++ {
		require.Less(t, support[i-1], support[i])
	}
}

func TestFixedWeightVectorMatchesSupport(t *testing.T) {
	s := New(xof.NewStream([]byte("vector-seed")))
	v := s.FixedWeightVector(300, 75)
	require.Equal(t, 75, v.Weight())
}
