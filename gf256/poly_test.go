package gf256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegreeAndIsZero(t *testing.T) {
	require.Equal(t, -1, Zero().Degree())
	require.True(t, Zero().IsZero())

	p := Polynomial{1, 0, 1}
	require.Equal(t, 2, p.Degree())
	require.False(t, p.IsZero())
}

func TestAddSelfInverse(t *testing.T) {
	a := Polynomial{1, 2, 3}
	b := Polynomial{0, 5}
	sum := AddPoly(a, b)
	require.True(t, AddPoly(sum, b).Degree() >= 0 || AddPoly(sum, b).IsZero())
	require.Equal(t, a, AddPoly(sum, b))
}

func TestMultiplyDegreeAdds(t *testing.T) {
	a := Polynomial{1, 1} // x+1
	b := Polynomial{1, 0, 1} // x^2+1
	product := Multiply(a, b)
	require.Equal(t, a.Degree()+b.Degree(), product.Degree())
}

func TestMultiplyByZeroIsZero(t *testing.T) {
	a := Polynomial{1, 2, 3}
	require.True(t, Multiply(a, Zero()).IsZero())
}

func TestDivRemRoundTrip(t *testing.T) {
	dividend := Polynomial{1, 0, 1, 1} // x^3+x+1
	divisor := Polynomial{1, 1}        // x+1

	q, r := DivRem(dividend, divisor)
	reconstructed := AddPoly(Multiply(q, divisor), r)
	require.Equal(t, trim(dividend), reconstructed)
}

func TestEvalMatchesHornerOnKnownPoint(t *testing.T) {
	// p(x) = x^2 + x + 1 (coefficients high-degree-first: 1,1,1), at x=2:
	// 2*2 XOR 2 XOR 1 = 4 XOR 2 XOR 1 = 7 (no GF(256) reduction needed below
	// degree 8).
	p := Polynomial{1, 1, 1}
	require.Equal(t, byte(7), p.Eval(2))
}

func TestEvalAtZeroIsConstantTerm(t *testing.T) {
	p := Polynomial{5, 9, 42}
	require.Equal(t, byte(42), p.Eval(0))
}

func TestScaleByOneAndZero(t *testing.T) {
	p := Polynomial{1, 2, 3}
	require.Equal(t, p, Scale(p, 1))
	require.True(t, Scale(p, 0).IsZero())
}
