package isd

import (
	"testing"

	"github.com/pqclabs/hqc/cyclic"
	"github.com/stretchr/testify/require"
)

func TestValidateParams(t *testing.T) {
	require.NoError(t, ValidateParams(30, 3))

	var perr *ParamError
	require.ErrorAs(t, ValidateParams(1, 0), &perr)
	require.ErrorAs(t, ValidateParams(10, 0), &perr)
	require.ErrorAs(t, ValidateParams(10, 10), &perr)
	require.ErrorAs(t, ValidateParams(10, 2), &perr)
}

func TestGenerateInstanceSatisfiesKeyEquation(t *testing.T) {
	var seed [32]byte
	seed[0] = 0x42

	inst, err := GenerateInstance(358*3, 3, seed)
	require.NoError(t, err)

	require.Equal(t, 3, inst.Y.Weight())
	require.Equal(t, 3, inst.X.Weight())

	hy := cyclic.Multiply(inst.H, inst.Y)
	hy.Add(inst.X)
	require.True(t, hy.Equal(inst.S))
}

func TestGenerateInstanceDeterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 7

	a, err := GenerateInstance(358*3, 3, seed)
	require.NoError(t, err)
	b, err := GenerateInstance(358*3, 3, seed)
	require.NoError(t, err)

	require.True(t, a.H.Equal(b.H))
	require.True(t, a.S.Equal(b.S))
	require.True(t, a.Y.Equal(b.Y))
	require.True(t, a.X.Equal(b.X))
}

func TestGenerateInstanceRejectsBadParams(t *testing.T) {
	var seed [32]byte
	_, err := GenerateInstance(5, 10, seed)
	require.Error(t, err)
}
