package random

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarInRange(t *testing.T) {
	bound := big.NewInt(1000)
	for i := 0; i < 256; i++ {
		v, err := Scalar(nil, bound)
		require.NoError(t, err)
		require.True(t, v.Sign() >= 0 && v.Cmp(bound) < 0, "value %s out of range", v)
	}
}

func TestNonZeroScalarInRange(t *testing.T) {
	bound := big.NewInt(3)
	for i := 0; i < 128; i++ {
		v, err := NonZeroScalar(nil, bound)
		require.NoError(t, err)
		require.True(t, v.Sign() > 0 && v.Cmp(bound) < 0, "value %s out of range", v)
	}
}

func TestScalarRejectsBadBound(t *testing.T) {
	for _, b := range []*big.Int{nil, big.NewInt(0), big.NewInt(-5)} {
		_, err := Scalar(nil, b)
		assert.True(t, errors.Is(err, ErrInvalidBound))
	}
	_, err := NonZeroScalar(nil, big.NewInt(1))
	assert.True(t, errors.Is(err, ErrInvalidBound))
}

func TestScalarPropagatesReaderFailure(t *testing.T) {
	_, err := Scalar(bytes.NewReader(nil), big.NewInt(1<<40))
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestDeterministicReproducible(t *testing.T) {
	a, err := NewDeterministic([]byte("seed"))
	require.NoError(t, err)
	b, err := NewDeterministic([]byte("seed"))
	require.NoError(t, err)
	c, err := NewDeterministic([]byte("other seed"))
	require.NoError(t, err)

	bufA, bufB, bufC := make([]byte, 96), make([]byte, 96), make([]byte, 96)
	_, _ = io.ReadFull(a, bufA)
	_, _ = io.ReadFull(b, bufB)
	_, _ = io.ReadFull(c, bufC)

	assert.Equal(t, bufA, bufB)
	assert.NotEqual(t, bufA, bufC)
	assert.NotEqual(t, make([]byte, 96), bufA)
}

func TestDeterministicStreamAdvances(t *testing.T) {
	d, err := NewDeterministic([]byte{1})
	require.NoError(t, err)

	first, second := make([]byte, 32), make([]byte, 32)
	_, _ = d.Read(first)
	_, _ = d.Read(second)
	assert.NotEqual(t, first, second)
}

func TestDeterministicScalarsRepeat(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 1535)
	a, err := NewDeterministic([]byte("vector"))
	require.NoError(t, err)
	b, err := NewDeterministic([]byte("vector"))
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		x, err := Scalar(a, bound)
		require.NoError(t, err)
		y, err := Scalar(b, bound)
		require.NoError(t, err)
		assert.Zero(t, x.Cmp(y))
	}
}

func TestNewDeterministicRejectsEmptySeed(t *testing.T) {
	_, err := NewDeterministic(nil)
	assert.Error(t, err)
}
