package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidBound reports a sampling bound that is nil or not positive.
var ErrInvalidBound = errors.New("random: bound must be positive")

// Reader is the production entropy source.
var Reader io.Reader = rand.Reader

// Scalar returns a uniformly random integer in [0, bound) read from r. A nil
// r selects Reader.
func Scalar(r io.Reader, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	if r == nil {
		r = Reader
	}
	v, err := rand.Int(r, bound)
	if err != nil {
		return nil, fmt.Errorf("random: sample scalar: %w", err)
	}
	return v, nil
}

// NonZeroScalar returns a uniformly random integer in [1, bound).
func NonZeroScalar(r io.Reader, bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidBound
	}
	v, err := Scalar(r, new(big.Int).Sub(bound, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}

// Secret draws a uniformly random integer in [0, n) from the production
// source.
func Secret(n *big.Int) (*big.Int, error) {
	return Scalar(Reader, n)
}
