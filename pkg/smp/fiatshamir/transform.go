package fiatshamir

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// ErrEncoding reports an input that does not fit the fixed-width encoding.
var ErrEncoding = errors.New("fiatshamir: value does not fit encoding width")

// HashFunc constructs the hash used to derive challenges.
type HashFunc func() hash.Hash

var (
	// SHA256 is the reference challenge hash.
	SHA256 HashFunc = sha256.New
	// SHA3_256 is an alternative challenge hash. Both parties must agree on it.
	SHA3_256 HashFunc = sha3.New256
)

// Transform derives challenges as H(version || v_1 || ... || v_k), each field
// encoded big-endian and left-padded to Width bytes.
type Transform struct {
	width   int
	newHash HashFunc
}

// Option configures a Transform.
type Option func(*Transform)

// WithHash selects the challenge hash.
func WithHash(h HashFunc) Option {
	return func(t *Transform) {
		if h != nil {
			t.newHash = h
		}
	}
}

// New returns a Transform encoding every field to width bytes. width is the
// byte length of the group encoding (192 for the 1536-bit MODP group).
func New(width int, opts ...Option) (*Transform, error) {
	if width <= 0 {
		return nil, fmt.Errorf("fiatshamir: width must be positive, got %d", width)
	}
	t := &Transform{width: width, newHash: SHA256}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Width returns the per-field encoding width in bytes.
func (t *Transform) Width() int { return t.width }

// HashToInt hashes the version tag followed by values, in call order, and
// interprets the digest as a big-endian integer. The version tag must be
// distinct for every proof within one protocol run.
//
// Field width, byte order and ordering are fixed by the scheme; a value that
// is negative or wider than Width fails with ErrEncoding.
func (t *Transform) HashToInt(version uint64, values ...*big.Int) (*big.Int, error) {
	h := t.newHash()
	buf := make([]byte, t.width)

	v := new(big.Int).SetUint64(version)
	if err := t.encode(buf, v); err != nil {
		return nil, fmt.Errorf("version: %w", err)
	}
	h.Write(buf)

	for i, val := range values {
		if err := t.encode(buf, val); err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		h.Write(buf)
	}
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

func (t *Transform) encode(buf []byte, v *big.Int) error {
	if v == nil || v.Sign() < 0 {
		return fmt.Errorf("%w: nil or negative", ErrEncoding)
	}
	if (v.BitLen()+7)/8 > t.width {
		return fmt.Errorf("%w: %d bits exceed %d bytes", ErrEncoding, v.BitLen(), t.width)
	}
	v.FillBytes(buf)
	return nil
}
