package group

import (
	"errors"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/modarith"
)

var (
	// ErrInvalidArgument reports a value that cannot form a group element.
	ErrInvalidArgument = modarith.ErrInvalidArgument

	// ErrInvariantViolation reports an internal inconsistency that validated
	// inputs can never produce. It is raised by panic.
	ErrInvariantViolation = errors.New("group: invariant violation")
)

// Element is the capability set the proof and protocol layers need from a
// group element. E is the implementing type itself, so a backend can only be
// combined with elements of the same backend.
//
// Implementations are immutable values: every operation returns a new element.
type Element[E any] interface {
	// Identity returns the neutral element of the element's group.
	Identity() E
	// Operate returns the group operation applied to the receiver and other.
	Operate(other E) E
	// Inverse returns the element x such that Operate(x) is the identity.
	Inverse() E
	// Exponentiate applies the group operation e times; negative e uses the
	// inverse.
	Exponentiate(e *big.Int) E
	// Equal reports structural equality.
	Equal(other E) bool
	// Int returns the canonical non-negative integer encoding of the element,
	// used for Fiat-Shamir hashing and the wire codec.
	Int() *big.Int
}

// Group describes the public parameters a protocol run shares.
type Group[E Element[E]] interface {
	// Generator returns the agreed generator g1.
	Generator() E
	// Order returns the order q of the generator; scalars are reduced mod q.
	Order() *big.Int
	// ByteLen is the fixed width, in bytes, of every encoded element.
	ByteLen() int
	// NewElement decodes the canonical integer produced by Element.Int.
	NewElement(v *big.Int) (E, error)
	// Valid reports whether e passes the range sanity check applied to
	// elements received from a peer.
	Valid(e E) bool
}

// Exp computes base^e by square-and-multiply using only the Element
// capability set. Negative exponents invert the base first; e == 0 yields the
// identity. The result equals |e| repeated applications of Operate.
func Exp[E Element[E]](base E, e *big.Int) E {
	cur := base
	acc := base.Identity()
	k := new(big.Int).Set(e)
	if k.Sign() < 0 {
		cur = cur.Inverse()
		k.Neg(k)
	}
	if k.Sign() == 0 {
		return base.Identity()
	}
	for k.Cmp(bigOne) > 0 {
		if k.Bit(0) == 0 {
			cur = cur.Operate(cur)
			k.Rsh(k, 1)
			continue
		}
		acc = cur.Operate(acc)
		cur = cur.Operate(cur)
		// (k-1)/2 for odd k
		k.Rsh(k, 1)
	}
	return acc.Operate(cur)
}

var bigOne = big.NewInt(1)
