package modarith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidArgument reports an operand outside the domain of an operation.
	ErrInvalidArgument = errors.New("modarith: invalid argument")

	// ErrNotInvertible reports a value that shares a factor with the modulus.
	ErrNotInvertible = errors.New("modarith: value not invertible")
)

// Bezout holds gcd(a, b) together with coefficients X and Y such that
// a*X + b*Y == GCD. X always belongs to the first argument passed to
// ExtendedGCD and Y to the second.
type Bezout struct {
	GCD *big.Int
	X   *big.Int
	Y   *big.Int
}

// ExtendedGCD runs the extended Euclidean algorithm on non-negative a and b.
//
// The larger operand is reduced first; the returned coefficients are mapped
// back to argument order, so ExtendedGCD(135, 84) yields (3, 5, -8) and
// ExtendedGCD(84, 135) yields (3, -8, 5). When the smaller operand is zero the
// other operand is the gcd with coefficient 1.
//
// The loop is iterative: operands are hundreds of bits wide in practice.
func ExtendedGCD(a, b *big.Int) (Bezout, error) {
	if a == nil || b == nil {
		return Bezout{}, fmt.Errorf("%w: nil operand", ErrInvalidArgument)
	}
	if a.Sign() < 0 || b.Sign() < 0 {
		return Bezout{}, fmt.Errorf("%w: operands must be non-negative", ErrInvalidArgument)
	}

	x, y := new(big.Int).Set(a), new(big.Int).Set(b)
	// Coefficient pairs (for a, for b) expressing x and y respectively.
	cx := [2]*big.Int{big.NewInt(1), big.NewInt(0)}
	cy := [2]*big.Int{big.NewInt(0), big.NewInt(1)}
	if y.Cmp(x) > 0 {
		x, y = y, x
		cx, cy = cy, cx
	}
	if y.Sign() == 0 {
		return Bezout{GCD: x, X: cx[0], Y: cx[1]}, nil
	}

	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(x, y, r)
		if r.Sign() == 0 {
			return Bezout{GCD: y, X: cy[0], Y: cy[1]}, nil
		}
		cr := [2]*big.Int{
			new(big.Int).Sub(cx[0], new(big.Int).Mul(q, cy[0])),
			new(big.Int).Sub(cx[1], new(big.Int).Mul(q, cy[1])),
		}
		x, y, r = y, r, x
		cx, cy = cy, cr
	}
}

// ModInverse returns v^-1 mod n in [0, n).
func ModInverse(v, n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	if v == nil || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: value must be non-negative", ErrInvalidArgument)
	}
	bz, err := ExtendedGCD(v, n)
	if err != nil {
		return nil, err
	}
	if bz.GCD.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(v, n) = %s", ErrNotInvertible, bz.GCD)
	}
	return bz.X.Mod(bz.X, n), nil
}

// IsCoprime reports whether gcd(a, b) == 1. Signs are ignored; nil operands
// are never coprime.
func IsCoprime(a, b *big.Int) bool {
	if a == nil || b == nil {
		return false
	}
	bz, err := ExtendedGCD(new(big.Int).Abs(a), new(big.Int).Abs(b))
	return err == nil && bz.GCD.Cmp(one) == 0
}

var one = big.NewInt(1)
