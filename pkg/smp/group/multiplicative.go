package group

import (
	"fmt"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/modarith"
)

// MultiplicativeElement is an element of the multiplicative group of integers
// modulo n. The value is always in (0, n) and coprime to n.
type MultiplicativeElement struct {
	n     *big.Int
	value *big.Int
}

var _ Element[*MultiplicativeElement] = (*MultiplicativeElement)(nil)

// NewMultiplicativeElement validates value against n and returns the element.
// It fails with ErrInvalidArgument unless 0 < value < n and gcd(value, n) == 1.
func NewMultiplicativeElement(n, value *big.Int) (*MultiplicativeElement, error) {
	if n == nil || value == nil {
		return nil, fmt.Errorf("%w: nil modulus or value", ErrInvalidArgument)
	}
	if n.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus must exceed 1", ErrInvalidArgument)
	}
	if value.Sign() <= 0 || value.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: value out of range (0, n)", ErrInvalidArgument)
	}
	if !modarith.IsCoprime(value, n) {
		return nil, fmt.Errorf("%w: value=%s must be coprime to n=%s", ErrInvalidArgument, value, n)
	}
	return newMultiplicative(new(big.Int).Set(n), new(big.Int).Set(value)), nil
}

// newMultiplicative skips validation; callers guarantee the invariant. The
// modulus pointer is shared between elements and never written.
func newMultiplicative(n, value *big.Int) *MultiplicativeElement {
	return &MultiplicativeElement{n: n, value: value}
}

// Modulus returns a copy of n.
func (m *MultiplicativeElement) Modulus() *big.Int { return new(big.Int).Set(m.n) }

// Value returns a copy of the element's integer value.
func (m *MultiplicativeElement) Value() *big.Int { return new(big.Int).Set(m.value) }

// Int returns a copy of the element's integer value.
func (m *MultiplicativeElement) Int() *big.Int { return m.Value() }

// Identity returns (n, 1).
func (m *MultiplicativeElement) Identity() *MultiplicativeElement {
	return newMultiplicative(m.n, big.NewInt(1))
}

// Operate returns (n, m*other mod n). It panics if the moduli differ.
func (m *MultiplicativeElement) Operate(other *MultiplicativeElement) *MultiplicativeElement {
	if m.n.Cmp(other.n) != 0 {
		panic(fmt.Errorf("%w: operate across moduli %s and %s", ErrInvariantViolation, m.n, other.n))
	}
	v := new(big.Int).Mul(m.value, other.value)
	return newMultiplicative(m.n, v.Mod(v, m.n))
}

// Inverse returns the multiplicative inverse derived from the Bézout
// coefficient of value in extended_gcd(value, n). A gcd other than 1 cannot
// occur for a validated element and panics.
func (m *MultiplicativeElement) Inverse() *MultiplicativeElement {
	bz, err := modarith.ExtendedGCD(m.value, m.n)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariantViolation, err))
	}
	if bz.GCD.Cmp(bigOne) != 0 {
		panic(fmt.Errorf("%w: value=%s not coprime to n=%s", ErrInvariantViolation, m.value, m.n))
	}
	return newMultiplicative(m.n, bz.X.Mod(bz.X, m.n))
}

// Exponentiate returns m^e, accepting negative exponents.
func (m *MultiplicativeElement) Exponentiate(e *big.Int) *MultiplicativeElement {
	return Exp(m, e)
}

// Equal reports whether both the modulus and the value match.
func (m *MultiplicativeElement) Equal(other *MultiplicativeElement) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.n.Cmp(other.n) == 0 && m.value.Cmp(other.value) == 0
}

// IsCyclic reports whether the group of units mod n is treated as cyclic,
// which holds when n is prime. It is a diagnostic only.
func (m *MultiplicativeElement) IsCyclic() bool {
	ok, err := modarith.IsPrime(m.n)
	return err == nil && ok
}

// String renders the element for debugging.
func (m *MultiplicativeElement) String() string {
	return fmt.Sprintf("%s (mod %s)", m.value, m.n)
}
