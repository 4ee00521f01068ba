package group

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/modarith"
)

// rfc3526Prime1536 is the 1536-bit MODP prime from RFC 3526, section 2.
const rfc3526Prime1536 = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA237327FFFFFFFFFFFFFFFF"

// ErrWeakParameters reports a modulus or generator unfit for the protocol.
var ErrWeakParameters = errors.New("group: weak group parameters")

// ModPGroup is the prime-order subgroup of Z*_p for a safe prime p = 2q + 1,
// generated by g.
type ModPGroup struct {
	p, q *big.Int
	g    *MultiplicativeElement
	// bounds of the range sanity check: [2, p-2]
	lo, hi *big.Int
}

var _ Group[*MultiplicativeElement] = (*ModPGroup)(nil)

// RFC3526MODP1536 returns the 1536-bit MODP group with generator 2.
func RFC3526MODP1536() *ModPGroup {
	p, ok := new(big.Int).SetString(rfc3526Prime1536, 16)
	if !ok {
		panic("group: malformed RFC 3526 prime")
	}
	return newModPGroup(p, big.NewInt(2))
}

// NewModPGroup validates p and g and returns the group they define. p must be
// a safe prime and g an element of order q = (p-1)/2.
func NewModPGroup(p, g *big.Int) (*ModPGroup, error) {
	if p == nil || g == nil {
		return nil, fmt.Errorf("%w: nil modulus or generator", ErrInvalidArgument)
	}
	if p.Cmp(big.NewInt(5)) < 0 || p.Bit(0) == 0 {
		return nil, fmt.Errorf("%w: modulus must be an odd prime >= 5", ErrWeakParameters)
	}
	q := new(big.Int).Rsh(p, 1)
	for _, n := range []*big.Int{p, q} {
		ok, err := modarith.IsPrime(n)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s is not prime", ErrWeakParameters, n)
		}
	}

	grp := newModPGroup(p, g)
	if g.Cmp(grp.lo) < 0 || g.Cmp(grp.hi) > 0 {
		return nil, fmt.Errorf("%w: generator must lie in [2, p-2]", ErrWeakParameters)
	}
	if !grp.g.Exponentiate(q).Equal(grp.g.Identity()) {
		return nil, fmt.Errorf("%w: generator does not have order q", ErrWeakParameters)
	}
	return grp, nil
}

func newModPGroup(p, g *big.Int) *ModPGroup {
	p = new(big.Int).Set(p)
	return &ModPGroup{
		p:  p,
		q:  new(big.Int).Rsh(p, 1),
		g:  newMultiplicative(p, new(big.Int).Set(g)),
		lo: big.NewInt(2),
		hi: new(big.Int).Sub(p, big.NewInt(2)),
	}
}

// Modulus returns a copy of p.
func (m *ModPGroup) Modulus() *big.Int { return new(big.Int).Set(m.p) }

// Generator returns g.
func (m *ModPGroup) Generator() *MultiplicativeElement { return m.g }

// Order returns a copy of q = (p-1)/2.
func (m *ModPGroup) Order() *big.Int { return new(big.Int).Set(m.q) }

// ByteLen returns the byte length of p.
func (m *ModPGroup) ByteLen() int { return (m.p.BitLen() + 7) / 8 }

// NewElement decodes v as an element mod p.
func (m *ModPGroup) NewElement(v *big.Int) (*MultiplicativeElement, error) {
	e, err := NewMultiplicativeElement(m.p, v)
	if err != nil {
		return nil, err
	}
	// Elements of one group share its modulus.
	e.n = m.p
	return e, nil
}

// Valid reports whether e belongs to this group's modulus and lies in
// [2, p-2], excluding the degenerate elements 1 and p-1.
func (m *ModPGroup) Valid(e *MultiplicativeElement) bool {
	if e == nil || e.n.Cmp(m.p) != 0 {
		return false
	}
	return e.value.Cmp(m.lo) >= 0 && e.value.Cmp(m.hi) <= 0
}
