package zk

import (
	"fmt"
	"math/big"
)

// CoordsProof proves knowledge of (e0, e1) with Public0 = Base0^e0 and
// Public1 = Base1^e0 * Base2^e1. SMP uses it for the (P, Q) pairs.
type CoordsProof struct {
	C  *big.Int
	D0 *big.Int
	D1 *big.Int
}

// CoordsProveParams contains parameters for discrete-coordinates proof
// generation.
type CoordsProveParams[E any] struct {
	Version uint64
	Base0   E
	Base1   E
	Base2   E
	Secret0 *big.Int // e0
	Secret1 *big.Int // e1
	Nonce0  *big.Int // r0, blinds e0
	Nonce1  *big.Int // r1, blinds e1; must differ from r0
}

// ProveCoords computes c = H(version, g0^r0, g1^r0 * g2^r1),
// d0 = (r0 - e0*c) mod q and d1 = (r1 - e1*c) mod q.
func (s *Suite[E]) ProveCoords(params *CoordsProveParams[E]) (*CoordsProof, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params", ErrNilParams)
	}
	if isNil(params.Base0) || isNil(params.Base1) || isNil(params.Base2) {
		return nil, fmt.Errorf("%w: bases are required", ErrNilParams)
	}
	if anyNil(params.Secret0, params.Secret1, params.Nonce0, params.Nonce1) {
		return nil, fmt.Errorf("%w: secrets and nonces are required", ErrNilParams)
	}

	c, err := s.challenge(params.Version,
		params.Base0.Exponentiate(params.Nonce0),
		params.Base1.Exponentiate(params.Nonce0).Operate(params.Base2.Exponentiate(params.Nonce1)),
	)
	if err != nil {
		return nil, fmt.Errorf("zk: coords challenge: %w", err)
	}
	return &CoordsProof{
		C:  c,
		D0: s.response(params.Nonce0, params.Secret0, c),
		D1: s.response(params.Nonce1, params.Secret1, c),
	}, nil
}

// CoordsVerifyParams contains parameters for discrete-coordinates proof
// verification.
type CoordsVerifyParams[E any] struct {
	Version uint64
	Proof   *CoordsProof
	Base0   E
	Base1   E
	Base2   E
	Public0 E // y0 = g0^e0
	Public1 E // y1 = g1^e0 * g2^e1
}

// VerifyCoords accepts iff c == H(version, g0^d0 * y0^c, g1^d0 * g2^d1 * y1^c).
func (s *Suite[E]) VerifyCoords(params *CoordsVerifyParams[E]) bool {
	if params == nil || params.Proof == nil {
		return false
	}
	p := params.Proof
	if p.C == nil || !s.reduced(p.D0, p.D1) {
		return false
	}
	if isNil(params.Base0) || isNil(params.Base1) || isNil(params.Base2) ||
		isNil(params.Public0) || isNil(params.Public1) {
		return false
	}

	t0 := combine(params.Base0, params.Public0, p.D0, p.C)
	t1 := params.Base1.Exponentiate(p.D0).
		Operate(params.Base2.Exponentiate(p.D1)).
		Operate(params.Public1.Exponentiate(p.C))
	return s.checkChallenge(params.Version, p.C, t0, t1)
}
