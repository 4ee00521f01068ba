package zk

import (
	"fmt"
	"math/big"
)

// DLEqProof proves that Public0 = Base0^x and Public1 = Base1^x share the
// exponent x.
type DLEqProof struct {
	C *big.Int
	D *big.Int
}

// DLEqProveParams contains parameters for discrete-log equality proof
// generation.
type DLEqProveParams[E any] struct {
	Version uint64
	Base0   E
	Base1   E
	Secret  *big.Int // The shared exponent x
	Nonce   *big.Int
}

// ProveDLEq computes c = H(version, g0^r, g1^r) and d = (r - x*c) mod q.
func (s *Suite[E]) ProveDLEq(params *DLEqProveParams[E]) (*DLEqProof, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params", ErrNilParams)
	}
	if isNil(params.Base0) || isNil(params.Base1) || anyNil(params.Secret, params.Nonce) {
		return nil, fmt.Errorf("%w: bases, secret and nonce are required", ErrNilParams)
	}

	c, err := s.challenge(params.Version,
		params.Base0.Exponentiate(params.Nonce),
		params.Base1.Exponentiate(params.Nonce),
	)
	if err != nil {
		return nil, fmt.Errorf("zk: dleq challenge: %w", err)
	}
	return &DLEqProof{C: c, D: s.response(params.Nonce, params.Secret, c)}, nil
}

// DLEqVerifyParams contains parameters for discrete-log equality proof
// verification.
type DLEqVerifyParams[E any] struct {
	Version uint64
	Proof   *DLEqProof
	Base0   E
	Base1   E
	Public0 E // y0 = g0^x
	Public1 E // y1 = g1^x
}

// VerifyDLEq accepts iff c == H(version, g0^d * y0^c, g1^d * y1^c).
func (s *Suite[E]) VerifyDLEq(params *DLEqVerifyParams[E]) bool {
	if params == nil || params.Proof == nil || params.Proof.C == nil || !s.reduced(params.Proof.D) {
		return false
	}
	if isNil(params.Base0) || isNil(params.Base1) || isNil(params.Public0) || isNil(params.Public1) {
		return false
	}
	p := params.Proof
	return s.checkChallenge(params.Version, p.C,
		combine(params.Base0, params.Public0, p.D, p.C),
		combine(params.Base1, params.Public1, p.D, p.C),
	)
}
