package zk

import (
	"fmt"
	"math/big"
)

// DLProof proves knowledge of x with Public = Base^x. C is the Fiat-Shamir
// challenge and D the response, reduced mod q.
type DLProof struct {
	C *big.Int
	D *big.Int
}

// DLProveParams contains parameters for discrete-log proof generation.
type DLProveParams[E any] struct {
	Version uint64   // Domain-separation tag, unique per proof in a run
	Base    E        // The base g
	Secret  *big.Int // The witness x
	Nonce   *big.Int // Fresh blinding value r; never reuse
}

// ProveDL computes c = H(version, g^r) and d = (r - x*c) mod q.
func (s *Suite[E]) ProveDL(params *DLProveParams[E]) (*DLProof, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params", ErrNilParams)
	}
	if isNil(params.Base) || anyNil(params.Secret, params.Nonce) {
		return nil, fmt.Errorf("%w: base, secret and nonce are required", ErrNilParams)
	}

	c, err := s.challenge(params.Version, params.Base.Exponentiate(params.Nonce))
	if err != nil {
		return nil, fmt.Errorf("zk: dl challenge: %w", err)
	}
	return &DLProof{C: c, D: s.response(params.Nonce, params.Secret, c)}, nil
}

// DLVerifyParams contains parameters for discrete-log proof verification.
type DLVerifyParams[E any] struct {
	Version uint64
	Proof   *DLProof
	Base    E // The base g
	Public  E // The statement y = g^x
}

// VerifyDL accepts iff c == H(version, g^d * y^c).
func (s *Suite[E]) VerifyDL(params *DLVerifyParams[E]) bool {
	if params == nil || params.Proof == nil || params.Proof.C == nil || !s.reduced(params.Proof.D) {
		return false
	}
	if isNil(params.Base) || isNil(params.Public) {
		return false
	}
	p := params.Proof
	return s.checkChallenge(params.Version, p.C, combine(params.Base, params.Public, p.D, p.C))
}
