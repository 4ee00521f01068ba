package smp

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/logging"
	"github.com/cryptotoy/smp-go/pkg/smp/zk"
)

type bobState uint8

const (
	bobAwaitingMessage1 bobState = iota
	bobAwaitingMessage3
	bobDone
)

// Bob is the responding party. His session moves strictly through
// HandleMessage1 and HandleMessage3. A Bob is not safe for concurrent use.
type Bob[E group.Element[E]] struct {
	s     *session[E]
	state bobState

	b3s    *big.Int
	g3a    E
	g2, g3 E
	pb, qb E
}

// NewBob creates Bob's session for secret y. The secret is reduced modulo
// the group order.
func NewBob[E group.Element[E]](grp group.Group[E], secret *big.Int, opts ...Option) (*Bob[E], error) {
	s, err := newSession(grp, secret, RoleBob, opts)
	if err != nil {
		return nil, err
	}
	return &Bob[E]{s: s}, nil
}

// HandleMessage1 verifies Alice's knowledge proofs and produces Message 2:
// Bob's own knowledge proofs plus (Pb, Qb) with a coordinates proof.
func (b *Bob[E]) HandleMessage1(ctx context.Context, m *Message1[E]) (*Message2[E], error) {
	const step = "message1"
	if err := b.expect(bobAwaitingMessage1); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, b.s.abort(ctx, step, err)
	}
	if err := b.s.checkElements([]string{"g2a", "g3a"}, m.G2a, m.G3a); err != nil {
		return nil, b.s.abort(ctx, step, err)
	}

	suite, g1 := b.s.suite, b.s.g1
	if !suite.VerifyDL(&zk.DLVerifyParams[E]{Version: tagA2, Proof: m.ProofA2, Base: g1, Public: m.G2a}) {
		return nil, b.s.abort(ctx, step, fmt.Errorf("%w: knowledge of a2", ErrProofInvalid))
	}
	if !suite.VerifyDL(&zk.DLVerifyParams[E]{Version: tagA3, Proof: m.ProofA3, Base: g1, Public: m.G3a}) {
		return nil, b.s.abort(ctx, step, fmt.Errorf("%w: knowledge of a3", ErrProofInvalid))
	}

	k, err := b.s.scalars(7)
	if err != nil {
		return nil, b.s.abort(ctx, step, err)
	}
	b2, b3, r2, r3, r, r5, r6 := k[0], k[1], k[2], k[3], k[4], k[5], k[6]
	b.b3s = b3

	g2b := g1.Exponentiate(b2)
	g3b := g1.Exponentiate(b3)
	proofB2, err := suite.ProveDL(&zk.DLProveParams[E]{Version: tagB2, Base: g1, Secret: b2, Nonce: r2})
	if err != nil {
		return nil, b.s.abort(ctx, step, err)
	}
	proofB3, err := suite.ProveDL(&zk.DLProveParams[E]{Version: tagB3, Base: g1, Secret: b3, Nonce: r3})
	if err != nil {
		return nil, b.s.abort(ctx, step, err)
	}

	b.g2 = m.G2a.Exponentiate(b2)
	b.g3 = m.G3a.Exponentiate(b3)
	b.pb = b.g3.Exponentiate(r)
	b.qb = g1.Exponentiate(r).Operate(b.g2.Exponentiate(b.s.secret))
	proofPbQb, err := suite.ProveCoords(&zk.CoordsProveParams[E]{
		Version: tagPbQb,
		Base0:   b.g3, Base1: g1, Base2: b.g2,
		Secret0: r, Secret1: b.s.secret,
		Nonce0: r5, Nonce1: r6,
	})
	if err != nil {
		return nil, b.s.abort(ctx, step, err)
	}

	b.g3a = m.G3a
	b.state = bobAwaitingMessage3
	b.s.log.Debug(ctx, "smp step", "step", step,
		logging.Fingerprint("g2b", g2b.Int()),
		logging.Fingerprint("g3b", g3b.Int()),
		logging.Fingerprint("Pb", b.pb.Int()),
		logging.Fingerprint("Qb", b.qb.Int()),
		logging.Redacted("b2"), logging.Redacted("b3"))
	return &Message2[E]{
		G2b: g2b, G3b: g3b,
		ProofB2: proofB2, ProofB3: proofB3,
		Pb: b.pb, Qb: b.qb,
		ProofPbQb: proofPbQb,
	}, nil
}

// HandleMessage3 verifies Alice's (Pa, Qa) and Ra proofs, decides whether
// the secrets are equal (Ra^b3 == Pa * Pb^-1) and produces Message 4 so Alice
// can reach the same decision.
func (b *Bob[E]) HandleMessage3(ctx context.Context, m *Message3[E]) (*Message4[E], Result, error) {
	const step = "message3"
	if err := b.expect(bobAwaitingMessage3); err != nil {
		return nil, Result{}, err
	}
	if err := m.validate(); err != nil {
		return nil, Result{}, b.s.abort(ctx, step, err)
	}
	if err := b.s.checkElements([]string{"Pa", "Qa", "Ra"}, m.Pa, m.Qa, m.Ra); err != nil {
		return nil, Result{}, b.s.abort(ctx, step, err)
	}

	suite, g1 := b.s.suite, b.s.g1
	if !suite.VerifyCoords(&zk.CoordsVerifyParams[E]{
		Version: tagPaQa, Proof: m.ProofPaQa,
		Base0: b.g3, Base1: g1, Base2: b.g2,
		Public0: m.Pa, Public1: m.Qa,
	}) {
		return nil, Result{}, b.s.abort(ctx, step, fmt.Errorf("%w: coordinates of (Pa, Qa)", ErrProofInvalid))
	}

	qaQb := quotient(m.Qa, b.qb)
	if !suite.VerifyDLEq(&zk.DLEqVerifyParams[E]{
		Version: tagRa, Proof: m.ProofRa,
		Base0: g1, Base1: qaQb,
		Public0: b.g3a, Public1: m.Ra,
	}) {
		return nil, Result{}, b.s.abort(ctx, step, fmt.Errorf("%w: a3 reuse for Ra", ErrProofInvalid))
	}

	nonce, err := b.s.scalar()
	if err != nil {
		return nil, Result{}, b.s.abort(ctx, step, err)
	}
	rb := qaQb.Exponentiate(b.b3s)
	proofRb, err := suite.ProveDLEq(&zk.DLEqProveParams[E]{
		Version: tagRb, Base0: g1, Base1: qaQb, Secret: b.b3s, Nonce: nonce,
	})
	if err != nil {
		return nil, Result{}, b.s.abort(ctx, step, err)
	}

	rab := m.Ra.Exponentiate(b.b3s)
	res := Result{Equal: rab.Equal(quotient(m.Pa, b.pb))}

	b.state = bobDone
	b.s.wipe()
	b.s.log.Debug(ctx, "smp finished", "equal", res.Equal, logging.Fingerprint("Rb", rb.Int()))
	return &Message4[E]{Rb: rb, ProofRb: proofRb}, res, nil
}

// Close wipes the session's secrets. It is safe to call more than once.
func (b *Bob[E]) Close() error {
	b.s.wipe()
	return nil
}

func (b *Bob[E]) expect(want bobState) error {
	if b.s.closed {
		return ErrSessionClosed
	}
	if b.state != want {
		return fmt.Errorf("%w: bob in state %d, expected %d", ErrUnexpectedMessage, b.state, want)
	}
	return nil
}
