package smp

import (
	"context"
	"fmt"
	"math/big"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/logging"
	"github.com/cryptotoy/smp-go/pkg/smp/zk"
)

type aliceState uint8

const (
	aliceNew aliceState = iota
	aliceAwaitingMessage2
	aliceAwaitingMessage4
	aliceDone
)

// Alice is the initiating party. Her session moves strictly through Start,
// HandleMessage2 and HandleMessage4. An Alice is not safe for concurrent use.
type Alice[E group.Element[E]] struct {
	s     *session[E]
	state aliceState

	a2, a3   *big.Int
	g2a, g3a E
	g3b      E
	qaQb     E // Qa * Qb^-1
	paPb     E // Pa * Pb^-1
}

// NewAlice creates Alice's session for secret x. The secret is reduced
// modulo the group order.
func NewAlice[E group.Element[E]](grp group.Group[E], secret *big.Int, opts ...Option) (*Alice[E], error) {
	s, err := newSession(grp, secret, RoleAlice, opts)
	if err != nil {
		return nil, err
	}
	return &Alice[E]{s: s}, nil
}

// Start draws a2 and a3 and produces Message 1 with knowledge proofs for both.
func (a *Alice[E]) Start(ctx context.Context) (*Message1[E], error) {
	const step = "start"
	if err := a.expect(aliceNew); err != nil {
		return nil, err
	}

	k, err := a.s.scalars(4)
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}
	a.a2, a.a3 = k[0], k[1]
	r2, r3 := k[2], k[3]

	g1 := a.s.g1
	a.g2a = g1.Exponentiate(a.a2)
	a.g3a = g1.Exponentiate(a.a3)

	p2, err := a.s.suite.ProveDL(&zk.DLProveParams[E]{Version: tagA2, Base: g1, Secret: a.a2, Nonce: r2})
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}
	p3, err := a.s.suite.ProveDL(&zk.DLProveParams[E]{Version: tagA3, Base: g1, Secret: a.a3, Nonce: r3})
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}

	a.state = aliceAwaitingMessage2
	a.s.log.Debug(ctx, "smp step", "step", step,
		logging.Fingerprint("g2a", a.g2a.Int()),
		logging.Fingerprint("g3a", a.g3a.Int()),
		logging.Redacted("a2"), logging.Redacted("a3"))
	return &Message1[E]{G2a: a.g2a, G3a: a.g3a, ProofA2: p2, ProofA3: p3}, nil
}

// HandleMessage2 verifies Bob's proofs, derives the shared bases g2 and g3,
// and produces Message 3.
func (a *Alice[E]) HandleMessage2(ctx context.Context, m *Message2[E]) (*Message3[E], error) {
	const step = "message2"
	if err := a.expect(aliceAwaitingMessage2); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, a.s.abort(ctx, step, err)
	}
	if err := a.s.checkElements([]string{"g2b", "g3b", "Pb", "Qb"}, m.G2b, m.G3b, m.Pb, m.Qb); err != nil {
		return nil, a.s.abort(ctx, step, err)
	}

	suite, g1 := a.s.suite, a.s.g1
	if !suite.VerifyDL(&zk.DLVerifyParams[E]{Version: tagB2, Proof: m.ProofB2, Base: g1, Public: m.G2b}) {
		return nil, a.s.abort(ctx, step, fmt.Errorf("%w: knowledge of b2", ErrProofInvalid))
	}
	if !suite.VerifyDL(&zk.DLVerifyParams[E]{Version: tagB3, Proof: m.ProofB3, Base: g1, Public: m.G3b}) {
		return nil, a.s.abort(ctx, step, fmt.Errorf("%w: knowledge of b3", ErrProofInvalid))
	}

	// Bob proved (Pb, Qb) against his own g2 = g2a^b2 and g3 = g3a^b3; the
	// proof only verifies if Alice's Diffie-Hellman values agree.
	g2 := m.G2b.Exponentiate(a.a2)
	g3 := m.G3b.Exponentiate(a.a3)
	if !suite.VerifyCoords(&zk.CoordsVerifyParams[E]{
		Version: tagPbQb, Proof: m.ProofPbQb,
		Base0: g3, Base1: g1, Base2: g2,
		Public0: m.Pb, Public1: m.Qb,
	}) {
		return nil, a.s.abort(ctx, step, fmt.Errorf("%w: coordinates of (Pb, Qb)", ErrProofInvalid))
	}

	k, err := a.s.scalars(4)
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}
	sv, r4, r5, r7 := k[0], k[1], k[2], k[3]

	pa := g3.Exponentiate(sv)
	qa := g1.Exponentiate(sv).Operate(g2.Exponentiate(a.s.secret))
	proofPaQa, err := suite.ProveCoords(&zk.CoordsProveParams[E]{
		Version: tagPaQa,
		Base0:   g3, Base1: g1, Base2: g2,
		Secret0: sv, Secret1: a.s.secret,
		Nonce0: r4, Nonce1: r5,
	})
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}

	a.qaQb = quotient(qa, m.Qb)
	a.paPb = quotient(pa, m.Pb)
	ra := a.qaQb.Exponentiate(a.a3)
	proofRa, err := suite.ProveDLEq(&zk.DLEqProveParams[E]{
		Version: tagRa, Base0: g1, Base1: a.qaQb, Secret: a.a3, Nonce: r7,
	})
	if err != nil {
		return nil, a.s.abort(ctx, step, err)
	}

	a.g3b = m.G3b
	a.state = aliceAwaitingMessage4
	a.s.log.Debug(ctx, "smp step", "step", step,
		logging.Fingerprint("Pa", pa.Int()),
		logging.Fingerprint("Qa", qa.Int()),
		logging.Fingerprint("Ra", ra.Int()))
	return &Message3[E]{Pa: pa, Qa: qa, ProofPaQa: proofPaQa, ProofRa: proofRa, Ra: ra}, nil
}

// HandleMessage4 verifies Bob's Rb proof and decides whether the secrets are
// equal: Rb^a3 == Pa * Pb^-1.
func (a *Alice[E]) HandleMessage4(ctx context.Context, m *Message4[E]) (Result, error) {
	const step = "message4"
	if err := a.expect(aliceAwaitingMessage4); err != nil {
		return Result{}, err
	}
	if err := m.validate(); err != nil {
		return Result{}, a.s.abort(ctx, step, err)
	}
	if err := a.s.checkElements([]string{"Rb"}, m.Rb); err != nil {
		return Result{}, a.s.abort(ctx, step, err)
	}
	if !a.s.suite.VerifyDLEq(&zk.DLEqVerifyParams[E]{
		Version: tagRb, Proof: m.ProofRb,
		Base0: a.s.g1, Base1: a.qaQb,
		Public0: a.g3b, Public1: m.Rb,
	}) {
		return Result{}, a.s.abort(ctx, step, fmt.Errorf("%w: b3 reuse for Rb", ErrProofInvalid))
	}

	rab := m.Rb.Exponentiate(a.a3)
	res := Result{Equal: rab.Equal(a.paPb)}

	a.state = aliceDone
	a.s.wipe()
	a.s.log.Debug(ctx, "smp finished", "equal", res.Equal)
	return res, nil
}

// Close wipes the session's secrets. It is safe to call more than once and
// after the run completed.
func (a *Alice[E]) Close() error {
	a.s.wipe()
	return nil
}

func (a *Alice[E]) expect(want aliceState) error {
	if a.s.closed {
		return ErrSessionClosed
	}
	if a.state != want {
		return fmt.Errorf("%w: alice in state %d, expected %d", ErrUnexpectedMessage, a.state, want)
	}
	return nil
}
