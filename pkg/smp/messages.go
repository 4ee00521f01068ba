package smp

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/zk"
)

// Version tags domain-separating the eight proofs of one run.
const (
	tagA2   uint64 = 1 // Alice: knowledge of a2
	tagA3   uint64 = 2 // Alice: knowledge of a3
	tagB2   uint64 = 3 // Bob: knowledge of b2
	tagB3   uint64 = 4 // Bob: knowledge of b3
	tagPbQb uint64 = 5 // Bob: (Pb, Qb) coordinates
	tagPaQa uint64 = 6 // Alice: (Pa, Qa) coordinates
	tagRa   uint64 = 7 // Alice: a3 reused for Ra
	tagRb   uint64 = 8 // Bob: b3 reused for Rb
)

// MessageType identifies one of the four SMP messages.
type MessageType uint8

const (
	MessageType1 MessageType = iota + 1
	MessageType2
	MessageType3
	MessageType4
)

func (t MessageType) String() string {
	if t >= MessageType1 && t <= MessageType4 {
		return fmt.Sprintf("message%d", uint8(t))
	}
	return "unknown"
}

// Message1 is sent by Alice to open the exchange.
type Message1[E group.Element[E]] struct {
	G2a     E
	G3a     E
	ProofA2 *zk.DLProof // tag 1
	ProofA3 *zk.DLProof // tag 2
}

// Message2 is Bob's reply.
type Message2[E group.Element[E]] struct {
	G2b       E
	G3b       E
	ProofB2   *zk.DLProof // tag 3
	ProofB3   *zk.DLProof // tag 4
	Pb        E
	Qb        E
	ProofPbQb *zk.CoordsProof // tag 5
}

// Message3 carries Alice's (Pa, Qa) and Ra.
type Message3[E group.Element[E]] struct {
	Pa        E
	Qa        E
	ProofPaQa *zk.CoordsProof // tag 6
	ProofRa   *zk.DLEqProof   // tag 7
	Ra        E
}

// Message4 carries Bob's Rb so Alice can reach the same decision.
type Message4[E group.Element[E]] struct {
	Rb      E
	ProofRb *zk.DLEqProof // tag 8
}

func (m *Message1[E]) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil message1", ErrMalformedMessage)
	}
	if isNil(m.G2a) || isNil(m.G3a) || !dlProofOK(m.ProofA2) || !dlProofOK(m.ProofA3) {
		return fmt.Errorf("%w: message1 has missing fields", ErrMalformedMessage)
	}
	return nil
}

func (m *Message2[E]) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil message2", ErrMalformedMessage)
	}
	if isNil(m.G2b) || isNil(m.G3b) || isNil(m.Pb) || isNil(m.Qb) ||
		!dlProofOK(m.ProofB2) || !dlProofOK(m.ProofB3) || !coordsProofOK(m.ProofPbQb) {
		return fmt.Errorf("%w: message2 has missing fields", ErrMalformedMessage)
	}
	return nil
}

func (m *Message3[E]) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil message3", ErrMalformedMessage)
	}
	if isNil(m.Pa) || isNil(m.Qa) || isNil(m.Ra) ||
		!coordsProofOK(m.ProofPaQa) || !dleqProofOK(m.ProofRa) {
		return fmt.Errorf("%w: message3 has missing fields", ErrMalformedMessage)
	}
	return nil
}

func (m *Message4[E]) validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil message4", ErrMalformedMessage)
	}
	if isNil(m.Rb) || !dleqProofOK(m.ProofRb) {
		return fmt.Errorf("%w: message4 has missing fields", ErrMalformedMessage)
	}
	return nil
}

func dlProofOK(p *zk.DLProof) bool     { return p != nil && p.C != nil && p.D != nil }
func dleqProofOK(p *zk.DLEqProof) bool { return p != nil && p.C != nil && p.D != nil }
func coordsProofOK(p *zk.CoordsProof) bool {
	return p != nil && p.C != nil && p.D0 != nil && p.D1 != nil
}

func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// fields flattens messages into the ordered integer list of the wire format.
func (m *Message1[E]) fields() []*big.Int {
	return []*big.Int{m.G2a.Int(), m.G3a.Int(), m.ProofA2.C, m.ProofA2.D, m.ProofA3.C, m.ProofA3.D}
}

func (m *Message2[E]) fields() []*big.Int {
	return []*big.Int{
		m.G2b.Int(), m.G3b.Int(),
		m.ProofB2.C, m.ProofB2.D, m.ProofB3.C, m.ProofB3.D,
		m.Pb.Int(), m.Qb.Int(),
		m.ProofPbQb.C, m.ProofPbQb.D0, m.ProofPbQb.D1,
	}
}

func (m *Message3[E]) fields() []*big.Int {
	return []*big.Int{
		m.Pa.Int(), m.Qa.Int(),
		m.ProofPaQa.C, m.ProofPaQa.D0, m.ProofPaQa.D1,
		m.ProofRa.C, m.ProofRa.D,
		m.Ra.Int(),
	}
}

func (m *Message4[E]) fields() []*big.Int {
	return []*big.Int{m.Rb.Int(), m.ProofRb.C, m.ProofRb.D}
}
