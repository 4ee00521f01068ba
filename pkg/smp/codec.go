package smp

import (
	"fmt"
	"math/big"

	"github.com/renproject/surge"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/zk"
)

// envelope is the wire form of every message: a version byte, the message
// type and the message's integers, each left-padded to the group's byte
// length.
type envelope struct {
	Version uint8
	Type    uint8
	Fields  [][]byte
}

var fieldCounts = map[MessageType]int{
	MessageType1: 6,
	MessageType2: 11,
	MessageType3: 8,
	MessageType4: 3,
}

type wireMessage interface {
	validate() error
	fields() []*big.Int
}

// Codec encodes and decodes SMP messages for one group. Decoded elements are
// built through the group, so a message that names a value outside the group
// fails to decode.
type Codec[E group.Element[E]] struct {
	grp   group.Group[E]
	width int
}

// NewCodec returns a Codec for grp.
func NewCodec[E group.Element[E]](grp group.Group[E]) (*Codec[E], error) {
	if grp == nil {
		return nil, fmt.Errorf("%w: nil group", ErrInvalidArgument)
	}
	return &Codec[E]{grp: grp, width: grp.ByteLen()}, nil
}

func (c *Codec[E]) EncodeMessage1(m *Message1[E]) ([]byte, error) {
	return c.encode(MessageType1, m)
}

func (c *Codec[E]) EncodeMessage2(m *Message2[E]) ([]byte, error) {
	return c.encode(MessageType2, m)
}

func (c *Codec[E]) EncodeMessage3(m *Message3[E]) ([]byte, error) {
	return c.encode(MessageType3, m)
}

func (c *Codec[E]) EncodeMessage4(m *Message4[E]) ([]byte, error) {
	return c.encode(MessageType4, m)
}

func (c *Codec[E]) encode(t MessageType, m wireMessage) ([]byte, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	ints := m.fields()
	env := envelope{Version: WireVersion, Type: uint8(t), Fields: make([][]byte, len(ints))}
	for i, v := range ints {
		if v.Sign() < 0 || (v.BitLen()+7)/8 > c.width {
			return nil, fmt.Errorf("%w: %s field %d does not fit %d bytes", ErrMalformedMessage, t, i, c.width)
		}
		env.Fields[i] = v.FillBytes(make([]byte, c.width))
	}
	data, err := surge.ToBinary(&env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return data, nil
}

// PeekType reports the message type of an encoded message without decoding
// its fields.
func PeekType(data []byte) (MessageType, error) {
	var env envelope
	if err := surge.FromBinary(&env, data); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return MessageType(env.Type), nil
}

func (c *Codec[E]) DecodeMessage1(data []byte) (*Message1[E], error) {
	d, err := c.open(MessageType1, data)
	if err != nil {
		return nil, err
	}
	m := &Message1[E]{
		G2a:     d.element(),
		G3a:     d.element(),
		ProofA2: &zk.DLProof{C: d.scalar(), D: d.scalar()},
		ProofA3: &zk.DLProof{C: d.scalar(), D: d.scalar()},
	}
	return m, d.err
}

func (c *Codec[E]) DecodeMessage2(data []byte) (*Message2[E], error) {
	d, err := c.open(MessageType2, data)
	if err != nil {
		return nil, err
	}
	m := &Message2[E]{
		G2b:       d.element(),
		G3b:       d.element(),
		ProofB2:   &zk.DLProof{C: d.scalar(), D: d.scalar()},
		ProofB3:   &zk.DLProof{C: d.scalar(), D: d.scalar()},
		Pb:        d.element(),
		Qb:        d.element(),
		ProofPbQb: &zk.CoordsProof{C: d.scalar(), D0: d.scalar(), D1: d.scalar()},
	}
	return m, d.err
}

func (c *Codec[E]) DecodeMessage3(data []byte) (*Message3[E], error) {
	d, err := c.open(MessageType3, data)
	if err != nil {
		return nil, err
	}
	m := &Message3[E]{
		Pa:        d.element(),
		Qa:        d.element(),
		ProofPaQa: &zk.CoordsProof{C: d.scalar(), D0: d.scalar(), D1: d.scalar()},
		ProofRa:   &zk.DLEqProof{C: d.scalar(), D: d.scalar()},
		Ra:        d.element(),
	}
	return m, d.err
}

func (c *Codec[E]) DecodeMessage4(data []byte) (*Message4[E], error) {
	d, err := c.open(MessageType4, data)
	if err != nil {
		return nil, err
	}
	m := &Message4[E]{
		Rb:      d.element(),
		ProofRb: &zk.DLEqProof{C: d.scalar(), D: d.scalar()},
	}
	return m, d.err
}

func (c *Codec[E]) open(want MessageType, data []byte) (*decoder[E], error) {
	var env envelope
	if err := surge.FromBinary(&env, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if env.Version != WireVersion {
		return nil, fmt.Errorf("%w: wire version %d, expected %d", ErrMalformedMessage, env.Version, WireVersion)
	}
	if MessageType(env.Type) != want {
		return nil, fmt.Errorf("%w: got %s, expected %s", ErrUnexpectedMessage, MessageType(env.Type), want)
	}
	if len(env.Fields) != fieldCounts[want] {
		return nil, fmt.Errorf("%w: %s has %d fields, expected %d", ErrMalformedMessage, want, len(env.Fields), fieldCounts[want])
	}
	for i, f := range env.Fields {
		if len(f) != c.width {
			return nil, fmt.Errorf("%w: %s field %d is %d bytes, expected %d", ErrMalformedMessage, want, i, len(f), c.width)
		}
	}
	return &decoder[E]{grp: c.grp, fields: env.Fields}, nil
}

// decoder walks the fields in order and keeps the first error.
type decoder[E group.Element[E]] struct {
	grp    group.Group[E]
	fields [][]byte
	next   int
	err    error
}

func (d *decoder[E]) take() *big.Int {
	v := new(big.Int).SetBytes(d.fields[d.next])
	d.next++
	return v
}

func (d *decoder[E]) scalar() *big.Int {
	return d.take()
}

func (d *decoder[E]) element() E {
	i := d.next
	v := d.take()
	e, err := d.grp.NewElement(v)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("%w: field %d: %v", ErrMalformedMessage, i, err)
	}
	return e
}
