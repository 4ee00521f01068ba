// Package mocknet is an in-memory Transport connecting the two SMP parties.
// It is meant for tests and the demo CLI.
package mocknet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cryptotoy/smp-go/pkg/smp"
)

// ErrClosed is returned by endpoints of a closed Net.
var ErrClosed = errors.New("mocknet: network closed")

// Tamper may rewrite a message in flight. It receives a private copy of the
// payload and returns what the receiver sees.
type Tamper func(from, to smp.RoleID, seq uint64, msg []byte) []byte

// Net routes messages between endpoints. Every (sender, receiver, sequence)
// triple owns a one-slot mailbox, so messages are delivered in send order.
type Net struct {
	mu     sync.Mutex
	q      map[slotKey]chan []byte
	tamper Tamper
	done   chan struct{}
	once   sync.Once
}

// New returns an empty network.
func New() *Net {
	return &Net{q: make(map[slotKey]chan []byte), done: make(chan struct{})}
}

// SetTamper installs fn on every subsequent delivery. A nil fn removes it.
func (n *Net) SetTamper(fn Tamper) {
	n.mu.Lock()
	n.tamper = fn
	n.mu.Unlock()
}

// Close unblocks every pending Send and Receive with ErrClosed.
func (n *Net) Close() {
	n.once.Do(func() { close(n.done) })
}

type slotKey struct {
	from, to smp.RoleID
	seq      uint64
}

func (n *Net) slot(key slotKey) chan []byte {
	n.mu.Lock()
	defer n.mu.Unlock()
	ch := n.q[key]
	if ch == nil {
		ch = make(chan []byte, 1)
		n.q[key] = ch
	}
	return ch
}

func (n *Net) deliver(ctx context.Context, key slotKey, payload []byte) error {
	msg := append([]byte(nil), payload...)
	n.mu.Lock()
	tamper := n.tamper
	n.mu.Unlock()
	if tamper != nil {
		msg = tamper(key.from, key.to, key.seq, msg)
	}
	select {
	case n.slot(key) <- msg:
		return nil
	case <-n.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Net) await(ctx context.Context, key slotKey) ([]byte, error) {
	ch := n.slot(key)
	select {
	case msg := <-ch:
		n.mu.Lock()
		delete(n.q, key)
		n.mu.Unlock()
		return msg, nil
	case <-n.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Endpoint is one party's view of the network. It talks to exactly one peer.
type Endpoint struct {
	net        *Net
	self, peer smp.RoleID

	sendMu, recvMu   sync.Mutex
	sendSeq, recvSeq uint64
}

var _ smp.Transport = (*Endpoint)(nil)

// Ep2P returns the endpoint of self talking to peer.
func (n *Net) Ep2P(self, peer smp.RoleID) *Endpoint {
	return &Endpoint{net: n, self: self, peer: peer}
}

// Pair returns connected endpoints for Alice and Bob.
func (n *Net) Pair() (alice, bob *Endpoint) {
	return n.Ep2P(smp.RoleAlice.ID(), smp.RoleBob.ID()), n.Ep2P(smp.RoleBob.ID(), smp.RoleAlice.ID())
}

func (e *Endpoint) check(role smp.RoleID) error {
	if role == e.self {
		return errors.New("mocknet: self addressed message")
	}
	if role != e.peer {
		return fmt.Errorf("mocknet: unknown peer %d", role)
	}
	return nil
}

func (e *Endpoint) Send(ctx context.Context, to smp.RoleID, msg []byte) error {
	if err := e.check(to); err != nil {
		return err
	}
	e.sendMu.Lock()
	defer e.sendMu.Unlock()

	if err := e.net.deliver(ctx, slotKey{from: e.self, to: to, seq: e.sendSeq}, msg); err != nil {
		return err
	}
	e.sendSeq++
	return nil
}

func (e *Endpoint) Receive(ctx context.Context, from smp.RoleID) ([]byte, error) {
	if err := e.check(from); err != nil {
		return nil, err
	}
	e.recvMu.Lock()
	defer e.recvMu.Unlock()

	msg, err := e.net.await(ctx, slotKey{from: from, to: e.self, seq: e.recvSeq})
	if err != nil {
		return nil, err
	}
	e.recvSeq++
	return msg, nil
}
