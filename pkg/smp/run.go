package smp

import (
	"context"
	"fmt"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
)

// RunAlice drives a complete exchange as Alice over t: it sends Message 1,
// waits for Message 2, sends Message 3 and decides on Message 4. The session
// is closed when RunAlice returns.
func RunAlice[E group.Element[E]](ctx context.Context, t Transport, a *Alice[E]) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTransport
	}
	if a == nil {
		return Result{}, fmt.Errorf("%w: nil session", ErrInvalidArgument)
	}
	defer a.Close()

	codec, err := NewCodec(a.s.grp)
	if err != nil {
		return Result{}, err
	}
	peer := RoleAlice.Peer()

	m1, err := a.Start(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := send(ctx, t, peer, m1, codec.EncodeMessage1); err != nil {
		return Result{}, a.s.abort(ctx, "send message1", err)
	}

	data, err := t.Receive(ctx, peer)
	if err != nil {
		return Result{}, a.s.abort(ctx, "receive message2", err)
	}
	m2, err := codec.DecodeMessage2(data)
	if err != nil {
		return Result{}, a.s.abort(ctx, "decode message2", err)
	}
	m3, err := a.HandleMessage2(ctx, m2)
	if err != nil {
		return Result{}, err
	}
	if err := send(ctx, t, peer, m3, codec.EncodeMessage3); err != nil {
		return Result{}, a.s.abort(ctx, "send message3", err)
	}

	data, err = t.Receive(ctx, peer)
	if err != nil {
		return Result{}, a.s.abort(ctx, "receive message4", err)
	}
	m4, err := codec.DecodeMessage4(data)
	if err != nil {
		return Result{}, a.s.abort(ctx, "decode message4", err)
	}
	return a.HandleMessage4(ctx, m4)
}

// RunBob drives a complete exchange as Bob over t. Bob decides after
// Message 3 and sends Message 4 before returning, so Alice reaches the same
// result. The session is closed when RunBob returns.
func RunBob[E group.Element[E]](ctx context.Context, t Transport, b *Bob[E]) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTransport
	}
	if b == nil {
		return Result{}, fmt.Errorf("%w: nil session", ErrInvalidArgument)
	}
	defer b.Close()

	codec, err := NewCodec(b.s.grp)
	if err != nil {
		return Result{}, err
	}
	peer := RoleBob.Peer()

	data, err := t.Receive(ctx, peer)
	if err != nil {
		return Result{}, b.s.abort(ctx, "receive message1", err)
	}
	m1, err := codec.DecodeMessage1(data)
	if err != nil {
		return Result{}, b.s.abort(ctx, "decode message1", err)
	}
	m2, err := b.HandleMessage1(ctx, m1)
	if err != nil {
		return Result{}, err
	}
	if err := send(ctx, t, peer, m2, codec.EncodeMessage2); err != nil {
		return Result{}, b.s.abort(ctx, "send message2", err)
	}

	data, err = t.Receive(ctx, peer)
	if err != nil {
		return Result{}, b.s.abort(ctx, "receive message3", err)
	}
	m3, err := codec.DecodeMessage3(data)
	if err != nil {
		return Result{}, b.s.abort(ctx, "decode message3", err)
	}
	m4, res, err := b.HandleMessage3(ctx, m3)
	if err != nil {
		return Result{}, err
	}
	// The session is already wiped here.
	if err := send(ctx, t, peer, m4, codec.EncodeMessage4); err != nil {
		return Result{}, &AbortError{Step: "send message4", Err: err}
	}
	return res, nil
}

func send[M any](ctx context.Context, t Transport, to RoleID, m M, encode func(M) ([]byte, error)) error {
	data, err := encode(m)
	if err != nil {
		return err
	}
	return t.Send(ctx, to, data)
}
