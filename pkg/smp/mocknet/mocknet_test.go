package mocknet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cryptotoy/smp-go/pkg/smp"
)

func TestPairSequence(t *testing.T) {
	net := New()
	alice, bob := net.Pair()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	const rounds = 5
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if err := alice.Send(ctx, smp.RoleBob.ID(), []byte{byte(i)}); err != nil {
				t.Errorf("alice send %d: %v", i, err)
				return
			}
			got, err := alice.Receive(ctx, smp.RoleBob.ID())
			if err != nil {
				t.Errorf("alice receive %d: %v", i, err)
				return
			}
			if len(got) != 1 || got[0] != byte(i+1) {
				t.Errorf("alice receive %d got %v", i, got)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			got, err := bob.Receive(ctx, smp.RoleAlice.ID())
			if err != nil {
				t.Errorf("bob receive %d: %v", i, err)
				return
			}
			if len(got) != 1 || got[0] != byte(i) {
				t.Errorf("bob receive %d got %v", i, got)
				return
			}
			if err := bob.Send(ctx, smp.RoleAlice.ID(), []byte{byte(i + 1)}); err != nil {
				t.Errorf("bob send %d: %v", i, err)
				return
			}
		}
	}()

	wg.Wait()
}

func TestSendCopiesPayload(t *testing.T) {
	net := New()
	alice, bob := net.Pair()
	ctx := context.Background()

	msg := []byte("hello")
	require.NoError(t, alice.Send(ctx, smp.RoleBob.ID(), msg))
	msg[0] = 'j'

	got, err := bob.Receive(ctx, smp.RoleAlice.ID())
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestTamper(t *testing.T) {
	net := New()
	alice, bob := net.Pair()
	ctx := context.Background()

	net.SetTamper(func(from, to smp.RoleID, seq uint64, msg []byte) []byte {
		if from == smp.RoleAlice.ID() && seq == 1 {
			msg[0] ^= 0xff
		}
		return msg
	})

	require.NoError(t, alice.Send(ctx, smp.RoleBob.ID(), []byte{0x01}))
	require.NoError(t, alice.Send(ctx, smp.RoleBob.ID(), []byte{0x01}))

	first, err := bob.Receive(ctx, smp.RoleAlice.ID())
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, first)
	second, err := bob.Receive(ctx, smp.RoleAlice.ID())
	require.NoError(t, err)
	require.Equal(t, []byte{0xfe}, second)
}

func TestAddressing(t *testing.T) {
	net := New()
	alice, _ := net.Pair()
	ctx := context.Background()

	require.Error(t, alice.Send(ctx, smp.RoleAlice.ID(), nil))
	require.Error(t, alice.Send(ctx, smp.RoleID(7), nil))
	_, err := alice.Receive(ctx, smp.RoleAlice.ID())
	require.Error(t, err)
}

func TestReceiveHonoursContext(t *testing.T) {
	net := New()
	_, bob := net.Pair()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := bob.Receive(ctx, smp.RoleAlice.ID())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClose(t *testing.T) {
	net := New()
	_, bob := net.Pair()

	errCh := make(chan error, 1)
	go func() {
		_, err := bob.Receive(context.Background(), smp.RoleAlice.ID())
		errCh <- err
	}()
	net.Close()
	net.Close()

	select {
	case err := <-errCh:
		require.True(t, errors.Is(err, ErrClosed))
	case <-time.After(time.Second):
		t.Fatal("receive did not unblock")
	}
}
