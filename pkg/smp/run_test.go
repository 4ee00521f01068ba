package smp_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cryptotoy/smp-go/pkg/smp"
	"github.com/cryptotoy/smp-go/pkg/smp/mocknet"
)

type outcome struct {
	res smp.Result
	err error
}

func runOverNet(t *testing.T, net *mocknet.Net, x, y *big.Int) (outcome, outcome) {
	t.Helper()
	alice, bob := newPair(t, x, y)
	aliceEp, bobEp := net.Pair()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var a, b outcome
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.res, a.err = smp.RunAlice(ctx, aliceEp, alice)
	}()
	go func() {
		defer wg.Done()
		b.res, b.err = smp.RunBob(ctx, bobEp, bob)
		if b.err != nil {
			// Alice would otherwise wait for Message 4 until the deadline.
			net.Close()
		}
	}()
	wg.Wait()
	return a, b
}

func TestRunOverMocknet(t *testing.T) {
	cases := []struct {
		name  string
		x, y  int64
		equal bool
	}{
		{"equal", 5566, 5566, true},
		{"different", 5566, 7788, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := runOverNet(t, mocknet.New(), big.NewInt(tc.x), big.NewInt(tc.y))
			require.NoError(t, a.err)
			require.NoError(t, b.err)
			require.Equal(t, tc.equal, a.res.Equal)
			require.Equal(t, tc.equal, b.res.Equal)
		})
	}
}

func TestRunAbortsOnTamperedTraffic(t *testing.T) {
	net := mocknet.New()
	// Flip the last byte of Message 3, which belongs to Ra.
	net.SetTamper(func(from, to smp.RoleID, seq uint64, msg []byte) []byte {
		if from == smp.RoleAlice.ID() && seq == 1 {
			msg[len(msg)-1] ^= 0x01
		}
		return msg
	})

	a, b := runOverNet(t, net, big.NewInt(1), big.NewInt(1))
	require.ErrorIs(t, b.err, smp.ErrProtocolAbort)
	require.ErrorIs(t, a.err, smp.ErrProtocolAbort)
	require.ErrorIs(t, a.err, mocknet.ErrClosed)
}

func TestRunAbortsOnGarbage(t *testing.T) {
	net := mocknet.New()
	net.SetTamper(func(from, to smp.RoleID, seq uint64, msg []byte) []byte {
		if from == smp.RoleAlice.ID() && seq == 0 {
			return []byte{0xde, 0xad}
		}
		return msg
	})

	a, b := runOverNet(t, net, big.NewInt(1), big.NewInt(1))
	require.ErrorIs(t, b.err, smp.ErrMalformedMessage)
	require.ErrorIs(t, b.err, smp.ErrProtocolAbort)
	require.Error(t, a.err)
}

func TestRunHonoursContext(t *testing.T) {
	alice, _ := newPair(t, big.NewInt(1), big.NewInt(1))
	aliceEp, _ := mocknet.New().Pair()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Nobody plays Bob: Message 1 is buffered, Message 2 never arrives.
	_, err := smp.RunAlice(ctx, aliceEp, alice)
	require.ErrorIs(t, err, smp.ErrProtocolAbort)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunRejectsNilTransport(t *testing.T) {
	alice, bob := newPair(t, big.NewInt(1), big.NewInt(1))
	_, err := smp.RunAlice(context.Background(), nil, alice)
	require.ErrorIs(t, err, smp.ErrNilTransport)
	_, err = smp.RunBob(context.Background(), nil, bob)
	require.ErrorIs(t, err, smp.ErrNilTransport)
}
