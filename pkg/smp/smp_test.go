package smp_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptotoy/smp-go/pkg/smp"
	"github.com/cryptotoy/smp-go/pkg/smp/fiatshamir"
	"github.com/cryptotoy/smp-go/pkg/smp/group"
	"github.com/cryptotoy/smp-go/pkg/smp/random"
)

type element = *group.MultiplicativeElement

var modp1536 = group.RFC3526MODP1536()

// exchange runs the four messages directly between two sessions.
func exchange[E group.Element[E]](t *testing.T, alice *smp.Alice[E], bob *smp.Bob[E]) (smp.Result, smp.Result) {
	t.Helper()
	ctx := context.Background()

	m1, err := alice.Start(ctx)
	require.NoError(t, err)
	m2, err := bob.HandleMessage1(ctx, m1)
	require.NoError(t, err)
	m3, err := alice.HandleMessage2(ctx, m2)
	require.NoError(t, err)
	m4, bobRes, err := bob.HandleMessage3(ctx, m3)
	require.NoError(t, err)
	aliceRes, err := alice.HandleMessage4(ctx, m4)
	require.NoError(t, err)
	return aliceRes, bobRes
}

func newPair(t *testing.T, x, y *big.Int, opts ...smp.Option) (*smp.Alice[element], *smp.Bob[element]) {
	t.Helper()
	alice, err := smp.NewAlice[element](modp1536, x, opts...)
	require.NoError(t, err)
	bob, err := smp.NewBob[element](modp1536, y, opts...)
	require.NoError(t, err)
	return alice, bob
}

func TestSMPOutcome(t *testing.T) {
	order := modp1536.Order()
	cases := []struct {
		name  string
		x, y  *big.Int
		equal bool
	}{
		{"different", big.NewInt(5566), big.NewInt(7788), false},
		{"same", big.NewInt(5566), big.NewInt(5566), true},
		{"zero", big.NewInt(0), big.NewInt(0), true},
		{"off by one", big.NewInt(1), big.NewInt(2), false},
		{"congruent mod q", big.NewInt(42), new(big.Int).Add(order, big.NewInt(42)), true},
		{"hashed", smp.HashSecret([]byte("correct horse")), smp.HashSecret([]byte("correct horse")), true},
		{"hashed different", smp.HashSecret([]byte("correct horse")), smp.HashSecret([]byte("battery staple")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alice, bob := newPair(t, tc.x, tc.y)
			aliceRes, bobRes := exchange(t, alice, bob)
			assert.Equal(t, tc.equal, aliceRes.Equal)
			assert.Equal(t, tc.equal, bobRes.Equal)
		})
	}
}

func TestSMPWithSHA3(t *testing.T) {
	alice, bob := newPair(t, big.NewInt(9), big.NewInt(9), smp.WithHash(fiatshamir.SHA3_256))
	aliceRes, bobRes := exchange(t, alice, bob)
	require.True(t, aliceRes.Equal)
	require.True(t, bobRes.Equal)
}

func TestSMPHashMismatchAborts(t *testing.T) {
	ctx := context.Background()
	alice, err := smp.NewAlice[element](modp1536, big.NewInt(1))
	require.NoError(t, err)
	bob, err := smp.NewBob[element](modp1536, big.NewInt(1), smp.WithHash(fiatshamir.SHA3_256))
	require.NoError(t, err)

	m1, err := alice.Start(ctx)
	require.NoError(t, err)
	_, err = bob.HandleMessage1(ctx, m1)
	require.ErrorIs(t, err, smp.ErrProtocolAbort)
	require.ErrorIs(t, err, smp.ErrProofInvalid)
}

func TestSMPDeterministic(t *testing.T) {
	run := func() ([]byte, []byte) {
		ra, err := random.NewDeterministic([]byte("alice seed"))
		require.NoError(t, err)
		rb, err := random.NewDeterministic([]byte("bob seed"))
		require.NoError(t, err)

		alice, err := smp.NewAlice[element](modp1536, big.NewInt(77), smp.WithRand(ra))
		require.NoError(t, err)
		bob, err := smp.NewBob[element](modp1536, big.NewInt(77), smp.WithRand(rb))
		require.NoError(t, err)
		codec, err := smp.NewCodec[element](modp1536)
		require.NoError(t, err)

		ctx := context.Background()
		m1, err := alice.Start(ctx)
		require.NoError(t, err)
		m2, err := bob.HandleMessage1(ctx, m1)
		require.NoError(t, err)
		b1, err := codec.EncodeMessage1(m1)
		require.NoError(t, err)
		b2, err := codec.EncodeMessage2(m2)
		require.NoError(t, err)
		return b1, b2
	}
	a1, a2 := run()
	b1, b2 := run()
	require.Equal(t, a1, b1)
	require.Equal(t, a2, b2)
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	_, err := smp.NewAlice[element](modp1536, nil)
	require.ErrorIs(t, err, smp.ErrInvalidArgument)
	_, err = smp.NewBob[element](modp1536, big.NewInt(-1))
	require.ErrorIs(t, err, smp.ErrInvalidArgument)
	_, err = smp.NewAlice[element](nil, big.NewInt(1))
	require.ErrorIs(t, err, smp.ErrInvalidArgument)
}

func TestSessionDoesNotAliasSecret(t *testing.T) {
	x := big.NewInt(5566)
	alice, bob := newPair(t, x, big.NewInt(5566))
	exchange(t, alice, bob)
	require.Equal(t, int64(5566), x.Int64())
}

func TestHashSecret(t *testing.T) {
	a := smp.HashSecret([]byte("passphrase"))
	b := smp.HashSecret([]byte("passphrase"))
	c := smp.HashSecret([]byte("Passphrase"))
	require.Equal(t, 0, a.Cmp(b))
	require.NotEqual(t, 0, a.Cmp(c))
	require.LessOrEqual(t, a.BitLen(), 256)
}

func TestZeroizeBytes(t *testing.T) {
	buf := []byte{1, 2, 3}
	smp.ZeroizeBytes(buf)
	require.Equal(t, []byte{0, 0, 0}, buf)
	smp.ZeroizeBytes(nil)
}

func TestMessageTypeString(t *testing.T) {
	require.Equal(t, "message1", smp.MessageType1.String())
	require.Equal(t, "message4", smp.MessageType4.String())
	require.Equal(t, "unknown", smp.MessageType(9).String())
}
