package fiatshamir

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regression vectors: SHA-256 / SHA3-256 over the version tag 1 encoded in
// 192 bytes, the width of the 1536-bit MODP group.
const (
	sha256Version1Vector  = "39388732025331101697295654804064930569824239780452815707611966159002551458540"
	sha3256Version1Vector = "63870514824690917641356853262872984462255271893125928164509812435567288965635"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestHashToIntVersionOnlyVector(t *testing.T) {
	tr, err := New(192)
	require.NoError(t, err)

	got, err := tr.HashToInt(1)
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(mustBig(t, sha256Version1Vector)), "got %s", got)
}

func TestHashToIntSHA3Vector(t *testing.T) {
	tr, err := New(192, WithHash(SHA3_256))
	require.NoError(t, err)

	got, err := tr.HashToInt(1)
	require.NoError(t, err)
	assert.Zero(t, got.Cmp(mustBig(t, sha3256Version1Vector)), "got %s", got)
}

func TestHashToIntNarrowWidthVector(t *testing.T) {
	// SHA-256(0x00..01 || 0x00..02), 33-byte fields.
	tr, err := New(33)
	require.NoError(t, err)

	got, err := tr.HashToInt(1, big.NewInt(2))
	require.NoError(t, err)
	want := mustBig(t, "115417934315218748254928799153216619349658625001270178873146457045931057718736")
	assert.Zero(t, got.Cmp(want), "got %s", got)
}

func TestHashToIntDomainSeparation(t *testing.T) {
	tr, err := New(192)
	require.NoError(t, err)
	v := big.NewInt(12345)

	h1, err := tr.HashToInt(1, v)
	require.NoError(t, err)
	h2, err := tr.HashToInt(2, v)
	require.NoError(t, err)
	assert.NotZero(t, h1.Cmp(h2), "different version tags must yield different challenges")

	a, b := big.NewInt(3), big.NewInt(4)
	hab, err := tr.HashToInt(1, a, b)
	require.NoError(t, err)
	hba, err := tr.HashToInt(1, b, a)
	require.NoError(t, err)
	assert.NotZero(t, hab.Cmp(hba), "argument order must matter")
}

func TestHashToIntDeterministic(t *testing.T) {
	tr, err := New(192)
	require.NoError(t, err)
	v := new(big.Int).Lsh(big.NewInt(1), 1500)

	first, err := tr.HashToInt(7, v, big.NewInt(9))
	require.NoError(t, err)
	second, err := tr.HashToInt(7, v, big.NewInt(9))
	require.NoError(t, err)
	assert.Zero(t, first.Cmp(second))
}

func TestHashToIntRejectsUnencodable(t *testing.T) {
	tr, err := New(2)
	require.NoError(t, err)

	_, err = tr.HashToInt(1, big.NewInt(1<<16))
	assert.True(t, errors.Is(err, ErrEncoding))

	_, err = tr.HashToInt(1, big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrEncoding))

	_, err = tr.HashToInt(1, nil)
	assert.True(t, errors.Is(err, ErrEncoding))

	_, err = tr.HashToInt(1 << 20)
	assert.True(t, errors.Is(err, ErrEncoding), "version wider than the field")

	_, err = tr.HashToInt(1, big.NewInt(0xffff))
	assert.NoError(t, err)
}

func TestNewRejectsNonPositiveWidth(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}
