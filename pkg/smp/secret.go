package smp

import (
	"crypto/sha256"
	"math/big"
)

// HashSecret maps an arbitrary byte string, such as a shared passphrase, to
// an SMP secret: the SHA-256 digest read as a big-endian integer. Both
// parties must hash identical bytes for their secrets to compare equal.
func HashSecret(data []byte) *big.Int {
	sum := sha256.Sum256(data)
	defer ZeroizeBytes(sum[:])
	return new(big.Int).SetBytes(sum[:])
}
