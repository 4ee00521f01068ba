package random

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const deterministicInfo = "smp-go deterministic stream v1"

// Deterministic is a seeded ChaCha20 keystream. The same seed always yields
// the same byte stream. It exists for reproducible tests and demos and must
// never back a production session.
type Deterministic struct {
	cipher *chacha20.Cipher
}

var _ io.Reader = (*Deterministic)(nil)

// NewDeterministic derives a ChaCha20 key and nonce from seed with HKDF-SHA256.
func NewDeterministic(seed []byte) (*Deterministic, error) {
	if len(seed) == 0 {
		return nil, errors.New("random: empty seed")
	}
	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	kdf := hkdf.New(sha256.New, seed, nil, []byte(deterministicInfo))
	if _, err := io.ReadFull(kdf, material); err != nil {
		return nil, fmt.Errorf("random: derive stream key: %w", err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("random: init stream: %w", err)
	}
	return &Deterministic{cipher: c}, nil
}

// Read fills p with the next keystream bytes. It never fails before the
// 256 GiB ChaCha20 counter limit, at which point it panics.
func (d *Deterministic) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	d.cipher.XORKeyStream(p, p)
	return len(p), nil
}
