package smp

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites buf with zeros.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// zeroizeInt clears the words backing v and resets it to zero. Copies made
// earlier by math/big are out of reach.
func zeroizeInt(v *big.Int) {
	if v == nil {
		return
	}
	words := v.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	v.SetInt64(0)
}
