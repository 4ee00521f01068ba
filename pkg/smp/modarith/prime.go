package modarith

import (
	"fmt"
	"math/big"
)

// trialDivisionBits bounds the operands tested by exhaustive trial division.
// Wider operands use big.Int.ProbablyPrime.
const trialDivisionBits = 48

// probablePrimeRounds is the Miller-Rabin round count used above
// trialDivisionBits, in addition to the Baillie-PSW test ProbablyPrime runs.
const probablePrimeRounds = 20

// IsPrime reports whether n is prime. It fails with ErrInvalidArgument for
// n <= 0; 1 is not prime.
//
// Small operands are checked by trial division up to floor(sqrt(n)). Large
// moduli such as the 1536-bit MODP prime are checked probabilistically.
func IsPrime(n *big.Int) (bool, error) {
	if n == nil || n.Sign() <= 0 {
		return false, fmt.Errorf("%w: n must be a natural number", ErrInvalidArgument)
	}
	if n.BitLen() > trialDivisionBits {
		return n.ProbablyPrime(probablePrimeRounds), nil
	}

	v := n.Uint64()
	switch {
	case v == 1:
		return false, nil
	case v == 2 || v == 3:
		return true, nil
	}
	limit := new(big.Int).Sqrt(n).Uint64()
	for i := uint64(2); i <= limit; i++ {
		if v%i == 0 {
			return false, nil
		}
	}
	return true, nil
}
