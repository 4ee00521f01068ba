// Package group defines the group-element capability used by the proof and
// protocol layers, and its integer backend: the multiplicative group of
// integers modulo n.
//
// # Capability interface
//
// Element[E] exposes Identity, Operate, Inverse, Exponentiate, Equal and Int.
// Group[E] carries the shared public parameters (generator, order, encoding
// width). Proofs and the SMP state machine are written against these two
// interfaces only, so an alternative backend, such as an elliptic-curve group,
// is a drop-in replacement.
//
// # Integer backend
//
// MultiplicativeElement holds (n, value) with 0 < value < n and
// gcd(value, n) == 1. ModPGroup is the order-q subgroup of a safe-prime
// modulus; RFC3526MODP1536 returns the reference parameters (1536-bit MODP
// prime, generator 2).
//
//	grp := group.RFC3526MODP1536()
//	a := grp.Generator().Exponentiate(secret)
//	b := a.Operate(a.Inverse()) // identity
//
// Exponentiation is square-and-multiply over Operate (see Exp) and supports
// negative exponents.
package group
