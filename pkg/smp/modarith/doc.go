// Package modarith implements the integer helpers the group layer is built on:
// the extended Euclidean algorithm with Bézout coefficients, modular inversion,
// coprimality and primality checks.
//
// All functions operate on math/big integers and never mutate their inputs.
package modarith
