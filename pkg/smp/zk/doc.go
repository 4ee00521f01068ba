// Package zk provides the non-interactive zero-knowledge proofs used by the
// Socialist Millionaires Protocol.
//
// All three proofs are Fiat-Shamir transformed Schnorr sigma protocols over a
// group.Element backend:
//
//   - DL: knowledge of x with y = g^x.
//   - DLEq: y0 = g0^x and y1 = g1^x share the same x.
//   - Coords: y0 = g0^e0 and y1 = g1^e0 * g2^e1.
//
// A Suite fixes the group order used to reduce responses and the hash used to
// derive challenges. Provers take the blinding nonce explicitly so callers
// control the randomness source; a nonce must never be reused across proofs.
// Verifiers are pure predicates and return false on any malformed input.
package zk
