// Package random supplies the randomness the protocol draws: private scalars,
// session secrets and proof blinding values.
//
// Production code reads from crypto/rand. The source is always injectable as
// an io.Reader so tests can substitute a Deterministic stream without
// changing the production path.
package random
