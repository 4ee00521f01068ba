// Package fiatshamir implements the hash-to-scalar transform that makes the
// zero-knowledge proofs non-interactive.
//
// Every input (the version tag first, then the commitments) is encoded as a
// big-endian byte string of the group's fixed encoding width and the
// concatenation is hashed. The encoding is part of the wire contract between
// the two parties: changing the width, byte order or argument order is a
// compatibility break.
package fiatshamir
