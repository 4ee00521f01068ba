// Package smp implements the Socialist Millionaires Protocol: two parties,
// Alice and Bob, learn whether their secrets x and y are equal and nothing
// else.
//
// The exchange takes four messages. Alice opens with Start, Bob answers with
// HandleMessage1, Alice continues with HandleMessage2 and Bob decides with
// HandleMessage3, returning Message 4 so that Alice can decide with
// HandleMessage4. Every message carries non-interactive Schnorr proofs
// (package zk) and every received element passes the group's range check.
// Any failed check aborts the session with an error wrapping
// ErrProtocolAbort; an aborted run decides nothing.
//
// Sessions are generic over the group backend (package group). The reference
// backend is the 1536-bit MODP group of RFC 3526:
//
//	grp := group.RFC3526MODP1536()
//	alice, _ := smp.NewAlice[*group.MultiplicativeElement](grp, x)
//	bob, _ := smp.NewBob[*group.MultiplicativeElement](grp, y)
//
// RunAlice and RunBob drive a whole exchange over a Transport, encoding
// messages with Codec. Secrets and drawn scalars are wiped when a session
// finishes, aborts or is closed.
package smp
