// Package internalcheck holds static policy tests over the SMP packages:
// no hex formatting of values that may be secret, no math/rand in protocol
// code, no printing from the arithmetic layers and no == on byte slices.
//
// It exports nothing and is not meant to be imported.
package internalcheck
