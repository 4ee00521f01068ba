package smp

import (
	"errors"
	"fmt"

	"github.com/cryptotoy/smp-go/pkg/smp/group"
)

var (
	// ErrInvalidArgument reports a bad secret, group or option.
	ErrInvalidArgument = group.ErrInvalidArgument

	// ErrProtocolAbort is wrapped by every AbortError. A run that ends with
	// this error did not decide anything about the secrets.
	ErrProtocolAbort = errors.New("smp: protocol aborted")

	// ErrProofInvalid indicates a peer proof failed verification.
	ErrProofInvalid = errors.New("smp: peer proof invalid")

	// ErrDegenerateElement indicates a peer element failed the range check.
	ErrDegenerateElement = errors.New("smp: degenerate group element")

	// ErrMalformedMessage indicates a message with missing or undecodable fields.
	ErrMalformedMessage = errors.New("smp: malformed message")

	// ErrNonceReuse indicates the randomness source repeated a value.
	ErrNonceReuse = errors.New("smp: random value reused")

	// ErrUnexpectedMessage indicates a step invoked out of protocol order.
	ErrUnexpectedMessage = errors.New("smp: unexpected message for session state")

	// ErrSessionClosed indicates the session already finished, aborted or was
	// closed.
	ErrSessionClosed = errors.New("smp: session closed")

	// ErrNilTransport indicates a nil Transport was passed to a runner.
	ErrNilTransport = errors.New("smp: transport must not be nil")
)

// AbortError reports the step at which a session aborted and why. It matches
// both ErrProtocolAbort and its cause under errors.Is.
type AbortError struct {
	Step string // Protocol step that aborted
	Err  error  // Underlying cause
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("smp: abort at %s: %v", e.Step, e.Err)
}

func (e *AbortError) Unwrap() []error {
	return []error{ErrProtocolAbort, e.Err}
}
