package smp

import "context"

// RoleID identifies a party on a Transport.
type RoleID uint32

// Role enumerates the two SMP positions.
type Role uint8

const (
	RoleAlice Role = iota
	RoleBob
)

// ID returns the transport identifier of the role.
func (r Role) ID() RoleID { return RoleID(r) }

// Peer returns the transport identifier of the other party.
func (r Role) Peer() RoleID {
	if r == RoleAlice {
		return RoleBob.ID()
	}
	return RoleAlice.ID()
}

func (r Role) String() string {
	switch r {
	case RoleAlice:
		return "alice"
	case RoleBob:
		return "bob"
	}
	return "unknown"
}

// Transport moves encoded SMP messages between the two parties.
//
// The SMP core never blocks; only the runners in this package call a
// Transport. Implementations must deliver messages from one sender in order
// and should honour ctx cancellation on Receive.
type Transport interface {
	Send(ctx context.Context, to RoleID, msg []byte) error
	Receive(ctx context.Context, from RoleID) ([]byte, error)
}
