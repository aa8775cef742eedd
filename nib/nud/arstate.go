package nud

import "fmt"

// ARState is the 6LoWPAN address-registration state of an on-link node
// (RFC 8505 Address Registration Option), the other half of the packed
// "info" field spec.md describes. It is orthogonal to State: a node can
// be STALE/reachable for NUD purposes while still being a garbage
// collection candidate for address-registration purposes.
type ARState uint8

const (
	// ARNone means address registration does not apply to this node
	// (e.g. the node was only ever a DRL or OFFL next hop).
	ARNone ARState = iota
	// ARGC marks a node that only exists because some table still
	// references its ONL slot and is therefore a candidate for the NC
	// FIFO's garbage collection sweep.
	ARGC
	// ARRegistered means the node successfully completed RFC 8505
	// address registration and must not be evicted by GC.
	ARRegistered
	// ARRegisterPending means a registration exchange is in flight.
	ARRegisterPending
	// ARTentative means the node is provisionally registered pending
	// duplicate-address detection.
	ARTentative
)

func (s ARState) String() string {
	switch s {
	case ARNone:
		return "NONE"
	case ARGC:
		return "GC"
	case ARRegistered:
		return "REGISTERED"
	case ARRegisterPending:
		return "REGISTER_PENDING"
	case ARTentative:
		return "TENTATIVE"
	default:
		return fmt.Sprintf("ARSTATE(%d)", int(s))
	}
}

// GCEligible reports whether a node in this address-registration state
// is a valid NC-FIFO eviction victim. Per spec.md §4.2: "a node is
// garbage-collectible iff its only mode bit is NC and its
// address-registration state is GC."
func (s ARState) GCEligible() bool {
	return s == ARGC
}
