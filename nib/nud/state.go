// Package nud encodes Neighbor Unreachability Detection state and
// 6LoWPAN address-registration state, the two pieces of the NIB's
// packed "info" field (spec: on-link node's mode bits ∪ info).
package nud

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// State is the Neighbor Unreachability Detection state of an on-link
// node, reusing the kernel's NUD_* numbering (vishvananda/netlink) so a
// State can be round-tripped to a real netlink neighbor entry, plus an
// UNREACHABLE value the kernel spells FAILED and RIOT's ND stack spells
// UNREACHABLE.
type State int

const (
	// None means the node carries no valid NUD state (not an NC entry).
	None State = netlink.NUD_NONE
	// Incomplete means address resolution is in progress.
	Incomplete State = netlink.NUD_INCOMPLETE
	// Reachable means the neighbor was confirmed reachable recently.
	Reachable State = netlink.NUD_REACHABLE
	// Stale means reachability is unconfirmed but the neighbor may still
	// be used; the next use schedules a DELAY probe.
	Stale State = netlink.NUD_STALE
	// Delay means a probe is deferred waiting for upper-layer
	// confirmation.
	Delay State = netlink.NUD_DELAY
	// Probe means unicast NS probes are in flight.
	Probe State = netlink.NUD_PROBE
	// Unreachable means NUD exhausted its probes without a confirmation.
	Unreachable State = netlink.NUD_FAILED
)

// String returns the RFC 4861 name of the state.
func (s State) String() string {
	switch s {
	case None:
		return "NONE"
	case Incomplete:
		return "INCOMPLETE"
	case Reachable:
		return "REACHABLE"
	case Stale:
		return "STALE"
	case Delay:
		return "DELAY"
	case Probe:
		return "PROBE"
	case Unreachable:
		return "UNREACHABLE"
	default:
		return fmt.Sprintf("NUD(%d)", int(s))
	}
}

// IsReachable reports whether the state counts as "reachable enough" for
// default-router selection and forwarding: anything other than
// INCOMPLETE or UNREACHABLE.
func (s State) IsReachable() bool {
	return s != Incomplete && s != Unreachable
}

// AllowedInitial reports whether s is a state callers may use to create
// a brand-new NC entry. DELAY, PROBE and REACHABLE are reached only by
// internal NUD transitions, never by direct insertion.
func AllowedInitial(s State) bool {
	switch s {
	case Incomplete, Stale, Unreachable:
		return true
	default:
		return false
	}
}
