package nib

import (
	"net/netip"

	"github.com/yanet-platform/ipv6nib/internal/xnetip"
	"github.com/yanet-platform/ipv6nib/nib/nud"
)

// NC is the neighbor-cache query record returned by NCGet (spec.md §6).
type NC struct {
	Addr      netip.Addr
	NUDState  nud.State
	ARState   nud.ARState
	LLAddr    [8]byte
	LLAddrLen uint8
}

// AddNC implements C2's add_nc(address, iface, nud_state): insert a new
// neighbor-cache entry, evicting a garbage-collectible one if the pool
// is full. Returns ok=false (and panics first in Debug builds) if state
// is not one callers may use to create a fresh entry.
func (n *NIB) AddNC(addr netip.Addr, iface uint16, state nud.State) (*ONL, bool) {
	if !nud.AllowedInitial(state) {
		debugAssert(false, ErrInvalidNUDState.Error()+": "+state.String())
		return nil, false
	}

	if idx, ok := n.onlAllocate(addr, iface); ok {
		e := &n.onl[idx]
		e.Mode |= ModeNC
		e.NUDState = state
		if !n.cfg.ARSM {
			e.LLAddr = xnetip.LinkLayerFromIPv6(addr)
			e.LLAddrLen = 8
		}
		n.fifoPush(idx)
		return e, true
	}

	return n.cacheOutONLEntry(addr, iface, state)
}

// cacheOutONLEntry implements the eviction algorithm _cache_out_onl_entry
// described in spec.md §4.2: walk the FIFO from the head, re-tail-pushing
// every inspected node so ordering is preserved, stop on the first
// garbage-collectible node (spec.md §9 resolves the ambiguous stop
// condition in favor of "stop on first successful reuse; else one full
// revolution").
func (n *NIB) cacheOutONLEntry(addr netip.Addr, iface uint16, state nud.State) (*ONL, bool) {
	revolutions := n.fifoLen()
	for i := 0; i < revolutions; i++ {
		idx := n.fifoPopHead()
		if idx == onlNone {
			return nil, false
		}

		e := &n.onl[idx]
		if e.Mode == ModeNC && e.ARState.GCEligible() {
			n.evictONL(idx)

			e.reset()
			e.Addr = addr
			e.Iface = iface
			e.Mode = ModeNC
			e.NUDState = state
			if !n.cfg.ARSM {
				e.LLAddr = xnetip.LinkLayerFromIPv6(addr)
				e.LLAddrLen = 8
			}
			n.fifoPush(idx)
			return e, true
		}

		n.fifoPush(idx)
	}

	return nil, false
}

func (n *NIB) fifoLen() int {
	if n.fifoHead == onlNone {
		return 0
	}
	count := 1
	for idx := n.onl[n.fifoHead].fifoNext; idx != n.fifoHead; idx = n.onl[idx].fifoNext {
		count++
	}
	return count
}

// evictONL tears down a garbage-collected victim: cancel its timers and
// release its queued packets with HOST_UNREACHABLE, and clear its NC
// bit. The caller resets the slot before reusing it.
func (n *NIB) evictONL(idx int) {
	e := &n.onl[idx]

	n.timer().Remove(&e.nudTimer)
	n.timer().Remove(&e.sndNATimer)
	n.timer().Remove(&e.addrRegTimer)

	n.releasePackets(e.queue, DropHostUnreachable)
	e.queue = nil

	e.Mode &^= ModeNC
}

// NCSetReachable transitions an existing NC entry's NUD state, e.g. to
// REACHABLE after a solicited Neighbor Advertisement or to STALE/PROBE
// during the NUD state machine the ND protocol engine drives externally.
func (n *NIB) NCSetReachable(e *ONL, state nud.State) {
	if e == nil || !e.Mode.Has(ModeNC) {
		return
	}
	e.NUDState = state
}

// RemoveNC implements C2's remove_nc(ONL): clear the NC bit, cancel
// timers, release queued packets, then fall through to clear() which
// frees the slot if no other table still references it.
func (n *NIB) RemoveNC(e *ONL) {
	if e == nil || !e.Mode.Has(ModeNC) {
		return
	}

	idx := n.onlIndexOf(e)
	if idx == onlNone {
		return
	}

	n.timer().Remove(&e.nudTimer)
	n.timer().Remove(&e.sndNATimer)
	n.timer().Remove(&e.addrRegTimer)

	n.releasePackets(e.queue, DropHostUnreachable)
	e.queue = nil

	e.Mode &^= ModeNC
	n.onlClear(idx)
}

// NCGet populates out from e and reports whether e currently carries an
// NC entry.
func (n *NIB) NCGet(e *ONL, out *NC) bool {
	if e == nil || !e.Mode.Has(ModeNC) {
		return false
	}

	out.Addr = e.Addr
	out.NUDState = e.NUDState
	out.ARState = e.ARState

	if n.cfg.ARSM {
		out.LLAddr = e.LLAddr
		out.LLAddrLen = e.LLAddrLen
	} else {
		out.LLAddr = xnetip.LinkLayerFromIPv6(e.Addr)
		out.LLAddrLen = 8
	}

	return true
}
