package nib

import (
	"net/netip"

	"github.com/yanet-platform/ipv6nib/internal/xnetip"
	"github.com/yanet-platform/ipv6nib/nib/nud"
)

// onlNone is the null pool-index sentinel, used wherever spec.md speaks
// of an "ONL reference or null".
const onlNone = -1

// ONL is an on-link node record (C1): the (IPv6 address, interface)
// pair shared by the neighbor cache, the default router list and the
// off-link pool's next-hop references. See spec.md §3.
type ONL struct {
	Addr  netip.Addr
	Iface uint16
	Mode  Mode

	NUDState nud.State
	ARState  nud.ARState

	// LLAddr/LLAddrLen are only meaningful when the NIB was built with
	// WithARSM(true); otherwise the link-layer address is derived from
	// Addr on demand (spec.md §6).
	LLAddr    [8]byte
	LLAddrLen uint8

	nudTimer     TimerHandle
	sndNATimer   TimerHandle
	addrRegTimer TimerHandle

	queue []QueuedPacket

	fifoLinked bool
	fifoNext   int
}

func (e *ONL) reset() {
	*e = ONL{}
	e.fifoNext = onlNone
}

// IsEmpty reports whether this slot is free storage (invariant 1 of
// spec.md §8: mode == EMPTY iff fully zeroed).
func (e *ONL) IsEmpty() bool {
	return e.Mode == ModeEmpty
}

// onlAllocate implements C1's allocate(address, iface): exact match
// first (treating a stored-or-queried unspecified address as a
// wildcard), else the first EMPTY slot, else failure.
func (n *NIB) onlAllocate(addr netip.Addr, iface uint16) (int, bool) {
	if idx, ok := n.onlFind(addr, iface); ok {
		return idx, true
	}

	for i := range n.onl {
		if n.onl[i].IsEmpty() {
			n.onl[i].reset()
			n.onl[i].Addr = addr
			n.onl[i].Iface = iface
			return i, true
		}
	}

	return onlNone, false
}

// onlFind performs the exact-match scan shared by allocate and Get: same
// interface (0 on either side is a wildcard) and address equal, or the
// stored address unspecified, or the query address unspecified/zero.
func (n *NIB) onlFind(addr netip.Addr, iface uint16) (int, bool) {
	for i := range n.onl {
		e := &n.onl[i]
		if e.IsEmpty() {
			continue
		}
		if !ifaceMatch(e.Iface, iface) {
			continue
		}
		if xnetip.AddrMatch(e.Addr, addr) {
			return i, true
		}
	}
	return onlNone, false
}

func ifaceMatch(a, b uint16) bool {
	return a == 0 || b == 0 || a == b
}

// ONLGet implements C1's get(address, iface): an exact lookup only (no
// allocation on miss).
func (n *NIB) ONLGet(addr netip.Addr, iface uint16) (*ONL, bool) {
	idx, ok := n.onlFind(addr, iface)
	if !ok {
		return nil, false
	}
	return &n.onl[idx], true
}

// ONLIterate returns the next non-empty ONL in pool order after prev.
// Passing nil starts from the beginning.
func (n *NIB) ONLIterate(prev *ONL) (*ONL, bool) {
	start := 0
	if prev != nil {
		if idx := n.onlIndexOf(prev); idx >= 0 {
			start = idx + 1
		}
	}

	for i := start; i < len(n.onl); i++ {
		if !n.onl[i].IsEmpty() {
			return &n.onl[i], true
		}
	}
	return nil, false
}

func (n *NIB) onlIndexOf(e *ONL) int {
	for i := range n.onl {
		if &n.onl[i] == e {
			return i
		}
	}
	return -1
}

// onlClear implements C1's clear(ONL): if the slot is (or has become)
// EMPTY, zero every field, cancel every timer and unlink it from the NC
// FIFO.
func (n *NIB) onlClear(idx int) {
	e := &n.onl[idx]
	if e.Mode != ModeEmpty {
		return
	}

	n.timer().Remove(&e.nudTimer)
	n.timer().Remove(&e.sndNATimer)
	n.timer().Remove(&e.addrRegTimer)

	n.fifoRemove(idx)

	n.releasePackets(e.queue, DropHostUnreachable)

	e.reset()
}
