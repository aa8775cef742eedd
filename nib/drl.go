package nib

import (
	"net/netip"

	"github.com/yanet-platform/ipv6nib/internal/xnetip"
)

// DR is a default-router entry (C3): a non-owning reference to an ONL
// carrying DRL mode (NC may also be set). See spec.md §3.
type DR struct {
	nextHop int // index into n.onl, onlNone if this slot is free
}

// IsFree reports whether this DR slot holds no router.
func (d *DR) IsFree() bool {
	return d.nextHop == onlNone
}

func (n *NIB) drIndexOf(d *DR) int {
	for i := range n.dr {
		if &n.dr[i] == d {
			return i
		}
	}
	return -1
}

// DRLAdd implements C3's add(router_addr, iface): on an exact match of
// an existing DR's underlying ONL, OR the ONL's mode with DRL and return
// it; otherwise claim a free DR slot and a fresh/matching ONL. Fails
// (ErrPoolFull) if either the DR pool or the ONL pool has no room.
func (n *NIB) DRLAdd(routerAddr netip.Addr, iface uint16) (*DR, error) {
	if idx, ok := n.onlFind(routerAddr, iface); ok {
		if onl := &n.onl[idx]; onl.Mode.Has(ModeDRL) {
			if dr, ok := n.drByNextHop(idx); ok {
				return dr, nil
			}
		}
	}

	slot := onlNone
	for i := range n.dr {
		if n.dr[i].IsFree() {
			slot = i
			break
		}
	}
	if slot == onlNone {
		return nil, ErrPoolFull
	}

	onlIdx, ok := n.onlAllocate(routerAddr, iface)
	if !ok {
		return nil, ErrPoolFull
	}

	n.onl[onlIdx].Mode |= ModeDRL
	n.dr[slot].nextHop = onlIdx
	return &n.dr[slot], nil
}

func (n *NIB) drByNextHop(onlIdx int) (*DR, bool) {
	for i := range n.dr {
		if n.dr[i].nextHop == onlIdx {
			return &n.dr[i], true
		}
	}
	return nil, false
}

// DRLRemove implements C3's remove(DR): clear DRL on the referenced
// ONL, clear() it, zero the DR slot, and reset the prime pointer if this
// was the primed entry.
func (n *NIB) DRLRemove(d *DR) {
	if d == nil || d.IsFree() {
		return
	}

	idx := n.drIndexOf(d)
	if idx == onlNone {
		return
	}

	onlIdx := d.nextHop
	n.onl[onlIdx].Mode &^= ModeDRL
	n.onlClear(onlIdx)

	d.nextHop = onlNone

	if n.drPrime == idx {
		n.drPrime = onlNone
	}
}

// DRLIterate returns the next occupied DR after prev, in pool order.
func (n *NIB) DRLIterate(prev *DR) (*DR, bool) {
	start := 0
	if prev != nil {
		if idx := n.drIndexOf(prev); idx >= 0 {
			start = idx + 1
		}
	}
	for i := start; i < len(n.dr); i++ {
		if !n.dr[i].IsFree() {
			return &n.dr[i], true
		}
	}
	return nil, false
}

// DRLGet implements C3's get(router_addr, iface): exact lookup over
// occupied DR slots.
func (n *NIB) DRLGet(routerAddr netip.Addr, iface uint16) (*DR, bool) {
	for i := range n.dr {
		if n.dr[i].IsFree() {
			continue
		}
		onl := &n.onl[n.dr[i].nextHop]
		if ifaceMatch(onl.Iface, iface) && xnetip.AddrMatch(onl.Addr, routerAddr) {
			return &n.dr[i], true
		}
	}
	return nil, false
}

// GetDR implements C3's get_dr() router-selection state machine
// (RFC 4861 §6.3.6-style rotation), spec.md §4.3:
//
//  1. If a prime exists and is reachable, return it.
//  2. Else scan from the beginning for the first reachable DR, prime and
//     return it.
//  3. Else rotate the prime deterministically to the next DR slot after
//     the current prime (wrapping to the first occupied slot), and
//     return that unreachable DR so the caller triggers NUD against it.
//     An empty DRL returns (nil, false).
func (n *NIB) GetDR() (*DR, bool) {
	if n.drPrime != onlNone && !n.dr[n.drPrime].IsFree() {
		prime := &n.dr[n.drPrime]
		if n.onl[prime.nextHop].NUDState.IsReachable() {
			return prime, true
		}
	} else {
		n.drPrime = onlNone
	}

	for i := range n.dr {
		if n.dr[i].IsFree() {
			continue
		}
		if n.onl[n.dr[i].nextHop].NUDState.IsReachable() {
			n.drPrime = i
			return &n.dr[i], true
		}
	}

	next := n.nextOccupiedDR(n.drPrime)
	if next == onlNone {
		return nil, false
	}
	n.drPrime = next
	return &n.dr[next], true
}

// nextOccupiedDR returns the next occupied DR slot strictly after from
// (wrapping around), or the first occupied slot if from is onlNone/not
// found. Returns onlNone if the DRL is empty.
func (n *NIB) nextOccupiedDR(from int) int {
	if len(n.dr) == 0 {
		return onlNone
	}

	start := 0
	if from != onlNone {
		start = from + 1
	}

	for offset := 0; offset < len(n.dr); offset++ {
		i := (start + offset) % len(n.dr)
		if !n.dr[i].IsFree() {
			return i
		}
	}
	return onlNone
}

// DRLFTGet implements C3's ft_get(DR, out): populate a forwarding-table
// record with the default route ::/0 via d, marking primary true iff d
// is the current prime and reachable.
func (n *NIB) DRLFTGet(d *DR, out *FT) bool {
	if d == nil || d.IsFree() {
		return false
	}

	onl := &n.onl[d.nextHop]

	out.Dst = netip.PrefixFrom(unspecifiedFor(onl.Addr), 0)
	out.NextHop = onl.Addr
	out.Iface = onl.Iface

	idx := n.drIndexOf(d)
	out.Primary = idx == n.drPrime && onl.NUDState.IsReachable()

	return true
}

// DRReachable reports whether d's underlying neighbor is currently
// considered reachable (spec.md §4.3's reachability predicate).
func (n *NIB) DRReachable(d *DR) bool {
	if d == nil || d.IsFree() {
		return false
	}
	return n.onl[d.nextHop].NUDState.IsReachable()
}

func unspecifiedFor(addr netip.Addr) netip.Addr {
	if addr.Is4() {
		return netip.IPv4Unspecified()
	}
	return netip.IPv6Unspecified()
}
