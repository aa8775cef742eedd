package nib

import (
	"net/netip"

	"github.com/yanet-platform/ipv6nib/internal/xnetip"
)

// LifetimeInfinite is the sentinel spec.md §4.4/§8 calls "infinite":
// valid/preferred lifetimes stored with this value never expire.
const LifetimeInfinite uint32 = 0xFFFFFFFF

// OFFL is an off-link entry (C4): one row of the longest-prefix table
// or prefix list. See spec.md §3.
type OFFL struct {
	Prefix  netip.Addr
	PfxLen  uint8
	nextHop int // index into n.onl, onlNone if this slot is free
	Mode    Mode

	// Preferred/Valid are absolute millisecond deadlines on the NIB's
	// monotonic clock, or LifetimeInfinite. Only meaningful for PL
	// entries (spec.md §4.4's pl_add specialization).
	Preferred uint32
	Valid     uint32

	prefixTimeout TimerHandle
}

// IsEmpty reports whether this slot is free storage.
func (o *OFFL) IsEmpty() bool {
	return o.Mode == ModeEmpty
}

func (n *NIB) offlIndexOf(o *OFFL) int {
	for i := range n.offl {
		if &n.offl[i] == o {
			return i
		}
	}
	return -1
}

// offlAllocate implements C4's allocate(next_hop?, iface, prefix,
// pfx_len): preconditions prefix specified and 1<=pfx_len<=128.
func (n *NIB) offlAllocate(nextHop netip.Addr, hasNextHop bool, iface uint16, prefix netip.Addr, pfxLen uint8) (*OFFL, error) {
	if !prefix.IsValid() {
		debugAssert(false, "offlAllocate: prefix not specified")
		return nil, ErrInvalidPrefixLen
	}
	if pfxLen < 1 || pfxLen > 128 {
		debugAssert(false, "offlAllocate: prefix length out of range")
		return nil, ErrInvalidPrefixLen
	}

	for i := range n.offl {
		o := &n.offl[i]
		if o.IsEmpty() {
			continue
		}
		if o.PfxLen != pfxLen || o.Prefix != prefix {
			continue
		}

		existing := &n.onl[o.nextHop]
		if !ifaceMatch(existing.Iface, iface) {
			continue
		}
		if !xnetip.AddrMatch(existing.Addr, nullableAddr(nextHop, hasNextHop)) {
			continue
		}

		if hasNextHop {
			if idx, ok := n.onlAllocate(nextHop, iface); ok {
				if idx != o.nextHop {
					n.onl[idx].Mode |= ModeDST
					n.onl[o.nextHop].Mode &^= ModeDST
					n.onlClear(o.nextHop)
					o.nextHop = idx
				}
			} else {
				return nil, ErrPoolFull
			}
		}
		o.Mode |= ModeDST
		return o, nil
	}

	slot := -1
	for i := range n.offl {
		if n.offl[i].nextHop == onlNone {
			slot = i
			break
		}
	}
	if slot == -1 {
		return nil, ErrPoolFull
	}

	onlIdx, ok := n.onlAllocate(nullableAddr(nextHop, hasNextHop), iface)
	if !ok {
		n.offl[slot] = OFFL{nextHop: onlNone}
		return nil, ErrPoolFull
	}

	o := &n.offl[slot]
	*o = OFFL{nextHop: onlIdx, Prefix: prefix, PfxLen: pfxLen}
	n.onl[onlIdx].Mode |= ModeDST
	o.Mode |= ModeDST

	return o, nil
}

func nullableAddr(addr netip.Addr, has bool) netip.Addr {
	if !has {
		return netip.Addr{}
	}
	return addr
}

// OFFLAdd implements C4's add(next_hop?, iface, prefix, pfx_len, kind):
// wraps allocate and ORs kind into the entry's mode.
func (n *NIB) OFFLAdd(nextHop netip.Addr, hasNextHop bool, iface uint16, prefix netip.Addr, pfxLen uint8, kind Mode) (*OFFL, error) {
	o, err := n.offlAllocate(nextHop, hasNextHop, iface, prefix, pfxLen)
	if err != nil {
		return nil, err
	}
	o.Mode |= kind
	return o, nil
}

// PLAdd is the PL specialization of OFFLAdd: it additionally converts
// preferred/valid lifetimes (seconds, as advertised on the wire) into
// absolute millisecond deadlines relative to nowMS, guards the
// LifetimeInfinite collision per spec.md §9, and schedules a
// prefix-timeout event unless the valid lifetime is infinite.
func (n *NIB) PLAdd(nextHop netip.Addr, hasNextHop bool, iface uint16, prefix netip.Addr, pfxLen uint8, preferredSec, validSec uint32, nowMS uint32) (*OFFL, error) {
	o, err := n.OFFLAdd(nextHop, hasNextHop, iface, prefix, pfxLen, ModePL)
	if err != nil {
		return nil, err
	}

	debugAssert(validSec >= preferredSec || validSec == LifetimeInfinite || preferredSec == LifetimeInfinite,
		"PLAdd: valid must be >= preferred")

	o.Preferred = deadline(preferredSec, nowMS)
	o.Valid = deadline(validSec, nowMS)

	if o.Valid == LifetimeInfinite {
		n.timer().Remove(&o.prefixTimeout)
	} else {
		n.timer().Add(o, EventPrefixTimeout, &o.prefixTimeout, msUntil(o.Valid, nowMS))
	}

	return o, nil
}

// deadline converts a lifetime in seconds into an absolute millisecond
// deadline, preserving the LifetimeInfinite sentinel and bumping a
// finite value that would otherwise collide with it by one
// (spec.md §9's resolved "suspect behavior").
func deadline(lifetimeSec uint32, nowMS uint32) uint32 {
	if lifetimeSec == LifetimeInfinite {
		return LifetimeInfinite
	}

	d := nowMS + lifetimeSec*1000
	if d == LifetimeInfinite {
		d++
	}
	return d
}

func msUntil(deadlineMS, nowMS uint32) uint32 {
	if deadlineMS == LifetimeInfinite || deadlineMS <= nowMS {
		return 0
	}
	return deadlineMS - nowMS
}

// offlClear implements C4's offl_clear(OFFL): if the OFFL's next hop is
// shared with some *other* OFFL slot (spec.md §9 flags this
// self-exclusion requirement explicitly), only zero this slot; otherwise
// also clear DST on the ONL and clear() it.
func (n *NIB) offlClear(o *OFFL) {
	onlIdx := o.nextHop

	shared := false
	for i := range n.offl {
		other := &n.offl[i]
		if other == o || other.IsEmpty() {
			continue
		}
		if other.nextHop == onlIdx {
			shared = true
			break
		}
	}

	n.timer().Remove(&o.prefixTimeout)

	if !shared {
		n.onl[onlIdx].Mode &^= ModeDST
		n.onlClear(onlIdx)
	}

	*o = OFFL{nextHop: onlNone}
}

// OFFLRemove implements C4's remove(OFFL, kind): clear kind from mode; if no
// kind bits remain, offl_clear the slot.
func (n *NIB) OFFLRemove(o *OFFL, kind Mode) {
	if o == nil || o.IsEmpty() {
		return
	}

	o.Mode &^= kind
	if o.Mode&(ModeFT|ModePL|ModeRPL) == ModeEmpty {
		n.offlClear(o)
	}
}

// PLRemove implements C4's pl_remove(OFFL): remove(OFFL, PL), and when
// multihop-P6C is enabled also clears this OFFL's index bit from every
// ABR's prefix bitmap.
func (n *NIB) PLRemove(o *OFFL) {
	if o == nil {
		return
	}

	if n.cfg.MultihopP6C {
		idx := n.offlIndexOf(o)
		if idx >= 0 {
			for i := range n.abr {
				if !n.abr[i].IsFree() {
					n.abr[i].prefixes.Remove(uint32(idx))
				}
			}
		}
	}

	n.OFFLRemove(o, ModePL)
}

// OFFLNextHop reports the next-hop address and interface o forwards
// through, if any. ok is false when o carries no next hop (PL-only
// entries with hasNextHop false at pl_add time).
func (n *NIB) OFFLNextHop(o *OFFL) (addr netip.Addr, iface uint16, ok bool) {
	if o == nil || o.nextHop == onlNone {
		return netip.Addr{}, 0, false
	}
	onl := &n.onl[o.nextHop]
	if xnetip.IsUnspecified(onl.Addr) {
		return netip.Addr{}, 0, false
	}
	return onl.Addr, onl.Iface, true
}

// OFFLIterate returns the next occupied OFFL after prev, in pool order.
func (n *NIB) OFFLIterate(prev *OFFL) (*OFFL, bool) {
	start := 0
	if prev != nil {
		if idx := n.offlIndexOf(prev); idx >= 0 {
			start = idx + 1
		}
	}
	for i := start; i < len(n.offl); i++ {
		if !n.offl[i].IsEmpty() {
			return &n.offl[i], true
		}
	}
	return nil, false
}

// longestPrefixMatch implements C4's longest_prefix_match(dst): a linear
// scan where a candidate qualifies iff MatchBits(candidate.Prefix, dst)
// >= candidate.PfxLen, and the best qualifying candidate is the one with
// the greatest MatchBits, ties broken by first-encountered.
func (n *NIB) longestPrefixMatch(dst netip.Addr) (*OFFL, bool) {
	var best *OFFL
	var bestBits uint8

	for i := range n.offl {
		o := &n.offl[i]
		if o.IsEmpty() {
			continue
		}

		bits := xnetip.MatchBits(o.Prefix, dst)
		if bits < o.PfxLen {
			continue
		}
		if best == nil || bits > bestBits {
			best = o
			bestBits = bits
		}
	}

	return best, best != nil
}
