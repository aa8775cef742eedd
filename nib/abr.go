package nib

import (
	"net/netip"

	"github.com/yanet-platform/ipv6nib/internal/bitset"
)

// ContextRemover is the external 6LoWPAN context module collaborator
// (spec.md §1/§4.6): ABRRemove releases every context bit the removed
// ABR owned through it.
type ContextRemover interface {
	Remove(ctx uint8)
}

// ABR is an authoritative border router record (C6, conditional on
// MultihopP6C). See spec.md §3.
type ABR struct {
	Addr netip.Addr

	// prefixes indexes OFFL pool slots this ABR advertised.
	prefixes bitset.Set
	// contexts indexes 6LoWPAN context identifiers this ABR owns.
	contexts bitset.Set
}

// IsFree reports whether this slot holds no border router (spec.md §3:
// "Free iff its address is the unspecified address").
func (a *ABR) IsFree() bool {
	return !a.Addr.IsValid() || a.Addr.IsUnspecified()
}

func (n *NIB) abrIndexOf(a *ABR) int {
	for i := range n.abr {
		if &n.abr[i] == a {
			return i
		}
	}
	return -1
}

// ABRAdd implements C6's abr_add(addr): claim the first free ABR slot.
// Fails with ErrPoolFull if the pool is exhausted, or if MultihopP6C was
// not enabled at construction (the table does not exist).
func (n *NIB) ABRAdd(addr netip.Addr) (*ABR, error) {
	if !n.cfg.MultihopP6C {
		return nil, ErrPoolFull
	}

	for i := range n.abr {
		if !n.abr[i].IsFree() {
			continue
		}
		n.abr[i] = ABR{Addr: addr}
		return &n.abr[i], nil
	}
	return nil, ErrPoolFull
}

// ABRRemove implements C6's abr_remove(addr): cascades pl_remove for
// every OFFL this ABR indexed and releases every context bit it owned
// through the external context module, then frees the slot.
func (n *NIB) ABRRemove(a *ABR, contexts ContextRemover) {
	if a == nil || a.IsFree() {
		return
	}

	a.prefixes.Traverse(func(idx uint32) bool {
		if int(idx) < len(n.offl) {
			n.PLRemove(&n.offl[idx])
		}
		return true
	})

	if contexts != nil {
		a.contexts.Traverse(func(ctx uint32) bool {
			contexts.Remove(uint8(ctx))
			return true
		})
	}

	*a = ABR{}
}

// ABRIterate returns the next occupied ABR after prev, in pool order.
func (n *NIB) ABRIterate(prev *ABR) (*ABR, bool) {
	start := 0
	if prev != nil {
		if idx := n.abrIndexOf(prev); idx >= 0 {
			start = idx + 1
		}
	}
	for i := start; i < len(n.abr); i++ {
		if !n.abr[i].IsFree() {
			return &n.abr[i], true
		}
	}
	return nil, false
}

// ABRAddPfx implements C6's abr_add_pfx(ABR, OFFL): record that a owns
// o by setting o's pool index in a.prefixes. Per spec.md §3's invariant,
// exactly one ABR may own a given OFFL slot's PL bit at a time, so this
// clears the bit from every other ABR first.
func (n *NIB) ABRAddPfx(a *ABR, o *OFFL) {
	if a == nil || o == nil {
		return
	}
	idx := n.offlIndexOf(o)
	if idx < 0 {
		return
	}

	for i := range n.abr {
		if &n.abr[i] != a {
			n.abr[i].prefixes.Remove(uint32(idx))
		}
	}
	a.prefixes.Insert(uint32(idx))
}

// ABRIterPfx implements C6's abr_iter_pfx(ABR, prev): iterate the OFFL
// entries a.prefixes indexes, in ascending pool order.
func (n *NIB) ABRIterPfx(a *ABR, prev *OFFL) (*OFFL, bool) {
	if a == nil {
		return nil, false
	}

	start := uint32(0)
	if prev != nil {
		if idx := n.offlIndexOf(prev); idx >= 0 {
			start = uint32(idx) + 1
		}
	}

	var found *OFFL
	a.prefixes.Traverse(func(idx uint32) bool {
		if idx < start {
			return true
		}
		if int(idx) < len(n.offl) {
			found = &n.offl[idx]
		}
		return false
	})

	if found == nil {
		return nil, false
	}
	return found, true
}

// ABRAddContext records that a owns 6LoWPAN context ctx. Released
// automatically on ABRRemove.
func (n *NIB) ABRAddContext(a *ABR, ctx uint8) {
	if a == nil {
		return
	}
	a.contexts.Insert(uint32(ctx))
}
