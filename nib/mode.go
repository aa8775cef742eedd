package nib

import "strings"

// Mode is a bitset over the logical tables that reference a pool slot.
// ONL records only ever carry the NC | DRL | DST subset; OFFL records
// carry the FT | PL | RPL subset plus DST, which offlAllocate sets on
// every occupied OFFL slot. The two record kinds share
// one bit-numbering so the design note in spec.md §9 ("mode bits
// replace cyclic references") holds uniformly across both pools.
type Mode uint8

// ModeEmpty marks a pool slot as free: no table references it.
const ModeEmpty Mode = 0

const (
	// ModeNC: referenced by the neighbor cache.
	ModeNC Mode = 1 << 0
	// ModeDRL: referenced by the default router list.
	ModeDRL Mode = 1 << 1
	// ModeDST: referenced as an off-link entry's next hop.
	ModeDST Mode = 1 << 2
	// ModeFT: this off-link entry is a forwarding-table route.
	ModeFT Mode = 1 << 3
	// ModePL: this off-link entry is a prefix-list entry.
	ModePL Mode = 1 << 4
	// ModeRPL: this off-link entry is RPL-sourced.
	ModeRPL Mode = 1 << 5
)

// Has reports whether all bits of other are set in m.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

// Any reports whether any bit of other is set in m.
func (m Mode) Any(other Mode) bool {
	return m&other != 0
}

func (m Mode) String() string {
	if m == ModeEmpty {
		return "EMPTY"
	}

	var parts []string
	for _, b := range []struct {
		bit  Mode
		name string
	}{
		{ModeNC, "NC"},
		{ModeDRL, "DRL"},
		{ModeDST, "DST"},
		{ModeFT, "FT"},
		{ModePL, "PL"},
		{ModeRPL, "RPL"},
	} {
		if m.Has(b.bit) {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}
