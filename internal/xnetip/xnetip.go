// Package xnetip provides small IPv6-focused netip helpers used across the
// NIB that are not covered by the stdlib netip package.
package xnetip

import (
	"encoding/binary"
	"math/bits"
	"net/netip"
)

// MatchBits returns the number of leading bits shared between a and b,
// capped at 128. It is used by the off-link pool's longest-prefix-match
// scan: a candidate whose stored prefix has MatchBits(prefix, dst) >=
// pfxLen qualifies, and the candidate with the greatest MatchBits wins.
func MatchBits(a, b netip.Addr) uint8 {
	if !a.Is6() {
		a = a.As4In6()
	}
	if !b.Is6() {
		b = b.As4In6()
	}

	ab, bb := a.As16(), b.As16()

	var common uint8
	for i := 0; i < 16; i += 8 {
		x := binary.BigEndian.Uint64(ab[i:]) ^ binary.BigEndian.Uint64(bb[i:])
		if x == 0 {
			common += 64
			continue
		}
		common += uint8(bits.LeadingZeros64(x))
		break
	}
	if common > 128 {
		common = 128
	}
	return common
}

// LinkLayerFromIPv6 derives an 8-byte link-layer (EUI-64-shaped) address
// from a link-local IPv6 address when the address-resolution state
// machine is not compiled in: copy the low 64 bits and flip the
// universal/local bit (XOR 0x02) of the first byte, per RFC 4291 appx A.
func LinkLayerFromIPv6(addr netip.Addr) [8]byte {
	b := addr.As16()
	var ll [8]byte
	copy(ll[:], b[8:16])
	ll[0] ^= 0x02
	return ll
}

// IsUnspecified reports whether addr is the IPv6 unspecified address
// (::), the sentinel the NIB uses for "address not yet known".
func IsUnspecified(addr netip.Addr) bool {
	return !addr.IsValid() || addr.IsUnspecified()
}

// AddrMatch implements the NIB's "exact match" address comparison: two
// addresses match if they are equal, or if the stored address is
// unspecified, or if the query address is the zero value (not supplied).
func AddrMatch(stored, query netip.Addr) bool {
	if IsUnspecified(stored) || IsUnspecified(query) {
		return true
	}
	return stored == query
}
