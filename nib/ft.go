package nib

import "net/netip"

// FT is the forwarding-table record spec.md §6 defines: destination
// address/length, next-hop address, interface and a primary flag.
type FT struct {
	Dst     netip.Prefix
	NextHop netip.Addr
	Iface   uint16
	Primary bool
}
