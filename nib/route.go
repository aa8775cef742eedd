package nib

import "net/netip"

// GetRoute implements C7's get_route(dst, pkt, out): the longest-prefix
// OFFL wins unless it is PL-only (no forwarding meaning) or nothing
// matched, in which case default-router selection is consulted. If
// neither path yields a next hop, ErrNoRoute is returned and, if an
// RRPHook was wired, pkt is handed to it (spec.md §4.4's TODO hook).
func (n *NIB) GetRoute(dst netip.Addr, pkt QueuedPacket, out *FT) error {
	if o, ok := n.longestPrefixMatch(dst); ok && o.Mode.Any(ModeFT|ModeRPL) {
		onl := &n.onl[o.nextHop]
		out.Dst = netip.PrefixFrom(o.Prefix, int(o.PfxLen))
		out.NextHop = onl.Addr
		out.Iface = onl.Iface
		out.Primary = false
		return nil
	}

	if dr, ok := n.GetDR(); ok {
		n.DRLFTGet(dr, out)
		return nil
	}

	if n.cfg.rrp != nil && pkt != nil {
		n.cfg.rrp.NoRoute(pkt)
	}
	return ErrNoRoute
}
