package nib

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanet-platform/ipv6nib/nib/nud"
)

func TestFIFOOrderPreservedAcrossAdds(t *testing.T) {
	n := New(WithNIBCapacity(4))

	addrs := []string{"fe80::1", "fe80::2", "fe80::3"}
	for _, a := range addrs {
		_, ok := n.AddNC(netip.MustParseAddr(a), 1, nud.Stale)
		require.True(t, ok)
	}

	var order []netip.Addr
	idx := n.fifoHead
	for i := 0; i < 3; i++ {
		order = append(order, n.onl[idx].Addr)
		idx = n.onl[idx].fifoNext
	}

	require.Equal(t, []netip.Addr{
		netip.MustParseAddr("fe80::1"),
		netip.MustParseAddr("fe80::2"),
		netip.MustParseAddr("fe80::3"),
	}, order)
}

func TestEvictionReusesOldestGCEligibleEntry(t *testing.T) {
	n := New(WithNIBCapacity(3), WithQueuePkt(true))

	var released []QueuedPacket
	n.SetPacketReleaser(PacketReleaserFunc(func(pkt QueuedPacket, reason DropReason) {
		require.Equal(t, DropHostUnreachable, reason)
		released = append(released, pkt)
	}))

	for i, a := range []string{"fe80::1", "fe80::2", "fe80::3"} {
		e, ok := n.AddNC(netip.MustParseAddr(a), 1, nud.Stale)
		require.True(t, ok)
		e.ARState = nud.ARGC
		if i == 0 {
			require.True(t, n.QueuePacket(e, QueuedPacket("pkt-for-fe80::1")))
		}
	}

	e, ok := n.AddNC(netip.MustParseAddr("fe80::4"), 1, nud.Stale)
	require.True(t, ok)
	require.Equal(t, netip.MustParseAddr("fe80::4"), e.Addr)
	require.Equal(t, []QueuedPacket{"pkt-for-fe80::1"}, released)

	var order []netip.Addr
	idx := n.fifoHead
	for i := 0; i < 3; i++ {
		order = append(order, n.onl[idx].Addr)
		idx = n.onl[idx].fifoNext
	}
	require.Equal(t, []netip.Addr{
		netip.MustParseAddr("fe80::2"),
		netip.MustParseAddr("fe80::3"),
		netip.MustParseAddr("fe80::4"),
	}, order, "survivors keep their relative order; the new entry lands at the tail")
}

func TestEvictionFailsWhenNoGCEligibleEntry(t *testing.T) {
	n := New(WithNIBCapacity(2))

	for _, a := range []string{"fe80::1", "fe80::2"} {
		e, ok := n.AddNC(netip.MustParseAddr(a), 1, nud.Stale)
		require.True(t, ok)
		e.ARState = nud.ARRegistered // not GC-eligible
	}

	_, ok := n.AddNC(netip.MustParseAddr("fe80::3"), 1, nud.Stale)
	require.False(t, ok)
}

func TestRemoveNCIdempotentReinsert(t *testing.T) {
	n := New(WithNIBCapacity(2))
	addr := netip.MustParseAddr("fe80::1")

	e1, ok := n.AddNC(addr, 1, nud.Stale)
	require.True(t, ok)
	n.RemoveNC(e1)
	require.True(t, n.onl[0].IsEmpty())

	e2, ok := n.AddNC(addr, 1, nud.Stale)
	require.True(t, ok)
	require.Equal(t, nud.Stale, e2.NUDState)
	require.Equal(t, Mode(ModeNC), e2.Mode)
}
