package nib

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanet-platform/ipv6nib/nib/nud"
)

func TestGetRoute_EmptyNIBIsUnreachable(t *testing.T) {
	n := New()

	var ft FT
	err := n.GetRoute(netip.MustParseAddr("2001:db8::1"), nil, &ft)
	require.ErrorIs(t, err, ErrNoRoute)
	require.Equal(t, FT{}, ft, "ft must be left untouched")
}

func TestGetRoute_DefaultRouterFallback(t *testing.T) {
	n := New()

	_, err := n.DRLAdd(netip.MustParseAddr("fe80::1"), 1)
	require.NoError(t, err)

	var ft FT
	err = n.GetRoute(netip.MustParseAddr("2001:db8::1"), nil, &ft)
	require.NoError(t, err)
	require.Equal(t, netip.MustParsePrefix("::/0"), ft.Dst)
	require.Equal(t, netip.MustParseAddr("fe80::1"), ft.NextHop)
	require.Equal(t, uint16(1), ft.Iface)
	require.True(t, ft.Primary)
}

func TestGetRoute_LongestPrefixWinsOverDR(t *testing.T) {
	n := New()

	_, err := n.DRLAdd(netip.MustParseAddr("fe80::1"), 1)
	require.NoError(t, err)

	_, err = n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 32, ModeFT)
	require.NoError(t, err)

	var ft FT
	err = n.GetRoute(netip.MustParseAddr("2001:db8::5"), nil, &ft)
	require.NoError(t, err)
	require.Equal(t, netip.MustParsePrefix("2001:db8::/32"), ft.Dst)
	require.Equal(t, netip.MustParseAddr("fe80::2"), ft.NextHop)
	require.False(t, ft.Primary)
}

func TestGetRoute_PLOnlyYieldsToDR(t *testing.T) {
	n := New()

	_, err := n.DRLAdd(netip.MustParseAddr("fe80::1"), 1)
	require.NoError(t, err)

	_, err = n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 32, ModePL)
	require.NoError(t, err)

	var ft FT
	err = n.GetRoute(netip.MustParseAddr("2001:db8::5"), nil, &ft)
	require.NoError(t, err)
	require.Equal(t, netip.MustParseAddr("fe80::1"), ft.NextHop, "PL-only match must not satisfy get_route")
	require.True(t, ft.Primary)
}

func TestGetRoute_NCEvictionUnderPressure(t *testing.T) {
	n := New(WithNIBCapacity(2), WithQueuePkt(true))

	var released []QueuedPacket
	n.SetPacketReleaser(PacketReleaserFunc(func(pkt QueuedPacket, reason DropReason) {
		require.Equal(t, DropHostUnreachable, reason)
		released = append(released, pkt)
	}))

	e1, ok := n.AddNC(netip.MustParseAddr("fe80::1"), 1, nud.Stale)
	require.True(t, ok)
	e1.ARState = nud.ARGC
	require.True(t, n.QueuePacket(e1, QueuedPacket("pkt-1")))

	e2, ok := n.AddNC(netip.MustParseAddr("fe80::2"), 1, nud.Stale)
	require.True(t, ok)
	e2.ARState = nud.ARGC

	e3, ok := n.AddNC(netip.MustParseAddr("fe80::3"), 1, nud.Stale)
	require.True(t, ok)
	require.Equal(t, []QueuedPacket{"pkt-1"}, released, "oldest GC-eligible entry must be reused")
	require.Equal(t, netip.MustParseAddr("fe80::3"), e3.Addr)

	var order []netip.Addr
	idx := n.fifoHead
	for i := 0; i < 2; i++ {
		order = append(order, n.onl[idx].Addr)
		idx = n.onl[idx].fifoNext
	}
	require.Equal(t, []netip.Addr{
		netip.MustParseAddr("fe80::2"),
		netip.MustParseAddr("fe80::3"),
	}, order, "FIFO order preserved for survivors")
}

func TestGetRoute_DRRotationWithNoReachableRouter(t *testing.T) {
	n := New(WithDefaultRouterCapacity(2))

	_, err := n.DRLAdd(netip.MustParseAddr("fe80::1"), 1)
	require.NoError(t, err)
	_, err = n.DRLAdd(netip.MustParseAddr("fe80::2"), 1)
	require.NoError(t, err)

	for i := range n.onl {
		if !n.onl[i].IsEmpty() {
			n.onl[i].NUDState = nud.Unreachable
		}
	}

	var seen []netip.Addr
	for i := 0; i < 4; i++ {
		var ft FT
		err := n.GetRoute(netip.MustParseAddr("2001:db8::1"), nil, &ft)
		require.NoError(t, err)
		seen = append(seen, ft.NextHop)
	}

	require.Equal(t, []netip.Addr{
		netip.MustParseAddr("fe80::1"),
		netip.MustParseAddr("fe80::2"),
		netip.MustParseAddr("fe80::1"),
		netip.MustParseAddr("fe80::2"),
	}, seen, "each unreachable router is primed in turn")
}
