package xnetip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchBits(t *testing.T) {
	a := netip.MustParseAddr("2001:db8::1")
	b := netip.MustParseAddr("2001:db8::2")
	require.Equal(t, uint8(126), MatchBits(a, b))

	require.Equal(t, uint8(128), MatchBits(a, a))

	c := netip.MustParseAddr("2001:db9::1")
	require.Less(t, MatchBits(a, c), uint8(32))
}

func TestLinkLayerFromIPv6(t *testing.T) {
	addr := netip.MustParseAddr("fe80::1234:5678:9abc:def0")
	ll := LinkLayerFromIPv6(addr)
	require.Equal(t, byte(0x12^0x02), ll[0])
	require.Equal(t, [8]byte{0x12 ^ 0x02, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}, ll)
}

func TestAddrMatch(t *testing.T) {
	specified := netip.MustParseAddr("fe80::1")
	var unspecified netip.Addr
	require.True(t, AddrMatch(unspecified, specified))
	require.True(t, AddrMatch(specified, netip.Addr{}))
	require.True(t, AddrMatch(specified, specified))
	require.False(t, AddrMatch(specified, netip.MustParseAddr("fe80::2")))
}
