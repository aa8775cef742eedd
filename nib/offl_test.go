package nib

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestOFFLAddAndLongestPrefixMatch(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	_, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 32, ModeFT)
	require.NoError(t, err)

	o, ok := n.longestPrefixMatch(netip.MustParseAddr("2001:db8::5"))
	require.True(t, ok)
	require.Equal(t, uint8(32), o.PfxLen)
}

func TestOFFLNextHopMatchesStoredOwner(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	o, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 32, ModeFT)
	require.NoError(t, err)

	type nextHop struct {
		Addr  netip.Addr
		Iface uint16
		OK    bool
	}
	addr, iface, ok := n.OFFLNextHop(o)
	got := nextHop{addr, iface, ok}
	want := nextHop{netip.MustParseAddr("fe80::2"), 1, true}

	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
		t.Errorf("OFFLNextHop mismatch (-want +got):\n%s", diff)
	}
}

func TestOFFLAllocateRejectsBadPrefixLen(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	_, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 0, ModeFT)
	require.ErrorIs(t, err, ErrInvalidPrefixLen)

	_, err = n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 129, ModeFT)
	require.ErrorIs(t, err, ErrInvalidPrefixLen)
}

func TestOFFLClearDoesNotFreeSharedNextHop(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	o1, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 32, ModeFT)
	require.NoError(t, err)

	o2, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8:1::"), 48, ModeFT)
	require.NoError(t, err)

	require.Equal(t, o1.nextHop, o2.nextHop, "both routes share the fe80::2 next hop")

	n.OFFLRemove(o1, ModeFT)
	require.True(t, o1.IsEmpty())
	require.False(t, n.onl[o2.nextHop].IsEmpty(), "shared next hop must survive o1's removal")

	nh := o2.nextHop
	n.OFFLRemove(o2, ModeFT)
	require.True(t, n.onl[nh].IsEmpty())
}

func TestPLAddLifetimeEncoding(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	o, err := n.PLAdd(netip.Addr{}, false, 1, netip.MustParseAddr("2001:db8::"), 64,
		3600, 7200, 1_000)
	require.NoError(t, err)

	require.Equal(t, uint32(1_000+3600*1000), o.Preferred)
	require.Equal(t, uint32(1_000+7200*1000), o.Valid)
}

func TestPLAddPreservesInfiniteSentinel(t *testing.T) {
	n := New(WithOFFLCapacity(4))

	o, err := n.PLAdd(netip.Addr{}, false, 1, netip.MustParseAddr("2001:db8::"), 64,
		LifetimeInfinite, LifetimeInfinite, 1_000)
	require.NoError(t, err)

	require.Equal(t, LifetimeInfinite, o.Preferred)
	require.Equal(t, LifetimeInfinite, o.Valid)
}

func TestDeadlineBumpsAwayFromInfiniteSentinel(t *testing.T) {
	// now + lifetime happens to equal the infinite sentinel exactly.
	lifetimeSec := LifetimeInfinite / 1000
	now := LifetimeInfinite - lifetimeSec*1000
	d := deadline(lifetimeSec, now)
	require.NotEqual(t, LifetimeInfinite, d)
	require.Equal(t, now+lifetimeSec*1000+1, d)
}

func TestPLRemoveClearsABROwnership(t *testing.T) {
	n := New(WithOFFLCapacity(4), WithABRCapacity(2), WithMultihopP6C(true))

	o, err := n.OFFLAdd(netip.MustParseAddr("fe80::2"), true, 1,
		netip.MustParseAddr("2001:db8::"), 64, ModePL)
	require.NoError(t, err)

	abr, err := n.ABRAdd(netip.MustParseAddr("fe80::abc"))
	require.NoError(t, err)
	n.ABRAddPfx(abr, o)

	require.True(t, abr.prefixes.Has(uint32(n.offlIndexOf(o))))

	n.PLRemove(o)
	require.False(t, abr.prefixes.Has(uint32(n.offlIndexOf(o))))
}
