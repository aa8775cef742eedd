package nib

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeContextRemover struct {
	removed []uint8
}

func (f *fakeContextRemover) Remove(ctx uint8) {
	f.removed = append(f.removed, ctx)
}

func TestABRAddRequiresMultihopP6C(t *testing.T) {
	n := New()

	_, err := n.ABRAdd(netip.MustParseAddr("fe80::abc"))
	require.ErrorIs(t, err, ErrPoolFull)
}

func TestABRAddPfxEnforcesSingleOwner(t *testing.T) {
	n := New(WithMultihopP6C(true), WithABRCapacity(2))

	a1, err := n.ABRAdd(netip.MustParseAddr("fe80::1"))
	require.NoError(t, err)
	a2, err := n.ABRAdd(netip.MustParseAddr("fe80::2"))
	require.NoError(t, err)

	o, err := n.OFFLAdd(netip.MustParseAddr("fe80::9"), true, 1,
		netip.MustParseAddr("2001:db8::"), 64, ModePL)
	require.NoError(t, err)

	n.ABRAddPfx(a1, o)
	idx := uint32(n.offlIndexOf(o))
	require.True(t, a1.prefixes.Has(idx))

	n.ABRAddPfx(a2, o)
	require.False(t, a1.prefixes.Has(idx), "ownership must move exclusively to a2")
	require.True(t, a2.prefixes.Has(idx))
}

func TestABRRemoveCascadesPLRemoveAndContexts(t *testing.T) {
	n := New(WithMultihopP6C(true), WithABRCapacity(2))

	a, err := n.ABRAdd(netip.MustParseAddr("fe80::1"))
	require.NoError(t, err)

	o, err := n.OFFLAdd(netip.MustParseAddr("fe80::9"), true, 1,
		netip.MustParseAddr("2001:db8::"), 64, ModePL)
	require.NoError(t, err)
	n.ABRAddPfx(a, o)
	n.ABRAddContext(a, 3)
	n.ABRAddContext(a, 5)

	remover := &fakeContextRemover{}
	n.ABRRemove(a, remover)

	require.True(t, o.IsEmpty(), "PL bit attributable solely to the removed ABR must be gone")
	require.ElementsMatch(t, []uint8{3, 5}, remover.removed)
	require.True(t, a.IsFree())
}

func TestABRIterPfxInAscendingOrder(t *testing.T) {
	n := New(WithMultihopP6C(true), WithABRCapacity(1), WithOFFLCapacity(4))

	a, err := n.ABRAdd(netip.MustParseAddr("fe80::1"))
	require.NoError(t, err)

	o1, err := n.OFFLAdd(netip.MustParseAddr("fe80::9"), true, 1,
		netip.MustParseAddr("2001:db8::"), 64, ModePL)
	require.NoError(t, err)
	o2, err := n.OFFLAdd(netip.MustParseAddr("fe80::9"), true, 1,
		netip.MustParseAddr("2001:db9::"), 64, ModePL)
	require.NoError(t, err)

	n.ABRAddPfx(a, o1)
	n.ABRAddPfx(a, o2)

	var seen []*OFFL
	e, ok := n.ABRIterPfx(a, nil)
	for ok {
		seen = append(seen, e)
		e, ok = n.ABRIterPfx(a, e)
	}
	require.Equal(t, []*OFFL{o1, o2}, seen)
}
