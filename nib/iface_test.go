package nib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIfaceGetCreatesAndReusesBypid(t *testing.T) {
	n := New(WithInterfaceCapacity(2))

	r1, err := n.IfaceGet(1)
	require.NoError(t, err)

	r2, err := n.IfaceGet(1)
	require.NoError(t, err)
	require.Same(t, r1, r2, "same pid must return the same record")

	r3, err := n.IfaceGet(2)
	require.NoError(t, err)
	require.NotSame(t, r1, r3)
}

func TestIfaceGetFailsWhenFull(t *testing.T) {
	n := New(WithInterfaceCapacity(1))

	_, err := n.IfaceGet(1)
	require.NoError(t, err)

	_, err = n.IfaceGet(2)
	require.ErrorIs(t, err, ErrPoolFull)
}

func TestRecalcReachTimeStaysWithinRFC4861Bounds(t *testing.T) {
	n := New()
	r, err := n.IfaceGet(1)
	require.NoError(t, err)
	r.ReachTimeBase = 30_000

	for i := 0; i < 50; i++ {
		n.RecalcReachTime(r)
		require.GreaterOrEqual(t, r.ReachTime, uint32(30_000*MinRandomFactor/1000))
		require.LessOrEqual(t, r.ReachTime, uint32(30_000*MaxRandomFactor/1000))
	}
}
