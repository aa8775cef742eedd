package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetInsertRemove(t *testing.T) {
	var s Set
	require.True(t, s.Empty())

	s.Insert(3)
	s.Insert(70)
	require.True(t, s.Has(3))
	require.True(t, s.Has(70))
	require.False(t, s.Has(4))
	require.Equal(t, uint(2), s.Count())

	s.Remove(3)
	require.False(t, s.Has(3))
	require.True(t, s.Has(70))
	require.Equal(t, uint(1), s.Count())
}

func TestSetTraverseOrder(t *testing.T) {
	var s Set
	s.Insert(200)
	s.Insert(5)
	s.Insert(64)

	var seen []uint32
	s.Traverse(func(idx uint32) bool {
		seen = append(seen, idx)
		return true
	})

	require.Equal(t, []uint32{5, 64, 200}, seen)
}

func TestSetClear(t *testing.T) {
	var s Set
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	require.True(t, s.Empty())
}

func TestSetOutOfRangePanics(t *testing.T) {
	var s Set
	require.Panics(t, func() { s.Insert(64 * Words) })
}
