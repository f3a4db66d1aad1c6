package joyvalue

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetComplementUnionIsFull(t *testing.T) {
	set := SetInsert(SetInsert(0, 1), 40)
	full := SetUnion(set, SetComplement(set))
	require.Equal(t, ^uint64(0), full)
}

func TestSetComplementIntersectionIsEmpty(t *testing.T) {
	set := SetInsert(SetInsert(0, 1), 40)
	require.Equal(t, uint64(0), SetIntersect(set, SetComplement(set)))
}

func TestSetInsertRemoveRoundTrips(t *testing.T) {
	set := SetInsert(0, 5)
	require.True(t, SetHas(set, 5))
	set = SetRemove(set, 5)
	require.False(t, SetHas(set, 5))
}

func TestSetOutOfRangeIsNoop(t *testing.T) {
	require.Equal(t, uint64(0), SetInsert(0, 64))
	require.Equal(t, uint64(0), SetInsert(0, -1))
	require.False(t, SetHas(0, 64))
}

func TestSetTakeAscendingOrder(t *testing.T) {
	set := SetInsert(SetInsert(SetInsert(0, 5), 2), 10)
	taken := SetTake(set, 2)
	require.True(t, SetHas(taken, 2))
	require.True(t, SetHas(taken, 5))
	require.False(t, SetHas(taken, 10))
}

func TestSetDropLowestIndexed(t *testing.T) {
	set := SetInsert(SetInsert(SetInsert(0, 5), 2), 10)
	dropped := SetDrop(set, 1)
	require.False(t, SetHas(dropped, 2))
	require.True(t, SetHas(dropped, 5))
	require.True(t, SetHas(dropped, 10))
}

func TestSetTakeDropComplementPopcount(t *testing.T) {
	set := SetInsert(SetInsert(SetInsert(0, 5), 2), 10)
	n := bits.OnesCount64(set)
	require.Equal(t, 3, SetPopcount(set))
	require.Equal(t, n, SetPopcount(set))
	require.Equal(t, set, SetUnion(SetTake(set, 1), SetDrop(set, 1)))
}
