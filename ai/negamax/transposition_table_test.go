package negamax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shimajiteppei/gemini/board"
)

func TestTableSizeRoundsUpToPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(100)
	assert.Equal(t, 128, len(tt.table))
	assert.Equal(t, uint64(127), tt.sizeMask)

	tt = NewTranspositionTable(0)
	assert.Equal(t, 1, len(tt.table))
}

func TestLookupRespectsDepth(t *testing.T) {
	tt := NewTranspositionTable(64)
	key := uint64(0xabcdef)

	tt.store(key, 5, 42, TTExact, board.Square(19), true)
	require.Equal(t, uint64(1), tt.Created())

	_, ok := tt.lookup(key, 6)
	assert.False(t, ok, "shallower entry must not satisfy a deeper probe")

	entry, ok := tt.lookup(key, 5)
	require.True(t, ok)
	assert.Equal(t, int32(42), entry.score)
	assert.Equal(t, TTExact, entry.flag)

	_, ok = tt.lookup(key, 3)
	assert.True(t, ok)

	assert.Equal(t, uint64(3), tt.Lookups())
	assert.Equal(t, uint64(2), tt.Hits())
}

func TestStoreKeepsDeeperEntryForSameKey(t *testing.T) {
	tt := NewTranspositionTable(64)
	key := uint64(7)

	tt.store(key, 6, 100, TTExact, board.Square(1), true)
	tt.store(key, 2, -5, TTLower, board.Square(2), true)

	entry, ok := tt.lookup(key, 6)
	require.True(t, ok)
	assert.Equal(t, int32(100), entry.score)
	assert.Equal(t, board.Square(1), entry.bestMove)
}

func TestStoreEvictsOnKeyCollision(t *testing.T) {
	tt := NewTranspositionTable(64)

	// Both keys fold and mask to the same slot.
	key1 := uint64(5)
	key2 := uint64(5 + 64)
	require.Equal(t, tt.index(key1), tt.index(key2))

	tt.store(key1, 6, 100, TTExact, board.Square(1), true)
	tt.store(key2, 1, 7, TTUpper, board.Square(2), true)

	_, ok := tt.lookup(key1, 1)
	assert.False(t, ok)

	entry, ok := tt.lookup(key2, 1)
	require.True(t, ok)
	assert.Equal(t, int32(7), entry.score)
}

func TestProbeBestMove(t *testing.T) {
	tt := NewTranspositionTable(64)
	key := uint64(11)

	_, ok := tt.probeBestMove(key)
	assert.False(t, ok)

	tt.store(key, 3, 0, TTUpper, 0, false)
	_, ok = tt.probeBestMove(key)
	assert.False(t, ok, "entries without a move carry no hint")

	tt.store(key, 3, 0, TTLower, board.Square(26), true)
	sq, ok := tt.probeBestMove(key)
	require.True(t, ok)
	assert.Equal(t, board.Square(26), sq)
}

func TestIndexFoldsHighBits(t *testing.T) {
	tt := NewTranspositionTable(1 << 8)

	// Keys differing only above bit 32 still land on distinct slots when
	// their folded halves differ.
	k1 := uint64(0x1234_0000_0000) | 3
	k2 := uint64(0x4321_0000_0000) | 3
	assert.NotEqual(t, tt.index(k1), tt.index(k2))
	assert.LessOrEqual(t, tt.index(k1), tt.sizeMask)
}

func TestResetSizesFromSystemMemory(t *testing.T) {
	tt := NewTranspositionTable(64)
	tt.store(1, 1, 1, TTExact, 0, false)

	tt.Reset(0.0001)
	assert.GreaterOrEqual(t, len(tt.table), 1<<16)
	assert.Equal(t, uint64(0), tt.Created())

	_, ok := tt.lookup(1, 1)
	assert.False(t, ok)
}

func TestScoreClamping(t *testing.T) {
	assert.Equal(t, int32(2147483647), clampInt32(1<<40))
	assert.Equal(t, int32(-2147483648), clampInt32(-(1 << 40)))
	assert.Equal(t, int32(5), clampInt32(5))

	assert.Equal(t, uint8(255), clampUint8(1000))
	assert.Equal(t, uint8(0), clampUint8(-4))
	assert.Equal(t, uint8(60), clampUint8(60))
}
