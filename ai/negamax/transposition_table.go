package negamax

import (
	"math"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/shimajiteppei/gemini/board"
)

// Bound kinds for table entries.
const (
	TTExact uint8 = 0x01
	TTLower uint8 = 0x02
	TTUpper uint8 = 0x03
)

// DefaultTableSize is the default number of entries (a power of two).
const DefaultTableSize = 1 << 16

// entrySize is the approximate in-memory size of a TableEntry, used when
// sizing the table from system memory.
const entrySize = 24

// TableEntry caches the result of searching one position.
type TableEntry struct {
	key      uint64
	score    int32
	depth    uint8
	flag     uint8
	bestMove board.Square
	hasMove  bool
}

// valid reports whether the slot has ever been written; a stored flag is
// always 1, 2 or 3.
func (t TableEntry) valid() bool { return t.flag != 0 }

// TranspositionTable is a fixed power-of-two array of entries indexed by
// the folded zobrist key. Entries persist across searches: the owning
// solver keeps one table for its whole lifetime and never clears it between
// calls.
type TranspositionTable struct {
	table    []TableEntry
	sizeMask uint64

	created uint64
	lookups uint64
	hits    uint64
}

// NewTranspositionTable allocates a table with at least size entries,
// rounded up to a power of two.
func NewTranspositionTable(size int) *TranspositionTable {
	t := &TranspositionTable{}
	t.allocate(size)
	return t
}

func (t *TranspositionTable) allocate(size int) {
	if size < 1 {
		size = 1
	}
	n := 1
	for n < size {
		n <<= 1
	}
	t.table = make([]TableEntry, n)
	t.sizeMask = uint64(n - 1)
	t.created, t.lookups, t.hits = 0, 0, 0
}

// Reset sizes the table to a fraction of total system memory and clears it.
func (t *TranspositionTable) Reset(fractionOfMemory float64) {
	totalMem := memory.TotalMemory()
	desiredNElems := fractionOfMemory * (float64(totalMem) / float64(entrySize))
	sizePowerOf2 := int(math.Log2(desiredNElems))
	if sizePowerOf2 < 16 {
		sizePowerOf2 = 16
	}
	numElems := 1 << sizePowerOf2
	t.allocate(numElems)
	log.Info().Int("num-elems", numElems).
		Float64("desired-num-elems", desiredNElems).
		Int("estimated-total-memory-bytes", numElems*entrySize).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("transposition-table-size")
}

// Created returns how many entries have been written.
func (t *TranspositionTable) Created() uint64 { return t.created }

// Lookups returns how many probes have been made.
func (t *TranspositionTable) Lookups() uint64 { return t.lookups }

// Hits returns how many probes found a usable entry.
func (t *TranspositionTable) Hits() uint64 { return t.hits }

// index folds the key into 32 bits before masking, so indexing behaves the
// same on 32-bit targets.
func (t *TranspositionTable) index(key uint64) uint64 {
	folded := (key ^ (key >> 32)) & math.MaxUint32
	return folded & t.sizeMask
}

// lookup returns the entry for key if it exists and was searched to at
// least depth.
func (t *TranspositionTable) lookup(key uint64, depth int) (TableEntry, bool) {
	t.lookups++
	entry := t.table[t.index(key)]
	if !entry.valid() || entry.key != key || int(entry.depth) < depth {
		return TableEntry{}, false
	}
	t.hits++
	return entry, true
}

// probeBestMove returns the recorded best move for key, if any.
func (t *TranspositionTable) probeBestMove(key uint64) (board.Square, bool) {
	entry := t.table[t.index(key)]
	if !entry.valid() || entry.key != key || !entry.hasMove {
		return 0, false
	}
	return entry.bestMove, true
}

// store replaces the slot when the key differs or the new depth is at least
// the stored depth.
func (t *TranspositionTable) store(key uint64, depth, score int, flag uint8, bestMove board.Square, hasMove bool) {
	idx := t.index(key)
	old := t.table[idx]
	if old.valid() && old.key == key && depth < int(old.depth) {
		return
	}
	t.table[idx] = TableEntry{
		key:      key,
		score:    clampInt32(score),
		depth:    clampUint8(depth),
		flag:     flag,
		bestMove: bestMove,
		hasMove:  hasMove,
	}
	t.created++
}

func clampInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

func clampUint8(v int) uint8 {
	switch {
	case v > math.MaxUint8:
		return math.MaxUint8
	case v < 0:
		return 0
	}
	return uint8(v)
}
