package zobrist

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/shimajiteppei/gemini/board"
)

const bignum = 1<<63 - 2

// Zobrist hashes reversi positions: one independent random constant per
// (square, color) pair plus one for the side to move.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	black       [board.NumSquares]uint64
	white       [board.NumSquares]uint64
	blackToMove uint64
}

// Initialize fills the tables from a seeded generator. Equal seeds produce
// equal tables, so searches are reproducible. The tables are immutable
// afterward.
func (z *Zobrist) Initialize(seed uint64) {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	rng := frand.NewCustom(key[:], 1024, 12)
	for i := range z.black {
		z.black[i] = rng.Uint64n(bignum) + 1
		z.white[i] = rng.Uint64n(bignum) + 1
	}
	z.blackToMove = rng.Uint64n(bignum) + 1
}

// Hash computes the full hash of a position.
func (z *Zobrist) Hash(p board.Position) uint64 {
	var key uint64
	bb := board.Bits(p.Black())
	for sq, ok := bb.Next(); ok; sq, ok = bb.Next() {
		key ^= z.black[sq.Index()]
	}
	bb = board.Bits(p.White())
	for sq, ok := bb.Next(); ok; sq, ok = bb.Next() {
		key ^= z.white[sq.Index()]
	}
	if p.SideToMove() == board.Black {
		key ^= z.blackToMove
	}
	return key
}
