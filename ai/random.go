package ai

import (
	"math/bits"

	"github.com/shimajiteppei/gemini/board"
	"github.com/shimajiteppei/gemini/move"
)

const (
	// Multiplier and increment as used by the PCG family of generators.
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
	lcgSeedMix    = 0x9e3779b97f4a7c15
)

// lcg64 is a 64-bit linear congruential generator. Deliberately tiny: the
// point is cheap, seed-reproducible move selection, not quality entropy.
type lcg64 struct {
	state uint64
}

func newLcg64(seed uint64) lcg64 {
	// mix so a zero seed still produces a usable stream
	return lcg64{state: seed ^ lcgSeedMix}
}

// next32 advances the state and returns its high 32 bits.
func (l *lcg64) next32() uint32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return uint32(l.state >> 32)
}

// RandomPlayer picks uniformly among the legal moves, fully reproducible
// per seed.
type RandomPlayer struct {
	rng lcg64
}

// NewRandomPlayer returns a player seeded with seed.
func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: newLcg64(seed)}
}

// SelectMove implements Player.
func (r *RandomPlayer) SelectMove(pos board.Position) move.Move {
	moves := pos.LegalMoves()
	if moves == 0 {
		return move.Pass()
	}
	bit := chooseBit(moves, r.rng.next32())
	sq, ok := board.SquareFromIndex(bits.TrailingZeros64(bit))
	if !ok {
		return move.Pass()
	}
	return move.Place(sq)
}

// chooseBit selects one set bit of bb, mapping random into the popcount
// range with a fixed-point multiply-high, then clearing that many low bits.
func chooseBit(bb uint64, random uint32) uint64 {
	count := bits.OnesCount64(bb)
	if count == 0 {
		return 0
	}
	skip := (uint64(random) * uint64(count)) >> 32
	for i := uint64(0); i < skip; i++ {
		bb &= bb - 1
	}
	return bb & -bb
}
