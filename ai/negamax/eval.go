package negamax

import (
	"math/bits"

	"github.com/shimajiteppei/gemini/board"
)

// cornerMask covers a1, h1, a8 and h8.
const cornerMask uint64 = 0x8100000000000081

// discScale converts a final disc differential into score units: one disc
// of difference is worth 100 points.
const discScale = 100

// evaluate scores a non-terminal position from the mover's perspective as a
// weighted sum of corner, mobility and material differentials. The weights
// shift with the phase, keyed on empty-square count: material is nearly
// irrelevant early and dominant near the end.
func evaluate(pos board.Position) int {
	empty := pos.EmptyCount()
	side := pos.SideToMove()
	player, opponent := playerBoards(pos)

	corners := bits.OnesCount64(player&cornerMask) - bits.OnesCount64(opponent&cornerMask)
	mobility := bits.OnesCount64(pos.LegalMovesFor(side)) - bits.OnesCount64(pos.LegalMovesFor(side.Opponent()))
	material := bits.OnesCount64(player) - bits.OnesCount64(opponent)

	var wCorner, wMobility, wMaterial int
	switch {
	case empty > 44:
		wCorner, wMobility, wMaterial = 30, 5, 0
	case empty > 20:
		wCorner, wMobility, wMaterial = 30, 3, 1
	default:
		wCorner, wMobility, wMaterial = 20, 1, 5
	}

	return corners*wCorner + mobility*wMobility + material*wMaterial
}

// terminalScore scores a finished position (neither side can move) from the
// mover's perspective: the exact disc differential times discScale.
func terminalScore(pos board.Position) int {
	black, white := pos.Counts()
	diff := black - white
	if pos.SideToMove() == board.White {
		diff = -diff
	}
	return diff * discScale
}

func playerBoards(pos board.Position) (player, opponent uint64) {
	if pos.SideToMove() == board.Black {
		return pos.Black(), pos.White()
	}
	return pos.White(), pos.Black()
}
