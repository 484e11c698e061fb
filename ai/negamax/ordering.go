package negamax

import (
	"math/bits"
	"sort"

	"github.com/shimajiteppei/gemini/board"
)

// Move-ordering offsets. The table's recorded best move always sorts first;
// corners are strong; X- and C-squares beside an unowned corner usually
// hand that corner to the opponent.
const (
	ttMoveBonus    = 1_000_000
	cornerBonus    = 100_000
	xSquarePenalty = 50_000
	cSquarePenalty = 20_000
)

// cornerForXSquare maps an X-square (diagonal neighbor of a corner) to its
// corner's index.
var cornerForXSquare = map[int]int{9: 0, 14: 7, 49: 56, 54: 63}

// cornerForCSquare maps a C-square (edge neighbor of a corner) to its
// corner's index.
var cornerForCSquare = map[int]int{
	1: 0, 8: 0, 6: 7, 15: 7, 48: 56, 57: 56, 55: 63, 62: 63,
}

type scoredMove struct {
	score  int
	square board.Square
}

// orderMoves scores and sorts the legal placements, best first. The result
// is fully deterministic for a given (position, table state) pair: equal
// scores break ties on ascending board index.
func orderMoves(pos board.Position, legal uint64, ttMove board.Square, hasTTMove bool) []board.Square {
	player, _ := playerBoards(pos)
	moves := make([]scoredMove, 0, bits.OnesCount64(legal))

	bb := board.Bits(legal)
	for sq, ok := bb.Next(); ok; sq, ok = bb.Next() {
		score := 0
		if hasTTMove && sq == ttMove {
			score += ttMoveBonus
		}
		if sq.Bit()&cornerMask != 0 {
			score += cornerBonus
		} else if corner, isX := cornerForXSquare[sq.Index()]; isX {
			if player&(uint64(1)<<corner) == 0 {
				score -= xSquarePenalty
			}
		} else if corner, isC := cornerForCSquare[sq.Index()]; isC {
			if player&(uint64(1)<<corner) == 0 {
				score -= cSquarePenalty
			}
		}

		// Cheap tiebreak: prefer moves that leave the opponent fewer replies.
		if next, err := pos.ApplyMove(sq); err == nil {
			score -= bits.OnesCount64(next.LegalMoves())
		}

		moves = append(moves, scoredMove{score: score, square: sq})
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].score != moves[j].score {
			return moves[i].score > moves[j].score
		}
		return moves[i].square < moves[j].square
	})

	ordered := make([]board.Square, len(moves))
	for i, m := range moves {
		ordered[i] = m.square
	}
	return ordered
}
