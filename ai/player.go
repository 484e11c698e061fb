// Package ai defines the move-selection capability and its simplest
// implementation. The search player lives in the negamax subpackage.
package ai

import (
	"github.com/shimajiteppei/gemini/board"
	"github.com/shimajiteppei/gemini/move"
)

// Player selects a move for the side to move. Implementations may carry
// internal mutable state (a generator, a transposition table), so a Player
// must not be shared across goroutines.
//
// SelectMove returns a pass only when the position has no legal move, and
// otherwise a placement on a currently legal square.
type Player interface {
	SelectMove(pos board.Position) move.Move
}
