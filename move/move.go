// Package move defines the move value exchanged between agents and the game.
package move

import "github.com/shimajiteppei/gemini/board"

// Action is the kind of a move.
type Action uint8

const (
	ActionPass Action = iota
	ActionPlace
)

// Move is one half-move by one side: either a pass or a placement.
type Move struct {
	action Action
	square board.Square
}

// Pass returns the pass move.
func Pass() Move { return Move{action: ActionPass} }

// Place returns a placement on sq.
func Place(sq board.Square) Move { return Move{action: ActionPlace, square: sq} }

// Action returns the kind of this move.
func (m Move) Action() Action { return m.action }

// IsPass reports whether this move is a pass.
func (m Move) IsPass() bool { return m.action == ActionPass }

// Square returns the placement square. It is only meaningful when the move
// is not a pass.
func (m Move) Square() board.Square { return m.square }

// ShortDescription returns a compact notation for logs, e.g. "e6" or "(pass)".
func (m Move) ShortDescription() string {
	if m.IsPass() {
		return "(pass)"
	}
	return m.square.String()
}
