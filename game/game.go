// Package game layers turn and termination bookkeeping over a board
// position.
package game

import (
	"errors"
	"fmt"

	"github.com/shimajiteppei/gemini/board"
	"github.com/shimajiteppei/gemini/move"
)

var (
	// ErrGameOver means a move was played after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalMove means the placement is outside the legal-move set.
	ErrIllegalMove = errors.New("illegal move")
	// ErrPassNotAllowed means a voluntary pass was attempted with legal
	// moves available.
	ErrPassNotAllowed = errors.New("pass not allowed while legal moves exist")
)

// Status reports whether the game is over, with the current disc counts.
type Status struct {
	GameOver bool
	Black    int
	White    int
}

// Game tracks one game in progress: the current position plus the count of
// consecutive passes. All errors returned from Play are expected and
// recoverable; the game state is never corrupted by a rejected move.
type Game struct {
	position          board.Position
	consecutivePasses int
}

// NewGame starts a game from the initial position.
func NewGame() *Game {
	return &Game{position: board.InitialPosition()}
}

// NewGameFromPosition starts a game from an arbitrary position with a fresh
// pass counter.
func NewGameFromPosition(pos board.Position) *Game {
	return &Game{position: pos}
}

// Position returns the current position.
func (g *Game) Position() board.Position { return g.position }

// SideToMove returns the side on turn.
func (g *Game) SideToMove() board.Color { return g.position.SideToMove() }

// ConsecutivePasses returns the number of passes played in a row.
func (g *Game) ConsecutivePasses() int { return g.consecutivePasses }

// IsGameOver reports termination: two consecutive passes, or neither side
// having a legal move.
func (g *Game) IsGameOver() bool {
	if g.consecutivePasses >= 2 {
		return true
	}
	if g.position.CanPlayFor(g.position.SideToMove()) {
		return false
	}
	return !g.position.CanPlayFor(g.position.SideToMove().Opponent())
}

// Status returns the current status with disc counts.
func (g *Game) Status() Status {
	black, white := g.position.Counts()
	return Status{GameOver: g.IsGameOver(), Black: black, White: white}
}

// Play applies one move for the side on turn and returns the new status.
// A placement resets the pass counter; a pass is only accepted when no
// legal move exists and increments it.
func (g *Game) Play(m move.Move) (Status, error) {
	if g.IsGameOver() {
		return g.Status(), ErrGameOver
	}

	if m.IsPass() {
		if g.position.LegalMoves() != 0 {
			return g.Status(), ErrPassNotAllowed
		}
		g.consecutivePasses++
		g.position = g.position.Pass()
		return g.Status(), nil
	}

	next, err := g.position.ApplyMove(m.Square())
	if err != nil {
		if errors.Is(err, board.ErrIllegalMove) {
			return g.Status(), fmt.Errorf("%s: %w", m.Square(), ErrIllegalMove)
		}
		return g.Status(), err
	}
	g.consecutivePasses = 0
	g.position = next
	return g.Status(), nil
}

// AutoPassIfNeeded applies the forced pass when the side on turn has no
// legal move, so that a driving loop never stalls waiting for an impossible
// input. It reports whether a pass was applied.
func (g *Game) AutoPassIfNeeded() bool {
	if g.IsGameOver() {
		return false
	}
	if g.position.LegalMoves() != 0 {
		return false
	}
	g.consecutivePasses++
	g.position = g.position.Pass()
	return true
}
