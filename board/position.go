package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrIllegalMove is returned by ApplyMove for a square outside the
// legal-move set.
var ErrIllegalMove = errors.New("illegal move")

const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = 0x8080808080808080
)

// spreadSteps bounds the OR-shift fill; an opponent run can span at most
// six inner squares.
const spreadSteps = 5

// Position is a reversi position: one bitboard per side plus the side to
// move. It is an immutable value; ApplyMove and Pass derive new positions
// rather than mutating in place. The two bitboards never intersect.
type Position struct {
	black      uint64
	white      uint64
	sideToMove Color
}

// InitialPosition returns the canonical four-disc start, Black to move.
func InitialPosition() Position {
	return Position{
		black:      1<<28 | 1<<35,
		white:      1<<27 | 1<<36,
		sideToMove: Black,
	}
}

// NewPosition builds a position from raw bitboards. It fails if the
// bitboards intersect; validity beyond that (reachability, playability) is
// the caller's concern.
func NewPosition(black, white uint64, sideToMove Color) (Position, error) {
	if black&white != 0 {
		return Position{}, fmt.Errorf("black and white bitboards intersect: %x", black&white)
	}
	return Position{black: black, white: white, sideToMove: sideToMove}, nil
}

// Black returns the black bitboard.
func (p Position) Black() uint64 { return p.black }

// White returns the white bitboard.
func (p Position) White() uint64 { return p.white }

// SideToMove returns the side on turn.
func (p Position) SideToMove() Color { return p.sideToMove }

// Occupied returns the union of both bitboards.
func (p Position) Occupied() uint64 { return p.black | p.white }

// EmptyCount returns the number of empty squares.
func (p Position) EmptyCount() int {
	return NumSquares - bits.OnesCount64(p.Occupied())
}

// Counts returns the disc counts for black and white.
func (p Position) Counts() (black, white int) {
	return bits.OnesCount64(p.black), bits.OnesCount64(p.white)
}

// PieceAt returns the disc on sq, with ok=false for an empty square.
func (p Position) PieceAt(sq Square) (Color, bool) {
	mask := sq.Bit()
	switch {
	case p.black&mask != 0:
		return Black, true
	case p.white&mask != 0:
		return White, true
	}
	return 0, false
}

// LegalMoves returns the bitboard of legal placements for the side to move.
func (p Position) LegalMoves() uint64 { return p.LegalMovesFor(p.sideToMove) }

// LegalMovesFor returns the bitboard of legal placements for c.
func (p Position) LegalMovesFor(c Color) uint64 {
	player, opponent := p.sides(c)
	return legalMoves(player, opponent)
}

// CanPlayFor reports whether c has at least one legal placement.
func (p Position) CanPlayFor(c Color) bool { return p.LegalMovesFor(c) != 0 }

func (p Position) sides(c Color) (player, opponent uint64) {
	if c == Black {
		return p.black, p.white
	}
	return p.white, p.black
}

// ApplyMove places a disc on sq for the side to move, flips every captured
// run in all eight directions, and advances the turn. It fails with
// ErrIllegalMove unless sq is in LegalMoves.
func (p Position) ApplyMove(sq Square) (Position, error) {
	if p.LegalMoves()&sq.Bit() == 0 {
		return Position{}, fmt.Errorf("%s: %w", sq, ErrIllegalMove)
	}

	player, opponent := p.sides(p.sideToMove)
	flipped := flips(player, opponent, sq.Bit())
	player |= sq.Bit() | flipped
	opponent &^= flipped

	next := Position{sideToMove: p.sideToMove.Opponent()}
	if p.sideToMove == Black {
		next.black, next.white = player, opponent
	} else {
		next.white, next.black = player, opponent
	}
	return next, nil
}

// Pass flips the side to move and leaves the board unchanged. Callers must
// only pass when LegalMoves is empty; Game enforces this.
func (p Position) Pass() Position {
	p.sideToMove = p.sideToMove.Opponent()
	return p
}

// String renders the board for logs and test output, black as X, white as O.
func (p Position) String() string {
	var sb strings.Builder
	for y := Dim - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < Dim; x++ {
			sq, _ := SquareFromXY(x, y)
			c, ok := p.PieceAt(sq)
			switch {
			case !ok:
				sb.WriteString(" .")
			case c == Black:
				sb.WriteString(" X")
			default:
				sb.WriteString(" O")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h")
	return sb.String()
}

// Move generation works direction by direction with word-parallel OR-shift
// fills (Kogge-Stone style): starting from the mover's discs (or the
// candidate square), extend through the maximal run of opponent discs, with
// the file masks preventing wraparound across the board edges. A placement
// is legal when the cell just beyond such a run is empty; at apply time the
// same run, re-derived from the placed square toward the mover's discs, is
// exactly the flip set.

type shiftFn func(uint64) uint64

func shiftE(bb uint64) uint64  { return (bb &^ fileH) << 1 }
func shiftW(bb uint64) uint64  { return (bb &^ fileA) >> 1 }
func shiftN(bb uint64) uint64  { return bb << 8 }
func shiftS(bb uint64) uint64  { return bb >> 8 }
func shiftNE(bb uint64) uint64 { return (bb &^ fileH) << 9 }
func shiftNW(bb uint64) uint64 { return (bb &^ fileA) << 7 }
func shiftSE(bb uint64) uint64 { return (bb &^ fileH) >> 7 }
func shiftSW(bb uint64) uint64 { return (bb &^ fileA) >> 9 }

var directions = [8]shiftFn{
	shiftE, shiftW, shiftN, shiftS, shiftNE, shiftNW, shiftSE, shiftSW,
}

func legalMoves(player, opponent uint64) uint64 {
	empty := ^(player | opponent)
	var moves uint64
	for _, shift := range directions {
		moves |= movesInDir(player, opponent, empty, shift)
	}
	return moves
}

func movesInDir(player, opponent, empty uint64, shift shiftFn) uint64 {
	x := shift(player) & opponent
	if x == 0 {
		return 0
	}
	x = spread(x, opponent, shift)
	return shift(x) & empty
}

func flips(player, opponent, mv uint64) uint64 {
	var flipped uint64
	for _, shift := range directions {
		flipped |= flipsInDir(player, opponent, mv, shift)
	}
	return flipped
}

func flipsInDir(player, opponent, mv uint64, shift shiftFn) uint64 {
	x := shift(mv) & opponent
	if x == 0 {
		return 0
	}
	x = spread(x, opponent, shift)
	if shift(x)&player != 0 {
		return x
	}
	return 0
}

// spread extends x through opponent discs along one direction.
func spread(x, opponent uint64, shift shiftFn) uint64 {
	for i := 0; i < spreadSteps; i++ {
		x |= shift(x) & opponent
	}
	return x
}
