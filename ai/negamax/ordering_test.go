package negamax

import (
	"testing"

	"github.com/matryer/is"

	"github.com/shimajiteppei/gemini/board"
)

func TestOrderMovesDeterministic(t *testing.T) {
	is := is.New(t)

	pos := board.InitialPosition()
	a := orderMoves(pos, pos.LegalMoves(), 0, false)
	b := orderMoves(pos, pos.LegalMoves(), 0, false)
	is.Equal(a, b)
	is.Equal(len(a), 4)
}

func TestOrderMovesTableMoveFirst(t *testing.T) {
	is := is.New(t)

	pos := board.InitialPosition()
	ttMove := board.Square(37) // f5
	is.True(pos.LegalMoves()&ttMove.Bit() != 0)

	ordered := orderMoves(pos, pos.LegalMoves(), ttMove, true)
	is.Equal(ordered[0], ttMove)
}

func TestOrderMovesCornerFirst(t *testing.T) {
	is := is.New(t)

	// Black on c1 and c3, white on b1 and b2: black can take the a1 corner
	// or play a3.
	pos, err := board.NewPosition(1<<2|1<<18, 1<<1|1<<9, board.Black)
	is.NoErr(err)
	legal := pos.LegalMoves()
	is.Equal(legal, uint64(1)<<0|uint64(1)<<16)

	ordered := orderMoves(pos, legal, 0, false)
	is.Equal(ordered[0], board.Square(0))
	is.Equal(ordered[1], board.Square(16))
}

func TestOrderMovesXSquareLast(t *testing.T) {
	is := is.New(t)

	// Black on d4, white on c3 and e3: black's choices are b2 (the X-square
	// for the unowned a1 corner) and the ordinary f2.
	pos, err := board.NewPosition(1<<27, 1<<18|1<<20, board.Black)
	is.NoErr(err)
	legal := pos.LegalMoves()
	is.Equal(legal, uint64(1)<<9|uint64(1)<<13)

	ordered := orderMoves(pos, legal, 0, false)
	is.Equal(ordered[0], board.Square(13))
	is.Equal(ordered[1], board.Square(9))
}

func TestOrderMovesXSquareFineWithOwnedCorner(t *testing.T) {
	is := is.New(t)

	// Same shape, but black already owns a1, so b2 carries no penalty and
	// ties break on board index.
	pos, err := board.NewPosition(1<<0|1<<27, 1<<18|1<<20, board.Black)
	is.NoErr(err)
	legal := pos.LegalMoves()
	is.Equal(legal, uint64(1)<<9|uint64(1)<<13)

	// Both replies leave the opponent exactly one move, so with no penalty
	// the tie breaks on board index and b2 comes first.
	ordered := orderMoves(pos, legal, 0, false)
	is.Equal(ordered[0], board.Square(9))
	is.Equal(ordered[1], board.Square(13))
}
