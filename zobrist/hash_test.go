package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/shimajiteppei/gemini/board"
)

func TestHashDeterministicPerSeed(t *testing.T) {
	is := is.New(t)

	var a, b Zobrist
	a.Initialize(7)
	b.Initialize(7)

	pos := board.InitialPosition()
	is.Equal(a.Hash(pos), b.Hash(pos))

	var c Zobrist
	c.Initialize(8)
	is.True(a.Hash(pos) != c.Hash(pos))
}

func TestHashDependsOnSideToMove(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize(1)

	pos := board.InitialPosition()
	is.True(z.Hash(pos) != z.Hash(pos.Pass()))
}

func TestHashChangesAfterMove(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize(1)

	pos := board.InitialPosition()
	next, err := pos.ApplyMove(board.Square(19))
	is.NoErr(err)
	is.True(z.Hash(pos) != z.Hash(next))
}

func TestHashOfEmptyBoard(t *testing.T) {
	is := is.New(t)

	var z Zobrist
	z.Initialize(1)

	empty, err := board.NewPosition(0, 0, board.White)
	is.NoErr(err)
	is.Equal(z.Hash(empty), uint64(0))
}
