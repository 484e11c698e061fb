package negamax

import (
	"testing"

	"github.com/matryer/is"

	"github.com/shimajiteppei/gemini/board"
)

func TestEvaluateSymmetricStart(t *testing.T) {
	is := is.New(t)

	// The starting position is rotationally symmetric, so neither mover has
	// an edge.
	pos := board.InitialPosition()
	is.Equal(evaluate(pos), 0)
	is.Equal(evaluate(pos.Pass()), 0)
}

func TestEvaluateRewardsCorner(t *testing.T) {
	is := is.New(t)

	withCorner, err := board.NewPosition(1<<0|1<<27, 1<<28, board.Black)
	is.NoErr(err)
	without, err := board.NewPosition(1<<2|1<<27, 1<<28, board.Black)
	is.NoErr(err)

	is.True(evaluate(withCorner) > evaluate(without))
}

func TestTerminalScoreAntisymmetric(t *testing.T) {
	is := is.New(t)

	// Full board, 40 black discs against 24 white.
	black := uint64(0x000000FFFFFFFFFF)
	white := uint64(0xFFFFFF0000000000)

	asBlack, err := board.NewPosition(black, white, board.Black)
	is.NoErr(err)
	asWhite, err := board.NewPosition(black, white, board.White)
	is.NoErr(err)

	is.Equal(terminalScore(asBlack), 16*discScale)
	is.Equal(terminalScore(asWhite), -16*discScale)
}

func TestPlayerBoardsFollowSideToMove(t *testing.T) {
	is := is.New(t)

	pos := board.InitialPosition()
	player, opponent := playerBoards(pos)
	is.Equal(player, pos.Black())
	is.Equal(opponent, pos.White())

	player, opponent = playerBoards(pos.Pass())
	is.Equal(player, pos.White())
	is.Equal(opponent, pos.Black())
}
