// Package automatic plays unattended agent-vs-agent games.
package automatic

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/shimajiteppei/gemini/ai"
	"github.com/shimajiteppei/gemini/game"
)

// maxPlies caps a single game. A legal game finishes well under this; the
// cap only guards against a misbehaving player.
const maxPlies = 200

var errGameTooLong = errors.New("game exceeded maximum ply count")

// GameRunner drives one game between two players, black first.
type GameRunner struct {
	game    *game.Game
	players [2]ai.Player // indexed by board.Color
}

// NewGameRunner starts a runner on a fresh game.
func NewGameRunner(black, white ai.Player) *GameRunner {
	return &GameRunner{
		game:    game.NewGame(),
		players: [2]ai.Player{black, white},
	}
}

// Game exposes the underlying game.
func (r *GameRunner) Game() *game.Game { return r.game }

// PlayToCompletion queries the player on turn each ply and plays the chosen
// move until the game ends. Forced passes are applied automatically, so the
// loop never stalls on a side with no legal move.
func (r *GameRunner) PlayToCompletion() (game.Status, error) {
	for plies := 0; !r.game.IsGameOver(); plies++ {
		if plies >= maxPlies {
			return r.game.Status(), errGameTooLong
		}
		if r.game.AutoPassIfNeeded() {
			continue
		}

		onTurn := r.game.SideToMove()
		m := r.players[onTurn].SelectMove(r.game.Position())
		status, err := r.game.Play(m)
		if err != nil {
			return status, fmt.Errorf("player %s played %s: %w", onTurn, m.ShortDescription(), err)
		}
		log.Debug().Str("side", onTurn.String()).
			Str("move", m.ShortDescription()).
			Int("black", status.Black).Int("white", status.White).
			Msg("played")
	}
	return r.game.Status(), nil
}

// SeriesResult aggregates a comp-vs-comp series.
type SeriesResult struct {
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int
}

// PlaySeries plays n games concurrently, one goroutine per game. newBlack
// and newWhite construct fresh players for each game, so no player state is
// ever shared across goroutines.
func PlaySeries(n int, newBlack, newWhite func(gameIndex int) ai.Player) (SeriesResult, error) {
	statuses := make([]game.Status, n)

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			runner := NewGameRunner(newBlack(i), newWhite(i))
			status, err := runner.PlayToCompletion()
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			statuses[i] = status
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SeriesResult{}, err
	}

	result := SeriesResult{
		Games:     n,
		BlackWins: lo.CountBy(statuses, func(s game.Status) bool { return s.Black > s.White }),
		WhiteWins: lo.CountBy(statuses, func(s game.Status) bool { return s.White > s.Black }),
		Draws:     lo.CountBy(statuses, func(s game.Status) bool { return s.Black == s.White }),
	}
	log.Info().Int("games", result.Games).
		Int("black-wins", result.BlackWins).
		Int("white-wins", result.WhiteWins).
		Int("draws", result.Draws).
		Msg("series-complete")
	return result, nil
}
