// Package negamax implements the alpha-beta search player: iterative
// deepening over a zobrist-hashed transposition table, with an exact
// endgame solve once few squares remain.
package negamax

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/shimajiteppei/gemini/ai"
	"github.com/shimajiteppei/gemini/board"
	"github.com/shimajiteppei/gemini/move"
	"github.com/shimajiteppei/gemini/zobrist"
)

const (
	// DefaultNodeBudget bounds a single SelectMove call in heuristic mode.
	DefaultNodeBudget = uint64(250_000)

	// endgameEmptyThreshold switches to the exact end-of-game solve when at
	// most this many squares are empty.
	endgameEmptyThreshold = 14

	// defaultZobristSeed seeds each solver's zobrist table.
	defaultZobristSeed = uint64(0xdeadbeefcafebabe)
)

// Solver picks moves with iterative-deepening fail-soft negamax, switching
// to an exact end-of-game search once at most endgameEmptyThreshold squares
// remain. It owns its transposition table and zobrist table for its whole
// lifetime; table entries persist across SelectMove calls. A Solver is not
// safe for concurrent use.
type Solver struct {
	depth      int
	nodeBudget uint64
	ttable     *TranspositionTable
	zobrist    *zobrist.Zobrist
	lastStats  SearchStats
}

var _ ai.Player = (*Solver)(nil)

// NewSolver returns a solver that searches depth plies.
func NewSolver(depth int) *Solver {
	s := &Solver{
		depth:      depth,
		nodeBudget: DefaultNodeBudget,
		ttable:     NewTranspositionTable(DefaultTableSize),
		zobrist:    &zobrist.Zobrist{},
	}
	s.zobrist.Initialize(defaultZobristSeed)
	return s
}

// Depth returns the configured ply depth.
func (s *Solver) Depth() int { return s.depth }

// SetNodeBudget overrides the node budget; NodeBudgetUnlimited disables it.
func (s *Solver) SetNodeBudget(budget uint64) { s.nodeBudget = budget }

// SetTranspositionTable swaps in a caller-provided table, e.g. one sized
// from system memory with Reset.
func (s *Solver) SetTranspositionTable(t *TranspositionTable) { s.ttable = t }

// TranspositionTable returns the solver's table.
func (s *Solver) TranspositionTable() *TranspositionTable { return s.ttable }

// Stats returns the statistics of the most recent SelectMove search.
func (s *Solver) Stats() SearchStats { return s.lastStats }

// SelectMove implements ai.Player. It always returns a legal move: the best
// move of the deepest fully completed search, the first enumerable legal
// move if no depth completed, or a pass when there is no legal move.
func (s *Solver) SelectMove(pos board.Position) move.Move {
	limits := NewSearchLimits(normalizeDepth(s.depth), s.nodeBudget)
	result := s.searchRoot(pos, limits)
	s.lastStats = result.stats

	log.Debug().
		Int("completed-depth", result.completedDepth).
		Int("best-score", result.bestScore).
		Uint64("nodes", result.stats.Nodes).
		Uint64("cutoffs", result.stats.Cutoffs).
		Uint64("tt-hits", result.stats.TTHits).
		Uint64("ttable-created", s.ttable.Created()).
		Str("move", result.bestMove.ShortDescription()).
		Msg("select-move")
	return result.bestMove
}

// normalizeDepth maps a requested depth of 0 (or less) to 1.
func normalizeDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	return depth
}

type searchResult struct {
	bestMove       move.Move
	bestScore      int
	completedDepth int
	stats          SearchStats
}

// searchRoot dispatches between the endgame exact solve and iterative
// deepening.
func (s *Solver) searchRoot(pos board.Position, limits SearchLimits) searchResult {
	if pos.LegalMoves() == 0 {
		return searchResult{bestMove: move.Pass()}
	}

	if empty := pos.EmptyCount(); empty <= endgameEmptyThreshold {
		// Read the endgame out to the true end with no node budget. Forced
		// passes consume plies, so the budget leaves slack beyond one ply
		// per empty square.
		plies := empty*2 + 2
		return s.endgameRootSearch(pos, NewSearchLimits(plies, NodeBudgetUnlimited))
	}
	return s.iterativeDeepening(pos, limits)
}

// iterativeDeepening searches depth 1, 2, ... maxDepth over one shared
// context. Each completed depth overwrites the previous best; when a depth
// aborts on the node budget, the last fully completed depth's move stands.
func (s *Solver) iterativeDeepening(pos board.Position, limits SearchLimits) searchResult {
	ctx := &searchContext{limits: limits, ttable: s.ttable, zobrist: s.zobrist}
	result := searchResult{bestMove: firstLegalMove(pos), bestScore: math.MinInt}

	for depth := 1; depth <= limits.MaxDepth(); depth++ {
		mv, score, err := ctx.rootSearch(pos, depth, false)
		if err != nil {
			// Node budget exhausted mid-depth; keep the previous result.
			break
		}
		result.bestMove = mv
		result.bestScore = score
		result.completedDepth = depth
		log.Debug().Int("depth", depth).Int("score", score).
			Str("move", mv.ShortDescription()).
			Msg("deepening-iteratively")
	}

	result.stats = ctx.stats
	return result
}

func (s *Solver) endgameRootSearch(pos board.Position, limits SearchLimits) searchResult {
	ctx := &searchContext{limits: limits, ttable: s.ttable, zobrist: s.zobrist}
	mv, score, err := ctx.rootSearch(pos, limits.MaxDepth(), true)
	if err != nil {
		return searchResult{bestMove: firstLegalMove(pos), stats: ctx.stats}
	}
	return searchResult{
		bestMove:       mv,
		bestScore:      score,
		completedDepth: limits.MaxDepth(),
		stats:          ctx.stats,
	}
}

// firstLegalMove is the fallback when no search depth completed.
func firstLegalMove(pos board.Position) move.Move {
	bb := board.Bits(pos.LegalMoves())
	if sq, ok := bb.Next(); ok {
		return move.Place(sq)
	}
	return move.Pass()
}
