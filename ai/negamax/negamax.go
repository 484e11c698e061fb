package negamax

import (
	"math"

	"github.com/shimajiteppei/gemini/board"
	"github.com/shimajiteppei/gemini/move"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
*/

// inf is the alpha-beta window bound; far inside the int range, so negating
// it is always safe.
const inf = 1_000_000_000

// rootSearch runs one fixed-depth fail-soft search from the root and
// returns the move with the strictly highest score; ties keep the
// earlier-ordered move. In exact mode the leaves are true game ends rather
// than heuristic evaluations.
func (c *searchContext) rootSearch(pos board.Position, depth int, exact bool) (move.Move, int, error) {
	legal := pos.LegalMoves()
	if legal == 0 {
		if !exact {
			return move.Pass(), 0, nil
		}
		if !pos.CanPlayFor(pos.SideToMove().Opponent()) {
			return move.Pass(), terminalScore(pos), nil
		}
		value, err := c.negamax(pos.Pass(), depth-1, -inf, inf, true)
		if err != nil {
			return move.Pass(), 0, err
		}
		return move.Pass(), -value, nil
	}

	key := c.zobrist.Hash(pos)
	ttMove, hasTTMove := c.ttable.probeBestMove(key)
	ordered := orderMoves(pos, legal, ttMove, hasTTMove)

	best := math.MinInt
	bestMove := move.Pass()
	alpha, beta := -inf, inf

	for _, sq := range ordered {
		next, err := pos.ApplyMove(sq)
		if err != nil {
			continue
		}
		value, err := c.negamax(next, depth-1, -beta, -alpha, exact)
		if err != nil {
			return move.Pass(), 0, err
		}
		score := -value
		if score > best {
			best = score
			bestMove = move.Place(sq)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestMove, best, nil
}

// negamax is the recursive fail-soft alpha-beta core. The two modes share
// everything but their leaves: heuristic mode falls back to the static
// evaluation when depth runs out, exact mode only ever returns terminal or
// disc-differential scores. A forced pass recurses on the passed position
// with a negated window and consumes a ply of depth budget.
func (c *searchContext) negamax(pos board.Position, depth, alpha, beta int, exact bool) (int, error) {
	c.stats.Nodes++
	if c.stats.Nodes >= c.limits.nodeBudget {
		return 0, errAborted
	}

	key := c.zobrist.Hash(pos)
	if value, done := c.probeAdjustWindow(key, depth, &alpha, &beta); done {
		return value, nil
	}

	legal := pos.LegalMoves()
	if legal == 0 {
		if !pos.CanPlayFor(pos.SideToMove().Opponent()) {
			return terminalScore(pos), nil
		}
		if depth <= 0 {
			return c.leafScore(pos, exact), nil
		}
		value, err := c.negamax(pos.Pass(), depth-1, -beta, -alpha, exact)
		if err != nil {
			return 0, err
		}
		return -value, nil
	}

	if depth <= 0 {
		return c.leafScore(pos, exact), nil
	}

	alphaOrig := alpha
	ttMove, hasTTMove := c.ttable.probeBestMove(key)
	ordered := orderMoves(pos, legal, ttMove, hasTTMove)

	best := math.MinInt
	var bestMove board.Square
	hasBest := false

	for _, sq := range ordered {
		next, err := pos.ApplyMove(sq)
		if err != nil {
			continue
		}
		value, err := c.negamax(next, depth-1, -beta, -alpha, exact)
		if err != nil {
			return 0, err
		}
		score := -value
		if score > best {
			best = score
			bestMove = sq
			hasBest = true
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			c.stats.Cutoffs++
			break
		}
	}

	flag := TTExact
	if best <= alphaOrig {
		flag = TTUpper
	} else if best >= beta {
		flag = TTLower
	}
	c.ttable.store(key, depth, best, flag, bestMove, hasBest)
	c.stats.TTStores++

	return best, nil
}

// leafScore evaluates a depth-exhausted node. Exact mode should never
// legitimately run out of depth with moves available (the endgame ply
// budget leaves slack), but if it does, the disc differential is still a
// sane answer.
func (c *searchContext) leafScore(pos board.Position, exact bool) int {
	if exact {
		return terminalScore(pos)
	}
	return evaluate(pos)
}

// probeAdjustWindow probes the table and narrows the window. An Exact entry
// answers immediately; a Lower bound raises alpha, an Upper bound lowers
// beta, and a crossed window returns the cached value.
func (c *searchContext) probeAdjustWindow(key uint64, depth int, alpha, beta *int) (int, bool) {
	entry, ok := c.ttable.lookup(key, depth)
	if !ok {
		return 0, false
	}
	c.stats.TTHits++

	value := int(entry.score)
	switch entry.flag {
	case TTExact:
		return value, true
	case TTLower:
		if value >= *beta {
			return value, true
		}
		if value > *alpha {
			*alpha = value
		}
	case TTUpper:
		if value <= *alpha {
			return value, true
		}
		if value < *beta {
			*beta = value
		}
	}
	if *alpha >= *beta {
		return value, true
	}
	return 0, false
}
