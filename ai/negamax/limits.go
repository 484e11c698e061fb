package negamax

import (
	"errors"
	"math"

	"github.com/shimajiteppei/gemini/zobrist"
)

// NodeBudgetUnlimited disables the node budget.
const NodeBudgetUnlimited = uint64(math.MaxUint64)

// SearchLimits bound a single search: a maximum depth in plies and a budget
// of visited nodes. There is no wall-clock limit, so searches are
// deterministic for fixed limits.
type SearchLimits struct {
	maxDepth   int
	nodeBudget uint64
}

// NewSearchLimits returns limits with the given ply depth and node budget.
func NewSearchLimits(maxDepth int, nodeBudget uint64) SearchLimits {
	return SearchLimits{maxDepth: maxDepth, nodeBudget: nodeBudget}
}

// MaxDepth returns the ply-depth limit.
func (l SearchLimits) MaxDepth() int { return l.maxDepth }

// NodeBudget returns the node-count limit.
func (l SearchLimits) NodeBudget() uint64 { return l.nodeBudget }

// SearchStats count search work for observability only; they never
// influence move selection.
type SearchStats struct {
	Nodes    uint64
	Cutoffs  uint64
	TTHits   uint64
	TTStores uint64
}

// errAborted unwinds the recursion when the node budget runs out. It is the
// sole cancellation mechanism, checked once per node, caught at the root of
// each deepening iteration, and never escapes SelectMove.
var errAborted = errors.New("node budget exceeded")

// searchContext is the mutable state threaded through one search: limits,
// running stats, the transposition table and the zobrist table. One
// iterative-deepening run shares a single context across all depths. It is
// owned by exactly one search at a time.
type searchContext struct {
	limits  SearchLimits
	stats   SearchStats
	ttable  *TranspositionTable
	zobrist *zobrist.Zobrist
}
