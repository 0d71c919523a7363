package search

import (
	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Minimax implements naive full-width minimax with no pruning. Useful for cross-checking
// the alpha-beta Solver on small positions: the two must agree on outcome for any
// position with few enough empties that a full-width search is affordable.
type Minimax struct{}

// Solve computes the exact outcome of root by full-width minimax. The returned PV holds
// only the root's best move (empty if root has no legal move), and FinalBoard is left as
// the zero Position.
func (Minimax) Solve(root board.Position) Result {
	run := &minimaxRun{}
	value, move := run.search(root)
	pv := []board.Square{}
	if move.IsValid() {
		pv = append(pv, move)
	}
	return Result{
		Outcome:   value,
		PV:        pv,
		NodeCount: run.nodeCount,
		LeafCount: run.leafCount,
	}
}

type minimaxRun struct {
	nodeCount uint64
	leafCount uint64
}

// search returns the position's exact value from the side-to-move's perspective and the
// first move that achieves it (Invalid if there is none, i.e. at a terminal position).
func (r *minimaxRun) search(p board.Position) (int, board.Square) {
	r.nodeCount++

	moves := p.LegalMoves()
	if moves == 0 {
		passed := p.Pass()
		if passed.HasLegalMove() {
			value, _ := r.search(passed)
			return -value, board.Invalid
		}
		r.leafCount++
		return p.FinalValue(), board.Invalid
	}

	best := -65
	var bestMove board.Square = board.Invalid
	for w := moves; w != 0; {
		var m board.Square
		m, w = w.PopLowest()

		value, _ := r.search(p.MakeMove(m))
		value = -value
		if value > best {
			bestMove = m
		}
		best = mathx.Max(best, value)
	}
	return best, bestMove
}
