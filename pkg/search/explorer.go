package search

import (
	"sort"

	"github.com/seekerror/reversi/pkg/board"
)

// Explorer orders a frame's legal moves before the solver visits them. Both strategies
// named in the data model coexist: they must agree on outcome and first move (up to
// ties), differing only in how fast they reach a cutoff.
type Explorer func(p board.Position, moves []board.Square) []board.Square

// NaturalOrder explores moves in ascending square-index order. It is the simplest and
// cheapest-per-node strategy, adequate at shallow depth or for benchmarking -- it leaves
// moves (already ascending, as produced by SquareSet.Squares) untouched.
func NaturalOrder(p board.Position, moves []board.Square) []board.Square {
	return moves
}

// MobilityOrder partitions moves by the fixed positional priority cluster table (central
// squares first, X-squares last) and, within each cluster, sorts ascending by the
// opponent's resulting mobility -- fewer opponent replies explored first. This is the
// stronger of the two orderings: it tends to find cutoffs sooner.
func MobilityOrder(p board.Position, moves []board.Square) []board.Square {
	mobility := make([]int, len(moves))
	for i, m := range moves {
		mobility[i] = p.MakeMove(m).LegalMoves().PopCount()
	}

	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ca, cb := clusterOf[moves[idx[a]]], clusterOf[moves[idx[b]]]
		if ca != cb {
			return ca < cb
		}
		return mobility[idx[a]] < mobility[idx[b]]
	})

	out := make([]board.Square, len(moves))
	for i, j := range idx {
		out[i] = moves[j]
	}
	return out
}
