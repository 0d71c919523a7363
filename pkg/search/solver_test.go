package search_test

import (
	"context"
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/reversi/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

// lateGamePosition builds a position with only the top rank empty (8 empties), cheap
// enough for an exhaustive full-width search. Ranks 1-6 are a checkerboard and rank 7 is
// solid black, which leaves black with no legal move into rank 8 (every neighbor there is
// its own color) while white does -- so this position also exercises the pass-synthesis
// path in the solver.
func lateGamePosition(t *testing.T) board.Position {
	t.Helper()
	var black, white board.SquareSet
	for row := 0; row < 6; row++ {
		for col := 0; col < 8; col++ {
			sq := board.NewSquare(col, row)
			if (col+row)%2 == 0 {
				black = black.With(sq)
			} else {
				white = white.With(sq)
			}
		}
	}
	for col := 0; col < 8; col++ {
		black = black.With(board.NewSquare(col, 6))
	}
	return board.Position{Black: black, White: white, ToMove: board.Black}
}

func TestSolverAgreesWithMinimax(t *testing.T) {
	p := lateGamePosition(t)

	for _, strategy := range []search.Strategy{search.NaturalStrategy, search.MobilityStrategy} {
		solver := search.New(search.Options{Strategy: strategy})
		got := solver.Solve(context.Background(), p)

		want := search.Minimax{}.Solve(p)
		assert.Equal(t, want.Outcome, got.Outcome, "strategy %v must agree with full-width minimax", strategy)
	}
}

func TestSolverStrategiesAgreeOnOutcome(t *testing.T) {
	p := lateGamePosition(t)

	natural := search.New(search.Options{Strategy: search.NaturalStrategy}).Solve(context.Background(), p)
	mobility := search.New(search.Options{Strategy: search.MobilityStrategy}).Solve(context.Background(), p)

	assert.Equal(t, natural.Outcome, mobility.Outcome)
}

func TestSolverIsDeterministic(t *testing.T) {
	p := lateGamePosition(t)
	solver := search.New(search.Options{Strategy: search.MobilityStrategy})

	first := solver.Solve(context.Background(), p)
	second := solver.Solve(context.Background(), p)

	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Equal(t, first.PV, second.PV)
	assert.Equal(t, first.NodeCount, second.NodeCount)
}

func TestSolverPVReplaysToFinalBoard(t *testing.T) {
	p := lateGamePosition(t)
	result := search.New(search.Options{}).Solve(context.Background(), p)

	replayed := p
	for _, m := range result.PV {
		if !replayed.HasLegalMove() {
			replayed = replayed.Pass()
		}
		replayed = replayed.MakeMove(m)
	}
	assert.Equal(t, result.FinalBoard, replayed)
}

func TestSolverTerminalPosition(t *testing.T) {
	full := board.Position{Black: board.FullSet, ToMove: board.Black}
	result := search.New(search.Options{}).Solve(context.Background(), full)

	assert.Equal(t, 64, result.Outcome)
	assert.Empty(t, result.PV)
}

func TestSolverNodeLimitAborts(t *testing.T) {
	p := lateGamePosition(t)

	unbounded := search.New(search.Options{}).Solve(context.Background(), p)
	limited := search.New(search.Options{NodeLimit: lang.Some(uint64(1))}).Solve(context.Background(), p)

	// With a limit of 1, only the root is searched: every call below it bails out to
	// FinalValue as soon as it is entered.
	assert.Less(t, limited.NodeCount, unbounded.NodeCount)
}
