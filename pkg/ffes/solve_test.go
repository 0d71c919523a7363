package ffes_test

import (
	"context"
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/reversi/pkg/ffes"
	"github.com/seekerror/reversi/pkg/search"
	"github.com/stretchr/testify/assert"
)

// endgamePosition mirrors pkg/search's checkerboard-plus-solid-rank construction, with the
// top emptyRows ranks empty (8 empties per row), used to cross-check the fast-endgame
// engine against the primary alpha-beta solver. At three empty rows (24 empties) the
// alpha-beta solve takes many minutes.
func endgamePosition(emptyRows int) board.Position {
	var black, white board.SquareSet
	filledRows := 8 - emptyRows
	for row := 0; row < filledRows-1; row++ {
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
		black = black.With(board.NewSquare(col, filledRows-1))
	}
	return board.Position{Black: black, White: white, ToMove: board.Black}
}

func TestFFESAgreesWithAlphaBeta(t *testing.T) {
	for _, rows := range []int{1, 2, 3} {
		p := endgamePosition(rows)

		want := search.New(search.Options{}).Solve(context.Background(), p)
		got := ffes.New(ffes.Options{}).Solve(p)

		assert.Equal(t, want.Outcome, got.Outcome, "ffes must agree with the alpha-beta solver at %v empty rows", rows)
	}
}

func TestFFESTerminalPosition(t *testing.T) {
	full := board.Position{Black: board.FullSet, ToMove: board.Black}
	result := ffes.New(ffes.Options{}).Solve(full)
	assert.Equal(t, 64, result.Outcome)
}

func TestFFESUnchangedUnderColorSwap(t *testing.T) {
	p := endgamePosition(2)
	solver := ffes.New(ffes.Options{})

	v := solver.Solve(p).Outcome
	vSwapped := solver.Solve(p.Swapped()).Outcome

	assert.Equal(t, v, vSwapped, "FinalValue/Outcome are defined from the side-to-move's perspective, so swapping colors and the mover together must not change the sign")
}

func TestFFESZeroOptionsMatchExplicitDefaults(t *testing.T) {
	p := endgamePosition(2)

	withDefaults := ffes.New(ffes.Options{}).Solve(p)
	explicit := ffes.New(ffes.Options{FastestFirst: ffes.DefaultFastestFirst, UseParity: ffes.DefaultUseParity}).Solve(p)

	assert.Equal(t, withDefaults.Outcome, explicit.Outcome)
}
