package board_test

import (
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquareSetBasics(t *testing.T) {
	var s board.SquareSet
	assert.True(t, s.IsEmpty())

	s = s.With(board.A1).With(board.H8)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(board.A1))
	assert.True(t, s.Contains(board.H8))
	assert.False(t, s.Contains(board.D4))
	assert.Equal(t, 2, s.PopCount())

	s = s.Without(board.A1)
	assert.False(t, s.Contains(board.A1))
	assert.Equal(t, 1, s.PopCount())
}

func TestSquareSetPopLowestAndSquares(t *testing.T) {
	s := board.SquareSet(0).With(board.D4).With(board.A1).With(board.H8)

	got := s.Squares()
	assert.Equal(t, []board.Square{board.A1, board.D4, board.H8}, got)

	sq, rest := s.PopLowest()
	assert.Equal(t, board.A1, sq)
	assert.Equal(t, 2, rest.PopCount())
}

func TestSquareSetPopLowestPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		board.EmptySet.PopLowest()
	})
}

func TestSquareSetShiftStaysOnBoard(t *testing.T) {
	// A1 shifted north repeatedly walks up file A and eventually falls off the board.
	s := board.SquareSet(0).With(board.A1)
	for i := 0; i < 7; i++ {
		s = s.Shift(board.N)
	}
	assert.True(t, s.Contains(board.A8))

	s = s.Shift(board.N)
	assert.True(t, s.IsEmpty())
}

func TestSquareSetShiftDoesNotWrapFiles(t *testing.T) {
	// H-file square shifted east must fall off the board, not wrap to the A-file.
	s := board.SquareSet(0).With(board.H4)
	assert.True(t, s.Shift(board.E).IsEmpty())

	s = board.SquareSet(0).With(board.A4)
	assert.True(t, s.Shift(board.W).IsEmpty())
}
