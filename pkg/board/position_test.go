package board_test

import (
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialPositionLegalMoves(t *testing.T) {
	moves := board.InitialPosition.LegalMoves().Squares()
	want := []board.Square{board.D3, board.C4, board.F5, board.E6}
	assert.ElementsMatch(t, want, moves)
}

func TestMakeMoveFlipsBracketedDiscs(t *testing.T) {
	// Black plays D3, bracketing the white disc on D4 against black's D5.
	next := board.InitialPosition.MakeMove(board.D3)

	assert.True(t, next.Black.Contains(board.D3))
	assert.True(t, next.Black.Contains(board.D4), "D4 should have flipped to black")
	assert.Equal(t, board.White, next.ToMove)
	assert.Equal(t, 4, next.Black.PopCount())
	assert.Equal(t, 1, next.White.PopCount())
}

func TestPassAndIsTerminal(t *testing.T) {
	p := board.InitialPosition
	assert.False(t, p.IsTerminal())

	passed := p.Pass()
	assert.Equal(t, p.Black, passed.Black)
	assert.Equal(t, p.White, passed.White)
	assert.Equal(t, p.ToMove.Opponent(), passed.ToMove)
}

func TestFinalValueSignConvention(t *testing.T) {
	p := board.Position{
		Black:  board.FullSet &^ board.SquareSet(0).With(board.A1),
		White:  board.SquareSet(0).With(board.A1),
		ToMove: board.Black,
	}
	// Not a real draw, just checks the sign convention: black has every square but one.
	assert.Equal(t, 62, p.FinalValue())

	flipped := p
	flipped.ToMove = board.White
	assert.Equal(t, -62, flipped.FinalValue())
}

func TestFinalValueExactDraw(t *testing.T) {
	half := board.SquareSet(0)
	for sq := board.Square(0); sq < 32; sq++ {
		half = half.With(sq)
	}
	p := board.Position{Black: half, White: board.FullSet &^ half, ToMove: board.Black}
	assert.Equal(t, 0, p.FinalValue())
}

func TestSwappedIsInvolution(t *testing.T) {
	p := board.InitialPosition.MakeMove(board.D3)
	assert.Equal(t, p, p.Swapped().Swapped())

	s := p.Swapped()
	assert.Equal(t, p.Black, s.White)
	assert.Equal(t, p.White, s.Black)
	assert.Equal(t, p.ToMove.Opponent(), s.ToMove)
}

func TestPositionNotationRoundTrip(t *testing.T) {
	for _, p := range []board.Position{
		board.InitialPosition,
		board.InitialPosition.MakeMove(board.D3),
		board.InitialPosition.MakeMove(board.D3).MakeMove(board.C3),
	} {
		s := p.String()
		assert.Len(t, s, 65)

		reparsed, err := board.ParsePosition(s)
		require.NoError(t, err)
		assert.Equal(t, p, reparsed)
	}
}

func TestParsePositionRejectsBadInput(t *testing.T) {
	_, err := board.ParsePosition("tooshort")
	assert.Error(t, err)

	_, err = board.ParsePosition("x" + board.InitialPosition.String()[1:])
	assert.Error(t, err)
}

func TestEmptyCount(t *testing.T) {
	assert.Equal(t, 60, board.InitialPosition.EmptyCount())
	assert.Equal(t, 0, board.Position{Black: board.FullSet}.EmptyCount())
}
