package board_test

import (
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want board.Square
	}{
		{"A1", board.A1},
		{"h1", board.H1},
		{"D5", board.D5},
		{"H8", board.H8},
	}
	for _, tt := range tests {
		got, err := board.ParseSquare(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := board.ParseSquare("--")
	assert.Error(t, err)
	_, err = board.ParseSquare("Z9")
	assert.Error(t, err)
}

func TestParseMove(t *testing.T) {
	got, err := board.ParseMove("--")
	require.NoError(t, err)
	assert.Equal(t, board.Pass, got)

	got, err = board.ParseMove("C4")
	require.NoError(t, err)
	assert.Equal(t, board.C4, got)
}

func TestSquareRoundTrip(t *testing.T) {
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		reparsed, err := board.ParseSquare(sq.String())
		require.NoError(t, err)
		assert.Equal(t, sq, reparsed)
	}
}

func TestSquareColRow(t *testing.T) {
	assert.Equal(t, 0, board.A1.Col())
	assert.Equal(t, 0, board.A1.Row())
	assert.Equal(t, 7, board.H8.Col())
	assert.Equal(t, 7, board.H8.Row())
	assert.Equal(t, board.D5, board.NewSquare(3, 4))
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, board.A1.IsValid())
	assert.True(t, board.H8.IsValid())
	assert.False(t, board.Pass.IsValid())
	assert.False(t, board.Invalid.IsValid())
}
