package pv_test

import (
	"testing"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/reversi/pkg/pv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAddMoveBuildsRootToLeafOrder(t *testing.T) {
	a := pv.NewArena(4)

	// Simulate the search's prepend-during-unwind pattern: the deepest move is prepended
	// first, onto a fresh line, then each shallower move is prepended onto the same line.
	line := a.NewLine()
	a.AddMove(line, board.F5)
	a.AddMove(line, board.D3)

	assert.Equal(t, []board.Square{board.D3, board.F5}, a.Moves(line))
	assert.Equal(t, 2, a.Len(line))
}

func TestArenaDeleteLineReturnsCells(t *testing.T) {
	a := pv.NewArena(2)
	before := a.CellCapacity()

	line := a.NewLine()
	a.AddMove(line, board.A1)
	a.AddMove(line, board.B2)
	require.NoError(t, a.CheckInvariants())

	a.DeleteLine(line)
	assert.Equal(t, 0, a.ActiveCells())
	assert.Equal(t, before, a.CellCapacity())
	require.NoError(t, a.CheckInvariants())
}

func TestArenaDeleteEmptyLineIsSafe(t *testing.T) {
	a := pv.NewArena(2)
	line := a.NewLine()
	assert.NotPanics(t, func() { a.DeleteLine(line) })
}

func TestArenaLineExhaustionPanics(t *testing.T) {
	a := pv.NewArena(0) // numLines = 2*(0+1)+1 = 3
	for i := 0; i < a.LineCapacity(); i++ {
		a.NewLine()
	}
	assert.Panics(t, func() { a.NewLine() })
}

func TestArenaCellExhaustionPanics(t *testing.T) {
	a := pv.NewArena(0) // numCells = (0+2)*(0+3)/2 = 3
	line := a.NewLine()
	for i := 0; i < a.CellCapacity(); i++ {
		a.AddMove(line, board.A1)
	}
	assert.Panics(t, func() { a.AddMove(line, board.A1) })
}

func TestArenaReuseAfterDelete(t *testing.T) {
	a := pv.NewArena(1)

	l1 := a.NewLine()
	a.AddMove(l1, board.A1)
	a.DeleteLine(l1)

	// The freed line and cell must be available for a fresh line.
	l2 := a.NewLine()
	a.AddMove(l2, board.B2)
	assert.Equal(t, []board.Square{board.B2}, a.Moves(l2))
	assert.NoError(t, a.CheckInvariants())
}
