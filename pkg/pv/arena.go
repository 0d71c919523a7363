// Package pv implements the principal-variation arena: a pool of cells and a pool of
// line heads, sized up front from a position's empty count, so that capturing a PV during
// search never allocates. Lines and cells are addressed by arena-relative index rather
// than pointer, matching the index-based-list convention used throughout this module.
package pv

import (
	"math"

	"github.com/seekerror/reversi/pkg/board"
)

// CellRef addresses a cell within an Arena. NoCell is the reserved "none" sentinel.
type CellRef uint16

// LineRef addresses a line head within an Arena. NoLine is the reserved "none" sentinel.
type LineRef uint16

const (
	NoCell CellRef = math.MaxUint16
	NoLine LineRef = math.MaxUint16
)

type cell struct {
	move   board.Square
	next   CellRef
	active bool
}

// Arena is a fixed-capacity pool of PV cells and PV line heads. Both pools are sized from
// the root position's empty count, per the bounds in the data model: at most
// 2*(empties+1)+1 concurrently live lines, and at most (empties+2)*(empties+3)/2
// concurrently live cells. NewLine and AddMove never fail within those bounds; exceeding
// them is an invariant violation (arena exhaustion), not a runtime error -- see the
// error-handling notes in SPEC_FULL.md §10.
type Arena struct {
	cells     []cell
	freeCells []CellRef // stack of unused cell indices, top at the end

	lineHeads []CellRef // per-line head cell, or NoCell if the line is empty
	freeLines []LineRef // stack of unused line indices, top at the end
}

// NewArena builds an arena sized for a search rooted at a position with the given number
// of empty squares.
func NewArena(emptyCount int) *Arena {
	numLines := 2*(emptyCount+1) + 1
	numCells := (emptyCount + 2) * (emptyCount + 3) / 2

	a := &Arena{
		cells:     make([]cell, numCells),
		freeCells: make([]CellRef, numCells),
		lineHeads: make([]CellRef, numLines),
		freeLines: make([]LineRef, numLines),
	}
	// Push free indices in descending order so that index 0 is handed out first --
	// purely cosmetic, but it makes allocation order match declaration order.
	for i := 0; i < numCells; i++ {
		a.freeCells[i] = CellRef(numCells - 1 - i)
	}
	for i := 0; i < numLines; i++ {
		a.freeLines[i] = LineRef(numLines - 1 - i)
		a.lineHeads[i] = NoCell
	}
	return a
}

// NewLine pops a line head off the free-lines stack and returns it, initialized empty.
func (a *Arena) NewLine() LineRef {
	n := len(a.freeLines)
	if n == 0 {
		panic("pv: line arena exhausted")
	}
	line := a.freeLines[n-1]
	a.freeLines = a.freeLines[:n-1]
	a.lineHeads[line] = NoCell
	return line
}

// AddMove pops a cell off the free-cells stack, sets it to (move, active, next=current
// head), and makes it the new head of line -- prepend semantics. Because the solver
// threads a single line up through the recursion, prepending the move at each returning
// frame leaves the line in root-to-leaf order by the time it reaches the caller.
func (a *Arena) AddMove(line LineRef, move board.Square) {
	n := len(a.freeCells)
	if n == 0 {
		panic("pv: cell arena exhausted")
	}
	c := a.freeCells[n-1]
	a.freeCells = a.freeCells[:n-1]

	a.cells[c] = cell{move: move, next: a.lineHeads[line], active: true}
	a.lineHeads[line] = c
}

// DeleteLine walks line's chain, returning every cell to the free-cells stack, then
// returns the line head itself to the free-lines stack. Safe to call on an empty line.
func (a *Arena) DeleteLine(line LineRef) {
	for c := a.lineHeads[line]; c != NoCell; {
		next := a.cells[c].next
		a.cells[c].active = false
		a.freeCells = append(a.freeCells, c)
		c = next
	}
	a.lineHeads[line] = NoCell
	a.freeLines = append(a.freeLines, line)
}

// Moves returns line's move sequence in root-to-leaf order. The returned slice is a copy;
// mutating it does not affect the arena.
func (a *Arena) Moves(line LineRef) []board.Square {
	var out []board.Square
	for c := a.lineHeads[line]; c != NoCell; c = a.cells[c].next {
		out = append(out, a.cells[c].move)
	}
	return out
}

// Len returns the number of moves in line, without allocating a slice.
func (a *Arena) Len(line LineRef) int {
	n := 0
	for c := a.lineHeads[line]; c != NoCell; c = a.cells[c].next {
		n++
	}
	return n
}

// ActiveCells returns the number of cells currently allocated to a line. Used by
// invariant checks: ActiveCells() must equal cap(cells) - len(freeCells).
func (a *Arena) ActiveCells() int {
	return len(a.cells) - len(a.freeCells)
}

// CellCapacity and LineCapacity report the arena's fixed pool sizes.
func (a *Arena) CellCapacity() int { return len(a.cells) }
func (a *Arena) LineCapacity() int { return len(a.lineHeads) }

// CheckInvariants verifies the free/active-cell partition: no cell is listed twice as
// free, and every cell's active flag is set iff it is not on the free list. It does not
// walk line chains, so it does not check which cells a live line points to. Intended for
// property-based tests, not the hot path.
func (a *Arena) CheckInvariants() error {
	active := make([]bool, len(a.cells))
	for _, c := range a.freeCells {
		if active[c] {
			return errDup(c)
		}
		active[c] = true // reuse as "seen free"
	}
	freeSet := active
	for i, c := range a.cells {
		if c.active == freeSet[i] {
			return errInconsistent(CellRef(i))
		}
	}
	return nil
}

type errDup CellRef

func (e errDup) Error() string { return "pv: cell listed twice as free" }

type errInconsistent CellRef

func (e errInconsistent) Error() string {
	return "pv: cell active flag inconsistent with free-list membership"
}
