// Package ffes implements a fast-endgame solver (FFES), a second, independent Othello
// engine used to cross-validate the primary alpha-beta negamax solver in pkg/search. It
// is grounded on Gunnar Andersson's improved fast endgame solver: a padded one-byte-per-
// cell board with dummy borders (so ray scans never need bounds checks), a fixed
// worst-to-best square ordering, three search procedures selected by the remaining empty
// count, and hole-parity move ordering in the middle range.
package ffes

import "github.com/seekerror/reversi/pkg/board"

// cell is the state of one padded-board cell.
type cell uint8

const (
	// white and black intentionally take the values 0 and 2 so that opponent(c) == 2-c
	// works for both colors without a branch -- the same trick the reference solver
	// uses to swap colors on every recursive call.
	white cell = 0
	empty cell = 1
	black cell = 2
	dummy cell = 3
)

func colorOf(c board.Color) cell {
	if c == board.Black {
		return black
	}
	return white
}

func opponent(c cell) cell {
	return 2 - c
}

// The padded board stores the 8x8 playing area with a row stride of 9 in a flat 91-cell
// array: square(col,row) = 10 + col + 9*row for 0<=col,row<=7, so A1 sits at index 10 and
// H8 at index 80. Every other index (0-9, 81-90, and the ninth cell of each row) holds a
// dummy, so every ray scan terminates on a sentinel without an explicit bounds check.
const paddedSize = 91

type paddedBoard [paddedSize]cell

func paddedIndex(sq board.Square) int {
	return 10 + sq.Col() + 9*sq.Row()
}

func newPaddedBoard(p board.Position) paddedBoard {
	var b paddedBoard
	for i := range b {
		b[i] = dummy
	}
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		idx := paddedIndex(sq)
		switch {
		case p.Black.Contains(sq):
			b[idx] = black
		case p.White.Contains(sq):
			b[idx] = white
		default:
			b[idx] = empty
		}
	}
	return b
}

// dirInc are the 8 ray increments on the padded board, with rows increasing towards rank
// 8: E, W, NW, SE, N, S, NE, SW.
var dirInc = [8]int{1, -1, 8, -8, 9, -9, 10, -10}

// dirMask[sq] is a bitmask over the 8 entries of dirInc: bit i set iff ray i from sq can
// possibly flip something (i.e. doesn't immediately run into the board edge). Ported
// directly from the reference table.
var dirMask = [paddedSize]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 81, 81, 87, 87, 87, 87, 22, 22,
	0, 81, 81, 87, 87, 87, 87, 22, 22,
	0, 121, 121, 255, 255, 255, 255, 182, 182,
	0, 121, 121, 255, 255, 255, 255, 182, 182,
	0, 121, 121, 255, 255, 255, 255, 182, 182,
	0, 121, 121, 255, 255, 255, 255, 182, 182,
	0, 41, 41, 171, 171, 171, 171, 162, 162,
	0, 41, 41, 171, 171, 171, 171, 162, 162,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// flipStack records the padded-board indices flipped by the most recent doFlips calls,
// in order, so undoFlips can restore them in O(flips) without rescanning the board.
type flipStack struct {
	idx []int
}

func (s *flipStack) push(i int)     { s.idx = append(s.idx, i) }
func (s *flipStack) popN(n int) []int {
	from := len(s.idx) - n
	out := s.idx[from:]
	s.idx = s.idx[:from]
	return out
}

// directionalFlips walks one ray from sq in direction inc, flipping the run of opponent
// discs it finds if and only if the run is terminated by a mover disc (not a dummy or
// empty cell). It reports how many discs it flipped.
func directionalFlips(b *paddedBoard, sq, inc int, mover, opp cell, fs *flipStack) int {
	pt := sq + inc
	if b[pt] != opp {
		return 0
	}
	count := 0
	for b[pt] == opp {
		pt += inc
		count++
	}
	if b[pt] != mover {
		return 0
	}
	for pt -= inc; pt != sq; pt -= inc {
		b[pt] = mover
		fs.push(pt)
	}
	return count
}

// doFlips flips every opponent run bracketed by mover's disc played at sq, recording the
// flipped indices on fs. It does not write sq itself; callers set b[sq]. It returns the
// number of discs flipped (0 means sq is not a legal move for mover).
func doFlips(b *paddedBoard, sq int, mover, opp cell, fs *flipStack) int {
	mask := dirMask[sq]
	before := len(fs.idx)
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) != 0 {
			directionalFlips(b, sq, dirInc[i], mover, opp, fs)
		}
	}
	return len(fs.idx) - before
}

// undoFlips reverses the last n flips recorded on fs, restoring each flipped cell to its
// pre-move color (the opponent of whatever mover flipped it to).
func undoFlips(b *paddedBoard, fs *flipStack, n int) {
	for _, i := range fs.popN(n) {
		b[i] = opponent(b[i])
	}
}

// countFlips reports how many discs mover would flip by playing sq, without mutating the
// board.
func countFlips(b *paddedBoard, sq int, mover, opp cell) int {
	mask := dirMask[sq]
	total := 0
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		pt := sq + dirInc[i]
		if b[pt] != opp {
			continue
		}
		n := 0
		for b[pt] == opp {
			pt += dirInc[i]
			n++
		}
		if b[pt] == mover {
			total += n
		}
	}
	return total
}

// anyFlips reports whether mover has a legal move at sq.
func anyFlips(b *paddedBoard, sq int, mover, opp cell) bool {
	mask := dirMask[sq]
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		pt := sq + dirInc[i]
		if b[pt] != opp {
			continue
		}
		for b[pt] == opp {
			pt += dirInc[i]
		}
		if b[pt] == mover {
			return true
		}
	}
	return false
}

// countMobility counts mover's legal moves among the empty squares still in list.
func countMobility(b *paddedBoard, list *emptyList, mover cell) int {
	opp := opponent(mover)
	n := 0
	for i := list.head; i != none; i = list.succ[i] {
		if anyFlips(b, list.square[i], mover, opp) {
			n++
		}
	}
	return n
}
