package board

import "github.com/seekerror/reversi/pkg/bits"

// SquareSet is a 64-bit bitboard: bit k set iff square k is occupied. The empty set is 0.
type SquareSet uint64

const (
	EmptySet SquareSet = 0
	FullSet  SquareSet = ^SquareSet(0)
)

const (
	fileA SquareSet = 0x0101010101010101
	fileH SquareSet = 0x8080808080808080
)

// colDelta is the per-step column change for each direction: +1 for the east family
// (E, NE, SE), -1 for the west family (W, NW, SW), 0 for N/S (row-only).
var colDelta = [NumDirections]int{
	NW: -1, N: 0, NE: 1,
	W: -1, E: 1,
	SW: -1, S: 0, SE: 1,
}

// stepDelta is the bit-index change of a single step in each direction.
var stepDelta = [NumDirections]int{
	NW: 7, N: 8, NE: 9,
	W: -1, E: 1,
	SW: -9, S: -8, SE: -7,
}

// eastMask[amount] keeps the columns that survive an eastward shift of amount steps
// without wrapping (columns 0..7-amount). westMask[amount] keeps columns amount..7.
var eastMask [8]SquareSet
var westMask [8]SquareSet

func init() {
	for amount := 0; amount < 8; amount++ {
		var em, wm SquareSet
		for col := 0; col < 8; col++ {
			cm := columnMask(col)
			if col+amount < 8 {
				em |= cm
			}
			if col-amount >= 0 {
				wm |= cm
			}
		}
		eastMask[amount] = em
		westMask[amount] = wm
	}
}

func columnMask(col int) SquareSet {
	var m SquareSet
	for row := 0; row < 8; row++ {
		m |= SquareSet(1) << uint(row*8+col)
	}
	return m
}

func shiftBits(s SquareSet, n int) SquareSet {
	if n >= 0 {
		return s << uint(n)
	}
	return s >> uint(-n)
}

// Shift slides every set bit one step in direction d, masking off bits that would leave
// the board.
func (s SquareSet) Shift(d Direction) SquareSet {
	return s.ShiftBy(d, 1)
}

// ShiftBy slides every set bit amount steps in direction d, masking any square that would
// wrap across the board's edge.
func (s SquareSet) ShiftBy(d Direction, amount int) SquareSet {
	if amount == 0 {
		return s
	}
	masked := s
	switch colDelta[d] {
	case 1:
		masked &= eastMask[amount]
	case -1:
		masked &= westMask[amount]
	}
	return shiftBits(masked, stepDelta[d]*amount)
}

// ShiftBackBy slides every set bit amount steps in direction d without edge masking, so
// ShiftBackBy(d.Opposite(), n) undoes ShiftBy(d, n). It is only safe to use to reverse a
// cascade that was itself produced by valid forward shifts.
func (s SquareSet) ShiftBackBy(d Direction, amount int) SquareSet {
	return shiftBits(s, stepDelta[d]*amount)
}

// Contains reports whether sq is set.
func (s SquareSet) Contains(sq Square) bool {
	return s&(SquareSet(1)<<uint(sq)) != 0
}

// With returns s with sq set.
func (s SquareSet) With(sq Square) SquareSet {
	return s | (SquareSet(1) << uint(sq))
}

// Without returns s with sq cleared.
func (s SquareSet) Without(sq Square) SquareSet {
	return s &^ (SquareSet(1) << uint(sq))
}

// PopCount returns the number of set squares.
func (s SquareSet) PopCount() int {
	return bits.PopCount64(uint64(s))
}

// IsEmpty reports whether no square is set.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// LowestSquare returns the lowest-indexed set square, or Invalid if s is empty.
func (s SquareSet) LowestSquare() Square {
	if s == 0 {
		return Invalid
	}
	return Square(bits.LowestSet64(uint64(s)))
}

// PopLowest returns the lowest-indexed set square and s with that bit cleared. Panics if s
// is empty.
func (s SquareSet) PopLowest() (Square, SquareSet) {
	sq := s.LowestSquare()
	if sq == Invalid {
		panic("board: PopLowest on empty SquareSet")
	}
	return sq, s.Without(sq)
}

// Squares returns the set squares in ascending order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.PopCount())
	for w := s; w != 0; {
		var sq Square
		sq, w = w.PopLowest()
		out = append(out, sq)
	}
	return out
}
