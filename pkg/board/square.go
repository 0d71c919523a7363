package board

import "fmt"

// Square identifies a cell on the board, or one of two sentinels. The numbering matches
// the bitboard layout directly: square = row*8 + col, with row 0 = rank 1 and col 0 =
// file A, so A1=0, B1=1, .. H1=7, A2=8, .. H8=63.
//
//	A8=56 B8=57 C8=58 D8=59 E8=60 F8=61 G8=62 H8=63
//	A7=48 B7=49 C7=50 D7=51 E7=52 F7=53 G7=54 H7=55
//	A6=40 B6=41 C6=42 D6=43 E6=44 F6=45 G6=46 H6=47
//	A5=32 B5=33 C5=34 D5=35 E5=36 F5=37 G5=38 H5=39
//	A4=24 B4=25 C4=26 D4=27 E4=28 F4=29 G4=30 H4=31
//	A3=16 B3=17 C3=18 D3=19 E3=20 F3=21 G3=22 H3=23
//	A2=8  B2=9  C2=10 D2=11 E2=12 F2=13 G2=14 H2=15
//	A1=0  B1=1  C1=2  D1=3  E1=4  F1=5  G1=6  H1=7
//
// Two sentinels extend the range beyond the 64 board cells: Pass denotes a null move
// (legal only when the side to move has no legal move and the opponent does), and
// Invalid marks the absence of a move altogether.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// Pass denotes a null move: legal only when the mover has no legal move but the
	// opponent does.
	Pass

	// Invalid marks the absence of a move.
	Invalid
)

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
)

var squareNames = [...]string{
	"A1", "B1", "C1", "D1", "E1", "F1", "G1", "H1",
	"A2", "B2", "C2", "D2", "E2", "F2", "G2", "H2",
	"A3", "B3", "C3", "D3", "E3", "F3", "G3", "H3",
	"A4", "B4", "C4", "D4", "E4", "F4", "G4", "H4",
	"A5", "B5", "C5", "D5", "E5", "F5", "G5", "H5",
	"A6", "B6", "C6", "D6", "E6", "F6", "G6", "H6",
	"A7", "B7", "C7", "D7", "E7", "F7", "G7", "H7",
	"A8", "B8", "C8", "D8", "E8", "F8", "G8", "H8",
	"--", // Pass
	"NA", // Invalid
}

// NewSquare builds the square at the given zero-based column (0=A..7=H) and row (0=rank1..7=rank8).
func NewSquare(col, row int) Square {
	return Square(row<<3 | col)
}

// ParseSquare parses a board cell such as "D5", case-insensitively. It does not accept
// "--" or "NA"; ParseMove accepts "--" for Pass.
func ParseSquare(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return Invalid, fmt.Errorf("invalid square: %q", str)
	}
	col, ok := parseFile(runes[0])
	if !ok {
		return Invalid, fmt.Errorf("invalid square: %q", str)
	}
	row, ok := parseRank(runes[1])
	if !ok {
		return Invalid, fmt.Errorf("invalid square: %q", str)
	}
	return NewSquare(col, row), nil
}

// ParseMove parses a move, accepting "--" for Pass in addition to the square forms.
func ParseMove(str string) (Square, error) {
	if str == "--" {
		return Pass, nil
	}
	return ParseSquare(str)
}

func parseFile(r rune) (int, bool) {
	switch r {
	case 'a', 'A':
		return 0, true
	case 'b', 'B':
		return 1, true
	case 'c', 'C':
		return 2, true
	case 'd', 'D':
		return 3, true
	case 'e', 'E':
		return 4, true
	case 'f', 'F':
		return 5, true
	case 'g', 'G':
		return 6, true
	case 'h', 'H':
		return 7, true
	default:
		return 0, false
	}
}

func parseRank(r rune) (int, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return int(r - '1'), true
}

// IsValid reports whether s identifies one of the 64 board cells (excludes Pass and Invalid).
func (s Square) IsValid() bool {
	return s < NumSquares
}

// Col returns the zero-based column, 0=A .. 7=H. Only meaningful when IsValid.
func (s Square) Col() int {
	return int(s) & 0x7
}

// Row returns the zero-based row, 0=rank1 .. 7=rank8. Only meaningful when IsValid.
func (s Square) Row() int {
	return int(s) >> 3
}

func (s Square) String() string {
	if int(s) < len(squareNames) {
		return squareNames[s]
	}
	return "NA"
}
