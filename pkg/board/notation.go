package board

import (
	"fmt"
	"strings"
)

// FormatMoves renders a move sequence as a space-separated list of square strings, e.g.
// "D3 C4 F5".
func FormatMoves(moves []Square) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// String renders the position as the compact 65-character form: 64 cells in square-index
// order using 'b', 'w', '.', followed by 'b' or 'w' for the side to move.
func (p Position) String() string {
	var sb strings.Builder
	sb.Grow(65)
	for sq := Square(0); sq < NumSquares; sq++ {
		switch {
		case p.Black.Contains(sq):
			sb.WriteByte('b')
		case p.White.Contains(sq):
			sb.WriteByte('w')
		default:
			sb.WriteByte('.')
		}
	}
	if p.ToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// ParsePosition parses the compact 65-character form produced by Position.String.
func ParsePosition(s string) (Position, error) {
	if len(s) != 65 {
		return Position{}, fmt.Errorf("board: invalid position string length %d, want 65", len(s))
	}
	var p Position
	for i := 0; i < 64; i++ {
		switch s[i] {
		case 'b':
			p.Black = p.Black.With(Square(i))
		case 'w':
			p.White = p.White.With(Square(i))
		case '.':
		default:
			return Position{}, fmt.Errorf("board: invalid cell byte %q at index %d", s[i], i)
		}
	}
	if p.Black&p.White != 0 {
		return Position{}, fmt.Errorf("board: overlapping black/white bits")
	}
	switch s[64] {
	case 'b':
		p.ToMove = Black
	case 'w':
		p.ToMove = White
	default:
		return Position{}, fmt.Errorf("board: invalid side-to-move byte %q", s[64])
	}
	return p, nil
}

// Pretty renders the board as a multi-line grid: a header row of file letters, then eight
// rank rows, cells shown as '.'/'@'/'O' for empty/black/white.
func (p Position) Pretty() string {
	var sb strings.Builder
	sb.WriteString("    a b c d e f g h\n")
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%2d  ", row+1)
		for col := 0; col < 8; col++ {
			sq := NewSquare(col, row)
			switch {
			case p.Black.Contains(sq):
				sb.WriteByte('@')
			case p.White.Contains(sq):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
