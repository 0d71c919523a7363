package board

import "github.com/seekerror/stdlib/pkg/util/mathx"

// Position is a board plus the side to move: all solver state is derived from it. The
// zero value is not a legal position; use InitialPosition or ParsePosition.
type Position struct {
	Black SquareSet
	White SquareSet
	ToMove Color
}

// InitialPosition is the standard Othello starting position: white on D4/E5, black on
// D5/E4, black to move.
var InitialPosition = Position{
	Black:  SquareSet(0).With(D5).With(E4),
	White:  SquareSet(0).With(D4).With(E5),
	ToMove: Black,
}

// Empties returns the set of unoccupied squares.
func (p Position) Empties() SquareSet {
	return ^(p.Black | p.White)
}

// EmptyCount returns the number of unoccupied squares.
func (p Position) EmptyCount() int {
	return 64 - p.Black.PopCount() - p.White.PopCount()
}

func (p Position) mover() SquareSet {
	if p.ToMove == Black {
		return p.Black
	}
	return p.White
}

func (p Position) opponent() SquareSet {
	if p.ToMove == Black {
		return p.White
	}
	return p.Black
}

// LegalMoves returns the set of squares the side to move may legally play on. A square is
// included iff placing a disc there would bracket at least one opponent run in some
// direction.
func (p Position) LegalMoves() SquareSet {
	mover, opponent := p.mover(), p.opponent()
	empty := p.Empties()

	var result SquareSet
	for _, d := range allDirections {
		wave := empty.Shift(d) & opponent
		s := 1
		for wave != 0 {
			wave = wave.Shift(d)
			s++
			result |= (wave & mover).ShiftBackBy(d.Opposite(), s)
			wave &= opponent
		}
	}
	return result
}

// HasLegalMove reports whether the side to move has at least one legal move. It computes
// the full LegalMoves set and tests it for emptiness, since the wave algorithm can't
// easily short-circuit.
func (p Position) HasLegalMove() bool {
	return p.LegalMoves() != 0
}

// IsTerminal reports whether neither side has a legal move.
func (p Position) IsTerminal() bool {
	if p.LegalMoves() != 0 {
		return false
	}
	return p.Pass().LegalMoves() == 0
}

// Pass returns the position with the side to move flipped and the board unchanged.
func (p Position) Pass() Position {
	return Position{Black: p.Black, White: p.White, ToMove: p.ToMove.Opponent()}
}

// MakeMove returns the position after playing move, a disc placement or Pass. The caller
// must ensure move is legal; MakeMove does not validate it (see the error-handling notes
// in SPEC_FULL.md §10). It panics only if move is neither Pass nor a board square.
func (p Position) MakeMove(move Square) Position {
	if move == Pass {
		return p.Pass()
	}
	if !move.IsValid() {
		panic("board: MakeMove called with an invalid move")
	}

	mask := allDirMask[move]
	newBlack := p.Black &^ mask
	newWhite := p.White &^ mask

	playerBB, opponentBB := p.Black, p.White
	if p.ToMove == White {
		playerBB, opponentBB = p.White, p.Black
	}

	for _, axis := range allAxes {
		line := lineOf(axis, move)
		ordinal := ordinalOf(axis, move)

		playerRow := projectToRow(axis, playerBB, line)
		opponentRow := projectToRow(axis, opponentBB, line)

		newPlayerRow := flipRowTable[playerRow][opponentRow][ordinal]
		newOpponentRow := opponentRow &^ newPlayerRow

		newPlayerBits := projectBack(axis, newPlayerRow, line)
		newOpponentBits := projectBack(axis, newOpponentRow, line)

		if p.ToMove == Black {
			newBlack |= newPlayerBits
			newWhite |= newOpponentBits
		} else {
			newWhite |= newPlayerBits
			newBlack |= newOpponentBits
		}
	}

	return Position{Black: newBlack, White: newWhite, ToMove: p.ToMove.Opponent()}
}

// FinalValue returns the disc-difference outcome, from the side-to-move's perspective,
// awarding all empty squares to the side with more discs. Only meaningful at a terminal
// position, but well-defined for any position.
func (p Position) FinalValue() int {
	b, w := p.Black.PopCount(), p.White.PopCount()
	d := b - w
	if d == 0 {
		return 0
	}
	empties := 64 - b - w
	var v int
	if d > 0 {
		v = d + empties
	} else {
		v = d - empties
	}
	if p.ToMove == White {
		v = -v
	}
	// Defensive clamp: d and empties are both bounded by PopCount, so this never actually
	// triggers, but it keeps the result in the only valid range for any caller that treats
	// FinalValue as an opaque score.
	return mathx.Max(-64, mathx.Min(64, v))
}

// Swapped returns p with the two colors' discs exchanged and the side to move flipped —
// used by the negamax-symmetry property check.
func (p Position) Swapped() Position {
	return Position{Black: p.White, White: p.Black, ToMove: p.ToMove.Opponent()}
}
