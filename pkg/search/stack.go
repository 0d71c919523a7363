package search

import "github.com/seekerror/reversi/pkg/board"

// maxDepth bounds the frame stack. Othello has at most 60 placements plus pass headroom;
// 72 matches the reference solver's sizing (the reference's companion hash stack is sized
// 128, which the design notes call out as harmless slack rather than a real bound).
const maxDepth = 72

// maxMoveBufLen bounds the flat move-list buffer shared by every frame.
const maxMoveBufLen = 1024

// Frame is one level of the search: the position under consideration, its hash, legal
// moves, the window it is being searched under, and the move chosen so far. Frame 0 is a
// sentinel carrying the parent of the root (MoveCount and Head 0); the search exempts the
// root from its parent-passed check, so the root never mistakes "no prior move" for
// "prior move was a pass".
type Frame struct {
	Position  board.Position
	Hash      uint64
	Legal     board.SquareSet
	MoveCount int
	Head      int // offset into the shared move buffer
	BestMove  board.Square
	Alpha     int
	Beta      int
}

// Stack is the preallocated frame stack a single solve owns exclusively for its duration.
// No allocation occurs once built.
type Stack struct {
	Frames  [maxDepth]Frame
	MoveBuf [maxMoveBufLen]board.Square
}

// NewStack builds a stack rooted at root, with the sentinel parent frame at index 0 and
// the root frame (full window [-64,+64]) at index 1.
func NewStack(root board.Position) *Stack {
	s := &Stack{}
	s.Frames[0] = Frame{MoveCount: 0, Head: 0}
	s.Frames[1] = Frame{Position: root, Alpha: -64, Beta: 64}
	return s
}

// moves returns the slice of f's move-buffer region, valid until the next frame at the
// same depth overwrites it.
func (s *Stack) moves(f *Frame) []board.Square {
	return s.MoveBuf[f.Head : f.Head+f.MoveCount]
}
