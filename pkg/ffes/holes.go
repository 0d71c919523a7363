package ffes

const none = -1

// emptyList is an index-based doubly linked list over a fixed array of 64 slots, one per
// empty square remaining on the board. It supports O(1) removal and restoration of any
// slot: every search procedure removes a square while it recurses into the move played
// there and restores it afterwards, and the parity and no-parity procedures walk the
// list front to back.
type emptyList struct {
	square [64]int
	holeID [64]uint64
	pred   [64]int
	succ   [64]int
	head   int
	n      int
}

// remove unlinks slot i from the list. Its own pred/succ fields are left untouched, so
// restore(i) can relink it later without recomputing anything.
func (l *emptyList) remove(i int) {
	if l.pred[i] == none {
		l.head = l.succ[i]
	} else {
		l.succ[l.pred[i]] = l.succ[i]
	}
	if l.succ[i] != none {
		l.pred[l.succ[i]] = l.pred[i]
	}
	l.n--
}

// restore relinks slot i using its still-intact pred/succ fields, reversing the effect of
// the matching remove(i) call. Callers must restore in the reverse order they removed.
func (l *emptyList) restore(i int) {
	if l.pred[i] == none {
		l.head = i
	} else {
		l.succ[l.pred[i]] = i
	}
	if l.succ[i] != none {
		l.pred[l.succ[i]] = i
	}
	l.n++
}

// worstToBest lists the 64 padded-board square indices in a fixed static order, worst
// positional value first (the approximate opposite of how a human would prioritize
// corners and edges), used to order the empty-square list and so to break ties between
// equally-mobile moves. Ported verbatim from the reference solver: X-squares first, the
// corners and the four centre squares last.
var worstToBest = [64]int{
	20, 25, 65, 70, 11, 16, 19, 26, 64, 71, 74, 79, 21, 24, 29, 34,
	56, 61, 66, 69, 22, 23, 38, 43, 47, 52, 67, 68, 31, 32, 39, 42,
	48, 51, 58, 59, 13, 14, 37, 44, 46, 53, 76, 77, 30, 33, 57, 60,
	12, 15, 28, 35, 55, 62, 75, 78, 10, 17, 73, 80, 40, 41, 49, 50,
}

// prepareHoles computes, for each empty square, a hole ID identifying the connected
// region of empties it belongs to (under 8-directional, king-move adjacency on the
// padded board), and the XOR of the hole IDs of every empty square, which leaves set
// exactly the ID bits of holes holding an odd number of empties. The computation is a single
// forward pass followed by a single backward pass propagating the minimum ID seen so
// far; like the reference solver this does not iterate to a fixed point, so it can
// under-merge oddly shaped regions -- accepted here as in the original, since region
// parity is a move-ordering heuristic, not a correctness requirement.
func prepareHoles(b *paddedBoard) (holeID [paddedSize]uint64, regionParity uint64) {
	next := uint64(1)
	for i := 10; i <= 80; i++ {
		if b[i] != empty {
			continue
		}
		id := next
		next <<= 1
		for _, d := range [4]int{-10, -9, -8, -1} {
			if n := holeID[i+d]; n != 0 && n < id {
				id = n
			}
		}
		holeID[i] = id
	}
	for i := 80; i >= 10; i-- {
		if b[i] != empty {
			continue
		}
		id := holeID[i]
		for _, d := range [4]int{10, 9, 8, 1} {
			if n := holeID[i+d]; n != 0 && n < id {
				id = n
			}
		}
		holeID[i] = id
	}
	for i := 10; i <= 80; i++ {
		regionParity ^= holeID[i]
	}
	return holeID, regionParity
}

// newEmptyList builds the empty-square list for b, ordered by worstToBest, annotated
// with hole IDs from prepareHoles.
func newEmptyList(b *paddedBoard) (*emptyList, uint64) {
	holeID, parity := prepareHoles(b)

	l := &emptyList{head: none}
	prev := none
	for _, sq := range worstToBest {
		if b[sq] != empty {
			continue
		}
		i := l.n
		l.square[i] = sq
		l.holeID[i] = holeID[sq]
		l.pred[i] = prev
		l.succ[i] = none
		if prev == none {
			l.head = i
		} else {
			l.succ[prev] = i
		}
		prev = i
		l.n++
	}
	return l, parity
}
