package ffes

import (
	"sort"

	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Defaults for the empty-count thresholds that select which of the three search
// procedures runs at a node, ported from the reference solver's tuning constants.
const (
	DefaultFastestFirst = 7
	DefaultUseParity    = 4
)

// infinity bounds the negamax window; an Othello outcome never exceeds +/-64, so this
// sentinel can never be mistaken for a legitimate value.
const infinity = 65

// Options configures a Solver.
type Options struct {
	// FastestFirst: above this many empties, order moves by ascending opponent mobility
	// before recursing.
	FastestFirst int
	// UseParity: at or below max(2, this), skip hole-parity ordering and search the
	// worst-to-best list directly.
	UseParity int
}

func (o Options) normalize() Options {
	if o.FastestFirst <= 0 {
		o.FastestFirst = DefaultFastestFirst
	}
	if o.UseParity <= 0 {
		o.UseParity = DefaultUseParity
	}
	return o
}

// Result is the outcome of a fast-endgame solve: the exact disc-difference from root's
// side-to-move perspective, plus node/leaf counters for cross-checking against the
// primary solver's Result.
type Result struct {
	Outcome   int
	NodeCount uint64
	LeafCount uint64
}

// Solver is the fast-endgame cross-validation engine. It is only exact for positions
// with few enough empties that end-game lookahead is affordable -- per the design notes,
// it exists to cross-check pkg/search.Solver on late-game positions, not to replace it.
type Solver struct {
	opts Options
}

func New(opts Options) *Solver {
	return &Solver{opts: opts.normalize()}
}

// Solve computes the exact outcome of root using the padded-board fast-endgame engine.
func (s *Solver) Solve(root board.Position) Result {
	b := newPaddedBoard(root)
	list, parity := newEmptyList(&b)
	run := &run{opts: s.opts, fs: &flipStack{}}

	mover := colorOf(root.ToMove)
	value := run.endSolve(&b, list, parity, mover, -infinity, infinity)

	return Result{Outcome: value, NodeCount: run.nodeCount, LeafCount: run.leafCount}
}

type run struct {
	opts      Options
	fs        *flipStack
	nodeCount uint64
	leafCount uint64
}

// endSolve dispatches to one of the three search procedures based on how many empties
// remain in list, mirroring the reference solver's end_solve.
func (r *run) endSolve(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int) int {
	r.nodeCount++
	switch {
	case list.n == 0:
		r.leafCount++
		return discDiff(b, mover)
	case list.n > r.opts.FastestFirst:
		return r.fastestFirstEndSolve(b, list, parity, mover, alpha, beta)
	case list.n <= mathx.Max(2, r.opts.UseParity):
		return r.noParityEndSolve(b, list, parity, mover, alpha, beta)
	default:
		return r.parityEndSolve(b, list, parity, mover, alpha, beta)
	}
}

// noParityEndSolve searches the remaining empties in worst-to-best order with plain
// alpha-beta and no move reordering. It hand-unrolls the two-empty case directly, since
// at that depth the two possible final positions can be compared without recursion.
func (r *run) noParityEndSolve(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int) int {
	if list.n == 2 {
		return r.solveTwoEmpty(b, list, mover, alpha, beta)
	}
	return r.searchList(b, list, parity, mover, alpha, beta, func(int) bool { return true })
}

// parityEndSolve tries, in two passes, squares whose hole ID shares a bit with the
// current region parity mask first, then the rest -- the Thor-Grondijs hole-parity
// heuristic: in a region with an odd number of empties, the side to move is more likely
// to be forced to play there eventually, so trying it first tends to produce earlier
// cutoffs.
func (r *run) parityEndSolve(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int) int {
	best := -infinity
	anyTried := false
	for _, par := range [2]uint64{parity, ^parity} {
		match := func(i int) bool { return list.holeID[i]&par != 0 }
		v, tried := r.searchListFrom(b, list, parity, mover, alpha, beta, best, match)
		anyTried = anyTried || tried
		if v > best {
			best = v
			if best >= beta {
				return best
			}
			if best > alpha {
				alpha = best
			}
		}
	}
	if !anyTried {
		return r.pass(b, list, parity, mover, alpha, beta)
	}
	return best
}

// fastestFirstEndSolve orders the remaining empties by ascending opponent mobility
// (moves that leave the opponent fewest replies are tried first) and recurses through
// endSolve so deeper nodes still dispatch to whichever procedure fits their own empty
// count.
func (r *run) fastestFirstEndSolve(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int) int {
	opp := opponent(mover)

	type candidate struct {
		slot      int
		mobility  int
	}
	cands := make([]candidate, 0, list.n)
	for i := list.head; i != none; i = list.succ[i] {
		sq := list.square[i]
		n := countFlips(b, sq, mover, opp)
		if n == 0 {
			continue
		}
		list.remove(i)
		n2 := doFlips(b, sq, mover, opp, r.fs)
		b[sq] = mover
		mob := countMobility(b, list, opp)
		undoFlips(b, r.fs, n2)
		b[sq] = empty
		list.restore(i)
		cands = append(cands, candidate{slot: i, mobility: mob})
	}
	sort.SliceStable(cands, func(a, c int) bool { return cands[a].mobility < cands[c].mobility })

	if len(cands) == 0 {
		return r.pass(b, list, parity, mover, alpha, beta)
	}

	best := -infinity
	for _, c := range cands {
		i := c.slot
		sq := list.square[i]
		list.remove(i)
		n := doFlips(b, sq, mover, opp, r.fs)
		b[sq] = mover

		v := -r.endSolve(b, list, nextParity(list, parity, i), opp, -beta, -mathx.Max(alpha, best))

		b[sq] = empty
		undoFlips(b, r.fs, n)
		list.restore(i)

		if v > best {
			best = v
			if best >= beta {
				return best
			}
		}
	}
	return best
}

// searchList tries every empty in list (front to back) that satisfies filter, returning
// the best negamax value. Falls back to pass() if no filtered square was legal. Used by
// the no-parity procedure with an always-true filter.
func (r *run) searchList(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int, filter func(int) bool) int {
	v, tried := r.searchListFrom(b, list, parity, mover, alpha, beta, -infinity, filter)
	if !tried {
		return r.pass(b, list, parity, mover, alpha, beta)
	}
	return v
}

// searchListFrom tries every empty in list (front to back) that satisfies filter,
// starting from best=initial, and reports whether any filtered square was legal. It does
// not itself fall back to pass() -- callers that only search a subset of the list (the
// parity procedure's two passes) must track legality across all subsets themselves.
func (r *run) searchListFrom(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta, initial int, filter func(int) bool) (int, bool) {
	opp := opponent(mover)
	best := initial
	tried := false

	for i := list.head; i != none; i = list.succ[i] {
		if !filter(i) {
			continue
		}
		sq := list.square[i]
		n := countFlips(b, sq, mover, opp)
		if n == 0 {
			continue
		}
		tried = true

		list.remove(i)
		doFlips(b, sq, mover, opp, r.fs)
		b[sq] = mover

		v := -r.endSolve(b, list, nextParity(list, parity, i), opp, -beta, -mathx.Max(alpha, best))

		b[sq] = empty
		undoFlips(b, r.fs, n)
		list.restore(i)

		if v > best {
			best = v
			if best >= beta {
				return best, tried
			}
			if best > alpha {
				alpha = best
			}
		}
	}

	return best, tried
}

// pass handles the no-legal-move case: if the opponent also has no move, the game is
// over and the outcome is the final disc difference; otherwise the turn passes.
func (r *run) pass(b *paddedBoard, list *emptyList, parity uint64, mover cell, alpha, beta int) int {
	opp := opponent(mover)
	if countMobility(b, list, opp) == 0 {
		r.leafCount++
		return discDiff(b, mover)
	}
	return -r.endSolve(b, list, parity, opp, -beta, -alpha)
}

// nextParity updates the region-parity mask after square slot i (about to be filled) is
// removed from list: its hole ID no longer contributes.
func nextParity(list *emptyList, parity uint64, i int) uint64 {
	return parity ^ list.holeID[i]
}

// solveTwoEmpty directly evaluates the two ways the last two empty squares can be filled,
// without recursing into endSolve, mirroring the reference solver's unrolled n==2 case.
func (r *run) solveTwoEmpty(b *paddedBoard, list *emptyList, mover cell, _, _ int) int {
	opp := opponent(mover)
	i1, i2 := list.head, list.succ[list.head]
	sq1, sq2 := list.square[i1], list.square[i2]

	if best, ok := r.tryEither(b, sq1, sq2, mover, opp); ok {
		return best
	}
	// mover has no move at either square: pass.
	r.nodeCount++
	if best, ok := r.tryEither(b, sq1, sq2, opp, mover); ok {
		return -best
	}
	// Neither side can play either square: game ends with two empties left.
	r.leafCount++
	return discDiff(b, mover)
}

// tryEither tries playing cur at sq1 then sq2, each followed by finalMove on the other
// square, and reports the best resulting value from cur's perspective along with whether
// cur had any legal move at all.
func (r *run) tryEither(b *paddedBoard, sq1, sq2 int, cur, other cell) (int, bool) {
	best := -infinity
	ok := false
	for _, pair := range [2][2]int{{sq1, sq2}, {sq2, sq1}} {
		sq, rest := pair[0], pair[1]
		n := countFlips(b, sq, cur, other)
		if n == 0 {
			continue
		}
		ok = true
		doFlips(b, sq, cur, other, r.fs)
		b[sq] = cur
		r.nodeCount++
		v := -r.finalMove(b, rest, other, cur)
		b[sq] = empty
		undoFlips(b, r.fs, n)
		best = mathx.Max(best, v)
	}
	return best, ok
}

// finalMove plays the single remaining empty square sq: cur if legal, else other, else
// the game ends with one empty left. Returns the disc difference from cur's perspective.
// Used only by solveTwoEmpty's one-empty-left sub-case.
func (r *run) finalMove(b *paddedBoard, sq int, cur, other cell) int {
	r.nodeCount++
	if n := countFlips(b, sq, cur, other); n > 0 {
		doFlips(b, sq, cur, other, r.fs)
		b[sq] = cur
		r.leafCount++
		v := discDiff(b, cur)
		b[sq] = empty
		undoFlips(b, r.fs, n)
		return v
	}
	if n := countFlips(b, sq, other, cur); n > 0 {
		doFlips(b, sq, other, cur, r.fs)
		b[sq] = other
		r.leafCount++
		v := discDiff(b, cur)
		b[sq] = empty
		undoFlips(b, r.fs, n)
		return v
	}
	r.leafCount++
	return discDiff(b, cur)
}

// discDiff scores the board from mover's perspective, awarding any still-empty squares
// to whichever color holds more discs -- the standard end-of-game scoring rule, applied
// here because the search can terminate early (both sides pass) with empties left on the
// board. Mirrors board.Position.FinalValue.
func discDiff(b *paddedBoard, mover cell) int {
	opp := opponent(mover)
	var moverDiscs, oppDiscs, empties int
	for _, c := range b {
		switch c {
		case mover:
			moverDiscs++
		case opp:
			oppDiscs++
		case empty:
			empties++
		}
	}
	d := moverDiscs - oppDiscs
	switch {
	case d > 0:
		return d + empties
	case d < 0:
		return d - empties
	default:
		return 0
	}
}
