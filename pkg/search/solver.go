package search

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"
	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/reversi/pkg/logsink"
	"github.com/seekerror/reversi/pkg/pv"
)

// Result is the outcome of an exact solve: the game-theoretic disc-difference from the
// root's side-to-move perspective, the principal variation that achieves it, and the
// node/leaf counters. FinalBoard is the position reached by replaying PV from the root.
type Result struct {
	Outcome    int
	PV         []board.Square
	NodeCount  uint64
	LeafCount  uint64
	FinalBoard board.Position
}

func (r Result) String() string {
	return fmt.Sprintf("outcome=%v nodes=%v leaves=%v pv=%v", r.Outcome, r.NodeCount, r.LeafCount, board.FormatMoves(r.PV))
}

// Solver is an alpha-beta negamax exact solver over an explicit, preallocated frame
// stack. A Solver value is immutable and safe to reuse sequentially for many solves (not
// concurrently: each Solve call builds fresh per-call stack and arena state, but all calls
// write to the one configured Sink, which need not be concurrency-safe -- the package
// documents single-threaded use, per the concurrency model).
type Solver struct {
	opts Options
}

// New builds a Solver. The zero Options value is a reasonable default (mobility
// ordering, no logging, no node cap).
func New(opts Options) *Solver {
	return &Solver{opts: opts}
}

func (s *Solver) String() string {
	return fmt.Sprintf("reversi-solver %v %v", version, s.opts)
}

// Solve computes the exact outcome and principal variation for root. ctx is used only to
// scope the logw start/finish log lines; records written to the configured Sink do not
// use it, and per the concurrency model there is no cancellation path inside the search.
func (s *Solver) Solve(ctx context.Context, root board.Position) Result {
	logw.Infof(ctx, "Solving %v (%v empties), %v", root, root.EmptyCount(), s.opts)

	run := &search{
		explorer: s.opts.Strategy.explorer(),
		sink:     s.opts.sink(),
		zt:       s.opts.zobrist(),
	}
	if limit, ok := s.opts.NodeLimit.V(); ok {
		run.nodeLimit = limit
		run.limited = true
	}

	stack := NewStack(root)
	run.arena = pv.NewArena(root.EmptyCount())

	line := run.search(ctx, stack, 1)
	root1 := &stack.Frames[1]

	result := Result{
		Outcome:   root1.Alpha,
		PV:        run.arena.Moves(line),
		NodeCount: run.nodeCount,
		LeafCount: run.leafCount,
	}
	result.FinalBoard = replay(root, result.PV)

	logw.Infof(ctx, "Solved %v: %v", root, result)
	return result
}

// replay applies moves from root in order, used to populate Result.FinalBoard. The PV
// never records a pass explicitly (see search's pass-synthesis branch), so replay inserts
// one itself whenever the position to move has no legal move at all -- the only
// situation a pass can legally occur in.
func replay(root board.Position, moves []board.Square) board.Position {
	p := root
	for _, m := range moves {
		if !p.HasLegalMove() {
			p = p.Pass()
		}
		p = p.MakeMove(m)
	}
	return p
}

// search is the per-solve mutable state: counters, the chosen move-ordering strategy,
// the log sink, the Zobrist table, and the PV arena. It is the sole carrier of
// per-solve scratch, kept explicit per the design notes rather than hidden in globals.
type search struct {
	explorer  Explorer
	sink      logsink.Sink
	zt        *board.ZobristTable
	arena     *pv.Arena
	nodeCount uint64
	leafCount uint64
	callID    uint64
	nodeLimit uint64
	limited   bool
}

// search performs the alpha-beta negamax step at frame depth, returning the PV arena
// line for the value written into stack.Frames[depth].Alpha. Depth must be >= 1; depth 0
// is the sentinel parent of the root.
func (r *search) search(ctx context.Context, stack *Stack, depth int) pv.LineRef {
	if depth >= maxDepth {
		panic("search: frame stack exhausted (depth >= 72)")
	}

	r.nodeCount++
	r.callID++

	parent := &stack.Frames[depth-1]
	cur := &stack.Frames[depth]

	if r.limited && r.nodeCount > r.nodeLimit {
		// Benchmarking escape hatch only: not an exact result once tripped.
		cur.BestMove = board.Invalid
		cur.Alpha = cur.Position.FinalValue()
		return r.arena.NewLine()
	}

	cur.Hash = r.zt.Hash(cur.Position)
	cur.Legal = cur.Position.LegalMoves()
	cur.Head = parent.Head + parent.MoveCount

	moves := r.explorer(cur.Position, cur.Legal.Squares())
	cur.MoveCount = len(moves)
	copy(stack.MoveBuf[cur.Head:cur.Head+cur.MoveCount], moves)

	r.log(ctx, stack, depth)

	if cur.Legal == 0 {
		if cur.Position.Empties() != 0 && (parent.MoveCount != 0 || depth == 1) {
			// Synthesize a pass: not two consecutive passes (the root has no real parent),
			// and squares remain.
			next := &stack.Frames[depth+1]
			next.Position = cur.Position.Pass()
			next.Alpha = -cur.Beta
			next.Beta = -cur.Alpha

			line := r.search(ctx, stack, depth+1)

			cur.Alpha = -stack.Frames[depth+1].Alpha
			cur.BestMove = stack.Frames[depth+1].BestMove
			return line
		}

		r.leafCount++
		cur.Alpha = cur.Position.FinalValue()
		cur.BestMove = board.Invalid
		return r.arena.NewLine()
	}

	cur.Alpha = -65 // out-of-range defeat sentinel
	best := pv.NoLine
	for i := 0; i < cur.MoveCount; i++ {
		m := stack.MoveBuf[cur.Head+i]

		next := &stack.Frames[depth+1]
		next.Position = cur.Position.MakeMove(m)
		next.Alpha = -cur.Beta
		next.Beta = -cur.Alpha

		childLine := r.search(ctx, stack, depth+1)
		val := -stack.Frames[depth+1].Alpha

		if val > cur.Alpha {
			if best != pv.NoLine {
				r.arena.DeleteLine(best)
			}
			best = childLine
			r.arena.AddMove(best, m)
			cur.Alpha = val
			cur.BestMove = m
			if cur.Alpha >= cur.Beta {
				break
			}
		} else {
			r.arena.DeleteLine(childLine)
		}
	}
	return best
}

func (r *search) log(ctx context.Context, stack *Stack, depth int) {
	parent := &stack.Frames[depth-1]
	cur := &stack.Frames[depth]

	isLeaf := cur.Legal == 0 && cur.Position.Pass().LegalMoves() == 0
	legalCount := cur.Legal.PopCount()
	adj := legalCount
	if cur.Legal == 0 && !isLeaf {
		adj++
	}

	names := make([]string, 0, cur.MoveCount)
	for _, m := range stack.moves(cur) {
		names = append(names, m.String())
	}

	r.sink.Write(logsink.Record{
		CallID:     r.callID,
		Hash:       cur.Hash,
		ParentHash: parent.Hash,
		Blacks:     uint64(cur.Position.Black),
		Whites:     uint64(cur.Position.White),
		Player:     cur.Position.ToMove,
		Aux: logsink.Aux{
			CallLevel:         depth,
			EmptyCount:        cur.Position.EmptyCount(),
			IsLeaf:            isLeaf,
			LegalMoveCount:    legalCount,
			LegalMoveCountAdj: adj,
			LegalMoveArray:    names,
		},
	})
}
