package search

import (
	"fmt"

	"github.com/seekerror/build"
	"github.com/seekerror/reversi/pkg/board"
	"github.com/seekerror/reversi/pkg/logsink"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Strategy selects which move-ordering rule an Explorer implements.
type Strategy uint8

const (
	// MobilityStrategy explores moves by positional cluster, then ascending opponent
	// mobility within a cluster. The zero value, so Options{} gets the stronger ordering.
	MobilityStrategy Strategy = iota
	// NaturalStrategy explores moves in ascending square order.
	NaturalStrategy
)

func (s Strategy) String() string {
	switch s {
	case NaturalStrategy:
		return "natural"
	case MobilityStrategy:
		return "mobility"
	default:
		return "?"
	}
}

func (s Strategy) explorer() Explorer {
	if s == MobilityStrategy {
		return MobilityOrder
	}
	return NaturalOrder
}

// Options configures a Solver. The zero value selects mobility ordering with no log sink
// and no node-count cap -- the strongest and most commonly used configuration.
type Options struct {
	// Strategy selects the move-ordering rule.
	Strategy Strategy
	// Sink receives one record per frame visited. Defaults to logsink.Noop{}.
	Sink logsink.Sink
	// NodeLimit, if set, aborts the search once the node counter would exceed it. Used
	// by benchmarking and fuzz harnesses; unset for a normal exact solve.
	NodeLimit lang.Optional[uint64]
	// Zobrist overrides the process-wide default Zobrist table, mainly for tests that
	// want a fixed, small table.
	Zobrist *board.ZobristTable
}

func (o Options) String() string {
	if limit, ok := o.NodeLimit.V(); ok {
		return fmt.Sprintf("{strategy=%v, nodeLimit=%v}", o.Strategy, limit)
	}
	return fmt.Sprintf("{strategy=%v, nodeLimit=none}", o.Strategy)
}

func (o Options) sink() logsink.Sink {
	if o.Sink == nil {
		return logsink.Noop{}
	}
	return o.Sink
}

func (o Options) zobrist() *board.ZobristTable {
	if o.Zobrist == nil {
		return board.DefaultZobristTable
	}
	return o.Zobrist
}
