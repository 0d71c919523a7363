package search

import "github.com/seekerror/reversi/pkg/board"

// priorityClusters is the fixed positional priority table used by mobility ordering:
// moves are grouped by cluster (central squares first, X-squares last) before being
// sorted within a cluster by opponent reply count. Ported from the reference solver's
// legal_moves_priority_mask.
var priorityClusters = [10]board.SquareSet{
	0x0000001818000000, // D4, E4, E5, D5
	0x8100000000000081, // A1, H1, H8, A8
	0x2400810000810024, // C1, F1, F8, C8, A3, H3, H6, A6
	0x0000240000240000, // C3, F3, F6, C6
	0x1800008181000018, // D1, E1, E8, D8, A4, H4, H5, A5
	0x0000182424180000, // D3, E3, E6, D6, C4, F4, F5, C5
	0x0018004242001800, // D2, E2, E7, D7, B4, G4, G5, B5
	0x0024420000422400, // C2, F2, F7, C7, B3, G3, G6, B6
	0x4281000000008142, // B1, G1, G8, B8, A2, H2, H7, A7
	0x0042000000004200, // B2, G2, G7, B7
}

// clusterOf[sq] is the index into priorityClusters that sq belongs to.
var clusterOf [64]int

func init() {
	for i, mask := range priorityClusters {
		for w := mask; w != 0; {
			var sq board.Square
			sq, w = w.PopLowest()
			clusterOf[sq] = i
		}
	}
}
