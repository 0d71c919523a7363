package board

import "math/rand"

const numZobristKeys = 2 * int(NumSquares)

// ZobristTable holds 128 immutable random keys: index i (0..63) keys a black disc on
// square i, index i+64 keys a white disc on square i. It is safe for concurrent read-only
// use once built.
type ZobristTable struct {
	keys [numZobristKeys]uint64
}

// NewZobristTable builds a table from a deterministic seed, so hashes are reproducible
// across runs and processes.
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))
	t := &ZobristTable{}
	for i := range t.keys {
		t.keys[i] = r.Uint64()
	}
	return t
}

// DefaultZobristTable is the process-wide table used unless a search is configured with
// its own.
var DefaultZobristTable = NewZobristTable(0x5265766572736921)

func (t *ZobristTable) blackKey(sq Square) uint64 {
	return t.keys[sq]
}

func (t *ZobristTable) whiteKey(sq Square) uint64 {
	return t.keys[int(NumSquares)+int(sq)]
}

// Hash computes the position's Zobrist hash by full recomputation: the XOR-sum of keys
// for every occupied square, bitwise-inverted iff side-to-move is White.
func (t *ZobristTable) Hash(p Position) uint64 {
	var h uint64
	for w := p.Black; w != 0; {
		var sq Square
		sq, w = w.PopLowest()
		h ^= t.blackKey(sq)
	}
	for w := p.White; w != 0; {
		var sq Square
		sq, w = w.PopLowest()
		h ^= t.whiteKey(sq)
	}
	if p.ToMove == White {
		h = ^h
	}
	return h
}

// PassHash returns the hash after a pass from a position whose hash is h. Passing flips
// only the side-to-move, so the new hash is simply the bitwise complement — no table
// lookups required.
func PassHash(h uint64) uint64 {
	return ^h
}
