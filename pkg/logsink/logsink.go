// Package logsink is the solver's external logging collaborator: a per-node record sink
// the solver writes to but never formats. The solver only calls Write; opening and closing
// the underlying file, and any I/O error that results, is the caller's concern -- per the
// error-handling design, collaborator I/O failures are reported out-of-band and never
// affect the search result.
package logsink

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/seekerror/reversi/pkg/board"
)

// Header is the CSV header row every opened log file starts with.
var Header = []string{"SUB_RUN_ID", "CALL_ID", "HASH", "PARENT_HASH", "BLACKS", "WHITES", "PLAYER", "JSON_DOC"}

// Aux carries the per-node auxiliary fields the search records alongside the raw hashes
// and bitboards: call level, empty count, whether the node is a leaf, the legal-move
// count (raw and pass-adjusted), and the legal-move squares themselves.
type Aux struct {
	CallLevel         int      `json:"cl"`
	EmptyCount        int      `json:"ec"`
	IsLeaf            bool     `json:"il"`
	LegalMoveCount    int      `json:"lmc"`
	LegalMoveCountAdj int      `json:"lmca"`
	LegalMoveArray    []string `json:"lma"`
}

// Record is one node-visit log entry.
type Record struct {
	SubRunID   int
	CallID     uint64
	Hash       uint64
	ParentHash uint64
	Blacks     uint64
	Whites     uint64
	Player     board.Color
	Aux        Aux
}

// Sink is the interface the solver writes records to. Implementations must be safe for
// the solver's single-threaded, synchronous use (i.e. no implementation needs to be
// concurrency-safe, since a solve owns its sink exclusively for its duration).
type Sink interface {
	// Open prepares the sink to receive records, e.g. creating a file and writing a
	// header. A Sink that is never Open'd must still accept Write calls as a no-op.
	Open(path string) error
	// Write appends one record.
	Write(rec Record)
	// Close releases any resources Open acquired.
	Close() error
}

// Noop is a Sink that discards every record. It is the default when logging is disabled.
type Noop struct{}

func (Noop) Open(string) error { return nil }
func (Noop) Write(Record)      {}
func (Noop) Close() error      { return nil }

// CSV is a Sink that writes one CSV row per record, with the auxiliary fields encoded as
// a JSON fragment in the final column, matching the external CSV log format.
type CSV struct {
	f *os.File
	w *csv.Writer
}

// NewCSV returns a CSV sink. Call Open before Write.
func NewCSV() *CSV {
	return &CSV{}
}

func (s *CSV) Open(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s.f = f
	s.w = csv.NewWriter(f)
	s.w.Comma = ';'
	return s.w.Write(Header)
}

func (s *CSV) Write(rec Record) {
	if s.w == nil {
		return
	}
	doc, err := json.Marshal(rec.Aux)
	if err != nil {
		doc = []byte(`{}`)
	}

	player := 0
	if rec.Player == board.White {
		player = 1
	}

	_ = s.w.Write([]string{
		strconv.Itoa(rec.SubRunID),
		strconv.FormatUint(rec.CallID, 10),
		strconv.FormatInt(int64(rec.Hash), 10),
		strconv.FormatInt(int64(rec.ParentHash), 10),
		strconv.FormatInt(int64(rec.Blacks), 10),
		strconv.FormatInt(int64(rec.Whites), 10),
		strconv.Itoa(player),
		string(doc),
	})
}

func (s *CSV) Close() error {
	if s.w != nil {
		s.w.Flush()
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}
