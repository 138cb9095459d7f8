// Package tt implements the searcher's transposition table: a
// fixed-size, power-of-two-indexed, depth-preferred table of search
// results keyed by Zobrist hash.
package tt

import "github.com/Mgrdich/TermChess/internal/engine"

// Bound records what kind of score an Entry holds, the way a
// fail-hard alpha-beta searcher classifies a node's result.
type Bound uint8

const (
	// BoundNone marks an empty slot.
	BoundNone Bound = iota
	// BoundExact is a fully-searched (PV) score.
	BoundExact
	// BoundLower is a fail-high score: the true value is at least this.
	BoundLower
	// BoundUpper is a fail-low score: the true value is at most this.
	BoundUpper
)

// Entry is one transposition table slot.
type Entry struct {
	Hash     uint64
	Depth    int
	Score    int
	BestMove engine.Move
	Bound    Bound
}

// DefaultSizeMB is the table size used when a host does not configure
// one explicitly.
const DefaultSizeMB = 64

const entrySizeBytes = 40

// Table is the transposition table. The zero value is not usable; use
// New.
type Table struct {
	entries []Entry
	mask    uint64
}

// New creates a table sized to the largest power of two of Entry
// structs that fits within sizeMB megabytes.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = DefaultSizeMB
	}
	want := uint64(sizeMB) * 1024 * 1024 / entrySizeBytes
	size := uint64(1)
	for size*2 <= want {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    size - 1,
	}
}

func (t *Table) index(hash uint64) uint64 {
	return hash & t.mask
}

// Probe returns the entry stored for hash, if any.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	e := t.entries[t.index(hash)]
	if e.Hash != hash || e.Bound == BoundNone {
		return Entry{}, false
	}
	return e, true
}

// Store writes a new entry for hash if the slot is empty, holds a
// different hash, or holds an entry whose depth is no greater than the
// new one. An entry for a different hash is always replaced; for the
// same hash a deeper entry is kept and a shallower Store is ignored.
func (t *Table) Store(hash uint64, depth, score int, best engine.Move, bound Bound) {
	idx := t.index(hash)
	cur := &t.entries[idx]
	if cur.Bound == BoundNone || cur.Hash != hash || cur.Depth <= depth {
		*cur = Entry{
			Hash:     hash,
			Depth:    depth,
			Score:    score,
			BestMove: best,
			Bound:    bound,
		}
	}
}

// Clear resets every slot to empty.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
