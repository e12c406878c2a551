package engine

import "github.com/halcyonchess/engine/internal/board"

// Entry is one transposition-table slot. Score is stored relative to the
// node it was computed at; correctMateScore adjusts mate distances on read.
type Entry struct {
	Key      uint64
	Score    int
	Bound    Bound
	BestMove board.Move
	Depth    int
}

const defaultTableSizeMB = 64

const entrySize = 32 // approximate in-memory footprint of Entry, for sizing

// TranspositionTable is a fixed-capacity, hash-indexed cache of prior search
// results. It never ages or evicts by depth: a new store always overwrites
// whatever occupied its slot, including a deeper or more valuable entry.
// This keeps probe/store O(1) and the table free of bookkeeping, at the
// cost of occasional premature eviction under hash collisions.
type TranspositionTable struct {
	entries []Entry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to approximately sizeMB
// megabytes, rounded down to the nearest power of two number of entries so
// the index can be computed with a bitmask instead of a modulo.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		sizeMB = defaultTableSizeMB
	}
	wanted := (sizeMB * 1024 * 1024) / entrySize
	count := roundDownPowerOfTwo(wanted)
	if count == 0 {
		count = 1
	}
	return &TranspositionTable{
		entries: make([]Entry, count),
		mask:    uint64(count - 1),
	}
}

func roundDownPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash & tt.mask
}

// Get looks up hash and returns the stored entry and whether it was a hit.
// A hit additionally requires the stored key to match exactly: the index
// alone admits collisions between different positions.
func (tt *TranspositionTable) Get(hash uint64) (Entry, bool) {
	e := tt.entries[tt.index(hash)]
	if e.Bound == BoundNone || e.Key != hash {
		return Entry{}, false
	}
	return e, true
}

// Store writes an entry for hash, unconditionally replacing whatever
// previously occupied the slot.
func (tt *TranspositionTable) Store(hash uint64, score int, bound Bound, best board.Move, depth int) {
	tt.entries[tt.index(hash)] = Entry{
		Key:      hash,
		Score:    score,
		Bound:    bound,
		BestMove: best,
		Depth:    depth,
	}
}

// Clear resets every slot, discarding all stored results.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = Entry{}
	}
}

// Len returns the number of addressable slots.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

// HashFull estimates occupancy per mille, sampling the first 1000 slots as
// is conventional for UCI's "hashfull" info field.
func (tt *TranspositionTable) HashFull() int {
	sample := 1000
	if sample > len(tt.entries) {
		sample = len(tt.entries)
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if tt.entries[i].Bound != BoundNone {
			used++
		}
	}
	return used * 1000 / sample
}
