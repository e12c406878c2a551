package engine

// RepetitionTable tracks zobrist hashes seen along the current search path
// (seeded from the game's move history) so the search can detect a
// repeated position and score it as a draw without rescanning history at
// every node.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable returns an empty table, optionally seeded with the
// hashes of moves already played in the game before search started.
func NewRepetitionTable(history []uint64) *RepetitionTable {
	rt := &RepetitionTable{counts: make(map[uint64]int, len(history)+64)}
	for _, h := range history {
		rt.counts[h]++
	}
	return rt
}

// Contains reports whether hash has already been seen, either in the game
// history or earlier on the current search path.
func (rt *RepetitionTable) Contains(hash uint64) bool {
	return rt.counts[hash] > 0
}

// Push records hash as visited. Must be paired with a later Pop on every
// exit path out of the node, including early returns -- callers typically
// pair it with a deferred Pop so the table stays balanced regardless of how
// the node returns.
func (rt *RepetitionTable) Push(hash uint64) {
	rt.counts[hash]++
}

// Pop undoes the corresponding Push.
func (rt *RepetitionTable) Pop(hash uint64) {
	rt.counts[hash]--
	if rt.counts[hash] <= 0 {
		delete(rt.counts, hash)
	}
}
