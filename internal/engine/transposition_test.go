package engine

import (
	"testing"

	"github.com/halcyonchess/engine/internal/board"
)

func TestTranspositionStoreGetRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	mv := board.NewMove(board.E2, board.E4)

	tt.Store(0xdeadbeef, 123, BoundExact, mv, 4)

	entry, hit := tt.Get(0xdeadbeef)
	if !hit {
		t.Fatal("expected a hit after storing")
	}
	if entry.Score != 123 || entry.Bound != BoundExact || entry.BestMove != mv || entry.Depth != 4 {
		t.Errorf("round trip mismatch: got %+v", entry)
	}
}

func TestTranspositionMissReturnsFalse(t *testing.T) {
	tt := NewTranspositionTable(1)

	if _, hit := tt.Get(0x1); hit {
		t.Error("expected a miss on an empty table")
	}
}

func TestTranspositionStoreOverwrites(t *testing.T) {
	tt := NewTranspositionTable(1)
	mv1 := board.NewMove(board.E2, board.E4)
	mv2 := board.NewMove(board.D2, board.D4)

	tt.Store(0x1, 10, BoundLower, mv1, 2)
	tt.Store(0x1, 20, BoundUpper, mv2, 3)

	entry, hit := tt.Get(0x1)
	if !hit {
		t.Fatal("expected a hit")
	}
	if entry.Score != 20 || entry.Bound != BoundUpper || entry.BestMove != mv2 || entry.Depth != 3 {
		t.Errorf("expected the second store to win, got %+v", entry)
	}
}

func TestTranspositionClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(0x1, 1, BoundExact, NullMove, 1)

	tt.Clear()

	if _, hit := tt.Get(0x1); hit {
		t.Error("expected no hit after Clear")
	}
}

func TestTranspositionKeyCollisionIsAMiss(t *testing.T) {
	// Two hashes that differ by the slot count alias the same slot.
	tt := NewTranspositionTable(1)
	if tt.Len() == 0 {
		t.Fatal("expected a non-empty table")
	}

	slotCount := uint64(tt.Len())
	hashA := uint64(1)
	hashB := hashA + slotCount // same slot index, different key

	tt.Store(hashA, 7, BoundExact, NullMove, 1)

	if _, hit := tt.Get(hashB); hit {
		t.Error("expected a stored entry for a different key at the same slot to miss")
	}
}

func TestNewTranspositionTableSizesToPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(1)
	n := tt.Len()
	if n&(n-1) != 0 {
		t.Errorf("expected entry count to be a power of two, got %d", n)
	}
}
