package engine

import "testing"

func TestRepetitionTableSeededFromHistory(t *testing.T) {
	rt := NewRepetitionTable([]uint64{1, 2, 2})

	if !rt.Contains(1) {
		t.Error("expected hash 1 from history to be present")
	}
	if !rt.Contains(2) {
		t.Error("expected hash 2 from history to be present")
	}
	if rt.Contains(3) {
		t.Error("expected hash 3 to not be present")
	}
}

func TestRepetitionPushPopBalanced(t *testing.T) {
	rt := NewRepetitionTable(nil)

	rt.Push(42)
	if !rt.Contains(42) {
		t.Fatal("expected hash to be present after Push")
	}

	rt.Pop(42)
	if rt.Contains(42) {
		t.Error("expected hash to be absent after matching Pop")
	}
}

func TestRepetitionPopDoesNotUnderflowBelowHistory(t *testing.T) {
	// Seeded once from history, pushed once during search: two total
	// occurrences. A single Pop (undoing the search-time push) must leave
	// the history occurrence intact.
	rt := NewRepetitionTable([]uint64{7})
	rt.Push(7)

	rt.Pop(7)

	if !rt.Contains(7) {
		t.Error("expected the history-seeded occurrence to remain after popping the search-time push")
	}
}

func TestRepetitionDetectsRepeatedHashOnPath(t *testing.T) {
	rt := NewRepetitionTable(nil)

	rt.Push(100)
	// Simulate descending to a child that returns to the same hash: the
	// child must see it as already on the path.
	if !rt.Contains(100) {
		t.Fatal("expected the first push to register as present for the child to detect")
	}
	rt.Pop(100)
	if rt.Contains(100) {
		t.Error("expected hash to be cleared once the path unwinds")
	}
}
