package engine

import (
	"testing"

	"github.com/halcyonchess/engine/internal/board"
)

func TestSortMovesPrioritizesPVThenTT(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateMoves(board.AllSquares)
	if moves.Len() < 2 {
		t.Fatal("starting position should have several legal moves")
	}

	pv := moves.Get(moves.Len() - 1)
	tt := moves.Get(moves.Len() - 2)

	sorter := NewMoveSorter()
	sorter.SortMoves(pos, moves, tt, pv, 1)

	if moves.Get(0) != pv {
		t.Errorf("expected PV move %s first, got %s", pv.String(), moves.Get(0).String())
	}
	if moves.Get(1) != tt {
		t.Errorf("expected TT move %s second, got %s", tt.String(), moves.Get(1).String())
	}
}

func TestSortMovesRanksCapturesByMVVLVA(t *testing.T) {
	// White pawn can capture either a black knight or a black queen.
	pos, err := board.ParseFEN("4k3/8/8/2n1q3/3P4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenerateMoves(board.AllSquares)
	sorter := NewMoveSorter()
	sorter.SortMoves(pos, moves, NullMove, NullMove, 1)

	first := moves.Get(0)
	if !first.IsCapture(pos) {
		t.Fatalf("expected a capture to sort first, got %s", first.String())
	}
	victim := pos.PieceAt(first.To())
	if victim.Type() != board.Queen {
		t.Errorf("expected the queen capture to be ordered before the knight capture, got victim %s", victim.Type())
	}
}

func TestAddKillerRespectsPlyBound(t *testing.T) {
	sorter := NewMoveSorter()
	mv := board.NewMove(board.E2, board.E4)

	sorter.AddKiller(mv, maxKillerPly-1)
	if sorter.killers[maxKillerPly-1] != mv {
		t.Errorf("expected killer recorded at the last tracked ply")
	}

	// Beyond the tracked range, AddKiller must not panic and must not
	// record anything (there is no slot to record it in).
	sorter.AddKiller(mv, maxKillerPly)
	sorter.AddKiller(mv, maxKillerPly+10)
}

func TestSortMovesKillerScoresAboveQuietMoves(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateMoves(board.AllSquares)

	var killer, other board.Move
	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		if mv.IsCapture(pos) {
			continue
		}
		if killer == NullMove {
			killer = mv
		} else if other == NullMove && mv != killer {
			other = mv
			break
		}
	}
	if killer == NullMove || other == NullMove {
		t.Fatal("expected at least two quiet moves in the starting position")
	}

	sorter := NewMoveSorter()
	sorter.AddKiller(killer, 1)
	sorter.SortMoves(pos, moves, NullMove, NullMove, 1)

	killerIdx, otherIdx := -1, -1
	for i := 0; i < moves.Len(); i++ {
		switch moves.Get(i) {
		case killer:
			killerIdx = i
		case other:
			otherIdx = i
		}
	}
	if killerIdx == -1 || otherIdx == -1 {
		t.Fatal("expected both moves to still be present after sorting")
	}
	if killerIdx >= otherIdx {
		t.Errorf("expected killer move (index %d) to sort before a non-killer quiet move (index %d)", killerIdx, otherIdx)
	}
}
