package engine

import (
	"testing"

	"github.com/halcyonchess/engine/internal/board"
)

func TestEvaluateDeterministic(t *testing.T) {
	pos := board.NewPosition()

	first := Evaluate(pos)
	second := Evaluate(pos)
	if first != second {
		t.Errorf("Evaluate not deterministic: %d != %d", first, second)
	}
}

func TestEvaluateStartingPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()

	score := Evaluate(pos)
	if score != 0 {
		t.Errorf("expected symmetric starting position to evaluate to 0, got %d", score)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a rook: black's a8 rook removed.
	pos, err := board.ParseFEN("1nbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kk - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	score := Evaluate(pos)
	if score <= 0 {
		t.Errorf("expected white to be ahead with an extra rook, got score %d", score)
	}
}

func TestEvaluateInCheckPenalty(t *testing.T) {
	// Black king on the e-file in check from a white rook on e2; moving the
	// king one file over takes it off the rook's file with nothing else
	// attacking it.
	checked, err := board.ParseFEN("4k3/8/8/8/8/8/4R3/3K4 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	notChecked, err := board.ParseFEN("3k4/8/8/8/8/8/4R3/3K4 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if !checked.InCheck() {
		t.Fatal("expected position to be in check")
	}
	if notChecked.InCheck() {
		t.Fatal("expected position to not be in check")
	}

	// The in-check penalty is taken off the white-perspective score before
	// the side-to-move flip, so with black to move it raises black's score
	// by exactly the penalty (the two king squares score the same here).
	if diff := Evaluate(checked) - Evaluate(notChecked); diff != -inCheckPenalty {
		t.Errorf("expected black-to-move in-check position to differ by %d, got %d", -inCheckPenalty, diff)
	}
}

func TestEvaluateDoubledAndIsolatedPawnsPenalized(t *testing.T) {
	healthy, err := board.ParseFEN("4k3/8/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// Same pawn count (8), but doubled on the a-file and isolated on the h-file.
	weak, err := board.ParseFEN("4k3/8/8/8/7P/P7/PPPPPP2/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if Evaluate(weak) >= Evaluate(healthy) {
		t.Errorf("expected doubled/isolated pawn structure to score worse than healthy structure")
	}
}
