// Package engine implements the search and evaluation core: iterative
// deepening negamax with aspiration windows and quiescence extension, a
// shared transposition table, move ordering, and time control. The board
// representation and move generator it drives live in package board.
package engine

import "github.com/halcyonchess/engine/internal/board"

// Search score constants, in centipawns from the side-to-move's perspective.
const (
	// Infinity bounds an aspiration window that has widened all the way out.
	Infinity = 1_000_000_000

	// MateScore is returned (minus distance-to-mate in ply) when one side is
	// checkmated. A stored or returned score within 1000 of this magnitude
	// encodes "mate in N", not a material evaluation.
	MateScore = 100_000_000

	// MaxPly bounds the iterative-deepening depth: the deepest iteration a
	// search will run when no smaller depth limit is given.
	MaxPly = 255

	// mateThreshold is the |score| above which a value is treated as a mate
	// distance rather than a centipawn evaluation.
	mateThreshold = MateScore - 1000
)

// NullMove is the distinguished "no move" sentinel, aliasing board.NoMove
// (from=to=a1). It marks both "no best move found yet" and "search returned
// nothing" at the root.
const NullMove = board.NoMove

// Bound classifies a transposition-table score relative to the true
// minimax value at the window in effect when it was stored.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundUpper
	BoundLower
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundUpper:
		return "upper"
	case BoundLower:
		return "lower"
	default:
		return "none"
	}
}

// correctMateScore adjusts a mate score for the ply distance at which it is
// being read. Applied only on transposition-table read: a mate stored N ply
// below the storing node is a shorter mate when read closer to the root.
// Identity on non-mate scores.
func correctMateScore(score, ply int) int {
	if score > mateThreshold {
		return score - ply
	}
	if score < -mateThreshold {
		return score + ply
	}
	return score
}
