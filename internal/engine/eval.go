package engine

import "github.com/halcyonchess/engine/internal/board"

const (
	doublePawnPenalty   = -25
	isolatedPawnPenalty = -25
	inCheckPenalty      = -50
)

// Evaluate scores pos in centipawns from the side-to-move's perspective:
// positive favors the side to move, negative favors the opponent.
func Evaluate(pos *board.Position) int {
	phase := gamePhase(pos)

	white := evaluateSide(pos, board.White, phase)
	black := evaluateSide(pos, board.Black, phase)
	score := white - black

	// The in-check penalty is applied to the white-perspective score before
	// the side-to-move flip below, per the reference evaluator.
	if pos.InCheck() {
		score += inCheckPenalty
	}

	if pos.SideToMove == board.Black {
		score = -score
	}

	return score
}

// evaluateSide sums material, piece-square and pawn-structure terms for one
// color, positive when good for c. Evaluate subtracts black's total from
// white's and flips the result for black-to-move.
func evaluateSide(pos *board.Position, c board.Color, phase float64) int {
	score := 0

	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := pos.Pieces[c][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			score += pieceValues[pt]
			score += pstValue(pt, c, sq, phase)
		}
	}

	score += pawnStructure(pos, c)

	return score
}

// pawnStructure penalizes doubled pawns (more than one pawn on a file) and
// isolated pawns (no friendly pawn on an adjacent file).
func pawnStructure(pos *board.Position, c board.Color) int {
	pawns := pos.Pieces[c][board.Pawn]
	score := 0

	for file := 0; file < 8; file++ {
		onFile := pawns & board.FileMask[file]
		count := onFile.PopCount()
		if count == 0 {
			continue
		}
		if count > 1 {
			score += doublePawnPenalty * (count - 1)
		}

		var neighbors board.Bitboard
		if file > 0 {
			neighbors |= board.FileMask[file-1]
		}
		if file < 7 {
			neighbors |= board.FileMask[file+1]
		}
		if pawns&neighbors == 0 {
			score += isolatedPawnPenalty
		}
	}

	return score
}
