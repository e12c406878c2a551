package engine

import "github.com/halcyonchess/engine/internal/board"

// Piece values in centipawns: pawn, knight, bishop, rook, queen, king.
var pieceValues = [6]int{100, 310, 325, 500, 900, 0}

// phaseWeight is the material contribution of each piece type toward the
// opening/middlegame <-> endgame phase blend.
var phaseWeight = [6]int{0, 1, 1, 2, 4, 0}

const maxPhaseWeight = 24 // 1*knights + 1*bishops + 2*rooks + 4*queens, clamped

// Piece-square tables, indexed rank-major starting at rank 1 (so index i
// addresses the same square as board.Square(i) directly) -- this is the
// "black" orientation. A white lookup mirrors the rank (rank = 7-rank)
// before indexing, which is what reading these tables from the opposite
// edge of the board amounts to.
//
// Bishop, rook and queen placement is carried by mobility in most engines;
// lacking a mobility term here, they get flat tables rather than an
// invented positional bonus.
var pstMiddlegame = [6][64]int{
	// Pawn
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		60, 60, 60, 60, 60, 60, 60, 60,
		20, 20, 20, 20, 20, 20, 20, 20,
		0, 0, 0, 25, 25, 0, 0, 0,
		0, 0, 0, 20, 20, 0, 0, 0,
		15, 0, 0, 0, 0, 0, 0, 15,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight
	{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	// Bishop
	{},
	// Rook
	{},
	// Queen
	{},
	// King
	{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 10, 0, 0, 0, 0, 10, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

// pstEndgame differs from the middlegame set only for pawns (advance is
// worth more once promotion is reachable) and kings (centralize instead of
// sheltering on the back rank). Minor/major pieces reuse the middlegame
// tables, so interpolation is a no-op for them.
var pstEndgame = [6][64]int{
	// Pawn
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		100, 100, 100, 100, 100, 100, 100, 100,
		60, 60, 60, 60, 60, 60, 60, 60,
		40, 40, 40, 40, 40, 40, 40, 40,
		25, 25, 25, 25, 25, 25, 25, 25,
		15, 15, 15, 15, 15, 15, 15, 15,
		10, 10, 10, 10, 10, 10, 10, 10,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	pstMiddlegame[1],
	pstMiddlegame[2],
	pstMiddlegame[3],
	pstMiddlegame[4],
	// King
	{
		-50, -40, -30, -20, -20, -30, -40, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -30, -30, -30, -30, -30, -30, -50,
	},
}

// gamePhase computes the [0,1] middlegame(0) <-> endgame(1) blend from
// remaining non-pawn, non-king material.
func gamePhase(pos *board.Position) float64 {
	weight := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		count := pos.Pieces[board.White][pt].PopCount() + pos.Pieces[board.Black][pt].PopCount()
		weight += phaseWeight[pt] * count
	}
	if weight > maxPhaseWeight {
		weight = maxPhaseWeight
	}
	return 1 - float64(weight)/float64(maxPhaseWeight)
}

// pstValue returns the interpolated piece-square value for a piece of type
// pt and color c standing on sq, at the given game phase.
func pstValue(pt board.PieceType, c board.Color, sq board.Square, phase float64) int {
	idx := int(sq)
	if c == board.White {
		idx = mirrorRank(idx)
	}
	mg := pstMiddlegame[pt][idx]
	eg := pstEndgame[pt][idx]
	return int(float64(mg)*(1-phase) + float64(eg)*phase)
}

// mirrorRank flips a square index's rank (rank = 7 - rank), used to read
// the stored tables from white's side of the board.
func mirrorRank(sq int) int {
	file := sq % 8
	rank := sq / 8
	return (7-rank)*8 + file
}
