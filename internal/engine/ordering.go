package engine

import "github.com/halcyonchess/engine/internal/board"

// Move ordering scores; a higher score sorts earlier.
const (
	scorePV      = 20000
	scoreTT      = 10000
	scoreCapture = 1000
	scoreKiller  = 5000
)

// maxKillerPly bounds the killer-move table below MaxPly: killers beyond
// this depth are not worth tracking and are simply never recorded.
const maxKillerPly = 16

// mvvLva[victim][attacker] ranks captures by "most valuable victim, least
// valuable attacker": a bigger prize taken by a cheaper piece sorts first.
var mvvLva = [6][6]int{
	{15, 14, 13, 12, 11, 10}, // victim Pawn
	{25, 24, 23, 22, 21, 20}, // victim Knight
	{35, 34, 33, 32, 31, 30}, // victim Bishop
	{45, 44, 43, 42, 41, 40}, // victim Rook
	{55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0},       // victim King (never actually captured)
}

// MoveSorter orders a ply's move list so the search examines the moves most
// likely to cause a cutoff first: the principal variation move, then the
// transposition-table move, then killer moves, then captures by MVV-LVA.
type MoveSorter struct {
	killers [maxKillerPly]board.Move
}

// NewMoveSorter returns an empty sorter with no recorded killers.
func NewMoveSorter() *MoveSorter {
	return &MoveSorter{}
}

// AddKiller records mv as the killer move at ply, if ply is tracked.
func (s *MoveSorter) AddKiller(mv board.Move, ply int) {
	if ply < maxKillerPly {
		s.killers[ply] = mv
	}
}

// SortMoves reorders ml in place, highest-scoring move first.
func (s *MoveSorter) SortMoves(pos *board.Position, ml *board.MoveList, ttMove, pvMove board.Move, ply int) {
	n := ml.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = s.scoreMove(pos, ml.Get(i), ttMove, pvMove, ply)
	}

	// Selection sort: move counts per node are small and this keeps the
	// best move available immediately without allocating a sort.Interface.
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			ml.Swap(i, best)
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}

func (s *MoveSorter) scoreMove(pos *board.Position, mv, ttMove, pvMove board.Move, ply int) int {
	if mv == pvMove {
		return scorePV
	}
	if mv == ttMove {
		return scoreTT
	}
	if mv.IsCapture(pos) {
		victim := pos.PieceAt(mv.To())
		attacker := pos.PieceAt(mv.From())
		if mv.IsEnPassant() {
			return scoreCapture + mvvLva[board.Pawn][board.Pawn]
		}
		return scoreCapture + mvvLva[victim.Type()][attacker.Type()]
	}
	if ply < maxKillerPly && s.killers[ply] == mv {
		return scoreKiller
	}
	return 0
}
