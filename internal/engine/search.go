package engine

import (
	"time"

	"github.com/halcyonchess/engine/internal/board"
)

// aspirationWindows is the widening schedule applied around the previous
// iteration's score: a tight window first (fast, but may fail high or low),
// then progressively wider re-searches, finishing at a window that cannot
// fail. At most len(aspirationWindows)-1 re-searches are attempted per
// depth; the final window always closes the loop.
var aspirationWindows = [3]int{15, 350, Infinity}

// aspirationMinDepth is the shallowest depth at which a narrow aspiration
// window is tried at all. Below it the search always runs full-width: the
// score at low depth is too unstable for a narrow window to pay off.
const aspirationMinDepth = 6

// SearchInfo summarizes one completed (or time-cancelled) search.
type SearchInfo struct {
	Depth    int
	SelDepth int
	Time     time.Duration
	Nodes    uint64
	NPS      uint64
	Score    int
	BestMove board.Move
	PV       []board.Move
}

// Searcher runs iterative-deepening negamax search against a single
// Position, sharing a transposition table and move sorter across calls so
// their contents persist between searches (e.g. across a game).
type Searcher struct {
	pos    *board.Position
	tt     *TranspositionTable
	sorter *MoveSorter
	rep    *RepetitionTable
	tc     *TimeControl

	nodes    uint64
	seldepth int

	// pv is the principal variation accepted at the end of the previous
	// completed iteration. It is not forced on the next iteration's search;
	// it only biases move ordering at each ply via pvMoveAt.
	pv []board.Move

	evaluation int
	bestMove   board.Move
}

// NewSearcher returns a Searcher over pos, sharing tt and seeding its
// repetition table from the game's move history so far (oldest first).
func NewSearcher(pos *board.Position, tt *TranspositionTable, history []uint64) *Searcher {
	return &Searcher{
		pos:    pos,
		tt:     tt,
		sorter: NewMoveSorter(),
		rep:    NewRepetitionTable(history),
	}
}

// pvMoveAt returns the move ordering hint carried over from the previous
// iteration's principal variation at the given ply, or NullMove if that
// iteration's PV did not reach this far.
func (s *Searcher) pvMoveAt(ply int) board.Move {
	idx := ply - 1
	if idx >= 0 && idx < len(s.pv) {
		return s.pv[idx]
	}
	return NullMove
}

// Search runs iterative deepening up to maxDepth plies (or until tc cancels
// it), returning the deepest completed iteration's result.
func (s *Searcher) Search(tc *TimeControl, maxDepth int) SearchInfo {
	s.tc = tc
	s.tc.Start()
	s.nodes = 0
	s.seldepth = 0
	s.bestMove = NullMove
	s.pv = nil

	if maxDepth <= 0 || maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	evaluation := 0
	depthSearched := 0
	var finalPV []board.Move

	for depth := 1; depth <= maxDepth; depth++ {
		tries := 1

		var alpha, beta int
		if depth >= aspirationMinDepth {
			alpha = evaluation - aspirationWindows[0]
			beta = evaluation + aspirationWindows[0]
		} else {
			alpha, beta = -Infinity, Infinity
		}

		var iterEval int
		var iterBest board.Move
		var iterPV []board.Move

		for {
			iterPV = nil
			iterEval, iterBest = s.searchRoot(alpha, beta, depth, &iterPV)
			evaluation = iterEval

			if evaluation <= alpha && tries < len(aspirationWindows) {
				alpha = evaluation - aspirationWindows[tries]
				tries++
				continue
			}
			if evaluation >= beta && tries < len(aspirationWindows) {
				beta = evaluation + aspirationWindows[tries]
				tries++
				continue
			}

			if iterBest != NullMove {
				finalPV = iterPV
				s.evaluation = iterEval
				s.bestMove = iterBest
				s.pv = iterPV
				depthSearched = depth
			}
			break
		}

		if s.tc.ShouldCancel() {
			break
		}
	}

	elapsed := s.tc.Elapsed()
	nps := uint64(0)
	if ms := elapsed.Milliseconds(); ms > 0 {
		nps = s.nodes * 1000 / uint64(ms)
	}

	return SearchInfo{
		Depth:    depthSearched,
		SelDepth: s.seldepth,
		Time:     elapsed,
		Nodes:    s.nodes,
		NPS:      nps,
		Score:    s.evaluation,
		BestMove: s.bestMove,
		PV:       finalPV,
	}
}

// searchRoot is the root (ply 0) negamax frame: unlike interior search nodes it
// never prunes on a beta cutoff (there is no parent node waiting on one),
// so every legal move is examined and the best is kept.
func (s *Searcher) searchRoot(alpha, beta, depth int, pv *[]board.Move) (int, board.Move) {
	hash := s.pos.Hash
	inserted := !s.rep.Contains(hash)
	if inserted {
		s.rep.Push(hash)
		defer s.rep.Pop(hash)
	}

	var ttMove board.Move = NullMove
	if entry, hit := s.tt.Get(hash); hit {
		ttMove = entry.BestMove
	}

	moves := s.pos.GenerateMoves(board.AllSquares)
	s.sorter.SortMoves(s.pos, moves, ttMove, s.pvMoveAt(1), 1)

	max := -Infinity
	best := NullMove
	legal := moves.Len() > 0

	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		undo := s.pos.MakeMove(mv)
		var childPV []board.Move
		score := -s.search(-beta, -alpha, depth-1, 1, &childPV)
		s.pos.UnmakeMove(mv, undo)

		if s.tc.ShouldCancel() {
			if best != NullMove {
				break
			}
			return 0, NullMove
		}

		if score > max {
			max = score
			best = mv

			if score > alpha {
				alpha = score
				*pv = append([]board.Move{mv}, childPV...)
			}
		}
	}

	if !legal {
		if s.pos.InCheck() {
			return -MateScore, NullMove
		}
		return 0, NullMove
	}

	return max, best
}

// search is the interior negamax frame: alpha-beta with a transposition
// table probe/store, PV collection, repetition detection and a check
// extension. depth is decremented per ply; at depth 0 it hands off to
// quiesce.
func (s *Searcher) search(alpha, beta, depth, ply int, pv *[]board.Move) int {
	if s.tc.ShouldCancel() {
		return 0
	}

	if s.pos.InCheck() {
		depth++
	}

	if depth <= 0 {
		return s.quiesce(alpha, beta, ply)
	}

	s.nodes++

	hash := s.pos.Hash
	if s.rep.Contains(hash) {
		return 0
	}
	s.rep.Push(hash)
	defer s.rep.Pop(hash)

	originalAlpha := alpha
	max := -Infinity
	var bestMove board.Move = NullMove
	haveBest := false

	var ttMove board.Move = NullMove
	if entry, hit := s.tt.Get(hash); hit {
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			corrected := correctMateScore(entry.Score, ply)
			switch entry.Bound {
			case BoundExact:
				return corrected
			case BoundUpper:
				if corrected <= alpha {
					return corrected
				}
				// BoundLower is deliberately not used as a cutoff here: a
				// stored fail-high only proves a lower bound at the
				// window it was stored with, not at this one.
			}
		}
	}

	moves := s.pos.GenerateMoves(board.AllSquares)
	s.sorter.SortMoves(s.pos, moves, ttMove, s.pvMoveAt(ply), ply)

	legal := moves.Len() > 0

	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		undo := s.pos.MakeMove(mv)
		var childPV []board.Move
		score := -s.search(-beta, -alpha, depth-1, ply+1, &childPV)
		s.pos.UnmakeMove(mv, undo)

		if score > max {
			max = score
			bestMove = mv
			haveBest = true

			if score > alpha {
				alpha = score
				*pv = append([]board.Move{mv}, childPV...)
			}
		}

		if score >= beta {
			s.tt.Store(hash, score, BoundLower, mv, depth)
			s.sorter.AddKiller(mv, ply)
			return beta
		}
	}

	if !legal {
		if s.pos.InCheck() {
			return -MateScore + ply
		}
		return 0
	}

	if haveBest {
		if alpha <= originalAlpha {
			s.tt.Store(hash, max, BoundUpper, bestMove, depth)
		} else if alpha >= beta {
			s.tt.Store(hash, max, BoundExact, bestMove, depth)
		}
		// alpha strictly improved without reaching beta: an exact PV score,
		// but it is not recorded. Matches the reference engine's behavior.
	}

	return max
}

// quiesce extends the search along capture sequences only, using
// targetMask to restrict move generation to the opponent's occupied
// squares. On a stand-pat fail-high it returns the raw evaluation rather
// than beta, so the caller sees the true static score instead of a
// clamped bound.
func (s *Searcher) quiesce(alpha, beta, ply int) int {
	eval := Evaluate(s.pos)
	if eval >= beta {
		return eval
	}
	if eval > alpha {
		alpha = eval
	}

	if ply > s.seldepth {
		s.seldepth = ply
	}
	s.nodes++

	opponent := s.pos.SideToMove.Other()
	moves := s.pos.GenerateMoves(s.pos.Occupied[opponent])
	s.sorter.SortMoves(s.pos, moves, NullMove, NullMove, ply)

	for i := 0; i < moves.Len(); i++ {
		mv := moves.Get(i)
		undo := s.pos.MakeMove(mv)
		score := -s.quiesce(-beta, -alpha, ply+1)
		s.pos.UnmakeMove(mv, undo)

		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
