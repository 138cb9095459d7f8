// Package search implements the negamax alpha-beta searcher: iterative
// deepening over a Board with transposition-table probing, quiescence
// search over captures, and MVV-LVA/killer/history move ordering.
package search

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/tt"
)

const (
	// Mate is the score magnitude assigned to a forced mate, adjusted by
	// ply so shallower mates sort ahead of deeper ones.
	Mate = 1_000_000
	// MaxDepth is the compile-time iterative-deepening ceiling.
	MaxDepth = 64
	// MaxPly bounds recursion depth within a single search call.
	MaxPly = 128
)

// Limits caps a search in one or more independent ways; a zero value in
// a field means that cap is not applied.
type Limits struct {
	Depth      int
	MoveTimeMs int
	Nodes      int64
}

// Info is the iterative-deepening progress snapshot emitted after every
// completed depth, mirroring the searcher's "info depth ... pv ..." line.
type Info struct {
	Depth     int
	SelDepth  int
	ScoreCP   int
	Nodes     int64
	ElapsedMs int64
	PV        []engine.Move
}

// Result is what Search returns: the best move found and the stats from
// the deepest completed iteration. An iteration cut short by
// cancellation or a limit is discarded; if no iteration completed,
// Result is the zero value.
type Result struct {
	BestMove engine.Move
	Score    int
	Info     Info
}

// Searcher owns one search's mutable state: node/time bookkeeping, the
// killer-move table, and the history heuristic table. It is not safe
// for concurrent use — the core is strictly single-threaded (see
// internal/engine) and a Searcher is owned by exactly one caller at a
// time, the same way Board and the transposition table are.
type Searcher struct {
	TT  *tt.Table
	Out io.Writer

	stop      bool
	nodes     int64
	seldepth  int
	deadline  time.Time
	hasTime   bool
	killers   [MaxPly][2]engine.Move
	history   [2][64][64]int
}

// NewSearcher creates a Searcher backed by table. Out, if nil, discards
// info lines.
func NewSearcher(table *tt.Table) *Searcher {
	return &Searcher{TT: table}
}

// Stop requests cooperative early termination; the searcher checks this
// flag at node entry, the way spec.md's cancellation model requires.
func (s *Searcher) Stop() {
	s.stop = true
}

// Search runs iterative deepening on board from depth 1 up to the
// smaller of limits.Depth (if set) and MaxDepth, honoring limits.Nodes
// and limits.MoveTimeMs, and returns the best move found by the deepest
// completed iteration. If ctx is canceled or a limit is hit
// mid-iteration, that iteration's partial result is dropped and the
// previous completed iteration's result is returned.
func (s *Searcher) Search(ctx context.Context, board *engine.Board, limits Limits) Result {
	s.stop = false
	s.nodes = 0
	s.seldepth = 0
	s.killers = [MaxPly][2]engine.Move{}
	s.history = [2][64][64]int{}

	maxDepth := MaxDepth
	if limits.Depth > 0 && limits.Depth < maxDepth {
		maxDepth = limits.Depth
	}

	s.hasTime = limits.MoveTimeMs > 0
	start := time.Now()
	if s.hasTime {
		s.deadline = start.Add(time.Duration(limits.MoveTimeMs) * time.Millisecond)
	}

	var result Result
	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			return result
		default:
		}
		if s.timeUp() || (limits.Nodes > 0 && s.nodes >= limits.Nodes) {
			return result
		}

		score, best := s.searchRoot(ctx, board, depth, limits)
		if s.stop {
			break
		}

		pv := s.extractPV(board, depth)
		elapsed := time.Since(start).Milliseconds()
		info := Info{
			Depth:     depth,
			SelDepth:  s.seldepth,
			ScoreCP:   score,
			Nodes:     s.nodes,
			ElapsedMs: elapsed,
			PV:        pv,
		}
		result = Result{BestMove: best, Score: score, Info: info}
		s.writeInfo(info)

		if abs(score) > Mate-100 {
			break
		}
	}
	return result
}

func (s *Searcher) writeInfo(info Info) {
	if s.Out == nil {
		return
	}
	nps := int64(0)
	if info.ElapsedMs > 0 {
		nps = info.Nodes * 1000 / info.ElapsedMs
	}
	fmt.Fprintf(s.Out, "info depth %d seldepth %d score cp %d nodes %d time %d nps %d pv",
		info.Depth, info.SelDepth, info.ScoreCP, info.Nodes, info.ElapsedMs, nps)
	for _, m := range info.PV {
		fmt.Fprintf(s.Out, " %s", m.String())
	}
	fmt.Fprintln(s.Out)
}

func (s *Searcher) timeUp() bool {
	return s.hasTime && time.Now().After(s.deadline)
}

func (s *Searcher) searchRoot(ctx context.Context, board *engine.Board, depth int, limits Limits) (int, engine.Move) {
	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		if board.InCheck() {
			return -Mate, engine.Move{}
		}
		return 0, engine.Move{}
	}

	var ttMove engine.Move
	if entry, ok := s.TT.Probe(board.Hash); ok {
		ttMove = entry.BestMove
	}
	s.orderMoves(board, moves, ttMove, 0)

	alpha, beta := -Mate*2, Mate*2
	best := moves[0]
	bestScore := -Mate * 2

	for _, m := range moves {
		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			s.stop = true
			break
		}
		if s.timeUp() {
			s.stop = true
			break
		}
		board.MakeMove(m)
		score := -s.alphaBeta(ctx, board, depth-1, 1, -beta, -alpha, true)
		board.UnmakeMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if !s.stop {
		s.TT.Store(board.Hash, depth, bestScore, best, tt.BoundExact)
	}
	return bestScore, best
}

// alphaBeta is negamax with alpha-beta pruning, TT probing/storing,
// and quiescence at the leaves, per spec.md §4.7.
func (s *Searcher) alphaBeta(ctx context.Context, board *engine.Board, depth, ply int, alpha, beta int, pvNode bool) int {
	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}

	if ply > 0 && (s.stop || ply >= MaxPly) {
		return engine.Evaluate(board)
	}
	if s.nodes&2047 == 0 {
		select {
		case <-ctx.Done():
			s.stop = true
		default:
		}
		if s.timeUp() {
			s.stop = true
		}
	}
	if s.stop {
		return engine.Evaluate(board)
	}

	if board.HalfMoveClock >= 100 {
		return 0
	}

	var ttMove engine.Move
	if entry, ok := s.TT.Probe(board.Hash); ok {
		ttMove = entry.BestMove
		if entry.Depth >= depth && !pvNode {
			switch entry.Bound {
			case tt.BoundExact:
				return entry.Score
			case tt.BoundLower:
				if entry.Score >= beta {
					return entry.Score
				}
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case tt.BoundUpper:
				if entry.Score <= alpha {
					return entry.Score
				}
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score
			}
		}
	}

	if depth == 0 {
		return s.quiescence(board, ply, alpha, beta)
	}

	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		if board.InCheck() {
			return -Mate + ply
		}
		return 0
	}

	s.orderMoves(board, moves, ttMove, ply)

	side := int(board.ActiveColor)
	bestScore := -Mate * 2
	var bestMove engine.Move
	bound := tt.BoundUpper

	for _, m := range moves {
		quiet := board.PieceAt(m.To()).IsEmpty() && !m.IsEnPassant()

		board.MakeMove(m)
		score := -s.alphaBeta(ctx, board, depth-1, ply+1, -beta, -alpha, pvNode && m == moves[0])
		board.UnmakeMove()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
			bound = tt.BoundExact
		}
		if alpha >= beta {
			bound = tt.BoundLower
			if quiet {
				s.updateKillers(ply, m)
				s.history[side][m.From()][m.To()] += depth * depth
			}
			break
		}
	}

	s.TT.Store(board.Hash, depth, bestScore, bestMove, bound)
	return bestScore
}

// quiescence extends search along capture sequences to avoid a
// misleading static score at a noisy leaf.
func (s *Searcher) quiescence(board *engine.Board, ply, alpha, beta int) int {
	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}

	standPat := engine.Evaluate(board)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := board.GenerateCaptures()
	legal := make(engine.MoveList, 0, len(captures))
	color := board.ActiveColor
	for _, m := range captures {
		board.MakeMove(m)
		if !board.IsSquareAttacked(board.KingSquare(color), color.Opponent()) {
			legal = append(legal, m)
		}
		board.UnmakeMove()
	}
	s.orderMoves(board, legal, engine.Move{}, ply)

	for _, m := range legal {
		board.MakeMove(m)
		score := -s.quiescence(board, ply+1, -beta, -alpha)
		board.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func (s *Searcher) updateKillers(ply int, m engine.Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// orderMoves sorts moves in place by descending move-ordering score per
// spec.md §4.7.1: TT move, then MVV-LVA captures, then promotions, then
// killers, then the history heuristic.
func (s *Searcher) orderMoves(board *engine.Board, moves engine.MoveList, ttMove engine.Move, ply int) {
	side := int(board.ActiveColor)
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = s.moveScore(board, m, ttMove, ply, side)
	}
	sort.Slice(moves, func(i, j int) bool {
		return scores[i] > scores[j]
	})
}

func (s *Searcher) moveScore(board *engine.Board, m, ttMove engine.Move, ply, side int) int {
	if m == ttMove {
		return 10_000_000
	}
	victim := board.PieceAt(m.To())
	if !victim.IsEmpty() || m.IsEnPassant() {
		attacker := board.PieceAt(m.From()).Type()
		victimKind := victim.Type()
		if m.IsEnPassant() {
			victimKind = engine.Pawn
		}
		return 1_000_000 + 100*int(victimKind) - int(attacker)
	}
	if m.IsPromotion() {
		return 900_000 + 100*int(m.Promotion())
	}
	if ply < MaxPly {
		if s.killers[ply][0] == m {
			return 800_000
		}
		if s.killers[ply][1] == m {
			return 700_000
		}
	}
	return s.history[side][m.From()][m.To()]
}

// extractPV walks the transposition table from the root, the way
// spec.md §4.7.2 describes: follow each position's best move as long as
// it is legal here and the resulting hash has not been visited before,
// stopping on miss, missing move, a cycle, or after maxDepth steps.
func (s *Searcher) extractPV(board *engine.Board, maxDepth int) []engine.Move {
	var pv []engine.Move
	seen := map[uint64]bool{board.Hash: true}
	pushed := 0

	for i := 0; i < maxDepth; i++ {
		entry, ok := s.TT.Probe(board.Hash)
		if !ok {
			break
		}
		var zero engine.Move
		if entry.BestMove == zero {
			break
		}
		legal := false
		for _, m := range board.GenerateLegalMoves() {
			if m == entry.BestMove {
				legal = true
				break
			}
		}
		if !legal {
			break
		}
		board.MakeMove(entry.BestMove)
		pushed++
		if seen[board.Hash] {
			board.UnmakeMove()
			pushed--
			break
		}
		seen[board.Hash] = true
		pv = append(pv, entry.BestMove)
	}

	for i := 0; i < pushed; i++ {
		board.UnmakeMove()
	}
	return pv
}

func abs(x int) int {
	return int(math.Abs(float64(x)))
}
