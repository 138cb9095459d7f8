package search

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Mgrdich/TermChess/internal/engine"
	"github.com/Mgrdich/TermChess/internal/tt"
)

func TestSearchReturnsLegalMoveAtFixedDepth(t *testing.T) {
	board := engine.StartingPosition()
	s := NewSearcher(tt.New(1))

	result := s.Search(context.Background(), board, Limits{Depth: 3})

	found := false
	for _, m := range board.GenerateLegalMoves() {
		if m == result.BestMove {
			found = true
		}
	}
	if !found {
		t.Errorf("Search returned %v, which is not a legal move from the starting position", result.BestMove)
	}
	if result.Info.Depth != 3 {
		t.Errorf("Info.Depth = %d, want 3", result.Info.Depth)
	}
}

func TestSearchWritesIncreasingDepthInfoLines(t *testing.T) {
	board := engine.StartingPosition()
	var buf bytes.Buffer
	s := NewSearcher(tt.New(1))
	s.Out = &buf

	s.Search(context.Background(), board, Limits{Depth: 3})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d info lines, want 3 (one per completed depth)", len(lines))
	}
	for i, line := range lines {
		wantPrefix := "info depth " + string(rune('1'+i))
		if !strings.HasPrefix(line, wantPrefix) {
			t.Errorf("line %d = %q, want prefix %q", i, line, wantPrefix)
		}
	}
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Qb6-b7 is the "kiss of death" corner mate, the
	// queen supported by the king one square from the cornered king.
	board, err := engine.FromFEN("k7/8/1QK5/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	s := NewSearcher(tt.New(1))

	result := s.Search(context.Background(), board, Limits{Depth: 3})

	if result.Score < Mate-100 {
		t.Errorf("Score = %d, want a near-mate score (>= Mate-100)", result.Score)
	}
}

func TestAlphaBetaReturnsNegativeMateWhenCheckmated(t *testing.T) {
	board, err := engine.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	s := NewSearcher(tt.New(1))

	score := s.alphaBeta(context.Background(), board, 1, 1, -Mate*2, Mate*2, false)
	if score != -Mate+1 {
		t.Errorf("alphaBeta at a checkmated position (ply=1) = %d, want %d", score, -Mate+1)
	}
}

func TestAlphaBetaReturnsZeroOnStalemate(t *testing.T) {
	board, err := engine.FromFEN("k7/8/1Q6/8/8/8/8/6K1 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	s := NewSearcher(tt.New(1))

	score := s.alphaBeta(context.Background(), board, 1, 1, -Mate*2, Mate*2, false)
	if score != 0 {
		t.Errorf("alphaBeta at a stalemate = %d, want 0", score)
	}
}

func TestSearchRespectsMoveTimeLimit(t *testing.T) {
	board := engine.StartingPosition()
	s := NewSearcher(tt.New(1))

	start := time.Now()
	result := s.Search(context.Background(), board, Limits{MoveTimeMs: 50})
	elapsed := time.Since(start)

	if elapsed > 500*time.Millisecond {
		t.Errorf("Search with a 50ms move-time limit took %v, want well under 500ms", elapsed)
	}

	found := false
	for _, m := range board.GenerateLegalMoves() {
		if m == result.BestMove {
			found = true
		}
	}
	if !found {
		t.Error("Search under a tight time limit should still return a legal move")
	}
}

func TestSearchCancelsOnContextDone(t *testing.T) {
	board := engine.StartingPosition()
	s := NewSearcher(tt.New(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := s.Search(ctx, board, Limits{Depth: 10})
	var zero engine.Move
	if result.BestMove != zero {
		t.Errorf("Search on an already-canceled context should return a zero Result, got %v", result.BestMove)
	}
}

func TestSearchIsDeterministicGivenClearedTable(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	board1, err := engine.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	s1 := NewSearcher(tt.New(1))
	r1 := s1.Search(context.Background(), board1, Limits{Depth: 3})

	board2, err := engine.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	s2 := NewSearcher(tt.New(1))
	r2 := s2.Search(context.Background(), board2, Limits{Depth: 3})

	if r1.BestMove != r2.BestMove || r1.Score != r2.Score {
		t.Errorf("search is not deterministic: (%v,%d) vs (%v,%d)", r1.BestMove, r1.Score, r2.BestMove, r2.Score)
	}
}

func TestOrderMovesPlacesTTMoveFirst(t *testing.T) {
	board := engine.StartingPosition()
	s := NewSearcher(tt.New(1))
	moves := board.GenerateLegalMoves()

	ttMove, err := engine.ParseMove("g1f3")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	s.orderMoves(board, moves, ttMove, 0)

	if moves[0] != ttMove {
		t.Errorf("orderMoves: first move = %v, want TT move %v", moves[0], ttMove)
	}
}

func TestExtractPVStopsOnCycle(t *testing.T) {
	board := engine.StartingPosition()
	root := board.Hash
	s := NewSearcher(tt.New(1))

	// Knights out and back: the entry stored after f3g1 points at f6g8,
	// which would repeat the root position.
	var line []engine.Move
	for i, str := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		m, err := board.ParseAndValidateMove(str)
		if err != nil {
			t.Fatalf("ParseAndValidateMove(%q): %v", str, err)
		}
		s.TT.Store(board.Hash, 5-i, 0, m, tt.BoundExact)
		board.MakeMove(m)
		line = append(line, m)
	}
	for range line {
		board.UnmakeMove()
	}

	pv := s.extractPV(board, 10)
	if len(pv) != 3 {
		t.Errorf("extractPV length = %d, want 3 (stopping before the move that repeats the root hash)", len(pv))
	}
	if len(pv) > 0 && pv[0] != line[0] {
		t.Errorf("extractPV[0] = %v, want %v", pv[0], line[0])
	}
	if board.Hash != root {
		t.Error("extractPV must leave the board unmodified")
	}
}
