package engine

// GameStatus represents the current state of a chess game.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota

	// Checkmate indicates the player to move is in checkmate. The
	// opponent wins.
	Checkmate

	// Stalemate indicates the player to move has no legal moves but is
	// not in check. The game is a draw.
	Stalemate

	// DrawInsufficientMaterial indicates neither side has enough material
	// to deliver checkmate.
	DrawInsufficientMaterial

	// DrawFiftyMoveRule indicates a draw can be claimed under the
	// fifty-move rule (100 plies without a pawn move or capture).
	DrawFiftyMoveRule

	// DrawSeventyFiveMoveRule indicates an automatic draw under the
	// seventy-five-move rule (150 plies without a pawn move or capture).
	DrawSeventyFiveMoveRule

	// DrawThreefoldRepetition indicates a draw can be claimed due to a
	// threefold repetition of the position.
	DrawThreefoldRepetition

	// DrawFivefoldRepetition indicates an automatic draw due to a
	// fivefold repetition of the position.
	DrawFivefoldRepetition
)

// String returns a human-readable description of the status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// Status evaluates the current position and reports checkmate,
// stalemate, or one of the draw conditions, in that priority order,
// falling back to Ongoing.
func (b *Board) Status() GameStatus {
	legal := b.GenerateLegalMoves()
	if len(legal) == 0 {
		if b.InCheck() {
			return Checkmate
		}
		return Stalemate
	}

	if b.IsInsufficientMaterial() {
		return DrawInsufficientMaterial
	}

	if b.HalfMoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}

	rep := b.repetitionCount()
	if rep >= 5 {
		return DrawFivefoldRepetition
	}
	if rep >= 3 {
		return DrawThreefoldRepetition
	}

	if b.HalfMoveClock >= 100 {
		return DrawFiftyMoveRule
	}

	return Ongoing
}

// IsGameOver reports whether Status is anything other than Ongoing.
func (b *Board) IsGameOver() bool {
	return b.Status() != Ongoing
}

// CanClaimDraw reports whether the side to move may claim a draw under
// the fifty-move rule or threefold repetition (the two claimable, as
// opposed to automatic, draw conditions).
func (b *Board) CanClaimDraw() bool {
	switch b.Status() {
	case DrawFiftyMoveRule, DrawThreefoldRepetition:
		return true
	default:
		return false
	}
}

// Winner returns the winning color and true if the position is
// checkmate; otherwise (_, false).
func (b *Board) Winner() (Color, bool) {
	if b.Status() == Checkmate {
		return b.ActiveColor.Opponent(), true
	}
	return White, false
}

// repetitionCount returns how many times the current hash has occurred
// across the move history, including the current position.
func (b *Board) repetitionCount() int {
	count := 1
	for _, h := range b.history {
		if h.hash == b.Hash {
			count++
		}
	}
	return count
}

// IsInsufficientMaterial reports whether neither side has enough
// material remaining to force checkmate: K v K, K+N v K, K+B v K, or
// K+B v K+B with same-colored bishops.
func (b *Board) IsInsufficientMaterial() bool {
	if b.pieces[White][Pawn] != 0 || b.pieces[Black][Pawn] != 0 {
		return false
	}
	if b.pieces[White][Rook] != 0 || b.pieces[Black][Rook] != 0 {
		return false
	}
	if b.pieces[White][Queen] != 0 || b.pieces[Black][Queen] != 0 {
		return false
	}

	whiteMinor := popcount(b.pieces[White][Knight]) + popcount(b.pieces[White][Bishop])
	blackMinor := popcount(b.pieces[Black][Knight]) + popcount(b.pieces[Black][Bishop])

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 0 && b.pieces[White][Knight] == 0 {
		return true // lone bishop
	}
	if blackMinor == 1 && whiteMinor == 0 && b.pieces[Black][Knight] == 0 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 0 {
		return true // lone knight
	}
	if blackMinor == 1 && whiteMinor == 0 {
		return true
	}
	if whiteMinor == 1 && blackMinor == 1 &&
		b.pieces[White][Bishop] != 0 && b.pieces[Black][Bishop] != 0 {
		wSq := lsb(b.pieces[White][Bishop])
		bSq := lsb(b.pieces[Black][Bishop])
		return squareColor(wSq) == squareColor(bSq)
	}

	return false
}

// squareColor returns 0 for a light square, 1 for a dark square.
func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
