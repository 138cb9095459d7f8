package engine

// castleRookSquares maps a king's destination square in a castle move to
// the rook's (from, to) squares.
func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	default:
		return NoSquare, NoSquare
	}
}

// MakeMove applies m to the board, pushing a history entry that
// UnmakeMove can use to undo it in O(1). MakeMove assumes m is legal
// (pseudo-legal and non-self-checking) for the side to move — that is
// the move generator's job (see GenerateLegalMoves); calling it with an
// illegal move corrupts the board's state without warning, matching how
// a single-threaded make/unmake board is normally used. Hosts parsing a
// move string from outside should go through Board.ParseAndValidateMove,
// which checks legality and returns IllegalMoveError instead. MakeMove
// itself never fails — the error return exists only so callers that
// validate upstream (ParseAndValidateMove) can chain the two calls
// without a type mismatch.
func (b *Board) MakeMove(m Move) error {
	z := zobristTable()
	from, to := m.From(), m.To()
	color := b.ActiveColor
	enemy := color.Opponent()

	capturedKind := Empty
	if !m.IsEnPassant() {
		capturedKind = b.PieceAt(to).Type()
	}

	hist := historyEntry{
		move:          m,
		captured:      capturedKind,
		castling:      b.CastlingRights,
		enPassant:     b.EnPassantSq,
		halfMoveClock: b.HalfMoveClock,
		hash:          b.Hash,
	}
	b.history = append(b.history, hist)

	if b.EnPassantSq != NoSquare {
		b.Hash ^= z.enPassant[b.EnPassantSq.File()]
	}
	b.EnPassantSq = NoSquare

	movingKind := b.PieceAt(from).Type()
	if movingKind == Pawn || capturedKind != Empty {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	if capturedKind != Empty && !m.IsEnPassant() {
		b.removePiece(enemy, capturedKind, to)
		if capturedKind == Rook {
			b.clearCastlingRightForRookCapture(enemy, to)
		}
	}

	b.clearSquare(color, movingKind, from)
	b.Hash ^= z.pieceKey(color, movingKind, from)

	switch m.flag() {
	case flagCastle:
		rookFrom, rookTo := castleRookSquares(to)
		b.clearSquare(color, Rook, rookFrom)
		b.Hash ^= z.pieceKey(color, Rook, rookFrom)
		b.setSquare(color, Rook, rookTo)
		b.Hash ^= z.pieceKey(color, Rook, rookTo)
		b.setSquare(color, King, to)
		b.Hash ^= z.pieceKey(color, King, to)

	case flagEnPassant:
		capSq := NewSquare(to.File(), from.Rank())
		b.removePiece(enemy, Pawn, capSq)
		b.setSquare(color, Pawn, to)
		b.Hash ^= z.pieceKey(color, Pawn, to)

	case flagPromotion:
		promo := m.Promotion()
		b.setSquare(color, promo, to)
		b.Hash ^= z.pieceKey(color, promo, to)

	default: // flagNormal
		b.setSquare(color, movingKind, to)
		b.Hash ^= z.pieceKey(color, movingKind, to)
		if movingKind == Pawn && distance(from, to) == 2 {
			epSq := NewSquare(from.File(), (from.Rank()+to.Rank())/2)
			b.EnPassantSq = epSq
			b.Hash ^= z.enPassant[epSq.File()]
		}
	}

	if movingKind == King {
		b.clearCastlingRights(castleKingsideBit(color) | castleQueensideBit(color))
	} else if movingKind == Rook {
		b.clearCastlingRightForRookMove(color, from)
	}

	b.ActiveColor = enemy
	b.Hash ^= z.side
	if b.ActiveColor == White {
		b.FullMoveNum++
	}
	return nil
}

// UnmakeMove pops the most recent history entry and restores the board
// to the state it had before that MakeMove call. The hash is restored
// directly from history rather than re-derived incrementally (spec.md
// §9 notes either discipline is acceptable; direct restore avoids a
// whole class of forward/backward XOR-asymmetry bugs).
func (b *Board) UnmakeMove() {
	n := len(b.history)
	hist := b.history[n-1]
	b.history = b.history[:n-1]

	m := hist.move
	from, to := m.From(), m.To()

	enemy := b.ActiveColor
	color := enemy.Opponent()
	if color == Black {
		b.FullMoveNum--
	}
	b.ActiveColor = color

	switch m.flag() {
	case flagCastle:
		rookFrom, rookTo := castleRookSquares(to)
		b.clearSquare(color, King, to)
		b.setSquare(color, King, from)
		b.clearSquare(color, Rook, rookTo)
		b.setSquare(color, Rook, rookFrom)

	case flagEnPassant:
		b.clearSquare(color, Pawn, to)
		b.setSquare(color, Pawn, from)
		capSq := NewSquare(to.File(), from.Rank())
		b.setSquare(enemy, Pawn, capSq)

	case flagPromotion:
		b.clearSquare(color, m.Promotion(), to)
		b.setSquare(color, Pawn, from)
		if hist.captured != Empty {
			b.setSquare(enemy, hist.captured, to)
		}

	default: // flagNormal
		movingKind := b.PieceAt(to).Type()
		b.clearSquare(color, movingKind, to)
		b.setSquare(color, movingKind, from)
		if hist.captured != Empty {
			b.setSquare(enemy, hist.captured, to)
		}
	}

	b.CastlingRights = hist.castling
	b.EnPassantSq = hist.enPassant
	b.HalfMoveClock = hist.halfMoveClock
	b.Hash = hist.hash
}

func castleKingsideBit(c Color) uint8 {
	if c == White {
		return castleWK
	}
	return castleBK
}

func castleQueensideBit(c Color) uint8 {
	if c == White {
		return castleWQ
	}
	return castleBQ
}

// clearCastlingRights clears every bit set in mask, XORing out each
// cleared bit's Zobrist key individually (mask may name 0, 1 or 2 bits).
func (b *Board) clearCastlingRights(mask ...uint8) {
	var m uint8
	for _, x := range mask {
		m |= x
	}
	z := zobristTable()
	for _, bit := range []uint8{castleWK, castleWQ, castleBK, castleBQ} {
		if m&bit != 0 && b.CastlingRights&bit != 0 {
			b.CastlingRights &^= bit
			b.Hash ^= z.castlingKey(bit)
		}
	}
}

// clearCastlingRightForRookMove clears the single castling bit that
// corresponds to a rook leaving its home square.
func (b *Board) clearCastlingRightForRookMove(color Color, from Square) {
	switch {
	case color == White && from == 0:
		b.clearCastlingRights(castleWQ)
	case color == White && from == 7:
		b.clearCastlingRights(castleWK)
	case color == Black && from == 56:
		b.clearCastlingRights(castleBQ)
	case color == Black && from == 63:
		b.clearCastlingRights(castleBK)
	}
}

// clearCastlingRightForRookCapture clears the castling bit for a rook
// captured on its home square, regardless of whose move captured it.
func (b *Board) clearCastlingRightForRookCapture(rookColor Color, sq Square) {
	b.clearCastlingRightForRookMove(rookColor, sq)
}
