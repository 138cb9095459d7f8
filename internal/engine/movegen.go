package engine

// MoveList is a simple growable slice of moves.
type MoveList []Move

func (ml *MoveList) add(m Move) {
	*ml = append(*ml, m)
}

// GenerateMoves generates every pseudo-legal move for the side to move:
// legal in the sense of piece movement rules, but not yet checked for
// leaving the mover's own king in check (see GenerateLegalMoves).
func (b *Board) GenerateMoves() MoveList {
	var ml MoveList
	b.generatePawnMoves(&ml, false)
	b.generateLeaperMoves(&ml, Knight, knightAttacks[:])
	b.generateSliderMoves(&ml, Bishop)
	b.generateSliderMoves(&ml, Rook)
	b.generateSliderMoves(&ml, Queen)
	b.generateLeaperMoves(&ml, King, kingAttacks[:])
	b.generateCastles(&ml)
	return ml
}

// GenerateCaptures generates pseudo-legal captures and promotions only,
// for use by quiescence search.
func (b *Board) GenerateCaptures() MoveList {
	var ml MoveList
	b.generatePawnMoves(&ml, true)
	enemy := b.occupancy[b.ActiveColor.Opponent()]
	b.generateLeaperCaptures(&ml, Knight, knightAttacks[:], enemy)
	b.generateSliderCaptures(&ml, Bishop, enemy)
	b.generateSliderCaptures(&ml, Rook, enemy)
	b.generateSliderCaptures(&ml, Queen, enemy)
	b.generateLeaperCaptures(&ml, King, kingAttacks[:], enemy)
	return ml
}

// GenerateLegalMoves filters GenerateMoves down to moves that do not
// leave the mover's own king in check, by making and immediately
// unmaking each candidate.
func (b *Board) GenerateLegalMoves() MoveList {
	pseudo := b.GenerateMoves()
	legal := make(MoveList, 0, len(pseudo))
	color := b.ActiveColor
	for _, m := range pseudo {
		b.MakeMove(m)
		if !b.isColorInCheck(color) {
			legal = legal.append1(m)
		}
		b.UnmakeMove()
	}
	return legal
}

// LegalMoves is an alias for GenerateLegalMoves.
func (b *Board) LegalMoves() MoveList {
	return b.GenerateLegalMoves()
}

func (ml MoveList) append1(m Move) MoveList {
	return append(ml, m)
}

func (b *Board) generateLeaperMoves(ml *MoveList, kind PieceType, table []Bitboard) {
	color := b.ActiveColor
	own := b.occupancy[color]
	pieces := b.pieces[color][kind]
	for pieces != 0 {
		var from Square
		from, pieces = popLSB(pieces)
		targets := table[from] &^ own
		for targets != 0 {
			var to Square
			to, targets = popLSB(targets)
			ml.add(NewMove(from, to))
		}
	}
}

func (b *Board) generateLeaperCaptures(ml *MoveList, kind PieceType, table []Bitboard, enemy Bitboard) {
	color := b.ActiveColor
	pieces := b.pieces[color][kind]
	for pieces != 0 {
		var from Square
		from, pieces = popLSB(pieces)
		targets := table[from] & enemy
		for targets != 0 {
			var to Square
			to, targets = popLSB(targets)
			ml.add(NewMove(from, to))
		}
	}
}

func (b *Board) generateSliderMoves(ml *MoveList, kind PieceType) {
	color := b.ActiveColor
	own := b.occupancy[color]
	occ := b.Occupancy()
	pieces := b.pieces[color][kind]
	for pieces != 0 {
		var from Square
		from, pieces = popLSB(pieces)
		targets := slideAttacksFrom(kind, from, occ) &^ own
		for targets != 0 {
			var to Square
			to, targets = popLSB(targets)
			ml.add(NewMove(from, to))
		}
	}
}

func (b *Board) generateSliderCaptures(ml *MoveList, kind PieceType, enemy Bitboard) {
	color := b.ActiveColor
	occ := b.Occupancy()
	pieces := b.pieces[color][kind]
	for pieces != 0 {
		var from Square
		from, pieces = popLSB(pieces)
		targets := slideAttacksFrom(kind, from, occ) & enemy
		for targets != 0 {
			var to Square
			to, targets = popLSB(targets)
			ml.add(NewMove(from, to))
		}
	}
}

func slideAttacksFrom(kind PieceType, from Square, occ Bitboard) Bitboard {
	switch kind {
	case Bishop:
		return bishopAttacksFrom(from, occ)
	case Rook:
		return rookAttacksFrom(from, occ)
	default:
		return queenAttacksFrom(from, occ)
	}
}

// generatePawnMoves generates pawn pushes, double-pushes, captures,
// en-passant captures and promotions. If capturesOnly is true, quiet
// pushes (non-promoting) are skipped, matching how quiescence search
// only wants captures and promotions.
func (b *Board) generatePawnMoves(ml *MoveList, capturesOnly bool) {
	color := b.ActiveColor
	enemy := color.Opponent()
	occ := b.Occupancy()
	enemyOcc := b.occupancy[enemy]

	forward := 8
	startRank := 1
	promoRank := 7
	if color == Black {
		forward = -8
		startRank = 6
		promoRank = 0
	}

	pawns := b.pieces[color][Pawn]
	for pawns != 0 {
		var from Square
		from, pawns = popLSB(pawns)
		to := Square(int(from) + forward)

		if to.IsValid() && !occ.isSet(to) {
			if to.Rank() == promoRank {
				addPromotions(ml, from, to)
			} else {
				if !capturesOnly {
					ml.add(NewMove(from, to))
				}
				if from.Rank() == startRank {
					to2 := Square(int(from) + 2*forward)
					if to2.IsValid() && !occ.isSet(to2) && !capturesOnly {
						ml.add(NewMove(from, to2))
					}
				}
			}
		}

		captures := pawnAttacks[color][from] & enemyOcc
		for captures != 0 {
			var ct Square
			ct, captures = popLSB(captures)
			if ct.Rank() == promoRank {
				addPromotions(ml, from, ct)
			} else {
				ml.add(NewMove(from, ct))
			}
		}

		if b.EnPassantSq != NoSquare && pawnAttacks[color][from].isSet(b.EnPassantSq) {
			ml.add(newMove(from, b.EnPassantSq, Empty, flagEnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.add(NewPromotionMove(from, to, Queen))
	ml.add(NewPromotionMove(from, to, Rook))
	ml.add(NewPromotionMove(from, to, Bishop))
	ml.add(NewPromotionMove(from, to, Knight))
}

// generateCastles adds castling moves when rights are present, the
// squares between king and rook are empty, and the king does not start,
// pass through, or end up in check.
func (b *Board) generateCastles(ml *MoveList) {
	color := b.ActiveColor
	enemy := color.Opponent()
	occ := b.Occupancy()

	if color == White {
		if b.CastlingRights&castleWK != 0 &&
			!occ.isSet(5) && !occ.isSet(6) &&
			!b.IsSquareAttacked(4, enemy) && !b.IsSquareAttacked(5, enemy) && !b.IsSquareAttacked(6, enemy) {
			ml.add(newMove(4, 6, Empty, flagCastle))
		}
		if b.CastlingRights&castleWQ != 0 &&
			!occ.isSet(1) && !occ.isSet(2) && !occ.isSet(3) &&
			!b.IsSquareAttacked(4, enemy) && !b.IsSquareAttacked(3, enemy) && !b.IsSquareAttacked(2, enemy) {
			ml.add(newMove(4, 2, Empty, flagCastle))
		}
	} else {
		if b.CastlingRights&castleBK != 0 &&
			!occ.isSet(61) && !occ.isSet(62) &&
			!b.IsSquareAttacked(60, enemy) && !b.IsSquareAttacked(61, enemy) && !b.IsSquareAttacked(62, enemy) {
			ml.add(newMove(60, 62, Empty, flagCastle))
		}
		if b.CastlingRights&castleBQ != 0 &&
			!occ.isSet(57) && !occ.isSet(58) && !occ.isSet(59) &&
			!b.IsSquareAttacked(60, enemy) && !b.IsSquareAttacked(59, enemy) && !b.IsSquareAttacked(58, enemy) {
			ml.add(newMove(60, 58, Empty, flagCastle))
		}
	}
}

// IllegalMoveError is returned by ParseAndValidateMove when the parsed
// move does not match any currently legal move.
type IllegalMoveError struct {
	Input string
}

func (e *IllegalMoveError) Error() string {
	return "illegal move: " + e.Input
}

// ParseAndValidateMove parses s as coordinate notation and resolves it
// against the board's current legal moves, recovering the castle/
// en-passant flag the bare parse cannot know about. It returns
// IllegalMoveError if s does not name a legal move in this position.
func (b *Board) ParseAndValidateMove(s string) (Move, error) {
	parsed, err := ParseMove(s)
	if err != nil {
		return Move{}, err
	}
	for _, m := range b.GenerateLegalMoves() {
		if m.From() == parsed.From() && m.To() == parsed.To() && m.Promotion() == parsed.Promotion() {
			return m, nil
		}
	}
	return Move{}, &IllegalMoveError{Input: s}
}
