package engine

import "fmt"

// moveFlag identifies the special-case handling a Move needs during
// make/unmake.
type moveFlag uint16

const (
	flagNormal moveFlag = iota
	flagCastle
	flagEnPassant
	flagPromotion
)

// Move packs a move into 16 bits: from (6 bits), to (6 bits), promotion
// index (2 bits, valid only when flag is flagPromotion) and flag (2 bits).
// The zero Move (a1a1, flagNormal) is never produced by the generator and
// is used by callers as a "no move" sentinel, the way the rest of this
// codebase already uses Move{}.
type Move struct {
	bits uint16
}

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveFlagShift  = 14
	moveSquareMask = 0x3F
	movePromoMask  = 0x3
	moveFlagMask   = 0x3
)

// promotionKinds maps the packed 2-bit promotion index to a PieceType,
// per spec.md's "0->knight, 1->bishop, 2->rook, 3->queen" encoding.
var promotionKinds = [4]PieceType{Knight, Bishop, Rook, Queen}

func promotionIndex(pt PieceType) uint16 {
	switch pt {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default: // Knight and anything else
		return 0
	}
}

// newMove builds a packed Move from its components.
func newMove(from, to Square, promotion PieceType, flag moveFlag) Move {
	v := uint16(from)<<moveFromShift | uint16(to)<<moveToShift | uint16(flag)<<moveFlagShift
	if flag == flagPromotion {
		v |= promotionIndex(promotion) << movePromoShift
	}
	return Move{bits: v}
}

// NewMove builds a normal (non-special) move. Use the board's move
// generator to obtain castle/en-passant/promotion moves with the
// correct flag instead of constructing them by hand.
func NewMove(from, to Square) Move {
	return newMove(from, to, Empty, flagNormal)
}

// NewPromotionMove builds a promotion move to the given piece kind.
func NewPromotionMove(from, to Square, promotion PieceType) Move {
	return newMove(from, to, promotion, flagPromotion)
}

// From returns the move's source square.
func (m Move) From() Square {
	return Square((m.bits >> moveFromShift) & moveSquareMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m.bits >> moveToShift) & moveSquareMask)
}

// flag returns the move's special-case flag.
func (m Move) flag() moveFlag {
	return moveFlag((m.bits >> moveFlagShift) & moveFlagMask)
}

// IsCastle reports whether the move is encoded as a castle.
func (m Move) IsCastle() bool {
	return m.flag() == flagCastle
}

// IsEnPassant reports whether the move is encoded as an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.flag() == flagEnPassant
}

// IsPromotion reports whether the move is encoded as a promotion.
func (m Move) IsPromotion() bool {
	return m.flag() == flagPromotion
}

// Promotion returns the promotion piece kind, or Empty if this move does
// not promote.
func (m Move) Promotion() PieceType {
	if !m.IsPromotion() {
		return Empty
	}
	return promotionKinds[(m.bits>>movePromoShift)&movePromoMask]
}

// String returns the move in coordinate notation (e.g. "e2e4", "a7a8q").
// Castling is the king's two-square move; en passant is the capturing
// pawn's from/to squares; neither carries a suffix.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// MoveParseError is returned by ParseMove for malformed move strings.
type MoveParseError struct {
	Input string
	Msg   string
}

func (e *MoveParseError) Error() string {
	return fmt.Sprintf("invalid move %q: %s", e.Input, e.Msg)
}

// ParseMove parses bare coordinate notation ("e2e4", "a7a8q") into a
// Move. It does not know about castling or en passant specially — the
// flag is filled in correctly by the caller matching this against
// GenerateLegalMoves, which is how the host always uses it (see
// Board.ParseAndValidateMove).
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &MoveParseError{s, "expected 4 or 5 characters"}
	}
	from, ok := ParseSquareName(s[0:2])
	if !ok {
		return Move{}, &MoveParseError{s, "bad from-square"}
	}
	to, ok := ParseSquareName(s[2:4])
	if !ok {
		return Move{}, &MoveParseError{s, "bad to-square"}
	}
	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Move{}, &MoveParseError{s, "unknown promotion letter"}
		}
		return NewPromotionMove(from, to, promo), nil
	}
	return NewMove(from, to), nil
}
