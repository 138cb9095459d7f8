package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FenParseError is returned by FromFEN for malformed FEN strings.
type FenParseError struct {
	Fen string
	Msg string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.Fen, e.Msg)
}

// FromFEN parses a FEN (Forsyth-Edwards Notation) string into a Board.
// FEN format: "<pieces> <active> <castling> <ep> <halfmove> <fullmove>".
// Trailing fields may be omitted: missing castling defaults to none,
// missing en-passant to none, missing halfmove to 0, missing fullmove to 1.
func FromFEN(fen string) (*Board, error) {
	if strings.TrimSpace(fen) == "" {
		return nil, &FenParseError{fen, "empty FEN string"}
	}
	parts := strings.Fields(fen)
	if len(parts) < 1 || len(parts) > 6 {
		return nil, &FenParseError{fen, fmt.Sprintf("expected 1-6 fields, got %d", len(parts))}
	}

	b := &Board{
		ActiveColor:    White,
		CastlingRights: 0,
		EnPassantSq:    NoSquare,
		HalfMoveClock:  0,
		FullMoveNum:    1,
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, &FenParseError{fen, fmt.Sprintf("piece placement must have 8 ranks, got %d", len(ranks))}
	}
	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		file := 0
		for _, ch := range ranks[rankIdx] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, &FenParseError{fen, fmt.Sprintf("too many pieces in rank %d", rank+1)}
			}
			color := White
			pc := ch
			if ch >= 'a' && ch <= 'z' {
				color = Black
				pc = ch - 'a' + 'A'
			}
			var kind PieceType
			switch pc {
			case 'P':
				kind = Pawn
			case 'N':
				kind = Knight
			case 'B':
				kind = Bishop
			case 'R':
				kind = Rook
			case 'Q':
				kind = Queen
			case 'K':
				kind = King
			default:
				return nil, &FenParseError{fen, fmt.Sprintf("invalid piece character %q", ch)}
			}
			b.addPiece(color, kind, NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, &FenParseError{fen, fmt.Sprintf("rank %d has %d squares, expected 8", rank+1, file)}
		}
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			b.ActiveColor = White
		case "b":
			b.ActiveColor = Black
		default:
			return nil, &FenParseError{fen, fmt.Sprintf("invalid side to move %q", parts[1])}
		}
	}

	if len(parts) >= 3 && parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= castleWK
			case 'Q':
				b.CastlingRights |= castleWQ
			case 'k':
				b.CastlingRights |= castleBK
			case 'q':
				b.CastlingRights |= castleBQ
			default:
				return nil, &FenParseError{fen, fmt.Sprintf("invalid castling character %q", ch)}
			}
		}
	}

	if len(parts) >= 4 && parts[3] != "-" {
		sq, ok := ParseSquareName(parts[3])
		if !ok {
			return nil, &FenParseError{fen, fmt.Sprintf("invalid en-passant square %q", parts[3])}
		}
		b.EnPassantSq = sq
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 || n > 255 {
			return nil, &FenParseError{fen, fmt.Sprintf("invalid half-move clock %q", parts[4])}
		}
		b.HalfMoveClock = uint8(n)
	}

	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 || n > 65535 {
			return nil, &FenParseError{fen, fmt.Sprintf("invalid full-move number %q", parts[5])}
		}
		b.FullMoveNum = uint16(n)
	}

	b.Hash = b.computeHash()
	return b, nil
}

// ToFEN renders the board back to FEN. It is the exact inverse of
// FromFEN for any board that FromFEN produced.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := p.Type().String()
			if p.Color() == Black {
				ch = strings.ToLower(ch)
			}
			sb.WriteString(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ActiveColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.CastlingRights&castleWK != 0 {
			sb.WriteByte('K')
		}
		if b.CastlingRights&castleWQ != 0 {
			sb.WriteByte('Q')
		}
		if b.CastlingRights&castleBK != 0 {
			sb.WriteByte('k')
		}
		if b.CastlingRights&castleBQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.EnPassantSq == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassantSq.String())
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfMoveClock, b.FullMoveNum)
	return sb.String()
}
