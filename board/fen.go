package board

import (
	"errors"
	"strconv"
	"strings"
)

// StartFEN describes the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN parse errors. Construction rejects the whole string; a caller never
// receives a partially built board.
var (
	ErrFENBadState        = errors.New("fen: bad character in the placement field")
	ErrFENBadTeam         = errors.New("fen: active team must be 'w' or 'b'")
	ErrFENMalformedNumber = errors.New("fen: malformed clock field")
)

func pieceTypeFromFENChar(ch byte) PieceType {
	switch ch {
	case 'p', 'P':
		return PieceTypePawn
	case 'r', 'R':
		return PieceTypeRook
	case 'b', 'B':
		return PieceTypeBishop
	case 'n', 'N':
		return PieceTypeKnight
	case 'q', 'Q':
		return PieceTypeQueen
	case 'k', 'K':
		return PieceTypeKing
	default:
		return PieceTypeNone
	}
}

func fenCharFromPiece(p Piece) byte {
	var ch byte
	switch p.Type {
	case PieceTypePawn:
		ch = 'p'
	case PieceTypeRook:
		ch = 'r'
	case PieceTypeBishop:
		ch = 'b'
	case PieceTypeKnight:
		ch = 'n'
	case PieceTypeQueen:
		ch = 'q'
	case PieceTypeKing:
		ch = 'k'
	default:
		return '?'
	}
	if p.Team == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// ParseFEN builds a board from the six space-separated FEN fields:
// placement, active color, castling rights, en-passant target, halfmove
// clock, fullmove number. The two clock fields may be omitted.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, ErrFENBadState
	}

	b := &Board{
		epSquare:  NoSquare,
		epTurn:    -1,
		epTeam:    NoTeam,
		turnClock: 1,
	}

	// 1. Piece placement, rank 8 down to rank 1.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != NumRanks {
		return nil, ErrFENBadState
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt := pieceTypeFromFENChar(ch)
			if pt == PieceTypeNone || file >= NumFiles {
				return nil, ErrFENBadState
			}
			team := Black
			if ch >= 'A' && ch <= 'Z' {
				team = White
			}
			b.placePiece(Piece{Type: pt, Team: team, Square: SquareAt(file, rank)})
			file++
		}
		if file != NumFiles {
			return nil, ErrFENBadState
		}
	}

	// 2. Active color.
	switch fields[1] {
	case "w":
		b.active = White
	case "b":
		b.active = Black
	default:
		return nil, ErrFENBadTeam
	}

	// 3. Castling rights.
	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				b.castling |= CastleWhiteKing
			case 'Q':
				b.castling |= CastleWhiteQueen
			case 'k':
				b.castling |= CastleBlackKing
			case 'q':
				b.castling |= CastleBlackQueen
			default:
				return nil, ErrFENBadState
			}
		}
	}

	// 4. En-passant target square.
	if fields[3] != "-" {
		sq, ok := SquareFromNotation(fields[3])
		if !ok {
			return nil, ErrFENBadState
		}
		b.epSquare = sq
	}

	// 5 & 6. Halfmove clock and fullmove number.
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, ErrFENMalformedNumber
		}
		b.fiftyClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, ErrFENMalformedNumber
		}
		b.turnClock = n
	}

	b.plyClock = (b.turnClock - 1) * 2
	if b.active == Black {
		b.plyClock++
	}
	if b.epSquare != NoSquare {
		// The recorded opportunity is open for the side to move right now.
		b.epTurn = b.turnClock
		b.epTeam = b.active
	}

	b.updateAttackBoards()
	return b, nil
}

// FEN exports the position. A string accepted by ParseFEN round-trips
// byte-for-byte, including through a make/unmake cycle.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < NumFiles; file++ {
			piece, ok := b.PieceAt(SquareAt(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(fenCharFromPiece(piece))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.active == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.EnPassantOpen() {
		notation, _ := NotationFromSquare(b.epSquare)
		sb.WriteString(notation)
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.fiftyClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.turnClock))
	return sb.String()
}
