package board

import "errors"

// Team identifies a side. Both is the aggregate used for combined occupancy
// boards; NoTeam marks an empty square.
type Team uint8

const (
	White Team = iota
	Black
	Both
	NoTeam
)

// Opponent maps White to Black and back. The aggregate values map to NoTeam.
func (t Team) Opponent() Team {
	switch t {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoTeam
	}
}

func (t Team) String() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	case Both:
		return "both"
	default:
		return "none"
	}
}

// PieceType is a colorless piece kind; the owning team is tracked by which
// bitboard the piece lives on.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	PieceTypePawn
	PieceTypeRook
	PieceTypeBishop
	PieceTypeKnight
	PieceTypeQueen
	PieceTypeKing
	numPieceTypes
)

// Piece is a transient view of one occupied square, derived on demand from
// the board; it is never stored independently.
type Piece struct {
	Type   PieceType
	Team   Team
	Square Square
}

// IsNone reports whether the view describes an empty square.
func (p Piece) IsNone() bool { return p.Type == PieceTypeNone }

// Move is a value object describing a half-move. Equality is structural.
// Captures records the displaced piece so that UnmakeMove can restore it;
// IsPawnDouble marks two-square pawn pushes (en-passant eligibility) and
// IsCastle marks the synthesized two-square king moves.
type Move struct {
	Start        Square
	Target       Square
	Captures     Piece
	IsPawnDouble bool
	IsCastle     bool
}

// String renders the move in coordinate form, e.g. "e2e4".
func (m Move) String() string {
	from, ok := NotationFromSquare(m.Start)
	if !ok {
		return "??"
	}
	to, ok := NotationFromSquare(m.Target)
	if !ok {
		return "??"
	}
	return from + to
}

// Move rejection errors. All are recoverable: a rejected move never mutates
// the board and the caller simply does not apply it.
var (
	ErrNotAMove     = errors.New("move: start and target are the same square")
	ErrNoUnit       = errors.New("move: no piece on the start square")
	ErrAttackedAlly = errors.New("move: target holds a friendly piece")
)
