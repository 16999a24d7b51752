package board

import "strings"

// CastlingRights is a 4-bit mask. Bits only ever transition 1 -> 0 during
// play; UnmakeMove restoring a prior state is the sole exception.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// King and rook home squares, used both for castling generation and for
// clearing rights when a move touches them.
const (
	whiteKingHome Square = 4
	blackKingHome Square = 60

	whiteKingsideRook  Square = 7
	whiteQueensideRook Square = 0
	blackKingsideRook  Square = 63
	blackQueensideRook Square = 56
)

// Board is the aggregate position. It owns all mutation (MakeMove /
// UnmakeMove) and query logic. The struct contains only value arrays, so a
// plain copy is a full deep clone.
type Board struct {
	// pieceBB[team][pieceType]; the Both row aggregates White and Black and
	// is maintained in lockstep by the movePiece choke point.
	pieceBB [3][numPieceTypes]Bitboard

	// pieces mirrors pieceBB for O(1) occupancy lookups. Every mutation path
	// goes through movePiece/placePiece/liftPiece, which update both
	// representations together.
	pieces [64]PieceType

	castling CastlingRights

	// En-passant state: the square passed over by the last double push, the
	// turn-clock value at which the capture is available, and the team
	// entitled to it. The capture is generated only while turnClock still
	// equals epTurn and epTeam is the side to move, so the window holds for
	// exactly one ply.
	epSquare Square
	epTurn   int
	epTeam   Team

	turnClock  int // increments after Black completes a full move
	plyClock   int // increments every half-move
	fiftyClock int // FEN passthrough only, not enforced

	active Team

	// attacks[team] caches every square that team's pieces currently
	// threaten: pseudolegal targets for the non-pawn pieces, the diagonal
	// squares for pawns whether occupied or not. Pawn pushes are not
	// threats and are excluded. Pure function of the piece boards;
	// recomputed after every mutation before it is read.
	attacks [2]Bitboard

	// Sticky terminal flags, set by ActiveMoves once the side to move has no
	// legal move.
	checkmate bool
	stalemate bool
}

// New returns a board set up for the standard starting position.
func New() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; this cannot happen.
		panic(err)
	}
	return b
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// ActiveTeam reports whose turn it is.
func (b *Board) ActiveTeam() Team { return b.active }

// TurnClock returns the full-move counter (starts at 1, increments after
// Black moves).
func (b *Board) TurnClock() int { return b.turnClock }

// PlyClock returns the half-move counter.
func (b *Board) PlyClock() int { return b.plyClock }

// FiftyMoveClock returns the half-move count since the last capture or pawn
// advance. Carried for FEN round-trips; game-ending logic does not use it.
func (b *Board) FiftyMoveClock() int { return b.fiftyClock }

// CastlingRights returns the current 4-bit rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// EnPassantSquare returns the square passed over by the most recent double
// pawn push, or NoSquare. The capture window may already have expired; see
// EnPassantOpen.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// EnPassantOpen reports whether an en-passant capture is available to the
// side to move.
func (b *Board) EnPassantOpen() bool {
	return b.epSquare != NoSquare && b.turnClock == b.epTurn && b.active == b.epTeam
}

// InCheckmate reports whether the side to move has been mated. The flag is
// sticky: it is set by ActiveMoves when the side to move is checked and has
// no legal reply.
func (b *Board) InCheckmate() bool { return b.checkmate }

// InStalemate reports whether the side to move is stalemated (no legal
// moves, not in check).
func (b *Board) InStalemate() bool { return b.stalemate }

// PieceBoard returns the bitboard of the requested team and piece type.
// Team may be Both for the aggregate.
func (b *Board) PieceBoard(team Team, pt PieceType) Bitboard {
	if team > Both || pt >= numPieceTypes {
		return 0
	}
	return b.pieceBB[team][pt]
}

// AttackBoard returns the cached set of squares the team currently
// threatens.
func (b *Board) AttackBoard(team Team) Bitboard {
	if team != White && team != Black {
		return 0
	}
	return b.attacks[team]
}

// TeamCoverage returns the union of all piece boards for a team. Both yields
// global occupancy.
func (b *Board) TeamCoverage(team Team) Bitboard {
	if team > Both {
		return 0
	}
	var result Bitboard
	for pt := PieceTypePawn; pt < numPieceTypes; pt++ {
		result |= b.pieceBB[team][pt]
	}
	return result
}

// SquareTeam reports which team occupies a square: White coverage is tested
// first, then Black; NoTeam if the square is empty.
func (b *Board) SquareTeam(sq Square) Team {
	if b.TeamCoverage(White).Get(sq) {
		return White
	}
	if b.TeamCoverage(Black).Get(sq) {
		return Black
	}
	return NoTeam
}

// PieceAt returns the piece occupying a square, with ok=false for an empty
// or out-of-range square.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if sq < 0 || sq >= NumSquares {
		return Piece{}, false
	}
	pt := b.pieces[sq]
	if pt == PieceTypeNone {
		return Piece{}, false
	}
	return Piece{Type: pt, Team: b.SquareTeam(sq), Square: sq}, true
}

// IsTeamChecked reports whether the team's king stands on a square covered
// by the cached attack boards. Requires attacks to be fresh, which every
// mutation path guarantees.
func (b *Board) IsTeamChecked(team Team) bool {
	if team != White && team != Black {
		return false
	}
	covered := b.attacks[White] | b.attacks[Black]
	return covered&b.pieceBB[team][PieceTypeKing] != 0
}

// OpponentAttacksSquare reports whether the side NOT currently to move
// reaches the square. Used by the search's risk heuristic.
func (b *Board) OpponentAttacksSquare(sq Square) bool {
	opp := b.active.Opponent()
	if opp == NoTeam {
		return false
	}
	return b.attacks[opp].Get(sq)
}

// Validate cross-checks the piece list against the per-team bitboards and
// the Both aggregate. Only used by tests.
func (b *Board) Validate() bool {
	var want [3][numPieceTypes]Bitboard
	for sq := Square(0); sq < NumSquares; sq++ {
		pt := b.pieces[sq]
		if pt == PieceTypeNone {
			continue
		}
		team := b.SquareTeam(sq)
		if team == NoTeam {
			return false
		}
		want[team][pt].Set(sq, true)
		want[Both][pt].Set(sq, true)
	}
	return want == b.pieceBB
}

// Render draws the piece list as an 8x8 grid with FEN piece letters, rank 8
// on top. Empty squares print as dots.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		for file := 0; file < 8; file++ {
			sq := SquareAt(file, rank)
			sb.WriteByte(' ')
			piece, ok := b.PieceAt(sq)
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(fenCharFromPiece(piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
