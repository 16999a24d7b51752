package opponent

import "github.com/3500Pts/chess-r/board"

// Score constants. Mate scores are offset by remaining depth so the search
// prefers the faster mate.
const (
	infScore  = 1 << 30
	mateScore = 100000

	checkBonus       = 40
	castleRightBonus = 15
	centerBonus      = 10
	mobilityWeight   = 2

	aspirationWindow = 60
	leafJitter       = 4
	maxSearchDepth   = 64
)

// pieceValues is indexed by board.PieceType (None, Pawn, Rook, Bishop,
// Knight, Queen, King). The king carries no material value; it can never be
// captured in a legal line.
var pieceValues = [...]int{0, 100, 500, 330, 320, 900, 0}

// centerMask covers d4, e4, d5, e5.
const centerMask board.Bitboard = 1<<27 | 1<<28 | 1<<35 | 1<<36

// evaluate scores the position from the perspective of the side to move:
// material balance plus weighted mobility, center control, retained castling
// rights, and a check bonus. Mate and stalemate are handled by the search,
// not here.
func evaluate(b *board.Board) int {
	us := b.ActiveTeam()
	them := us.Opponent()

	score := material(b, us) - material(b, them)

	ourReach := b.AttackBoard(us)
	theirReach := b.AttackBoard(them)
	score += mobilityWeight * (ourReach.Count() - theirReach.Count())
	score += centerBonus * ((ourReach & centerMask).Count() - (theirReach & centerMask).Count())
	score += castleRightBonus * (castleRights(b, us) - castleRights(b, them))

	if b.IsTeamChecked(them) {
		score += checkBonus
	}
	if b.IsTeamChecked(us) {
		score -= checkBonus
	}
	return score
}

func material(b *board.Board, team board.Team) int {
	total := 0
	for pt := board.PieceTypePawn; pt <= board.PieceTypeKing; pt++ {
		total += pieceValues[pt] * b.PieceBoard(team, pt).Count()
	}
	return total
}

func castleRights(b *board.Board, team board.Team) int {
	rights := b.CastlingRights()
	if team == board.White {
		rights &= board.CastleWhiteKing | board.CastleWhiteQueen
	} else {
		rights &= board.CastleBlackKing | board.CastleBlackQueen
	}
	n := 0
	if rights&(board.CastleWhiteKing|board.CastleBlackKing) != 0 {
		n++
	}
	if rights&(board.CastleWhiteQueen|board.CastleBlackQueen) != 0 {
		n++
	}
	return n
}
