package board

// MoveSet pairs the reachable-target bitboard of one origin square (used for
// highlighting) with the explicit moves from that square (used for execution
// and legality filtering).
type MoveSet struct {
	Targets Bitboard
	Moves   []Move
}

// PseudolegalMoves generates, for every occupied square of either team, the
// moves that obey piece-movement rules but may still leave the mover's king
// in check. The returned slice is indexed by origin square. Castling is
// injected after the per-square pass.
func (b *Board) PseudolegalMoves() []MoveSet {
	list := make([]MoveSet, NumSquares)
	for sq := Square(0); sq < NumSquares; sq++ {
		pt := b.pieces[sq]
		if pt == PieceTypeNone {
			continue
		}
		list[sq] = b.pseudoMoves(Piece{Type: pt, Team: b.SquareTeam(sq), Square: sq})
	}
	b.appendCastling(list)
	return list
}

func (b *Board) pseudoMoves(p Piece) MoveSet {
	switch p.Type {
	case PieceTypeRook, PieceTypeBishop, PieceTypeQueen:
		return b.sliderMoves(p)
	case PieceTypeKnight:
		return b.tableMoves(p, knightTargets[p.Square])
	case PieceTypeKing:
		return b.tableMoves(p, kingTargets[p.Square])
	case PieceTypePawn:
		return b.pawnMoves(p)
	default:
		return MoveSet{}
	}
}

// sliderMoves walks the precomputed edge distances per direction: rooks use
// N,S,E,W, bishops the diagonals, queens all eight. A ray ends at the first
// occupied square, which is included only when it holds an enemy piece.
func (b *Board) sliderMoves(p Piece) MoveSet {
	dirStart, dirEnd := North, numDirections
	if p.Type == PieceTypeRook {
		dirEnd = NorthEast
	} else if p.Type == PieceTypeBishop {
		dirStart = NorthEast
	}

	var ms MoveSet
	for d := dirStart; d < dirEnd; d++ {
		for step := 1; step <= edgeDistance[p.Square][d]; step++ {
			target := p.Square + Square(step*directionOffsets[d])
			targetPiece, occupied := b.PieceAt(target)
			if !occupied {
				ms.Targets.Set(target, true)
				ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: target})
				continue
			}
			if targetPiece.Team != p.Team {
				ms.Targets.Set(target, true)
				ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: target, Captures: targetPiece})
			}
			break // any occupied square blocks further travel
		}
	}
	return ms
}

// tableMoves serves the fixed-pattern pieces (knight, king) from their
// precomputed target boards. Edge wraparound is already resolved in the
// tables.
func (b *Board) tableMoves(p Piece, targets Bitboard) MoveSet {
	var ms MoveSet
	for targets != 0 {
		target := targets.PopLSB()
		targetPiece, occupied := b.PieceAt(target)
		if occupied && targetPiece.Team == p.Team {
			continue
		}
		ms.Targets.Set(target, true)
		ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: target, Captures: targetPiece})
	}
	return ms
}

// pawnMoves generates the single push, the guarded double push from the
// starting rank, diagonal captures, and the en-passant capture while its
// one-ply window is open. A pawn standing on its final rank generates
// nothing; promotion is not modeled.
func (b *Board) pawnMoves(p Piece) MoveSet {
	var ms MoveSet

	var forward int
	var farEdge Direction
	switch p.Team {
	case White:
		forward, farEdge = 8, North
	case Black:
		forward, farEdge = -8, South
	default:
		return ms
	}

	farDist := edgeDistance[p.Square][farEdge]
	if farDist == 0 {
		return ms
	}

	// Pushes never capture; they require empty squares.
	single := p.Square + Square(forward)
	if b.pieces[single] == PieceTypeNone {
		ms.Targets.Set(single, true)
		ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: single})

		if farDist == 6 { // starting rank
			double := single + Square(forward)
			if b.pieces[double] == PieceTypeNone {
				ms.Targets.Set(double, true)
				ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: double, IsPawnDouble: true})
			}
		}
	}

	for captures := pawnCaptures[p.Team][p.Square]; captures != 0; {
		target := captures.PopLSB()
		if targetPiece, occupied := b.PieceAt(target); occupied {
			if targetPiece.Team != p.Team {
				ms.Targets.Set(target, true)
				ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: target, Captures: targetPiece})
			}
			continue
		}
		// En passant: the diagonal square is empty but matches the passed-over
		// square of a double push whose one-ply window is still open for this
		// team, and the bypassing pawn is an enemy pawn.
		if target == b.epSquare && b.turnClock == b.epTurn && p.Team == b.epTeam {
			bypass := target - Square(forward)
			if pawn, occupied := b.PieceAt(bypass); occupied &&
				pawn.Type == PieceTypePawn && pawn.Team == p.Team.Opponent() {
				ms.Targets.Set(target, true)
				ms.Moves = append(ms.Moves, Move{Start: p.Square, Target: target, Captures: pawn})
			}
		}
	}
	return ms
}

// appendCastling injects, for each castling-rights bit still set, a
// two-square king move when the king and rook sit on their home squares, the
// side is not in check, every square strictly between them is empty, and the
// square the king crosses is not covered by the opponent. The landing square
// is left to the legality filter.
func (b *Board) appendCastling(list []MoveSet) {
	for bit := 0; bit < 4; bit++ {
		if b.castling&(1<<uint(bit)) == 0 {
			continue
		}

		team, kingSq := White, whiteKingHome
		if bit >= 2 {
			team, kingSq = Black, blackKingHome
		}
		kingside := bit%2 == 0

		if b.pieces[kingSq] != PieceTypeKing || b.SquareTeam(kingSq) != team {
			continue
		}
		if b.IsTeamChecked(team) {
			continue
		}

		step := Square(1)
		rookSq := kingSq + 3
		if !kingside {
			step = -1
			rookSq = kingSq - 4
		}
		if b.pieces[rookSq] != PieceTypeRook || b.SquareTeam(rookSq) != team {
			continue
		}

		clear := true
		for sq := kingSq + step; sq != rookSq; sq += step {
			if b.pieces[sq] != PieceTypeNone {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if b.attacks[team.Opponent()].Get(kingSq + step) {
			continue
		}

		target := kingSq + 2*step
		list[kingSq].Targets.Set(target, true)
		list[kingSq].Moves = append(list[kingSq].Moves, Move{
			Start:    kingSq,
			Target:   target,
			IsCastle: true,
		})
	}
}

// updateAttackBoards recomputes the cached per-team threat coverage from
// the current piece placement. Pawns contribute their diagonal squares
// whether or not a capture is currently available; their pushes, like the
// castling king-slides, are not attacks and are excluded. Must run after
// every mutation, before any check query.
func (b *Board) updateAttackBoards() {
	own := [2]Bitboard{b.TeamCoverage(White), b.TeamCoverage(Black)}
	var atk [2]Bitboard
	for sq := Square(0); sq < NumSquares; sq++ {
		pt := b.pieces[sq]
		if pt == PieceTypeNone {
			continue
		}
		team := b.SquareTeam(sq)
		if team != White && team != Black {
			continue
		}
		if pt == PieceTypePawn {
			// Friendly-occupied diagonals are excluded, matching every
			// other piece type: no team's board ever contains its own
			// squares.
			atk[team] |= pawnCaptures[team][sq] &^ own[team]
			continue
		}
		atk[team] |= b.pseudoMoves(Piece{Type: pt, Team: team, Square: sq}).Targets
	}
	b.attacks = atk
}
