package board

// MoveState records the minimal prior state needed to undo a move exactly.
// Everything else (attack boards) is a pure function of the restored
// position and is recomputed.
type MoveState struct {
	captured      Piece
	prevCastling  CastlingRights
	prevEPSquare  Square
	prevEPTurn    int
	prevEPTeam    Team
	prevFifty     int
	prevCheckmate bool
	prevStalemate bool
}

// Captured returns the piece displaced by the move, if any.
func (st MoveState) Captured() (Piece, bool) {
	return st.captured, !st.captured.IsNone()
}

// MakeMove applies a move for the piece on m.Start and returns the undo
// record. Structural rejections (ErrNotAMove, ErrNoUnit, ErrAttackedAlly)
// leave the board untouched. MakeMove does not verify king safety; that is
// the legality filter's job.
func (b *Board) MakeMove(m Move) (MoveState, error) {
	if m.Start == m.Target {
		return MoveState{}, ErrNotAMove
	}
	mover, ok := b.PieceAt(m.Start)
	if !ok {
		return MoveState{}, ErrNoUnit
	}
	if b.SquareTeam(m.Target) == mover.Team {
		return MoveState{}, ErrAttackedAlly
	}

	st := MoveState{
		prevCastling:  b.castling,
		prevEPSquare:  b.epSquare,
		prevEPTurn:    b.epTurn,
		prevEPTeam:    b.epTeam,
		prevFifty:     b.fiftyClock,
		prevCheckmate: b.checkmate,
		prevStalemate: b.stalemate,
	}

	// Record the displaced piece. En passant is the only capture whose
	// victim does not stand on the target square.
	if victim, occupied := b.PieceAt(m.Target); occupied {
		st.captured = victim
	} else if mover.Type == PieceTypePawn && m.Target == b.epSquare &&
		b.turnClock == b.epTurn && mover.Team == b.epTeam {
		bypass := m.Target - Square(pawnForward(mover.Team))
		if victim, occupied := b.PieceAt(bypass); occupied && victim.Team != mover.Team {
			st.captured = victim
			b.liftPiece(victim)
		}
	}

	b.movePiece(mover.Team, mover.Type, m.Start, m.Target)

	// Castling relocates the rook with a second, non-recursive application
	// of the same piece-move routine.
	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m.Target)
		if rookFrom != NoSquare {
			b.movePiece(mover.Team, PieceTypeRook, rookFrom, rookTo)
		}
	}

	if mover.Type == PieceTypePawn || !st.captured.IsNone() {
		b.fiftyClock = 0
	} else {
		b.fiftyClock++
	}

	b.active = mover.Team.Opponent()
	if mover.Team == Black {
		b.turnClock++
	}
	b.plyClock++

	// The window is stamped with the turn clock as seen by the replying
	// side and with that side as the entitled team, so it closes after
	// exactly one ply for either color.
	if m.IsPawnDouble {
		b.epSquare = (m.Start + m.Target) / 2
		b.epTurn = b.turnClock
		b.epTeam = b.active
	}

	b.updateAttackBoards()
	return st, nil
}

// UnmakeMove is the exact inverse of the MakeMove that produced st: the
// mover returns to its start square, any captured piece is restored, the
// castling rook walks back, and rights, en-passant state, and clocks revert.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	mover := b.active.Opponent()
	pt := b.pieces[m.Target]

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m.Target)
		if rookFrom != NoSquare {
			b.movePiece(mover, PieceTypeRook, rookTo, rookFrom)
		}
	}

	b.movePiece(mover, pt, m.Target, m.Start)
	if victim, ok := st.Captured(); ok {
		b.placePiece(victim)
	}

	b.castling = st.prevCastling
	b.epSquare = st.prevEPSquare
	b.epTurn = st.prevEPTurn
	b.epTeam = st.prevEPTeam
	b.fiftyClock = st.prevFifty
	b.checkmate = st.prevCheckmate
	b.stalemate = st.prevStalemate

	if mover == Black {
		b.turnClock--
	}
	b.plyClock--
	b.active = mover

	b.updateAttackBoards()
}

// movePiece is the single mutation choke point: it updates the team board,
// the Both aggregate, and the piece-list mirror together, clears any enemy
// piece from the target, and drops castling rights when a home square is
// touched.
func (b *Board) movePiece(team Team, pt PieceType, start, target Square) {
	if victim := b.pieces[target]; victim != PieceTypeNone {
		victimTeam := b.SquareTeam(target)
		b.pieceBB[victimTeam][victim].Set(target, false)
		b.pieceBB[Both][victim].Set(target, false)
	}

	b.pieceBB[team][pt].Set(start, false)
	b.pieceBB[Both][pt].Set(start, false)
	b.pieceBB[team][pt].Set(target, true)
	b.pieceBB[Both][pt].Set(target, true)

	b.pieces[start] = PieceTypeNone
	b.pieces[target] = pt

	b.dropCastlingRights(start)
	b.dropCastlingRights(target)
}

// placePiece restores a piece onto an empty square, keeping both
// representations in sync. Used only by UnmakeMove.
func (b *Board) placePiece(p Piece) {
	b.pieceBB[p.Team][p.Type].Set(p.Square, true)
	b.pieceBB[Both][p.Type].Set(p.Square, true)
	b.pieces[p.Square] = p.Type
}

// liftPiece removes a piece that is not on a move's target square (the
// en-passant victim).
func (b *Board) liftPiece(p Piece) {
	b.pieceBB[p.Team][p.Type].Set(p.Square, false)
	b.pieceBB[Both][p.Type].Set(p.Square, false)
	b.pieces[p.Square] = PieceTypeNone
}

// dropCastlingRights permanently clears the rights bits tied to a king or
// rook home square once any move starts or ends there.
func (b *Board) dropCastlingRights(sq Square) {
	switch sq {
	case whiteKingsideRook:
		b.castling &^= CastleWhiteKing
	case whiteQueensideRook:
		b.castling &^= CastleWhiteQueen
	case blackKingsideRook:
		b.castling &^= CastleBlackKing
	case blackQueensideRook:
		b.castling &^= CastleBlackQueen
	case whiteKingHome:
		b.castling &^= CastleWhiteKing | CastleWhiteQueen
	case blackKingHome:
		b.castling &^= CastleBlackKing | CastleBlackQueen
	}
}

// castleRookSquares maps a castling king target to the rook's from/to
// squares. Returns NoSquare for a non-castling target.
func castleRookSquares(kingTarget Square) (from, to Square) {
	switch kingTarget {
	case 6: // g1
		return 7, 5
	case 2: // c1
		return 0, 3
	case 62: // g8
		return 63, 61
	case 58: // c8
		return 56, 59
	}
	return NoSquare, NoSquare
}

func pawnForward(team Team) int {
	if team == Black {
		return -8
	}
	return 8
}
