package board

// LegalMoves filters the pseudolegal move list: each candidate is played out
// on a clone and discarded (bit cleared, move dropped) if it leaves the
// moving side's king in check. The result keeps the per-origin-square shape.
func (b *Board) LegalMoves() []MoveSet {
	pseudo := b.PseudolegalMoves()
	legal := make([]MoveSet, len(pseudo))

	for sq, set := range pseudo {
		filtered := MoveSet{Targets: set.Targets}
		for _, m := range set.Moves {
			moverTeam := b.SquareTeam(m.Start)
			next := b.Clone()
			if _, err := next.MakeMove(m); err != nil {
				filtered.Targets.Set(m.Target, false)
				continue
			}
			if next.IsTeamChecked(moverTeam) {
				filtered.Targets.Set(m.Target, false)
				continue
			}
			filtered.Moves = append(filtered.Moves, m)
		}
		legal[sq] = filtered
	}
	return legal
}

// MovesForTeam flattens a per-square move list down to the moves whose
// origin square belongs to the given team.
func (b *Board) MovesForTeam(list []MoveSet, team Team) []Move {
	var out []Move
	for _, set := range list {
		for _, m := range set.Moves {
			if b.SquareTeam(m.Start) == team {
				out = append(out, m)
			}
		}
	}
	return out
}

// ActiveMoves returns every legal move for the side to move. When none
// exist the position is terminal: the checkmate flag is set if the side is
// in check, the stalemate flag otherwise. Both flags are sticky until an
// UnmakeMove restores earlier state.
func (b *Board) ActiveMoves() []Move {
	moves := b.MovesForTeam(b.LegalMoves(), b.active)
	if len(moves) == 0 {
		if b.IsTeamChecked(b.active) {
			b.checkmate = true
		} else {
			b.stalemate = true
		}
	}
	return moves
}
