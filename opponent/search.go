package opponent

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/3500Pts/chess-r/board"
)

// searcher carries the per-invocation state of one search. Nothing is
// shared between concurrent invocations; each works on its own board.
type searcher struct {
	rng      *rand.Rand
	deadline time.Time // zero means no limit
	jitter   int
	nodes    int64
	log      zerolog.Logger
}

func (s *searcher) expired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// randomMove picks uniformly among the legal moves for the side to move.
func randomMove(b *board.Board, rng *rand.Rand) (board.Move, bool) {
	moves := b.ActiveMoves()
	if len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

// searchFixed runs a negamax search to exactly depth plies.
func searchFixed(b *board.Board, depth int, log zerolog.Logger) (board.Move, bool) {
	moves := b.ActiveMoves()
	if len(moves) == 0 {
		return board.Move{}, false
	}
	orderCaptures(moves)

	s := &searcher{log: log}
	start := time.Now()
	best, score, _ := s.rootSearch(b, moves, depth-1, -infScore, infScore)
	log.Debug().
		Int("depth", depth).
		Int("score", score).
		Int64("nodes", s.nodes).
		Dur("elapsed", time.Since(start)).
		Str("move", best.String()).
		Msg("fixed-depth search finished")
	return best, true
}

// searchTimed deepens from depth 0 until the wall clock runs out, keeping
// the best move of the last fully completed depth. The alpha-beta window of
// each depth is seeded from the previous depth's score and re-opened on a
// failed window; a small jitter on leaf scores breaks ties between
// equally-scored moves across games. A deadline that expires before any
// root move has been scored yields ok=false, like an exhausted position.
func searchTimed(b *board.Board, limit time.Duration, rng *rand.Rand, log zerolog.Logger) (board.Move, bool) {
	moves := b.ActiveMoves()
	if len(moves) == 0 {
		return board.Move{}, false
	}
	orderCaptures(moves)

	s := &searcher{
		rng:      rng,
		deadline: time.Now().Add(limit),
		jitter:   leafJitter,
		log:      log,
	}
	start := time.Now()
	var best board.Move
	haveBest := false
	alpha, beta := -infScore, infScore

	for depth := 0; depth <= maxSearchDepth; depth++ {
		move, score, completed := s.rootSearch(b, moves, depth, alpha, beta)
		if !completed {
			// An interrupted pass still scored a prefix of the root moves;
			// keep its best if nothing better is recorded yet.
			if !haveBest && score > -infScore {
				best, haveBest = move, true
			}
			break
		}
		if score <= alpha || score >= beta {
			// Seeded window missed; redo this depth with full bounds.
			alpha, beta = -infScore, infScore
			depth--
			continue
		}

		best, haveBest = move, true
		s.log.Debug().
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", s.nodes).
			Dur("elapsed", time.Since(start)).
			Str("move", best.String()).
			Msg("depth completed")

		if score >= mateScore || score <= -mateScore {
			break
		}
		alpha, beta = score-aspirationWindow, score+aspirationWindow
		if s.expired() {
			break
		}
	}
	if !haveBest {
		// The budget died before a single candidate was scored.
		return board.Move{}, false
	}
	return best, true
}

// rootSearch scores every root move with a subtree of the given depth.
// The deadline is checked between sibling root moves only: a subtree that
// has started runs to completion, trading a little overshoot for a clock
// check free recursion. completed=false means the deadline interrupted the
// pass and the scores do not cover all moves.
func (s *searcher) rootSearch(b *board.Board, moves []board.Move, depth, alpha, beta int) (board.Move, int, bool) {
	best := moves[0]
	bestScore := -infScore

	for _, m := range moves {
		if s.expired() {
			return best, bestScore, false
		}
		st, err := b.MakeMove(m)
		if err != nil {
			continue
		}
		score := -s.negamax(b, depth, -beta, -alpha)
		b.UnmakeMove(m, st)

		if score > bestScore {
			best, bestScore = m, score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore, true
}

// negamax returns the value of the position for the side to move, searching
// depth further plies with alpha-beta bounds.
func (s *searcher) negamax(b *board.Board, depth, alpha, beta int) int {
	s.nodes++

	moves := b.ActiveMoves()
	if len(moves) == 0 {
		if b.IsTeamChecked(b.ActiveTeam()) {
			// Mated; deeper remaining depth means an earlier mate, which the
			// parent should prefer.
			return -(mateScore + depth)
		}
		return 0 // stalemate
	}

	if depth <= 0 {
		score := evaluate(b)
		if s.jitter > 0 {
			score += s.rng.Intn(2*s.jitter+1) - s.jitter
		}
		return score
	}

	orderCaptures(moves)
	best := -infScore
	for _, m := range moves {
		st, err := b.MakeMove(m)
		if err != nil {
			continue
		}
		score := -s.negamax(b, depth-1, -beta, -alpha)
		b.UnmakeMove(m, st)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderCaptures sorts captures of bigger pieces to the front so alpha-beta
// cuts earlier. Quiet moves keep their generation order.
func orderCaptures(moves []board.Move) {
	slices.SortStableFunc(moves, func(x, y board.Move) int {
		return pieceValues[y.Captures.Type] - pieceValues[x.Captures.Type]
	})
}
