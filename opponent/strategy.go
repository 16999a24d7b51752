// Package opponent selects moves for an automated player. Three strategies
// share the board's legal-move interface: uniform random choice, fixed-depth
// negamax, and time-boxed iterative-deepening negamax with alpha-beta
// pruning. The strategy set is closed, so dispatch is a plain tag switch
// rather than an open interface.
package opponent

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/3500Pts/chess-r/board"
)

// Kind tags the move-selection strategy.
type Kind int

const (
	Random Kind = iota
	FixedDepth
	TimeBoxed
)

const (
	defaultDepth = 3
	defaultLimit = 500 * time.Millisecond
)

// Config is one opponent: a strategy tag plus its budget. The zero value is
// a random mover. Concurrent searches must not share one board; GetMoveAsync
// clones for exactly that reason.
type Config struct {
	Kind  Kind
	Depth int           // plies, FixedDepth only
	Limit time.Duration // wall clock, TimeBoxed only

	// Rand seeds random choice and leaf jitter; a shared default source is
	// used when nil. Tests inject a fixed seed here.
	Rand *rand.Rand

	// Logger receives per-depth search progress; nil disables logging.
	Logger *zerolog.Logger
}

// GetMove picks a move for the side to move, or ok=false when no legal move
// exists (checkmate or stalemate).
func (c Config) GetMove(b *board.Board) (board.Move, bool) {
	switch c.Kind {
	case FixedDepth:
		depth := c.Depth
		if depth < 1 {
			depth = defaultDepth
		}
		return searchFixed(b, depth, c.logger())
	case TimeBoxed:
		limit := c.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		return searchTimed(b, limit, c.rng(), c.logger())
	default:
		return randomMove(b, c.rng())
	}
}

func (c Config) rng() *rand.Rand {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}

// ParseConfig reads a strategy spec: "random", "depth:N", or "time:DUR"
// where DUR is a time.ParseDuration string such as "500ms".
func ParseConfig(s string) (Config, error) {
	switch {
	case s == "random":
		return Config{Kind: Random}, nil
	case strings.HasPrefix(s, "depth:"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "depth:"))
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("opponent: bad depth in strategy %q", s)
		}
		return Config{Kind: FixedDepth, Depth: n}, nil
	case strings.HasPrefix(s, "time:"):
		d, err := time.ParseDuration(strings.TrimPrefix(s, "time:"))
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("opponent: bad duration in strategy %q", s)
		}
		return Config{Kind: TimeBoxed, Limit: d}, nil
	default:
		return Config{}, fmt.Errorf("opponent: unknown strategy %q", s)
	}
}
