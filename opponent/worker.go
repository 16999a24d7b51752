package opponent

import (
	"time"

	"github.com/3500Pts/chess-r/board"
)

// Result is one finished move selection. OK is false when the side to move
// had no legal move.
type Result struct {
	Move    board.Move
	OK      bool
	Elapsed time.Duration
}

// GetMoveAsync runs the strategy on a private clone of the position and
// delivers exactly one Result on the returned buffered channel, so a host
// event loop can poll it without blocking. The clone means the caller's
// board stays free for rendering or input while the search runs; no locking
// is needed as long as each search owns its own snapshot.
func (c Config) GetMoveAsync(b *board.Board) <-chan Result {
	snapshot := b.Clone()
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		start := time.Now()
		m, ok := c.GetMove(snapshot)
		ch <- Result{Move: m, OK: ok, Elapsed: time.Since(start)}
	}()
	return ch
}
