package opponent_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/3500Pts/chess-r/board"
	"github.com/3500Pts/chess-r/opponent"
)

const matedFEN = "K1n5/q7/8/8/8/3k4/8/8 w - - 0 52"

func isLegal(b *board.Board, m board.Move) bool {
	for _, legal := range b.ActiveMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

func TestRandomMoveIsLegal(t *testing.T) {
	cfg := opponent.Config{Kind: opponent.Random, Rand: rand.New(rand.NewSource(1))}
	b := board.New()
	for ply := 0; ply < 40; ply++ {
		m, ok := cfg.GetMove(b)
		if !ok {
			break // the random game ended early
		}
		if !isLegal(b, m) {
			t.Fatalf("ply %d: %v is not legal in %q", ply, m, b.FEN())
		}
		if _, err := b.MakeMove(m); err != nil {
			t.Fatalf("ply %d: MakeMove(%v): %v", ply, m, err)
		}
	}
}

func TestNoMoveWhenMated(t *testing.T) {
	b, err := board.ParseFEN(matedFEN)
	if err != nil {
		t.Fatal(err)
	}
	for _, cfg := range []opponent.Config{
		{Kind: opponent.Random, Rand: rand.New(rand.NewSource(1))},
		{Kind: opponent.FixedDepth, Depth: 2},
		{Kind: opponent.TimeBoxed, Limit: 50 * time.Millisecond},
	} {
		if m, ok := cfg.GetMove(b); ok {
			t.Errorf("kind %v returned %v from a mated position", cfg.Kind, m)
		}
	}
}

func TestFixedDepthFindsMateInOne(t *testing.T) {
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cfg := opponent.Config{Kind: opponent.FixedDepth, Depth: 2}
	m, ok := cfg.GetMove(b)
	if !ok {
		t.Fatal("no move returned")
	}
	if m.String() != "a1a8" {
		t.Fatalf("best move = %v, want a1a8 (mate)", m)
	}
	if _, err := b.MakeMove(m); err != nil {
		t.Fatal(err)
	}
	if len(b.ActiveMoves()) != 0 || !b.InCheckmate() {
		t.Fatal("chosen move did not deliver mate")
	}
}

func TestFixedDepthTakesHangingQueen(t *testing.T) {
	b, err := board.ParseFEN("k7/8/8/3q4/4P3/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cfg := opponent.Config{Kind: opponent.FixedDepth, Depth: 2}
	m, ok := cfg.GetMove(b)
	if !ok {
		t.Fatal("no move returned")
	}
	if m.String() != "e4d5" {
		t.Fatalf("best move = %v, want e4d5", m)
	}
	if m.Captures.Type != board.PieceTypeQueen {
		t.Fatalf("capture records %v, want queen", m.Captures.Type)
	}
}

func TestTimeBoxedFindsMateInOne(t *testing.T) {
	b, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cfg := opponent.Config{
		Kind:  opponent.TimeBoxed,
		Limit: 200 * time.Millisecond,
		Rand:  rand.New(rand.NewSource(7)),
	}
	m, ok := cfg.GetMove(b)
	if !ok {
		t.Fatal("no move returned")
	}
	if m.String() != "a1a8" {
		t.Fatalf("best move = %v, want a1a8 (mate)", m)
	}
}

func TestTimeBoxedRespectsDeadline(t *testing.T) {
	b := board.New()
	cfg := opponent.Config{
		Kind:  opponent.TimeBoxed,
		Limit: 50 * time.Millisecond,
		Rand:  rand.New(rand.NewSource(3)),
	}
	start := time.Now()
	m, ok := cfg.GetMove(b)
	elapsed := time.Since(start)
	if !ok {
		t.Fatal("no move returned from the start position")
	}
	if !isLegal(b, m) {
		t.Fatalf("%v is not legal in the start position", m)
	}
	// A started subtree runs to completion, so allow a wide margin over the
	// configured limit.
	if elapsed > 5*time.Second {
		t.Fatalf("search ran %v against a 50ms limit", elapsed)
	}
}

func TestGetMoveAsync(t *testing.T) {
	b := board.New()
	fenBefore := b.FEN()

	cfg := opponent.Config{Kind: opponent.FixedDepth, Depth: 1}
	res := <-cfg.GetMoveAsync(b)
	if !res.OK {
		t.Fatal("async search returned no move")
	}
	if !isLegal(b, res.Move) {
		t.Fatalf("%v is not legal in the start position", res.Move)
	}
	if res.Elapsed <= 0 {
		t.Fatalf("elapsed = %v, want > 0", res.Elapsed)
	}
	if b.FEN() != fenBefore {
		t.Fatal("async search mutated the caller's board")
	}
}

func TestParseConfig(t *testing.T) {
	cases := []struct {
		in   string
		want opponent.Config
	}{
		{"random", opponent.Config{Kind: opponent.Random}},
		{"depth:4", opponent.Config{Kind: opponent.FixedDepth, Depth: 4}},
		{"time:250ms", opponent.Config{Kind: opponent.TimeBoxed, Limit: 250 * time.Millisecond}},
	}
	for _, c := range cases {
		got, err := opponent.ParseConfig(c.in)
		if err != nil {
			t.Errorf("ParseConfig(%q): %v", c.in, err)
			continue
		}
		if got.Kind != c.want.Kind || got.Depth != c.want.Depth || got.Limit != c.want.Limit {
			t.Errorf("ParseConfig(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "depth:", "depth:0", "depth:x", "time:", "time:-1s", "fast"} {
		if _, err := opponent.ParseConfig(in); err == nil {
			t.Errorf("ParseConfig(%q) accepted", in)
		}
	}
}
