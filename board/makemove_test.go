package board_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/3500Pts/chess-r/board"
)

var boardCmp = cmp.AllowUnexported(board.Board{})

// mustMove finds the legal move from one square to another or fails the test.
func mustMove(t *testing.T, b *board.Board, from, to string) board.Move {
	t.Helper()
	start, ok := board.SquareFromNotation(from)
	if !ok {
		t.Fatalf("bad square %q", from)
	}
	target, ok := board.SquareFromNotation(to)
	if !ok {
		t.Fatalf("bad square %q", to)
	}
	for _, m := range b.ActiveMoves() {
		if m.Start == start && m.Target == target {
			return m
		}
	}
	t.Fatalf("no legal move %s%s in %q", from, to, b.FEN())
	return board.Move{}
}

func hasMove(b *board.Board, from, to string) bool {
	start, _ := board.SquareFromNotation(from)
	target, _ := board.SquareFromNotation(to)
	for _, m := range b.ActiveMoves() {
		if m.Start == start && m.Target == target {
			return true
		}
	}
	return false
}

func mustParse(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestMakeMoveRejections(t *testing.T) {
	b := board.New()
	before := b.Clone()

	cases := []struct {
		name string
		move board.Move
		want error
	}{
		{"same square", board.Move{Start: 12, Target: 12}, board.ErrNotAMove},
		{"empty origin", board.Move{Start: 28, Target: 36}, board.ErrNoUnit},
		{"friendly target", board.Move{Start: 4, Target: 12}, board.ErrAttackedAlly},
	}
	for _, c := range cases {
		if _, err := b.MakeMove(c.move); !errors.Is(err, c.want) {
			t.Errorf("%s: error = %v, want %v", c.name, err, c.want)
		}
	}
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("rejected moves mutated the board:\n%s", diff)
	}
}

func TestMakeUnmakeQuietMove(t *testing.T) {
	b := board.New()
	before := b.Clone()

	m := mustMove(t, b, "g1", "f3")
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Validate() {
		t.Fatal("board invalid after MakeMove")
	}
	if b.ActiveTeam() != board.Black || b.PlyClock() != 1 || b.FiftyMoveClock() != 1 {
		t.Fatalf("state after knight move: active %v ply %d fifty %d",
			b.ActiveTeam(), b.PlyClock(), b.FiftyMoveClock())
	}
	if _, ok := st.Captured(); ok {
		t.Fatal("quiet move reported a capture")
	}

	b.UnmakeMove(m, st)
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("unmake did not restore the position:\n%s", diff)
	}
}

func TestMakeUnmakeCapture(t *testing.T) {
	b := mustParse(t, "8/7p/8/5r2/P3K2k/1P4p1/2P5/8 w - - 0 40")
	before := b.Clone()

	m := mustMove(t, b, "e4", "f5")
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	victim, ok := st.Captured()
	if !ok || victim.Type != board.PieceTypeRook || victim.Team != board.Black {
		t.Fatalf("captured = %+v, %v; want black rook", victim, ok)
	}
	if b.FiftyMoveClock() != 0 {
		t.Fatalf("fifty-move clock = %d after capture, want 0", b.FiftyMoveClock())
	}

	b.UnmakeMove(m, st)
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("unmake did not restore the captured rook:\n%s", diff)
	}
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	b := mustParse(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	before := b.Clone()

	m := mustMove(t, b, "e5", "d6")
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	victim, ok := st.Captured()
	if !ok || victim.Type != board.PieceTypePawn {
		t.Fatalf("captured = %+v, %v; want the bypassing pawn", victim, ok)
	}
	d5, _ := board.SquareFromNotation("d5")
	if victim.Square != d5 {
		t.Fatalf("victim square = %d, want d5 (%d)", victim.Square, d5)
	}
	if _, occupied := b.PieceAt(d5); occupied {
		t.Fatal("bypassing pawn still on the board after en passant")
	}
	if !b.Validate() {
		t.Fatal("board invalid after en passant")
	}

	b.UnmakeMove(m, st)
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("unmake did not restore the en-passant victim:\n%s", diff)
	}
}

func TestMakeUnmakeCastle(t *testing.T) {
	b := mustParse(t, "rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 6")
	before := b.Clone()

	m := mustMove(t, b, "e1", "g1")
	if !m.IsCastle {
		t.Fatal("e1g1 not flagged as castling")
	}
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	f1, _ := board.SquareFromNotation("f1")
	rook, ok := b.PieceAt(f1)
	if !ok || rook.Type != board.PieceTypeRook || rook.Team != board.White {
		t.Fatalf("f1 = %+v, %v; want the castled rook", rook, ok)
	}
	if b.CastlingRights()&(board.CastleWhiteKing|board.CastleWhiteQueen) != 0 {
		t.Fatalf("white retains castling rights %04b after castling", b.CastlingRights())
	}

	b.UnmakeMove(m, st)
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("unmake did not restore king, rook, and rights:\n%s", diff)
	}
}

func TestMakeUnmakeDoublePush(t *testing.T) {
	b := board.New()
	before := b.Clone()

	m := mustMove(t, b, "e2", "e4")
	if !m.IsPawnDouble {
		t.Fatal("e2e4 not flagged as a double push")
	}
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	e3, _ := board.SquareFromNotation("e3")
	if b.EnPassantSquare() != e3 || !b.EnPassantOpen() {
		t.Fatalf("ep square = %d open = %v, want e3 open", b.EnPassantSquare(), b.EnPassantOpen())
	}

	b.UnmakeMove(m, st)
	if diff := cmp.Diff(before, b, boardCmp); diff != "" {
		t.Fatalf("unmake did not clear the en-passant window:\n%s", diff)
	}
}

func TestRookMoveDropsOneRight(t *testing.T) {
	b := mustParse(t, kiwipeteFEN)

	m := mustMove(t, b, "h1", "g1")
	st, err := b.MakeMove(m)
	if err != nil {
		t.Fatal(err)
	}
	rights := b.CastlingRights()
	if rights&board.CastleWhiteKing != 0 {
		t.Fatal("kingside right survived the rook leaving h1")
	}
	if rights&board.CastleWhiteQueen == 0 || rights&board.CastleBlackKing == 0 {
		t.Fatalf("unrelated rights lost: %04b", rights)
	}

	b.UnmakeMove(m, st)
	if b.CastlingRights()&board.CastleWhiteKing == 0 {
		t.Fatal("kingside right not restored by unmake")
	}
}

func TestCaptureOnRookHomeDropsRight(t *testing.T) {
	// Bishop takes the h8 rook; Black's kingside right must go with it.
	b := mustParse(t, "rnbqk2r/pppppp1p/6p1/8/8/1P6/PBPPPPPP/RN1QKBNR w KQkq - 0 3")
	m := mustMove(t, b, "b2", "h8")
	if _, err := b.MakeMove(m); err != nil {
		t.Fatal(err)
	}
	if b.CastlingRights()&board.CastleBlackKing != 0 {
		t.Fatal("black kingside right survived losing the h8 rook")
	}
}
