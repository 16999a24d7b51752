package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/3500Pts/chess-r/board"
	"github.com/3500Pts/chess-r/logx"
	"github.com/3500Pts/chess-r/opponent"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	white := flag.String("white", "time:500ms", "White strategy: random, depth:N, or time:DUR")
	black := flag.String("black", "time:500ms", "Black strategy: random, depth:N, or time:DUR")
	maxMoves := flag.Int("max-moves", 200, "Stop after this many full moves")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log := logx.New(*verbose)

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	players := [2]opponent.Config{}
	for i, spec := range []string{*white, *black} {
		cfg, err := opponent.ParseConfig(spec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		cfg.Logger = &log
		players[i] = cfg
	}

	fmt.Println(b.Render())
	for b.TurnClock() <= *maxMoves {
		team := b.ActiveTeam()
		res := <-players[team].GetMoveAsync(b)
		if !res.OK {
			// Latch checkmate/stalemate on the real board, not the
			// strategy's private clone.
			b.ActiveMoves()
			break
		}
		if _, err := b.MakeMove(res.Move); err != nil {
			log.Error().Err(err).Stringer("move", res.Move).Msg("illegal move from strategy")
			os.Exit(1)
		}
		log.Info().
			Stringer("team", team).
			Stringer("move", res.Move).
			Int("turn", b.TurnClock()).
			Dur("took", res.Elapsed).
			Msg("played")
		fmt.Println(b.Render())
	}

	switch {
	case b.InCheckmate():
		log.Info().Stringer("winner", b.ActiveTeam().Opponent()).Msg("checkmate")
	case b.InStalemate():
		log.Info().Msg("stalemate")
	default:
		log.Info().Int("turn", b.TurnClock()).Msg("move limit reached")
	}
}
