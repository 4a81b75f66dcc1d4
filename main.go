package main

import (
	"flag"
	"fmt"
	"os"

	"ataxx/engine"
	"ataxx/experiments"
	"ataxx/game"
	"ataxx/searcher"
	"ataxx/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	experiment := flag.String("experiment", "", "run an experiment instead of a demo game: depth or random")
	flag.Parse()

	switch *experiment {
	case "depth":
		experiments.RunDepthExperiment()
		return
	case "random":
		experiments.RunRandomBaselineExperiment()
		return
	case "":
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	red := agent.NewSearchAgent(searcher.NewMinimax(
		searcher.WithDepth(searcher.MaxDepth),
		searcher.WithMetrics(),
	))
	blue := agent.NewSearchAgent(searcher.NewMinimax(
		searcher.WithDepth(2),
		searcher.WithMetrics(),
	))

	g := engine.NewLocalGame(red, blue)
	g.Board.SetNotifier(func(b *game.Board) {
		fmt.Println(b.Render(true))
		fmt.Println()
	})

	winner, finished, moves := g.Run()
	if !finished {
		log.Warn().Msg("game did not finish")
		return
	}
	for _, mv := range moves {
		log.Info().Msgf("%3d %-4s %s (%d nodes, %d cutoffs, %s)",
			mv.Step, mv.Player, mv.Move, mv.Search.Nodes, mv.Search.Cutoffs, mv.Search.Duration)
	}
	if winner == game.Empty {
		fmt.Println("Drawn game.")
	} else {
		fmt.Printf("%s wins.\n", winner)
	}
}
