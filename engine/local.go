package engine

import (
	"ataxx/game"
	"ataxx/searcher/agent"

	"github.com/rs/zerolog/log"
)

// LocalGame runs two agents against each other over a single in-process
// board. The board is single-writer: only the loop in Run mutates it, and
// agents receive it read-only by convention (search agents copy it before
// mutating).
type LocalGame struct {
	Board  *game.Board
	agents map[game.PieceColor]agent.Agent
}

func NewLocalGame(red, blue agent.Agent) *LocalGame {
	if red == nil || blue == nil {
		panic("both players need an agent")
	}
	return &LocalGame{
		Board: game.NewBoard(),
		agents: map[game.PieceColor]agent.Agent{
			game.Red:  red,
			game.Blue: blue,
		},
	}
}

// Run plays until a terminal state or the MaxMoves guard.
func (g *LocalGame) Run() (game.PieceColor, bool, []MoveRecord) {
	var records []MoveRecord

	log.Info().Msgf("%s is starting", g.Board.WhoseMove())

	for !g.Board.GameOver() && g.Board.NumMoves() < MaxMoves {
		color := g.Board.WhoseMove()
		move, metric := g.agents[color].FindMove(g.Board)

		if err := g.Board.MakeMove(move); err != nil {
			// An agent produced an illegal move; the game cannot continue.
			log.Error().Err(err).Msgf("%s played %s", color, move)
			return game.Empty, false, records
		}
		records = append(records, MoveRecord{
			Step:   g.Board.NumMoves(),
			Player: color,
			Move:   move,
			Search: metric,
		})
		log.Debug().Msgf("move %d: %s plays %s (red=%d blue=%d)",
			g.Board.NumMoves(), color, move, g.Board.RedPieces(), g.Board.BluePieces())
	}

	winner, over := g.Board.Winner()
	if !over {
		log.Warn().Msgf("stopped after %d moves with no result", g.Board.NumMoves())
		return game.Empty, false, records
	}
	if winner == game.Empty {
		log.Info().Msg("game drawn")
	} else {
		log.Info().Msgf("%s wins %d-%d", winner, g.Board.RedPieces(), g.Board.BluePieces())
	}
	return winner, true, records
}
