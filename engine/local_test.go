package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/game"
	"ataxx/searcher"
	"ataxx/searcher/agent"
)

func TestNewLocalGame(t *testing.T) {
	t.Run("starts from the opening position", func(t *testing.T) {
		g := NewLocalGame(agent.NewRandomAgent(1), agent.NewRandomAgent(2))
		require.Equal(t, game.Red, g.Board.WhoseMove())
		require.Equal(t, 2, g.Board.RedPieces())
		require.Equal(t, 2, g.Board.BluePieces())
	})

	t.Run("panics without an agent", func(t *testing.T) {
		require.Panics(t, func() { NewLocalGame(agent.NewRandomAgent(1), nil) })
		require.Panics(t, func() { NewLocalGame(nil, agent.NewRandomAgent(1)) })
	})
}

func TestRunDeadBoard(t *testing.T) {
	g := NewLocalGame(agent.NewRandomAgent(1), agent.NewRandomAgent(2))
	// Wall in all four corners before the first move; the game is drawn
	// before either agent gets asked for a move.
	for _, sq := range []string{"a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"} {
		require.NoError(t, g.Board.SetBlock(sq[0], sq[1]))
	}
	require.True(t, g.Board.GameOver())

	winner, finished, records := g.Run()
	require.Equal(t, game.Empty, winner)
	require.True(t, finished)
	require.Empty(t, records)
}

func TestRunSearchAgents(t *testing.T) {
	red := agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(1)))
	blue := agent.NewSearchAgent(searcher.NewMinimax(searcher.WithDepth(1)))
	g := NewLocalGame(red, blue)

	winner, finished, records := g.Run()

	require.True(t, finished, "the rules bound game length well below MaxMoves")
	require.True(t, g.Board.GameOver())

	gotWinner, over := g.Board.Winner()
	require.True(t, over)
	require.Equal(t, gotWinner, winner)

	require.Equal(t, len(records), g.Board.NumMoves())
	colors := []game.PieceColor{game.Red, game.Blue}
	for i, r := range records {
		require.Equal(t, i+1, r.Step)
		require.Equal(t, colors[i%2], r.Player, "colors alternate strictly, passes included")
	}
}

func TestRunRandomAgents(t *testing.T) {
	g := NewLocalGame(agent.NewRandomAgent(7), agent.NewRandomAgent(11))

	winner, finished, records := g.Run()
	require.True(t, finished)
	require.NotEmpty(t, records)

	if winner == game.Red {
		require.GreaterOrEqual(t, g.Board.RedPieces(), g.Board.BluePieces())
	}
	if winner == game.Blue {
		require.GreaterOrEqual(t, g.Board.BluePieces(), g.Board.RedPieces())
	}
}
