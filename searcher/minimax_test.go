package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/game"
)

// fullWidth is a reference minimax without pruning. The alpha-beta search
// must pick the same root move: pruning may only skip moves that cannot win
// the strict-improvement comparison.
func fullWidth(b *game.Board, depth, sense int) int {
	if depth == 0 || b.GameOver() {
		return game.Score(b, winningValue+depth)
	}
	side := game.Red
	if sense < 0 {
		side = game.Blue
	}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		panic("reference search does not model stuck positions")
	}
	best := 0
	for i, m := range moves {
		if err := b.MakeMove(m); err != nil {
			panic(err)
		}
		score := fullWidth(b, depth-1, -sense)
		if err := b.Undo(); err != nil {
			panic(err)
		}
		if i == 0 || (sense > 0 && score > best) || (sense < 0 && score < best) {
			best = score
		}
	}
	return best
}

func fullWidthMove(b *game.Board, depth int) game.Move {
	sense := 1
	if b.WhoseMove() == game.Blue {
		sense = -1
	}
	scratch := b.Copy()
	moves := scratch.LegalMoves(b.WhoseMove())
	var best game.Move
	bestScore := 0
	for i, m := range moves {
		if err := scratch.MakeMove(m); err != nil {
			panic(err)
		}
		score := fullWidth(scratch, depth-1, -sense)
		if err := scratch.Undo(); err != nil {
			panic(err)
		}
		if i == 0 || (sense > 0 && score > bestScore) || (sense < 0 && score < bestScore) {
			bestScore = score
			best = m
		}
	}
	return best
}

func playOut(t *testing.T, script []string) *game.Board {
	t.Helper()
	b := game.NewBoard()
	for _, text := range script {
		m, err := game.ParseMove(text)
		require.NoError(t, err)
		require.NoError(t, b.MakeMove(m))
	}
	return b
}

func TestFindMoveMatchesFullWidthSearch(t *testing.T) {
	positions := map[string][]string{
		"starting position":  {},
		"after two moves":    {"a1-a2", "a7-b6"},
		"after four moves":   {"a1-a2", "a7-b6", "g7-f6", "g1-f2"},
		"blue to move early": {"a1-b2", "g1-f1", "b2-c3"},
	}

	for name, script := range positions {
		t.Run(name, func(t *testing.T) {
			for depth := 1; depth <= 3; depth++ {
				b := playOut(t, script)
				m := NewMinimax(WithDepth(depth))

				got, _ := m.FindMove(b)
				want := fullWidthMove(b, depth)

				require.Equal(t, want, got,
					"pruning changed the chosen move at depth %d", depth)
			}
		})
	}
}

func TestFindMoveDeterminism(t *testing.T) {
	b := playOut(t, []string{"a1-a2", "a7-b6"})
	m := NewMinimax()

	first, _ := m.FindMove(b)
	second, _ := m.FindMove(b)
	require.Equal(t, first, second, "identical positions must yield identical moves")
	require.True(t, b.LegalMove(first), "the chosen move must be legal on the live board")
}

func TestFindMoveLeavesBoardUntouched(t *testing.T) {
	b := playOut(t, []string{"a1-a2", "a7-b6"})
	hash := b.Hash()
	moves := b.NumMoves()

	m := NewMinimax()
	_, _ = m.FindMove(b)

	require.Equal(t, hash, b.Hash(), "search must run on scratch space")
	require.Equal(t, moves, b.NumMoves())
}

// nearWinBoard plays out a position where Red mates in one: the g1 and a7
// corners are walled into jump-only pockets by three symmetric block
// placements, Blue's mobile piece gets captured once its pocket exits are
// gone, and Red then fills every square except d4 while the walled-in g1
// piece passes. Red moves next and any extend into d4 ends the game.
func nearWinBoard(t *testing.T) *game.Board {
	t.Helper()
	b := game.NewBoard()
	for _, sq := range []string{"f1", "f2", "g2"} {
		require.NoError(t, b.SetBlock(sq[0], sq[1]))
	}
	script := []string{
		// Red escapes its pocket and seals g1's five jump exits while
		// Blue shuttles between a7 and a5.
		"a1-c1", "a7-a5", "c1-c2", "a5-a7", "c2-d2", "a7-a5",
		"d2-e2", "a5-a7", "e2-e1", "a7-a5", "e2-e3", "a5-a7",
		"e3-f3", "a7-a5", "f3-g3", "a5-a7", "c1-d1", "a7-a5",
		// b4 lands next to a5: Blue is down to the walled-in g1 piece
		// and passes from here on.
		"c2-b4", "-",
		"c1-a1", "-", "d1-c1", "-", "d1-c2", "-", "c2-b3", "-",
		"b3-a3", "-", "b3-c3", "-", "c3-d3", "-", "d3-c4", "-",
		"b4-a4", "-", "b4-b5", "-", "b5-c5", "-", "c5-d5", "-",
		"d5-e5", "-", "e5-e4", "-", "e4-f4", "-", "f4-g4", "-",
		"g4-g5", "-", "g5-f5", "-", "e5-e6", "-", "e6-d6", "-",
		"d6-c6", "-", "c6-c7", "-", "c7-d7", "-", "d7-e7", "-",
		"c7-a7", "-", "c6-c7", "-",
	}
	for _, text := range script {
		m, err := game.ParseMove(text)
		require.NoError(t, err)
		require.NoError(t, b.MakeMove(m))
	}
	require.False(t, b.GameOver())
	require.Equal(t, game.Red, b.WhoseMove())
	require.Equal(t, 1, b.TotalOpen(), "d4 is the last open square")
	require.Equal(t, 1, b.NumPieces(game.Blue))
	require.Empty(t, b.LegalMoves(game.Blue), "the g1 piece is walled in")
	return b
}

func TestFindMoveNearWin(t *testing.T) {
	t.Run("depth 1 takes the immediate win", func(t *testing.T) {
		b := nearWinBoard(t)
		m := NewMinimax(WithDepth(1))

		got, _ := m.FindMove(b)
		require.NoError(t, b.MakeMove(got))
		require.True(t, b.GameOver())
		winner, _ := b.Winner()
		require.Equal(t, game.Red, winner)
	})

	t.Run("deeper search banks on the stuck opponent", func(t *testing.T) {
		// A line that leaves Blue without a move returns the unchanged
		// window bound, infinite at the root, which outranks the immediate
		// win. The search jumps into d4 instead of extending: the source
		// square reopens, Red stays mobile, Blue stays walled in.
		b := nearWinBoard(t)
		m := NewMinimax()

		got, _ := m.FindMove(b)
		require.True(t, got.IsJump(), "an extend would fill the board and end the game")
		require.NoError(t, b.MakeMove(got))
		require.False(t, b.GameOver())
		require.Empty(t, b.LegalMoves(game.Blue))
		require.True(t, b.CanMove(game.Red))

		// The win is deferred, not lost.
		require.NoError(t, b.MakeMove(game.Pass()))
		finish, _ := NewMinimax(WithDepth(1)).FindMove(b)
		require.NoError(t, b.MakeMove(finish))
		require.True(t, b.GameOver())
		winner, _ := b.Winner()
		require.Equal(t, game.Red, winner)
	})
}

func TestFindMovePassesWhenStuck(t *testing.T) {
	b := game.NewBoard()
	// Symmetric blocks wall in all four corners before the first move.
	for _, sq := range []string{"a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"} {
		require.NoError(t, b.SetBlock(sq[0], sq[1]))
	}
	require.False(t, b.CanMove(b.WhoseMove()))

	m := NewMinimax()
	got, _ := m.FindMove(b)
	require.True(t, got.IsPass())
}

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, MaxDepth, m.depth)
	})

	t.Run("non-positive depth is ignored", func(t *testing.T) {
		m := NewMinimax(WithDepth(0), WithDepth(-2))
		require.Equal(t, MaxDepth, m.depth)
	})

	t.Run("metrics are collected when requested", func(t *testing.T) {
		b := game.NewBoard()
		m := NewMinimax(WithDepth(2), WithMetrics())

		_, metric := m.FindMove(b)
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Nodes)
		require.Positive(t, metric.Duration)
	})

	t.Run("metrics default to the no-op collector", func(t *testing.T) {
		b := game.NewBoard()
		m := NewMinimax(WithDepth(2))

		_, metric := m.FindMove(b)
		require.Zero(t, metric.Nodes)
	})
}
