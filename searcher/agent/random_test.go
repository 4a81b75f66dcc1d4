package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ataxx/game"
)

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent(42)
		b := game.NewBoard()
		for i := 0; i < 20; i++ {
			m, _ := a.FindMove(b)
			require.True(t, b.LegalMove(m))
			require.NoError(t, b.MakeMove(m))
			if b.GameOver() {
				break
			}
		}
	})

	t.Run("identical seeds give identical moves", func(t *testing.T) {
		first, _ := NewRandomAgent(42).FindMove(game.NewBoard())
		second, _ := NewRandomAgent(42).FindMove(game.NewBoard())
		require.Equal(t, first, second)
	})

	t.Run("passes when stuck", func(t *testing.T) {
		b := game.NewBoard()
		for _, sq := range []string{"a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"} {
			require.NoError(t, b.SetBlock(sq[0], sq[1]))
		}
		m, _ := NewRandomAgent(42).FindMove(b)
		require.True(t, m.IsPass())
	})
}
