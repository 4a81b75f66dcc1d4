package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Run("linearizing real squares", func(t *testing.T) {
		require.Equal(t, 2*ExtendedSide+2, Index('a', '1'))
		require.Equal(t, 8*ExtendedSide+8, Index('g', '7'))
		require.Equal(t, 5*ExtendedSide+5, Index('d', '4'))
	})

	t.Run("border squares stay inside the buffer", func(t *testing.T) {
		for _, sq := range []int{
			Index('a'-2, '1'-2), Index('g'+2, '7'+2), Index('a'-1, '4'), Index('d', '7'+2),
		} {
			require.GreaterOrEqual(t, sq, 0)
			require.Less(t, sq, ExtendedSide*ExtendedSide)
		}
	})

	t.Run("neighbor offsets", func(t *testing.T) {
		sq := Index('d', '4')
		require.Equal(t, Index('c', '3'), Neighbor(sq, -1, -1))
		require.Equal(t, Index('f', '6'), Neighbor(sq, 2, 2))
		require.Equal(t, Index('d', '2'), Neighbor(sq, 0, -2))
	})
}

func TestReflect(t *testing.T) {
	col, row := reflect('c', '3')
	require.Equal(t, byte('e'), col)
	require.Equal(t, byte('5'), row)

	col, row = reflect('d', '4')
	require.Equal(t, byte('d'), col, "the center is its own reflection")
	require.Equal(t, byte('4'), row)

	col, row = reflect('a', '7')
	require.Equal(t, byte('g'), col)
	require.Equal(t, byte('1'), row)
}
