package engine

import (
	"ataxx/game"
	"ataxx/searcher"
)

// MaxMoves caps a game as a safety net. The rules already bound game length
// (extends are limited by open squares and every 25-jump streak ends the
// game), so well-behaved agents never get near this.
const MaxMoves = 10000

// MoveRecord is one played half-move together with its search metrics.
type MoveRecord struct {
	Step   int
	Player game.PieceColor
	Move   game.Move
	Search searcher.SearchMetric
}

type Engine interface {
	// Run plays a game to its terminal state (or the MaxMoves guard) and
	// returns the winner (Empty for a draw), whether the game actually
	// finished, and the per-move records.
	Run() (winner game.PieceColor, finished bool, moves []MoveRecord)
}
