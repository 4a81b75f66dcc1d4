package agent

import (
	"ataxx/game"
	"ataxx/searcher"
)

// Agent picks one move (possibly a pass) for the player next to move.
type Agent interface {
	FindMove(b *game.Board) (game.Move, searcher.SearchMetric)
}

// SearchAgent plays with alpha-beta minimax.
type SearchAgent struct {
	searcher *searcher.Minimax
}

func NewSearchAgent(m *searcher.Minimax) *SearchAgent {
	return &SearchAgent{searcher: m}
}

func (a *SearchAgent) FindMove(b *game.Board) (game.Move, searcher.SearchMetric) {
	return a.searcher.FindMove(b)
}
