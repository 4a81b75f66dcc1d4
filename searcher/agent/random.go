package agent

import (
	"golang.org/x/exp/rand"

	"ataxx/game"
	"ataxx/searcher"
)

// RandomAgent plays a uniformly random legal move. It is the strength
// baseline for experiments. Identical seeds give identical games.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(b *game.Board) (game.Move, searcher.SearchMetric) {
	moves := b.LegalMoves(b.WhoseMove())
	if len(moves) == 0 {
		return game.Pass(), searcher.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetric{}
}
