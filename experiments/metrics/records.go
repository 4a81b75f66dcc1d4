package metrics

import (
	"time"

	"ataxx/game"
	"ataxx/searcher"
)

// AgentConfig identifies one agent configuration in an experiment.
type AgentConfig struct {
	ID    int
	Depth int // 0 means the random baseline
	Seed  uint64
}

// GameRecord is the outcome of one experiment game.
type GameRecord struct {
	ID         int
	RedAgent   int // AgentConfig.ID
	BlueAgent  int // AgentConfig.ID
	Winner     game.PieceColor
	Finished   bool
	TotalMoves int
	Duration   time.Duration
}

// MoveRecord is one half-move of an experiment game.
type MoveRecord struct {
	Game   int // GameRecord.ID
	Step   int
	Player game.PieceColor
	Move   string
	searcher.SearchMetric
}
