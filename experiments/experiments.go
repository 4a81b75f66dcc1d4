package experiments

import (
	"time"

	"ataxx/engine"
	"ataxx/experiments/metrics"
	"ataxx/game"
	"ataxx/searcher"
	"ataxx/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per matchup

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: 1},
	{ID: 2, Depth: 2},
	{ID: 3, Depth: 3},
	{ID: 4, Depth: 4},
}

// RunDepthExperiment pits each search depth against the depth-1 baseline and
// records game outcomes and per-move search metrics as CSV.
func RunDepthExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps)
}

// RunRandomBaselineExperiment pits each search depth against a seeded random
// player. Any depth should win nearly every game; this is the sanity anchor
// for the strength ladder.
func RunRandomBaselineExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Depth: 0, Seed: 1}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	runExperiment("random_baseline", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		red := matchup[0]
		blue := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between red=%+v and blue=%+v...",
			mi+1, len(matchUps), red, blue)

		for i := 0; i < NumGames; i++ {
			// Alternate colors so neither config always gets the first move,
			// and reseed the random baseline per game.
			red, blue := red, blue
			if i%2 == 1 {
				red, blue = blue, red
			}
			red.Seed += uint64(i)
			blue.Seed += uint64(i)

			start := time.Now()
			winner, finished, moves := runGame(red, blue)
			count++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				RedAgent:   red.ID,
				BlueAgent:  blue.ID,
				Winner:     winner,
				Finished:   finished,
				TotalMoves: len(moves),
				Duration:   time.Since(start),
			})
			for _, mv := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:         count,
					Step:         mv.Step,
					Player:       mv.Player,
					Move:         mv.Move.String(),
					SearchMetric: mv.Search,
				})
			}
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}

	log.Info().Msgf("finished %s experiment: %d games", name, count)
}

func runGame(red, blue metrics.AgentConfig) (game.PieceColor, bool, []engine.MoveRecord) {
	g := engine.NewLocalGame(createAgent(red), createAgent(blue))
	return g.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Depth <= 0 {
		return agent.NewRandomAgent(config.Seed)
	}
	return agent.NewSearchAgent(searcher.NewMinimax(
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	))
}
