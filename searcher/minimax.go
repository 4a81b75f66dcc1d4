package searcher

import (
	"math"

	"ataxx/game"
)

const (
	// MaxDepth is the default minimax search depth before falling back to
	// static evaluation.
	MaxDepth = 3

	// infinity bounds the alpha-beta window; winningValue is the magnitude
	// of a won position, kept below infinity so the remaining-depth bonus
	// never collides with the window bounds.
	infinity     = math.MaxInt32
	winningValue = infinity - 20
)

type Option func(*Minimax)

// Minimax selects moves by depth-bounded alpha-beta search, maximizing for
// Red (sense +1) and minimizing for Blue (sense -1).
//
// Precondition: the searcher only ever applies moves produced by the board's
// own enumerator on positions it reached itself, so it does not re-validate
// them; MakeMove cannot fail inside the search loop.
type Minimax struct {
	depth   int
	metrics Collector

	best game.Move
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:   MaxDepth,
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move found for the player next to move on b,
// along with the search metrics (zero-valued unless WithMetrics was given).
// A stuck player gets a pass. The live board is never mutated: the search
// runs over a scratch copy through strictly paired make/undo calls.
func (m *Minimax) FindMove(b *game.Board) (game.Move, SearchMetric) {
	color := b.WhoseMove()
	if !b.CanMove(color) {
		return game.Pass(), SearchMetric{}
	}
	m.metrics.Start(m.depth)

	scratch := b.Copy()
	sense := 1
	if color == game.Blue {
		sense = -1
	}
	m.best = game.Move{}
	m.minimax(scratch, m.depth, true, sense, -infinity, infinity)

	return m.best, m.metrics.Complete()
}

// minimax returns the alpha-beta value of b searched to depth. Only the root
// call records the chosen move (save). Every recursive call undoes exactly
// the move it made before returning, including on the pruning path: the
// board that comes back is the board that went in.
func (m *Minimax) minimax(b *game.Board, depth int, save bool, sense, alpha, beta int) int {
	m.metrics.AddNode()
	// The winning value carries the remaining depth so that a forced win
	// found higher in the tree outscores the same win found deeper.
	if depth == 0 || b.GameOver() {
		return game.Score(b, winningValue+depth)
	}

	side := game.Red
	if sense < 0 {
		side = game.Blue
	}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		// A stuck side cannot improve this branch past the established
		// bound; treat it as a cutoff, not a loss. Under the root's full
		// window that bound is infinite, so a line that walls the opponent
		// in can outrank an immediate win; the forced win then arrives a
		// move later instead.
		if sense > 0 {
			return alpha
		}
		return beta
	}

	var bestScore int
	var bestMove game.Move
	for i, mv := range moves {
		_ = b.MakeMove(mv)
		score := m.minimax(b, depth-1, false, -sense, alpha, beta)
		_ = b.Undo()

		if i == 0 {
			// First move is provisionally best and does not move the window.
			bestScore, bestMove = score, mv
			continue
		}
		if sense > 0 && score > bestScore {
			bestScore, bestMove = score, mv
			if score > alpha {
				alpha = score
			}
		} else if sense < 0 && score < bestScore {
			bestScore, bestMove = score, mv
			if score < beta {
				beta = score
			}
		} else {
			continue
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}

	if save {
		m.best = bestMove
	}
	return bestScore
}
