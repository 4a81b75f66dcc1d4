package game

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Notifier is invoked after every state-mutating operation (clear, move,
// undo, block placement) so an external observer can react. The board itself
// attaches no meaning to it.
type Notifier func(*Board)

// StateHash identifies a board position.
type StateHash uint64

// Board is an Ataxx position plus enough bookkeeping to take moves back.
// Squares live in a flat ExtendedSide*ExtendedSide buffer whose 2-deep border
// stays Blocked forever (see square.go). The undo log is a pair of parallel
// stacks of (square, prior contents) records, with frameSizes recording how
// many of them belong to each move so a frame of any length pops cleanly.
type Board struct {
	cells  [ExtendedSide * ExtendedSide]PieceColor
	mover  PieceColor
	pieces [Blocked + 1]int // indexed by Red and Blue

	jumps     int // consecutive jumps since the last extend
	moveCount int // moves and passes since the last clear

	history    []Move
	frameSizes []int
	undoSq     []int
	undoPrior  []PieceColor

	winner PieceColor // valid only when over; Empty means draw
	over   bool

	notify Notifier
}

// NewBoard returns a cleared board in the starting position: Red on a1 and
// g7, Blue on a7 and g1, Red to move.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Copy returns a board with the same grid, counts, mover and streaks, but a
// fresh history, undo log and notifier. The search uses copies as scratch
// space so lookahead never touches the live game board.
func (b *Board) Copy() *Board {
	c := &Board{
		cells:     b.cells,
		mover:     b.mover,
		pieces:    b.pieces,
		jumps:     b.jumps,
		moveCount: 0,
		winner:    b.winner,
		over:      b.over,
	}
	return c
}

// Clear resets to the starting position with no blocks and no history.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Blocked
	}
	for row := byte('1'); row <= '7'; row++ {
		for col := byte('a'); col <= 'g'; col++ {
			b.cells[Index(col, row)] = Empty
		}
	}
	b.cells[Index('a', '1')] = Red
	b.cells[Index('g', '7')] = Red
	b.cells[Index('a', '7')] = Blue
	b.cells[Index('g', '1')] = Blue
	b.pieces[Red] = 2
	b.pieces[Blue] = 2
	b.mover = Red
	b.jumps = 0
	b.moveCount = 0
	b.history = nil
	b.frameSizes = nil
	b.undoSq = nil
	b.undoPrior = nil
	b.winner = Empty
	b.over = false
	b.announce()
}

// Get returns the contents of square (col, row). Addresses up to two squares
// outside the real board are valid and read as Blocked.
func (b *Board) Get(col, row byte) PieceColor {
	return b.cells[Index(col, row)]
}

// At returns the contents of the square with linearized index sq.
func (b *Board) At(sq int) PieceColor {
	return b.cells[sq]
}

// Winner returns the game result and whether the game is over. A draw is
// reported as (Empty, true).
func (b *Board) Winner() (PieceColor, bool) {
	return b.winner, b.over
}

// GameOver reports whether a terminal condition has been reached.
func (b *Board) GameOver() bool {
	return b.over
}

func (b *Board) RedPieces() int  { return b.pieces[Red] }
func (b *Board) BluePieces() int { return b.pieces[Blue] }

// NumPieces returns the number of squares holding color.
func (b *Board) NumPieces(color PieceColor) int {
	return b.pieces[color]
}

// WhoseMove returns the color of the player next to move.
func (b *Board) WhoseMove() PieceColor { return b.mover }

// NumMoves returns the number of moves and passes since the last clear.
func (b *Board) NumMoves() int { return b.moveCount }

// NumJumps returns the number of consecutive jumps since the last extend (or
// the start of the game). Reaching JumpLimit ends the game.
func (b *Board) NumJumps() int { return b.jumps }

// AllMoves returns the moves applied and not undone since the last clear.
func (b *Board) AllMoves() []Move {
	return b.history
}

// LegalMove reports whether m is legal for the player next to move.
func (b *Board) LegalMove(m Move) bool {
	return b.LegalMoveFor(m, b.mover)
}

// LegalMoveFor reports whether m would be legal for color, ignoring whose
// turn it actually is. Passes are never validated here: a pass is legal
// exactly when the mover has no legal move, which is CanMove's business.
func (b *Board) LegalMoveFor(m Move, color PieceColor) bool {
	if m.pass {
		return false
	}
	if absDelta(m.col0, m.col1) > 2 || absDelta(m.row0, m.row1) > 2 {
		return false
	}
	if !onBoard(m.col1, m.row1) {
		return false
	}
	// The destination must be open; a Blocked read also covers the border.
	if b.cells[Index(m.col1, m.row1)] != Empty {
		return false
	}
	return b.cells[Index(m.col0, m.row0)] == color
}

// CanMove reports whether color has at least one legal move, ignoring whose
// turn it is and whether the game is over.
func (b *Board) CanMove(color PieceColor) bool {
	for row := byte('1'); row <= '7'; row++ {
		for col := byte('a'); col <= 'g'; col++ {
			if b.cells[Index(col, row)] != color {
				continue
			}
			sq := Index(col, row)
			for dr := -2; dr <= 2; dr++ {
				for dc := -2; dc <= 2; dc++ {
					if b.cells[Neighbor(sq, dc, dr)] == Empty {
						return true
					}
				}
			}
		}
	}
	return false
}

// LegalMoves returns every legal move for color, row-major by source square
// and then by destination. The order is deterministic so that search results
// are reproducible under the first-strict-improvement tie-break. A stuck
// color yields an empty list, never a pass.
func (b *Board) LegalMoves(color PieceColor) []Move {
	var moves []Move
	for r0 := byte('1'); r0 <= '7'; r0++ {
		for c0 := byte('a'); c0 <= 'g'; c0++ {
			if b.cells[Index(c0, r0)] != color {
				continue
			}
			for r1 := byte('1'); r1 <= '7'; r1++ {
				for c1 := byte('a'); c1 <= 'g'; c1++ {
					m := NewMove(c0, r0, c1, r1)
					if b.LegalMoveFor(m, color) {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// MakeMove applies m for the player next to move. A pass is legal only when
// that player is stuck; it flips the mover, joins the history with an empty
// undo frame and changes nothing else. Any other move must satisfy
// LegalMove or the board is left untouched and ErrIllegalMove returned.
func (b *Board) MakeMove(m Move) error {
	if m.pass {
		if b.CanMove(b.mover) {
			return fmt.Errorf("%w: pass while a move is available", ErrIllegalMove)
		}
		b.history = append(b.history, m)
		b.frameSizes = append(b.frameSizes, 0)
		b.moveCount++
		b.mover = b.mover.Opposite()
		b.announce()
		return nil
	}
	if !b.LegalMove(m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	b.history = append(b.history, m)
	opponent := b.mover.Opposite()

	// Capture phase: flip opponent pieces on the 8 squares around the
	// destination. Only the immediate ring flips, never the 2-cell radius.
	dest := Index(m.col1, m.row1)
	captures := 0
	for _, off := range neighborOffsets {
		sq := dest + off
		if b.cells[sq] == opponent {
			b.pushUndo(sq)
			b.cells[sq] = b.mover
			b.pieces[b.mover]++
			b.pieces[opponent]--
			captures++
		}
	}

	// Frame boundary: the source and destination squares as they were before
	// the move itself mutates them. Neither can have flipped above (the
	// source holds the mover, the destination is empty).
	src := Index(m.col0, m.row0)
	b.pushUndo(src)
	b.pushUndo(dest)
	b.frameSizes = append(b.frameSizes, captures+2)

	b.cells[dest] = b.mover
	if m.IsJump() {
		b.jumps++
		b.cells[src] = Empty
	} else {
		b.jumps = 0
		b.pieces[b.mover]++
	}

	b.checkGameOver()
	b.moveCount++
	b.mover = opponent
	b.announce()
	return nil
}

// Undo takes back the most recent move or pass. It fails with
// ErrIllegalState if nothing has been played since the last clear. Undo
// always returns the game to a live state; terminal states are only ever
// reached going forward.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return fmt.Errorf("%w: no moves to undo", ErrIllegalState)
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	size := b.frameSizes[len(b.frameSizes)-1]
	b.frameSizes = b.frameSizes[:len(b.frameSizes)-1]

	b.mover = b.mover.Opposite()
	b.moveCount--

	var dRed, dBlue int
	for i := 0; i < size; i++ {
		sq := b.undoSq[len(b.undoSq)-1]
		prior := b.undoPrior[len(b.undoPrior)-1]
		b.undoSq = b.undoSq[:len(b.undoSq)-1]
		b.undoPrior = b.undoPrior[:len(b.undoPrior)-1]

		switch prior {
		case Red:
			dRed++
		case Blue:
			dBlue++
		}
		switch b.cells[sq] {
		case Red:
			dRed--
		case Blue:
			dBlue--
		}
		b.cells[sq] = prior
	}
	b.pieces[Red] += dRed
	b.pieces[Blue] += dBlue

	if last.IsJump() {
		b.jumps--
	}
	b.winner = Empty
	b.over = false
	b.announce()
	return nil
}

func (b *Board) pushUndo(sq int) {
	b.undoSq = append(b.undoSq, sq)
	b.undoPrior = append(b.undoPrior, b.cells[sq])
}

// checkGameOver evaluates the terminal conditions after a non-pass move.
// Elimination takes precedence over the jump limit; the jump limit and
// mutual immobility award the larger side, or a draw on equal counts.
func (b *Board) checkGameOver() {
	switch {
	case b.pieces[Red] == 0:
		b.setWinner(Blue)
	case b.pieces[Blue] == 0:
		b.setWinner(Red)
	case b.jumps >= JumpLimit:
		b.setWinnerByCount()
	case !b.CanMove(Red) && !b.CanMove(Blue):
		b.setWinnerByCount()
	}
}

func (b *Board) setWinner(color PieceColor) {
	b.winner = color
	b.over = true
}

func (b *Board) setWinnerByCount() {
	switch {
	case b.pieces[Red] > b.pieces[Blue]:
		b.setWinner(Red)
	case b.pieces[Blue] > b.pieces[Red]:
		b.setWinner(Blue)
	default:
		b.setWinner(Empty)
	}
}

// SetBlock places a block on (col, row) and its reflections across both
// midlines. Placement is setup-only: it fails once any move has been made,
// if the target is already blocked, or if any of the four squares holds a
// piece. Reflections already blocked are skipped. Blocks never enter the
// undo log.
func (b *Board) SetBlock(col, row byte) error {
	if !onBoard(col, row) {
		return fmt.Errorf("%w: %c%c is off the board", ErrIllegalPlacement, col, row)
	}
	if b.moveCount > 0 {
		return fmt.Errorf("%w: game already started", ErrIllegalPlacement)
	}
	if b.cells[Index(col, row)] == Blocked {
		return fmt.Errorf("%w: %c%c already blocked", ErrIllegalPlacement, col, row)
	}
	mcol, mrow := reflect(col, row)
	for _, sq := range [4]int{
		Index(col, row), Index(mcol, row), Index(col, mrow), Index(mcol, mrow),
	} {
		if b.cells[sq].IsPiece() {
			return fmt.Errorf("%w: square or reflection holds a piece", ErrIllegalPlacement)
		}
	}
	for _, sq := range [4]int{
		Index(col, row), Index(mcol, row), Index(col, mrow), Index(mcol, mrow),
	} {
		if b.cells[sq] != Blocked {
			b.cells[sq] = Blocked
		}
	}
	// Blocks can wall both sides in before the first move; that game is a
	// dead draw rather than one nobody can start.
	if !b.CanMove(Red) && !b.CanMove(Blue) {
		b.setWinnerByCount()
	}
	b.announce()
	return nil
}

// TotalOpen returns the number of empty squares on the real board.
func (b *Board) TotalOpen() int {
	count := 0
	for row := byte('1'); row <= '7'; row++ {
		for col := byte('a'); col <= 'g'; col++ {
			if b.cells[Index(col, row)] == Empty {
				count++
			}
		}
	}
	return count
}

// Equal reports whether two boards hold the same grid contents.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// Hash returns an FNV-64a hash of the grid and the mover.
func (b *Board) Hash() StateHash {
	h := fnv.New64a()
	h.Write([]byte{byte(b.mover)})
	for _, c := range b.cells {
		h.Write([]byte{byte(c)})
	}
	return StateHash(h.Sum64())
}

func (b *Board) String() string {
	return b.Render(false)
}

// Render returns a text depiction of the board, rows '7' down to '1', one
// character per square: 'r', 'b', 'X' or '-'. With legend, row numbers and
// column letters frame the grid.
func (b *Board) Render(legend bool) string {
	var sb strings.Builder
	for row := byte('7'); row >= '1'; row-- {
		if legend {
			sb.WriteByte(row)
		}
		sb.WriteByte(' ')
		for col := byte('a'); col <= 'g'; col++ {
			sb.WriteByte(' ')
			switch b.Get(col, row) {
			case Red:
				sb.WriteByte('r')
			case Blue:
				sb.WriteByte('b')
			case Blocked:
				sb.WriteByte('X')
			case Empty:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	if legend {
		sb.WriteString("   a b c d e f g")
	}
	return sb.String()
}

// SetNotifier installs fn to be called after every mutating operation. A nil
// notifier disables notifications.
func (b *Board) SetNotifier(fn Notifier) {
	b.notify = fn
	b.announce()
}

func (b *Board) announce() {
	if b.notify != nil {
		b.notify(b)
	}
}
