package game

import "fmt"

// Move is an immutable move value: either a pass or a transfer from
// (col0,row0) to (col1,row1) with both axis distances at most 2. A distance-1
// move is an "extend" (the source keeps its piece and a new one appears at
// the destination); a distance-2 move is a "jump" (the piece relocates).
type Move struct {
	col0, row0 byte
	col1, row1 byte
	pass       bool
}

// NewMove returns the move from (col0,row0) to (col1,row1). It does not
// validate board legality; that is Board's job.
func NewMove(col0, row0, col1, row1 byte) Move {
	return Move{col0: col0, row0: row0, col1: col1, row1: row1}
}

// Pass returns the pass move.
func Pass() Move {
	return Move{pass: true}
}

// ParseMove parses "c0r0-c1r1" (e.g. "a1-a2") or "-" for a pass. Text that
// does not name real board squares fails with ErrMalformedMove.
func ParseMove(text string) (Move, error) {
	if text == "-" {
		return Pass(), nil
	}
	if len(text) != 5 || text[2] != '-' {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	m := NewMove(text[0], text[1], text[3], text[4])
	if !onBoard(m.col0, m.row0) || !onBoard(m.col1, m.row1) {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	return m, nil
}

func (m Move) IsPass() bool { return m.pass }

// IsJump reports whether m moves a piece two squares away in some axis.
func (m Move) IsJump() bool {
	return !m.pass && (absDelta(m.col0, m.col1) == 2 || absDelta(m.row0, m.row1) == 2)
}

// IsExtend reports whether m duplicates a piece onto an adjacent square.
func (m Move) IsExtend() bool {
	return !m.pass && !m.IsJump()
}

func (m Move) Col0() byte { return m.col0 }
func (m Move) Row0() byte { return m.row0 }
func (m Move) Col1() byte { return m.col1 }
func (m Move) Row1() byte { return m.row1 }

func (m Move) String() string {
	if m.pass {
		return "-"
	}
	return fmt.Sprintf("%c%c-%c%c", m.col0, m.row0, m.col1, m.row1)
}

func absDelta(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
