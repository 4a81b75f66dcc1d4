package game

// PieceColor is the contents of a board square. Blocked doubles as the
// border sentinel surrounding the real board.
type PieceColor uint8

const (
	Empty PieceColor = iota
	Red
	Blue
	Blocked
)

// Opposite returns the other player's color. It panics on Empty and Blocked:
// only player colors have an opponent.
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	panic("no opposite of " + c.String())
}

// IsPiece reports whether c is a player's piece rather than an open or
// blocked square.
func (c PieceColor) IsPiece() bool {
	return c == Red || c == Blue
}

func (c PieceColor) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}
