package game

import "errors"

var (
	// ErrIllegalMove is returned by MakeMove for a move the rules forbid.
	ErrIllegalMove = errors.New("illegal move")

	// ErrIllegalState is returned when an operation is invalid in the
	// current game state, such as undoing with no history.
	ErrIllegalState = errors.New("illegal state")

	// ErrIllegalPlacement is returned by SetBlock for a placement the setup
	// rules forbid.
	ErrIllegalPlacement = errors.New("illegal placement")

	// ErrMalformedMove is returned by ParseMove for text that does not name
	// a move.
	ErrMalformedMove = errors.New("malformed move")
)
