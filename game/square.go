package game

const (
	// Side is the width of the real board in squares.
	Side = 7

	// ExtendedSide is the width of the stored grid: the real board plus a
	// 2-deep Blocked border on every edge, so that jump destinations of
	// squares on the rim still land inside the buffer.
	ExtendedSide = Side + 4

	// JumpLimit is the number of consecutive jumps (by both players
	// combined) that ends the game on piece count.
	JumpLimit = 25
)

// Index linearizes the square named by column 'a'..'g' and row '1'..'7' into
// the extended grid. Columns and rows up to two positions outside those
// ranges map onto the border.
func Index(col, row byte) int {
	return int(row-'1'+2)*ExtendedSide + int(col-'a'+2)
}

// Neighbor returns the index dc columns and dr rows away from sq.
func Neighbor(sq, dc, dr int) int {
	return sq + dr*ExtendedSide + dc
}

// neighborOffsets are the index deltas of the 8 squares surrounding a square.
var neighborOffsets = [8]int{
	-ExtendedSide - 1, -ExtendedSide, -ExtendedSide + 1,
	-1, 1,
	ExtendedSide - 1, ExtendedSide, ExtendedSide + 1,
}

func onBoard(col, row byte) bool {
	return col >= 'a' && col <= 'g' && row >= '1' && row <= '7'
}

// reflect returns the square mirrored across both midlines of the board.
func reflect(col, row byte) (byte, byte) {
	return 'a' + ('g' - col), '1' + ('7' - row)
}
