package game

// Static evaluation. Scores are from Red's perspective: positive favors Red.
// The terms, in order of weight: raw piece difference, an exposure sum over
// every piece (edge bonus plus per-neighbor adjustments), a mobility-pressure
// term (the single most capture-rich destination each side can reach), and an
// endgame-aggression term that only wakes up once a side is down to two
// pieces or fewer.

const (
	pieceDiffWeight = 8
	pressureWeight  = 5
	endgameWeight   = 10
)

// Score returns the heuristic value of b. Terminal positions score
// +winValue (Red has won), -winValue (Blue) or 0 (draw); the caller folds
// remaining search depth into winValue so faster wins outrank slower ones.
func Score(b *Board, winValue int) int {
	if winner, over := b.Winner(); over {
		switch winner {
		case Red:
			return winValue
		case Blue:
			return -winValue
		default:
			return 0
		}
	}

	score := (b.RedPieces() - b.BluePieces()) * pieceDiffWeight
	score += exposure(b)

	redMax, redContact := capturePressure(b, Red)
	blueMax, blueContact := capturePressure(b, Blue)
	score += (redMax - blueMax) * pressureWeight

	aggression := 0
	if b.BluePieces() <= 2 {
		aggression += redContact
	}
	if b.RedPieces() <= 2 {
		aggression -= blueContact
	}
	score += aggression * endgameWeight

	return score
}

// exposure sums, per piece, an edge bonus and adjustments for each of the 8
// neighbors: a neighbor that is empty or friendly leaves the piece open to
// being flipped later, an enemy neighbor is a flip already threatened. The
// weights are sign-mirrored between the colors.
func exposure(b *Board) int {
	total := 0
	for row := byte('1'); row <= '7'; row++ {
		for col := byte('a'); col <= 'g'; col++ {
			piece := b.Get(col, row)
			if !piece.IsPiece() {
				continue
			}
			sign := 1
			if piece == Blue {
				sign = -1
			}
			if col == 'a' || col == 'g' || row == '1' || row == '7' {
				total += 5 * sign
			}
			sq := Index(col, row)
			for _, off := range neighborOffsets {
				switch b.cells[sq+off] {
				case Empty, piece:
					total -= 2 * sign
				case piece.Opposite():
					total += sign
				}
			}
		}
	}
	return total
}

// capturePressure enumerates color's moves and inspects each destination's
// neighbor ring. It returns the largest number of opponent pieces any single
// destination touches, and the total contact count across all candidate
// destinations (the endgame-aggression input).
func capturePressure(b *Board, color PieceColor) (maxContact, totalContact int) {
	opponent := color.Opposite()
	for _, m := range b.LegalMoves(color) {
		dest := Index(m.Col1(), m.Row1())
		contact := 0
		for _, off := range neighborOffsets {
			if b.cells[dest+off] == opponent {
				contact++
			}
		}
		if contact > maxContact {
			maxContact = contact
		}
		totalContact += contact
	}
	return maxContact, totalContact
}
