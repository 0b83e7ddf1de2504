package rotation

import "bridgewrangler/internal/pbn"

// RotateBoard mutates board in place by r clockwise quarter-turns.
// r of 0 leaves the board untouched. When standardVul is set, the
// vulnerability is taken from the standard 16-board schedule for the
// board's number instead of being rotated.
func RotateBoard(board *pbn.Board, r int, standardVul bool) {
	r = ((r % 4) + 4) % 4
	if r == 0 && !standardVul {
		return
	}

	if board.HasDealer {
		board.Dealer = board.Dealer.Rotate(r)
	}

	if standardVul {
		if board.Number > 0 {
			board.Vulnerable = pbn.VulnerabilityForBoard(board.Number)
		}
	} else if r%2 == 1 {
		board.Vulnerable = board.Vulnerable.Swap()
	}

	if r == 0 {
		return
	}

	// Rotate the table, not the labels: the hand arriving at seat d
	// is the one that sat r quarter-turns counterclockwise. All four
	// hands are read from a snapshot before any write.
	old := board.Deal
	for _, d := range pbn.Directions {
		board.Deal.SetHand(d, old.Hand(d.Rotate(4-r)))
	}
	board.Deal.First = old.First.Rotate(r)
}
