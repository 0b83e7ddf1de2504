package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bridgewrangler/internal/pbn"
)

func testBoard() *pbn.Board {
	b := &pbn.Board{
		Number:     5,
		Dealer:     pbn.North,
		HasDealer:  true,
		Vulnerable: pbn.VulnNorthSouth,
	}
	b.Deal.First = pbn.North
	b.Deal.SetHand(pbn.North, pbn.Hand{Spades: "AKQJ"})
	b.Deal.SetHand(pbn.East, pbn.Hand{Spades: "5432"})
	b.Deal.SetHand(pbn.South, pbn.Hand{Spades: "T987"})
	b.Deal.SetHand(pbn.West, pbn.Hand{Spades: "6"})
	return b
}

func TestRotateBoardZeroIsIdentity(t *testing.T) {
	b := testBoard()
	want := b.Clone()
	RotateBoard(b, 0, false)
	assert.Equal(t, want, b)
}

func TestRotateBoardQuarterTurn(t *testing.T) {
	b := testBoard()
	RotateBoard(b, 1, false)

	assert.Equal(t, pbn.East, b.Dealer)
	// Odd rotation swaps the vulnerable sides.
	assert.Equal(t, pbn.VulnEastWest, b.Vulnerable)
	// The hand at each seat is the one that sat a quarter-turn
	// counterclockwise.
	assert.Equal(t, "6", b.Deal.Hand(pbn.North).Spades)
	assert.Equal(t, "AKQJ", b.Deal.Hand(pbn.East).Spades)
	assert.Equal(t, "5432", b.Deal.Hand(pbn.South).Spades)
	assert.Equal(t, "T987", b.Deal.Hand(pbn.West).Spades)
}

func TestRotateBoardHalfTurn(t *testing.T) {
	b := testBoard()
	RotateBoard(b, 2, false)

	assert.Equal(t, pbn.South, b.Dealer)
	// Even rotation leaves vulnerability alone.
	assert.Equal(t, pbn.VulnNorthSouth, b.Vulnerable)
	// Each seat holds what was previously opposite.
	assert.Equal(t, "T987", b.Deal.Hand(pbn.North).Spades)
	assert.Equal(t, "6", b.Deal.Hand(pbn.East).Spades)
	assert.Equal(t, "AKQJ", b.Deal.Hand(pbn.South).Spades)
	assert.Equal(t, "5432", b.Deal.Hand(pbn.West).Spades)
}

func TestRotateBoardComposes(t *testing.T) {
	a := testBoard()
	RotateBoard(a, 1, false)
	RotateBoard(a, 2, false)

	b := testBoard()
	RotateBoard(b, 3, false)

	assert.Equal(t, b, a)
}

func TestRotateBoardVulnerabilityUnaffected(t *testing.T) {
	// None and Both survive odd rotations.
	b := testBoard()
	b.Vulnerable = pbn.VulnNone
	RotateBoard(b, 3, false)
	assert.Equal(t, pbn.VulnNone, b.Vulnerable)

	b = testBoard()
	b.Vulnerable = pbn.VulnBoth
	RotateBoard(b, 1, false)
	assert.Equal(t, pbn.VulnBoth, b.Vulnerable)
}

func TestRotateBoardStandardVul(t *testing.T) {
	// Standard vulnerability comes from the board number, independent
	// of the rotation amount. Board 5 is NS in the standard schedule.
	b := testBoard()
	b.Vulnerable = pbn.VulnBoth
	RotateBoard(b, 1, true)
	assert.Equal(t, pbn.VulnNorthSouth, b.Vulnerable)

	// Unnumbered boards keep their vulnerability rather than guess.
	b = testBoard()
	b.Number = 0
	b.Vulnerable = pbn.VulnBoth
	RotateBoard(b, 2, true)
	assert.Equal(t, pbn.VulnBoth, b.Vulnerable)
}

func TestRotateBoardNoDealer(t *testing.T) {
	b := testBoard()
	b.HasDealer = false
	b.Dealer = pbn.North
	RotateBoard(b, 1, false)
	// An absent dealer stays absent; only present dealers rotate.
	assert.False(t, b.HasDealer)
	assert.Equal(t, pbn.North, b.Dealer)
}
