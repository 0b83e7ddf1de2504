package pbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	name, value, ok := ParseTag(`[Board "7"]`)
	require.True(t, ok)
	assert.Equal(t, "Board", name)
	assert.Equal(t, "7", value)

	name, value, ok = ParseTag(`  [Event "Spring Open"]  `)
	require.True(t, ok)
	assert.Equal(t, "Event", name)
	assert.Equal(t, "Spring Open", value)

	_, _, ok = ParseTag(`not a tag`)
	assert.False(t, ok)

	_, _, ok = ParseTag(`[Bare]`)
	assert.False(t, ok)

	_, _, ok = ParseTag(`[NoQuotes value]`)
	assert.False(t, ok)
}

const sampleSource = `% PBN 2.1
[Event "Spring Open"]
[Site "The Club"]
[Date "2024.03.01"]
[Board "1"]
[Dealer "N"]
[Vulnerable "NS"]
[Deal "N:AKQJ.AKQ.AKQ.AKQJ 5432.T98.T98.T98 T987.765.765.765 6.J432.J432.J432"]
[Declarer "S"]
[Contract "3NT"]
[North "Alice"]
[South "Bob"]
[Auction "N"]
1C Pass 1S Pass
3NT Pass Pass Pass

[Event "Spring Open"]
[Board "2"]
[Dealer "E"]
[Vulnerable "All"]
[Deal "E:AKQJ.AKQ.AKQ.AKQJ 5432.T98.T98.T98 T987.765.765.765 6.J432.J432.J432"]
{East had a tough opening decision here.}
`

func TestParse(t *testing.T) {
	f, err := Parse(sampleSource)
	require.NoError(t, err)
	require.Len(t, f.Boards, 2)
	assert.Equal(t, "Spring Open", f.EventTitle)

	b1 := f.Boards[0]
	assert.Equal(t, 1, b1.Number)
	require.True(t, b1.HasDealer)
	assert.Equal(t, North, b1.Dealer)
	assert.Equal(t, VulnNorthSouth, b1.Vulnerable)
	assert.Equal(t, "S", b1.Declarer)
	assert.Equal(t, "3NT", b1.Contract)
	assert.Equal(t, "Alice", b1.Players.North)
	assert.Equal(t, "Bob", b1.Players.South)
	assert.Equal(t, "N", b1.AuctionFirst)
	assert.Equal(t, North, b1.Deal.First)
	assert.Equal(t, "AKQJ", b1.Deal.Hand(North).Spades)
	assert.Equal(t, "5432", b1.Deal.Hand(East).Spades)

	b2 := f.Boards[1]
	assert.Equal(t, 2, b2.Number)
	assert.Equal(t, East, b2.Dealer)
	assert.Equal(t, VulnBoth, b2.Vulnerable)
	// Deal listed from East: first hand seats at East.
	assert.Equal(t, "AKQJ", b2.Deal.Hand(East).Spades)
	assert.Equal(t, "5432", b2.Deal.Hand(South).Spades)
}

func TestParseMalformedDeal(t *testing.T) {
	_, err := Parse(`[Deal "N:only two hands"]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 hands")

	_, err = Parse(`[Deal "X:a.b.c.d a.b.c.d a.b.c.d a.b.c.d"]`)
	require.Error(t, err)

	_, err = Parse(`[Deal "no prefix at all"]`)
	require.Error(t, err)
}

func TestParseSkipsCommentaryTags(t *testing.T) {
	src := "{ commentary mentioning\n[Board \"99\"]\nacross lines }\n[Board \"3\"]\n"
	f, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, f.Boards, 1)
	assert.Equal(t, 3, f.Boards[0].Number)
}

func TestDealRenderRoundTrip(t *testing.T) {
	const value = "N:AKQJ.AKQ.AKQ.AKQJ 5432.T98.T98.T98 T987.765.765.765 6.J432.J432.J432"
	deal, err := parseDeal(value)
	require.NoError(t, err)
	assert.Equal(t, value, deal.Render(North))

	// Rendering from another first seat keeps clockwise order.
	assert.Equal(t,
		"S:T987.765.765.765 6.J432.J432.J432 AKQJ.AKQ.AKQ.AKQJ 5432.T98.T98.T98",
		deal.Render(South))
}

func TestHandEmpty(t *testing.T) {
	assert.True(t, Hand{}.Empty())
	assert.False(t, Hand{Clubs: "2"}.Empty())

	var deal Deal
	assert.True(t, deal.Empty())
	deal.SetHand(West, Hand{Spades: "A"})
	assert.False(t, deal.Empty())
}
