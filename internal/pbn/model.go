package pbn

import "strings"

// Hand is one player's thirteen (or fewer) cards, one rank string per
// suit in descending rank order, e.g. Spades "AKQ2".
type Hand struct {
	Spades   string
	Hearts   string
	Diamonds string
	Clubs    string
}

// Empty reports whether the hand holds no cards at all.
func (h Hand) Empty() bool {
	return h.Spades == "" && h.Hearts == "" && h.Diamonds == "" && h.Clubs == ""
}

// Render returns the compact dotted PBN hand notation, e.g.
// "AKQ2.T98.876.5432". A void suit renders as an empty segment.
func (h Hand) Render() string {
	return h.Spades + "." + h.Hearts + "." + h.Diamonds + "." + h.Clubs
}

// Deal holds the four hands keyed by direction, plus the seat the
// source listed first (the letter before the colon in the Deal tag).
type Deal struct {
	First Direction
	hands [4]Hand
}

// Hand returns the hand seated at d.
func (dl *Deal) Hand(d Direction) Hand {
	return dl.hands[d.Index()]
}

// SetHand places h at seat d.
func (dl *Deal) SetHand(d Direction, h Hand) {
	dl.hands[d.Index()] = h
}

// Empty reports whether all four hands are cardless. Such boards are
// placeholders and are excluded from processing entirely.
func (dl *Deal) Empty() bool {
	for _, h := range dl.hands {
		if !h.Empty() {
			return false
		}
	}
	return true
}

// Render produces the PBN Deal tag value with hands listed clockwise
// starting from first, e.g. "N:AKQ2.T98.876.5432 ... ... ...".
func (dl *Deal) Render(first Direction) string {
	var b strings.Builder
	b.WriteByte(first.Char())
	b.WriteByte(':')
	for i := 0; i < 4; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(dl.Hand(first.Rotate(i)).Render())
	}
	return b.String()
}

// Players holds the table's player names, when the source records
// them.
type Players struct {
	North string
	East  string
	South string
	West  string
}

// Board is one deal record. Number is 0 when the source carried no
// Board tag; the driver assigns sequential numbers in that case.
// HasDealer distinguishes an absent Dealer tag from North.
type Board struct {
	Number     int
	Dealer     Direction
	HasDealer  bool
	Vulnerable Vulnerability
	Deal       Deal
	Declarer   string
	Contract   string
	Players    Players

	// AuctionFirst/PlayFirst are the seat values of the Auction and
	// Play tags; the call and card lines themselves are not modeled
	// and survive only through the format-preserving rewrite.
	AuctionFirst string
	PlayFirst    string
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// File is a parsed PBN source: the boards in source order plus the
// file-level metadata the rewriter needs.
type File struct {
	Boards []*Board

	// EventTitle is the value of the first Event tag anywhere in the
	// source, reused verbatim when the rewriter synthesizes the
	// header of the first retained board.
	EventTitle string
}
