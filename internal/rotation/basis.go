package rotation

import (
	"fmt"
	"strings"

	"bridgewrangler/internal/pbn"
)

// Basis selects how the engine determines the direction a board is
// currently oriented to, before computing the rotation to its target.
type Basis int

const (
	// BasisStandard tries, in priority order: the RotationBasis tag,
	// the Student tag, the Declarer tag, the board's dealer, then
	// falls back to North.
	BasisStandard Basis = iota
	// BasisTag reads the RotationBasis tag.
	BasisTag
	// BasisStudent reads the Student tag.
	BasisStudent
	// BasisDeclarer reads the Declarer tag.
	BasisDeclarer
	// BasisDealer uses the board's dealer.
	BasisDealer
	// BasisDeal uses the first-listed seat of the Deal tag, falling
	// back to the dealer when the board has no deal.
	BasisDeal
	// BasisNorth through BasisWest assume every board is oriented to
	// that fixed direction, ignoring board data.
	BasisNorth
	BasisEast
	BasisSouth
	BasisWest
)

var basisNames = map[Basis]string{
	BasisStandard: "standard",
	BasisTag:      "basis-tag",
	BasisStudent:  "student",
	BasisDeclarer: "declarer",
	BasisDealer:   "dealer",
	BasisDeal:     "deal",
	BasisNorth:    "north",
	BasisEast:     "east",
	BasisSouth:    "south",
	BasisWest:     "west",
}

// ParseBasis parses a basis mode name as given on the command line.
func ParseBasis(s string) (Basis, error) {
	for b, name := range basisNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return BasisStandard, fmt.Errorf("invalid rotation basis %q", s)
}

func (b Basis) String() string {
	if name, ok := basisNames[b]; ok {
		return name
	}
	return "standard"
}

// ResolveBasis determines the direction board is oriented to under
// mode, together with a label naming the source that resolved it
// (used in RotationNote diagnostics). Unresolvable inputs fall back
// to North; resolution never fails.
func ResolveBasis(board *pbn.Board, tags map[string]string, mode Basis) (pbn.Direction, string) {
	tagDirection := func(name string) (pbn.Direction, bool) {
		v, ok := tags[name]
		if !ok || v == "" {
			return pbn.North, false
		}
		return pbn.ParseDirection(v[0])
	}

	switch mode {
	case BasisStandard:
		if d, ok := tagDirection("RotationBasis"); ok {
			return d, "RotationBasis"
		}
		if d, ok := tagDirection("Student"); ok {
			return d, "Student"
		}
		if d, ok := tagDirection("Declarer"); ok {
			return d, "Declarer"
		}
		if board.HasDealer {
			return board.Dealer, "Dealer"
		}
		return pbn.North, "North"
	case BasisTag:
		d, _ := tagDirection("RotationBasis")
		return d, "RotationBasis"
	case BasisStudent:
		d, _ := tagDirection("Student")
		return d, "Student"
	case BasisDeclarer:
		d, _ := tagDirection("Declarer")
		return d, "Declarer"
	case BasisDealer:
		return dealerOrNorth(board), "Dealer"
	case BasisDeal:
		if !board.Deal.Empty() {
			return board.Deal.First, "Deal"
		}
		return dealerOrNorth(board), "Deal"
	case BasisNorth:
		return pbn.North, "North"
	case BasisEast:
		return pbn.East, "East"
	case BasisSouth:
		return pbn.South, "South"
	case BasisWest:
		return pbn.West, "West"
	}
	return pbn.North, "North"
}

func dealerOrNorth(board *pbn.Board) pbn.Direction {
	if board.HasDealer {
		return board.Dealer
	}
	return pbn.North
}
