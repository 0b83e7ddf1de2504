// Package pbn models Portable Bridge Notation records: compass
// directions, vulnerability, hands, deals, and boards, plus a
// tolerant line-oriented parser. The rotation engine consumes this
// package as its record collaborator; everything the parser does not
// model is preserved by the rewriter from the raw source text.
package pbn

import "fmt"

// Direction is a compass seat at the table. The four directions form
// a cyclic group of order 4 under clockwise rotation.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four seats in clockwise order.
var Directions = [4]Direction{North, East, South, West}

var directionNames = [4]string{"North", "East", "South", "West"}

var directionChars = [4]byte{'N', 'E', 'S', 'W'}

// ParseDirection parses a single PBN direction character (case
// insensitive). The second return value reports whether c named a
// direction.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case 'N', 'n':
		return North, true
	case 'E', 'e':
		return East, true
	case 'S', 's':
		return South, true
	case 'W', 'w':
		return West, true
	}
	return North, false
}

// Char returns the canonical single-character PBN form.
func (d Direction) Char() byte {
	return directionChars[d.Index()]
}

func (d Direction) String() string {
	return directionNames[d.Index()]
}

// Index returns the clockwise position: N=0, E=1, S=2, W=3.
func (d Direction) Index() int {
	i := int(d) % 4
	if i < 0 {
		i += 4
	}
	return i
}

// Rotate returns the direction r clockwise quarter-turns later.
// Rotating by r then by s equals rotating once by (r+s) mod 4.
func (d Direction) Rotate(r int) Direction {
	return Directions[(d.Index()+r%4+4)%4]
}

// Vulnerability is the scoring state of a board.
type Vulnerability int

const (
	VulnNone Vulnerability = iota
	VulnNorthSouth
	VulnEastWest
	VulnBoth
)

// ParseVulnerability parses a PBN Vulnerable tag value. It accepts
// the canonical tokens plus the synonyms the PBN standard allows.
func ParseVulnerability(s string) (Vulnerability, error) {
	switch s {
	case "None", "Love", "-":
		return VulnNone, nil
	case "NS":
		return VulnNorthSouth, nil
	case "EW":
		return VulnEastWest, nil
	case "All", "Both":
		return VulnBoth, nil
	}
	return VulnNone, fmt.Errorf("invalid vulnerability %q", s)
}

// Token returns the canonical PBN Vulnerable tag value.
func (v Vulnerability) Token() string {
	switch v {
	case VulnNorthSouth:
		return "NS"
	case VulnEastWest:
		return "EW"
	case VulnBoth:
		return "All"
	default:
		return "None"
	}
}

func (v Vulnerability) String() string { return v.Token() }

// Swap exchanges the two sides. None and Both are their own images.
func (v Vulnerability) Swap() Vulnerability {
	switch v {
	case VulnNorthSouth:
		return VulnEastWest
	case VulnEastWest:
		return VulnNorthSouth
	default:
		return v
	}
}

// vulnCycle is the standard duplicate vulnerability schedule,
// repeating every 16 boards.
var vulnCycle = [16]Vulnerability{
	VulnNone, VulnNorthSouth, VulnEastWest, VulnBoth,
	VulnNorthSouth, VulnEastWest, VulnBoth, VulnNone,
	VulnEastWest, VulnBoth, VulnNone, VulnNorthSouth,
	VulnBoth, VulnNone, VulnNorthSouth, VulnEastWest,
}

// VulnerabilityForBoard returns the standard vulnerability for a
// board number (1-based, 16-board cycle).
func VulnerabilityForBoard(number int) Vulnerability {
	if number < 1 {
		return VulnNone
	}
	return vulnCycle[(number-1)%16]
}
