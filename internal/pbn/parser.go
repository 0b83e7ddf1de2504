package pbn

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTag splits a PBN tag line of the form `[Name "value"]` into
// its name and value. ok is false for anything else, including tag
// lines with unquoted values.
func ParseTag(line string) (name, value string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", "", false
	}
	inner := line[1 : len(line)-1]
	name, rest, found := strings.Cut(inner, " ")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", false
	}
	return name, rest[1 : len(rest)-1], true
}

// Parse reads PBN source text into ordered boards. Games are
// separated by blank lines; unknown tags and the call/card lines of
// auction and play sections are skipped, not errors. A malformed
// Deal tag aborts the parse.
func Parse(content string) (*File, error) {
	f := &File{}
	var cur *Board
	inComment := false

	flush := func() {
		if cur != nil {
			f.Boards = append(f.Boards, cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		// Free-text blocks may span lines and can contain anything,
		// including text that looks like tags.
		if inComment {
			if strings.HasSuffix(trimmed, "}") {
				inComment = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "{") {
			if !strings.HasSuffix(trimmed, "}") {
				inComment = true
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}
		if strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		name, value, ok := ParseTag(trimmed)
		if !ok {
			continue
		}
		if cur == nil {
			cur = &Board{}
		}

		switch name {
		case "Event":
			if f.EventTitle == "" && value != "" {
				f.EventTitle = value
			}
		case "Board":
			if n, err := strconv.Atoi(value); err == nil {
				cur.Number = n
			}
		case "Dealer":
			if d, ok := parseDirectionValue(value); ok {
				cur.Dealer = d
				cur.HasDealer = true
			}
		case "Vulnerable":
			if v, err := ParseVulnerability(value); err == nil {
				cur.Vulnerable = v
			}
		case "Deal":
			deal, err := parseDeal(value)
			if err != nil {
				return nil, fmt.Errorf("board %d: %w", len(f.Boards)+1, err)
			}
			cur.Deal = deal
		case "Declarer":
			cur.Declarer = value
		case "Contract":
			cur.Contract = value
		case "Auction":
			cur.AuctionFirst = value
		case "Play":
			cur.PlayFirst = value
		case "North":
			cur.Players.North = value
		case "East":
			cur.Players.East = value
		case "South":
			cur.Players.South = value
		case "West":
			cur.Players.West = value
		}
	}
	flush()

	return f, nil
}

func parseDirectionValue(value string) (Direction, bool) {
	if value == "" {
		return North, false
	}
	return ParseDirection(value[0])
}

// parseDeal parses a Deal tag value like
// "N:AKQ2.T98.876.5432 J53.AKQ.T92.AK76 ... ...". Hands are listed
// clockwise from the seat before the colon.
func parseDeal(value string) (Deal, error) {
	var deal Deal
	prefix, rest, found := strings.Cut(value, ":")
	if !found || len(prefix) != 1 {
		return deal, fmt.Errorf("invalid deal %q: missing seat prefix", value)
	}
	first, ok := ParseDirection(prefix[0])
	if !ok {
		return deal, fmt.Errorf("invalid deal %q: bad seat %q", value, prefix)
	}
	deal.First = first

	hands := strings.Fields(rest)
	if len(hands) != 4 {
		return deal, fmt.Errorf("invalid deal %q: expected 4 hands, got %d", value, len(hands))
	}
	for i, hs := range hands {
		h, err := parseHand(hs)
		if err != nil {
			return deal, fmt.Errorf("invalid deal %q: %w", value, err)
		}
		deal.SetHand(first.Rotate(i), h)
	}
	return deal, nil
}

// parseHand parses dotted suit notation; "-" denotes an unknown hand
// and parses as empty.
func parseHand(s string) (Hand, error) {
	if s == "-" {
		return Hand{}, nil
	}
	suits := strings.Split(s, ".")
	if len(suits) != 4 {
		return Hand{}, fmt.Errorf("hand %q: expected 4 suits, got %d", s, len(suits))
	}
	return Hand{Spades: suits[0], Hearts: suits[1], Diamonds: suits[2], Clubs: suits[3]}, nil
}
