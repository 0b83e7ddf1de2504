package rotation

import (
	"fmt"
	"regexp"
	"strings"
)

var directionWords = [4]string{"North", "East", "South", "West"}

// directionWordRE matches any whole-word compass direction name,
// case-insensitively.
var directionWordRE = regexp.MustCompile(`(?i)\b(north|east|south|west)\b`)

// RotateCommentary rewrites free-text commentary so that every
// whole-word compass direction name is rotated r positions clockwise,
// preserving each occurrence's letter-casing class (all-uppercase,
// capitalized, or all-lowercase). r of 0 returns text unchanged.
//
// The rewrite is two-phase: matches are first replaced with
// placeholder tokens encoding (direction index, case class), then the
// placeholders are substituted with the rotated names. A direct
// single-pass replace would be unsound because replacement text can
// itself match the search vocabulary and be rotated twice.
func RotateCommentary(text string, r int) string {
	r = ((r % 4) + 4) % 4
	if r == 0 {
		return text
	}

	tokenized := directionWordRE.ReplaceAllStringFunc(text, func(match string) string {
		idx := directionIndexOf(match)
		return fmt.Sprintf("\x00dir:%d:%s\x00", idx, caseClassOf(match))
	})

	var pairs []string
	for i := range directionWords {
		rotated := directionWords[(i+r)%4]
		pairs = append(pairs,
			fmt.Sprintf("\x00dir:%d:upper\x00", i), strings.ToUpper(rotated),
			fmt.Sprintf("\x00dir:%d:title\x00", i), rotated,
			fmt.Sprintf("\x00dir:%d:lower\x00", i), strings.ToLower(rotated),
		)
	}
	return strings.NewReplacer(pairs...).Replace(tokenized)
}

func directionIndexOf(word string) int {
	for i, name := range directionWords {
		if strings.EqualFold(word, name) {
			return i
		}
	}
	return 0
}

// caseClassOf classifies a matched word as upper ("NORTH"), title
// ("North" and any other capitalized mix), or lower ("north").
func caseClassOf(word string) string {
	if word == strings.ToUpper(word) {
		return "upper"
	}
	if word[0] >= 'A' && word[0] <= 'Z' {
		return "title"
	}
	return "lower"
}
