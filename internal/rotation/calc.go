// Package rotation rewrites PBN deal records so the same hands can be
// replayed with rotated seat assignments. The engine transforms every
// seat-dependent field consistently while the format-preserving
// rewriter copies everything else from the source byte-for-byte.
package rotation

import "bridgewrangler/internal/pbn"

// Amount returns the number of clockwise quarter-turns (0-3) that
// carry from onto to.
func Amount(from, to pbn.Direction) int {
	return (to.Index() - from.Index() + 4) % 4
}
