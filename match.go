package litegrep

import (
	"strings"
	"unicode"
)

// foldLine lower-cases s rune by rune, the same mapping strings.ToLower
// applies, and records for every byte of the folded string the byte offset
// of the originating rune in s. offsets carries one extra sentinel entry
// equal to len(s), so a folded span [start, end) maps back to the original
// span [offsets[start], offsets[end]).
//
// Folding can change byte widths (İ folds from two bytes to one, Ⱥ from two
// to three), so match positions found on the folded copy must go through
// this table before slicing the original line.
func foldLine(s string) (string, []int) {
	var b strings.Builder
	b.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		before := b.Len()
		b.WriteRune(unicode.ToLower(r))
		for n := b.Len() - before; n > 0; n-- {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(s))
	return b.String(), offsets
}

// runeAligned reports whether folded byte position k falls on a rune
// boundary of the folded string, i.e. whether it maps cleanly onto a rune
// boundary of the original line.
func runeAligned(offsets []int, k int) bool {
	return k == 0 || k == len(offsets)-1 || offsets[k] != offsets[k-1]
}
