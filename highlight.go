package litegrep

import (
	"strings"

	"github.com/fatih/color"
)

var matchColor = color.New(color.FgRed)

// Highlight returns line with every non-overlapping occurrence of pattern
// rendered in the match color, leaving all other characters unchanged.
// Matching positions are computed case-insensitively when requested, but
// the highlighted spans keep the original casing of the line.
func Highlight(line, pattern string, caseInsensitive bool) string {
	return highlightWith(line, pattern, caseInsensitive, matchColor.Sprint)
}

func highlightWith(line, pattern string, caseInsensitive bool, wrap func(a ...interface{}) string) string {
	if pattern == "" {
		return line
	}

	haystack := line
	needle := pattern
	var offsets []int
	if caseInsensitive {
		needle = strings.ToLower(pattern)
		haystack, offsets = foldLine(line)
	}

	var b strings.Builder
	prev := 0 // original-line offset up to which output has been copied
	i := 0    // folded-line scan cursor
	found := false

	for {
		idx := strings.Index(haystack[i:], needle)
		if idx < 0 {
			break
		}
		start := i + idx
		end := start + len(needle)

		origStart, origEnd := start, end
		if caseInsensitive {
			// A byte-level hit inside a folded rune has no counterpart in
			// the original line; step past it.
			if !runeAligned(offsets, start) || !runeAligned(offsets, end) {
				i = start + 1
				continue
			}
			origStart, origEnd = offsets[start], offsets[end]
		}

		b.WriteString(line[prev:origStart])
		b.WriteString(wrap(line[origStart:origEnd]))
		prev = origEnd
		i = end
		found = true
	}

	if !found {
		return line
	}
	b.WriteString(line[prev:])
	return b.String()
}
