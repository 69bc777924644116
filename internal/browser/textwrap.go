package browser

import (
	"github.com/mattn/go-runewidth"
)

// softWrap breaks s into lines no wider than width terminal cells.
// Breaks land on spaces where possible, consuming the space the line
// broke on; words wider than the viewport are hard-split. Interior
// whitespace is otherwise preserved, not collapsed: this wraps
// preformatted text.
func softWrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	var out []string
	var line []rune
	lineWidth := 0
	lastSpace := -1

	for _, r := range s {
		rw := runewidth.RuneWidth(r)

		if lineWidth+rw > width {
			if r == ' ' {
				// The break lands exactly on this space; it becomes
				// the line break itself.
				out = append(out, string(line))
				line = line[:0]
				lineWidth = 0
				lastSpace = -1
				continue
			}

			// A rune wider than the viewport gets a line of its own
			// rather than a leading blank.
			if len(line) > 0 {
				br := len(line)
				if lastSpace >= 0 {
					br = lastSpace + 1
				}
				out = append(out, string(line[:br]))

				line = append([]rune(nil), line[br:]...)
				lineWidth = 0
				lastSpace = -1
				for i, rest := range line {
					lineWidth += runewidth.RuneWidth(rest)
					if rest == ' ' {
						lastSpace = i
					}
				}
			}
		}

		if r == ' ' {
			lastSpace = len(line)
		}
		line = append(line, r)
		lineWidth += rw
	}

	out = append(out, string(line))
	return out
}

// truncate cuts s to width terminal cells, marking the cut with an
// ellipsis. Used for no-wrap blocks, where overflow must not reflow.
func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
