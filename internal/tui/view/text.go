package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to width terminal cells, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// window returns the first index of a height-sized slice of n rows that
// keeps cursor visible.
func window(cursor, n, height int) (start, end int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if cursor >= height {
		start = cursor - height + 1
	}
	end = start + height
	if end > n {
		end = n
	}
	return start, end
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
