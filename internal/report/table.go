package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	labelWidth     = 30
	separatorWidth = 50
)

// dotPad left-justifies label and fills the remaining columns with dots.
func dotPad(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return label
	}
	return label + strings.Repeat(".", width-w)
}

func separator(ch rune) string {
	return strings.Repeat(string(ch), separatorWidth)
}
