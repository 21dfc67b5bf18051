package acrotex

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapLine soft-wraps line at word boundaries and hard-wraps words that are
// still too long. Width <= 0 disables wrapping.
func wrapLine(line string, width int) []string {
	if width <= 0 || ansi.PrintableRuneWidth(line) <= width {
		return []string{line}
	}
	wrapped := wrap.String(wordwrap.String(line, width), width)
	return strings.Split(wrapped, "\n")
}
