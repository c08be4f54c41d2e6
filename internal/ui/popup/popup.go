// Package popup provides the component contract for overlays and the
// ANSI-aware composition of an overlay onto a base view.
package popup

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws view on top of base with its top-left corner at (x, y).
// Lines of view that fall below the base are dropped.
func Overlay(base, view string, x, y, width int) string {
	if view == "" {
		return base
	}
	lines := strings.Split(view, "\n")
	shifted := make([]string, 0, y+len(lines))
	for range y {
		shifted = append(shifted, "")
	}
	pad := strings.Repeat(" ", max(x, 0))
	for _, line := range lines {
		shifted = append(shifted, pad+line)
	}
	return Compose(base, strings.Join(shifted, "\n"), width)
}

// Compose draws view over base line by line. Only the visible span of each
// view line (leading and trailing blanks excluded) replaces base cells.
func Compose(base, view string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(view, "\n") {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = splice(baseLines[i], line, width)
	}
	return strings.Join(baseLines, "\n")
}

func splice(under, over string, width int) string {
	plain := ansi.Strip(over)
	from := len(plain) - len(strings.TrimLeft(plain, " "))
	to := ansi.StringWidth(strings.TrimRight(plain, " "))
	if to <= from {
		return under
	}
	if w := ansi.StringWidth(under); w < width {
		under += strings.Repeat(" ", width-w)
	}

	var b strings.Builder
	b.WriteString(cells(under, 0, from))
	b.WriteString(ansi.Cut(over, from, to))
	if to < width {
		b.WriteString(cells(under, to, width))
	}
	return b.String()
}

// cells cuts [from, to) out of s and keeps the result exactly to-from cells
// wide when a wide rune straddles either edge.
func cells(s string, from, to int) string {
	want := to - from
	cut := ansi.Cut(s, from, to)
	w := ansi.StringWidth(cut)
	switch {
	case w < want:
		cut += strings.Repeat(" ", want-w)
	case w > want:
		cut = " " + ansi.Cut(cut, w-want+1, w)
	}
	return cut
}
