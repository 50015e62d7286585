package dropdown

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered block placed at an absolute position. Higher Z is
// drawn later and so ends up on top.
type Layer struct {
	Content string
	At      Point
	Z       int
}

// Bounds returns the cells the layer covers.
func (l Layer) Bounds() Rect {
	if l.Content == "" {
		return Rect{X: l.At.X, Y: l.At.Y}
	}
	lines := strings.Split(l.Content, "\n")
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return Rect{X: l.At.X, Y: l.At.Y, Width: w, Height: len(lines)}
}

// Composite draws layers over a fully rendered background frame in
// ascending Z order; layers with equal Z keep their argument order. The
// background is padded to totalHeight rows and the result is clipped to it.
// A totalHeight of zero keeps the background's own height.
func Composite(background string, totalHeight int, layers ...Layer) string {
	bgLines := strings.Split(background, "\n")
	if totalHeight <= 0 {
		totalHeight = len(bgLines)
	}
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	ordered := make([]Layer, 0, len(layers))
	for _, l := range layers {
		if l.Content != "" {
			ordered = append(ordered, l)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Z < ordered[j].Z
	})

	for _, l := range ordered {
		startCol := l.At.X
		if startCol < 0 {
			startCol = 0
		}
		for i, line := range strings.Split(l.Content, "\n") {
			row := l.At.Y + i
			if row < 0 {
				continue
			}
			if row >= totalHeight {
				break
			}
			bgLines[row] = overlayLine(bgLines[row], line, startCol)
		}
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

// overlayLine replaces the cells of bg starting at col with fg, keeping any
// background styling to the left and right intact.
func overlayLine(bg, fg string, col int) string {
	bgWidth := ansi.StringWidth(bg)
	left := ansi.Truncate(bg, col, "")
	if bgWidth < col {
		left += strings.Repeat(" ", col-bgWidth)
	}
	end := col + ansi.StringWidth(fg)
	right := ""
	if end < bgWidth {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}
