package views

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Axis selects which dimension a Spacer occupies. The zero value is vertical.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
	AxisBoth
)

// Spacer returns a blank block of size pixels. A vertical spacer is one
// pixel wide, a horizontal one is one pixel tall.
func Spacer(size int, axis Axis) *html.Node {
	width, height := size, size
	switch axis {
	case AxisVertical:
		width = 1
	case AxisHorizontal:
		height = 1
	}
	style := Style{
		{"display", "block"},
		{"width", fmt.Sprintf("%dpx", width)},
		{"min-width", fmt.Sprintf("%dpx", width)},
		{"height", fmt.Sprintf("%dpx", height)},
		{"min-height", fmt.Sprintf("%dpx", height)},
	}
	return newElement(atom.Span, style)
}
