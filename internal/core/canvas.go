package core

import (
	"strings"
)

// Canvas is a 2D character buffer. Hosts use it to dump a board as plain
// text without depending on a terminal library.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
}

// NewCanvas creates a canvas with the given dimensions, filled with spaces.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.cells = make([][]rune, c.height)
	for y := range c.cells {
		c.cells[y] = make([]rune, c.width)
	}
	c.Fill(' ')
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Fill fills the entire canvas with the given rune.
func (c *Canvas) Fill(r rune) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = r
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond the canvas are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r)
		i++
	}
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	return string(c.cells[y])
}

// String joins all rows with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(c.cells[y]))
	}
	return sb.String()
}
