package main

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wizard-td/internal/core"
	"github.com/vovakirdan/wizard-td/internal/engine"
)

// Board glyphs. Defenders are numbered by their position in the roster.
const (
	glyphFree     = '·'
	glyphPath     = '='
	glyphEnemy    = 'o'
	glyphBoss     = 'O'
	glyphSkeleton = 's'
	glyphDrop     = '*'
)

// renderBoard dumps the field as text, two columns per cell, followed by a
// legend for the defender numbers.
func renderBoard(sim *engine.Simulation) string {
	grid := sim.Grid()
	snap := sim.Snapshot()
	c := core.NewCanvas(grid.Cols()*2, grid.Rows())

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			g := glyphFree
			if grid.IsPath(col, row) {
				g = glyphPath
			}
			c.Set(col*2, row, g)
		}
	}

	kinds := sim.Settings().DefenderKinds()
	number := make(map[string]rune, len(kinds))
	for i, k := range kinds {
		number[k] = rune('1' + i%9)
	}
	for _, d := range snap.Defenders {
		c.Set(d.Col*2, d.Row, number[d.Kind])
	}

	mark := func(pos core.Vec, g rune) {
		col, row := grid.WorldToGrid(pos.X, pos.Y)
		c.Set(col*2, row, g)
	}
	for _, d := range snap.Drops {
		mark(d.Pos, glyphDrop)
	}
	for _, s := range snap.Skeletons {
		mark(s.Pos, glyphSkeleton)
	}
	for _, e := range snap.Enemies {
		if e.Boss {
			mark(e.Pos, glyphBoss)
		} else {
			mark(e.Pos, glyphEnemy)
		}
	}

	legend := make([]string, 0, len(kinds))
	for _, k := range kinds {
		legend = append(legend, fmt.Sprintf("%c %s", number[k], k))
	}

	return c.String() + "\n\n" + strings.Join(legend, "  ")
}
