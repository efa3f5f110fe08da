package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wizard-td/internal/config"
	"github.com/vovakirdan/wizard-td/internal/core"
)

// GridPosition is a grid cell together with its world-space centre.
type GridPosition struct {
	Col int
	Row int
	X   float64
	Y   float64
}

// Pos returns the world position of the cell centre.
func (p GridPosition) Pos() core.Vec {
	return core.V(p.X, p.Y)
}

// Grid is the placement board and the fixed enemy path.
// Occupied cells are unavailable for defenders; path cells are always occupied.
type Grid struct {
	cols     int
	rows     int
	tileSize float64
	offsetX  float64
	offsetY  float64

	waypoints []config.Cell
	pathTiles map[config.Cell]bool
	path      []GridPosition
	occupied  [][]bool // [row][col], true = unavailable
}

// NewGrid builds a grid from configuration. The path must be non-empty and
// lie entirely on the board.
func NewGrid(cfg config.GridConfig) (*Grid, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("engine: grid must have positive size, got %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("engine: tile size must be positive, got %v", cfg.TileSize)
	}
	if len(cfg.Path) == 0 {
		return nil, fmt.Errorf("engine: grid path is empty")
	}

	g := &Grid{
		cols:      cfg.Cols,
		rows:      cfg.Rows,
		tileSize:  cfg.TileSize,
		offsetX:   cfg.OffsetX,
		offsetY:   cfg.OffsetY,
		waypoints: append([]config.Cell(nil), cfg.Path...),
		pathTiles: make(map[config.Cell]bool, len(cfg.Path)),
	}

	for _, c := range g.waypoints {
		if !g.InBounds(c.Col, c.Row) {
			return nil, fmt.Errorf("engine: path cell (%d,%d) is off the grid", c.Col, c.Row)
		}
		g.pathTiles[c] = true
	}

	g.path = make([]GridPosition, len(g.waypoints))
	for i, c := range g.waypoints {
		p := g.GridToWorld(c.Col, c.Row)
		g.path[i] = GridPosition{Col: c.Col, Row: c.Row, X: p.X, Y: p.Y}
	}

	g.Reset()
	return g, nil
}

// Cols returns the board width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the board height in cells.
func (g *Grid) Rows() int { return g.rows }

// TileSize returns the edge length of a cell in world units.
func (g *Grid) TileSize() float64 { return g.tileSize }

// GridToWorld returns the world position of a cell centre.
func (g *Grid) GridToWorld(col, row int) core.Vec {
	return core.Vec{
		X: g.offsetX + float64(col)*g.tileSize + g.tileSize/2,
		Y: g.offsetY + float64(row)*g.tileSize + g.tileSize/2,
	}
}

// WorldToGrid returns the cell containing a world position.
// The result may be out of range; callers must bounds-check.
func (g *Grid) WorldToGrid(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.offsetX) / g.tileSize))
	row = int(math.Floor((y - g.offsetY) / g.tileSize))
	return col, row
}

// InBounds reports whether the cell lies on the board.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CanPlace reports whether a defender may be placed on the cell.
func (g *Grid) CanPlace(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return !g.occupied[row][col]
}

// Place marks the cell occupied if it was available.
func (g *Grid) Place(col, row int) bool {
	if !g.CanPlace(col, row) {
		return false
	}
	g.occupied[row][col] = true
	return true
}

// IsPath reports whether the cell belongs to the enemy path.
func (g *Grid) IsPath(col, row int) bool {
	return g.pathTiles[config.Cell{Col: col, Row: row}]
}

// Path returns the ordered waypoints resolved to world coordinates.
// The returned slice is a copy.
func (g *Grid) Path() []GridPosition {
	return append([]GridPosition(nil), g.path...)
}

// FreeCells returns every placeable cell in row-major order.
func (g *Grid) FreeCells() []config.Cell {
	var cells []config.Cell
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.occupied[row][col] {
				cells = append(cells, config.Cell{Col: col, Row: row})
			}
		}
	}
	return cells
}

// Reset discards all placements, leaving only path cells occupied.
func (g *Grid) Reset() {
	g.occupied = make([][]bool, g.rows)
	for row := range g.occupied {
		g.occupied[row] = make([]bool, g.cols)
	}
	for _, c := range g.waypoints {
		g.occupied[c.Row][c.Col] = true
	}
}
