package world

import (
	"fmt"
)

// Tile characters used by ASCII map rows.
const (
	TileFloor = '.'
	TileWall  = '#'
)

// Grid is one map: a rectangle of floor and wall tiles.
// Immutable after construction except through SetWall (tests, map scripts).
type Grid struct {
	id     int32
	width  int32
	height int32
	walls  []bool // row-major, len = width*height
}

// NewGrid creates an all-floor grid.
func NewGrid(id, width, height int32) *Grid {
	return &Grid{
		id:     id,
		width:  width,
		height: height,
		walls:  make([]bool, int(width)*int(height)),
	}
}

// ParseGrid builds a grid from ASCII rows ('.' floor, '#' wall).
// All rows must have the same width.
func ParseGrid(id int32, rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %d: no rows", id)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("map %d: empty row", id)
	}

	g := NewGrid(id, int32(width), int32(len(rows)))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map %d row %d: width %d, want %d", id, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case TileFloor:
			case TileWall:
				g.walls[y*width+x] = true
			default:
				return nil, fmt.Errorf("map %d row %d col %d: unknown tile %q", id, y, x, row[x])
			}
		}
	}
	return g, nil
}

// ID returns the map ID.
func (g *Grid) ID() int32 {
	return g.id
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int32 {
	return g.width
}

// Height returns the grid height in tiles.
func (g *Grid) Height() int32 {
	return g.height
}

// InBounds checks if (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int32) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds tiles count as walls.
func (g *Grid) IsWall(x, y int32) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.walls[y*g.width+x]
}

// SetWall marks (x, y) as wall or floor. Out-of-bounds calls are ignored.
func (g *Grid) SetWall(x, y int32, wall bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.walls[y*g.width+x] = wall
}
