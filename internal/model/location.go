package model

import "fmt"

// Location is a tile position on a map grid.
// Value type, passed by value.
type Location struct {
	X int32
	Y int32
}

// NewLocation creates a Location.
func NewLocation(x, y int32) Location {
	return Location{X: x, Y: y}
}

// Offset returns a new Location shifted by (dx, dy).
func (l Location) Offset(dx, dy int32) Location {
	l.X += dx
	l.Y += dy
	return l
}

// DistanceX returns l.X - x (positive when l is right of x).
func (l Location) DistanceX(x int32) int32 {
	return l.X - x
}

// DistanceY returns l.Y - y (positive when l is below y).
func (l Location) DistanceY(y int32) int32 {
	return l.Y - y
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}
