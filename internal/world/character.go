package world

import (
	"fmt"

	"github.com/udisondev/trailfollow/internal/model"
)

// Character is an actor on a grid map. It implements the movement
// primitives (step, diagonal step, jump, placement, transfer) and notifies
// its observers after each one.
//
// Accessed only from the tick goroutine, no locks.
type Character struct {
	objectID uint32
	name     string
	world    *World

	mapID    int32
	location model.Location
	facing   model.Direction
	through  bool

	lastMoveOK bool
	observers  []MoveObserver
}

// ObjectID returns the character's unique ID (immutable after creation).
func (c *Character) ObjectID() uint32 {
	return c.objectID
}

// Name returns the character name.
func (c *Character) Name() string {
	return c.name
}

// MapID returns the map the character is on.
func (c *Character) MapID() int32 {
	return c.mapID
}

// Location returns a copy of the character's position.
func (c *Character) Location() model.Location {
	return c.location
}

// Facing returns the direction the character faces.
func (c *Character) Facing() model.Direction {
	return c.facing
}

// Through reports whether the character ignores walls and other characters.
func (c *Character) Through() bool {
	return c.through
}

// SetThrough sets the pass-through flag.
func (c *Character) SetThrough(through bool) {
	c.through = through
}

// LastMoveSucceeded reports the result of the last movement primitive.
func (c *Character) LastMoveSucceeded() bool {
	return c.lastMoveOK
}

// AddObserver subscribes o to this character's movement events.
func (c *Character) AddObserver(o MoveObserver) {
	c.observers = append(c.observers, o)
}

// RemoveObserver unsubscribes o.
func (c *Character) RemoveObserver(o MoveObserver) {
	for i, existing := range c.observers {
		if existing == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// MoveTo places the character at (x, y) on its current map without
// collision checks.
func (c *Character) MoveTo(x, y int32) error {
	grid := c.world.Grid(c.mapID)
	if grid == nil {
		return fmt.Errorf("character %s: %w %d", c.name, ErrUnknownMap, c.mapID)
	}
	if !grid.InBounds(x, y) {
		return fmt.Errorf("character %s at (%d,%d) on map %d: %w", c.name, x, y, c.mapID, ErrOutOfBounds)
	}

	c.location = model.NewLocation(x, y)
	for _, o := range c.observers {
		o.OnMoveTo(c.mapID, x, y)
	}
	return nil
}

// Transfer moves the character to (x, y) on another map.
func (c *Character) Transfer(mapID, x, y int32) error {
	grid := c.world.Grid(mapID)
	if grid == nil {
		return fmt.Errorf("transfer %s: %w %d", c.name, ErrUnknownMap, mapID)
	}
	if !grid.InBounds(x, y) {
		return fmt.Errorf("transfer %s to (%d,%d) on map %d: %w", c.name, x, y, mapID, ErrOutOfBounds)
	}

	for _, o := range c.observers {
		o.OnSceneTransfer()
	}
	c.mapID = mapID
	return c.MoveTo(x, y)
}

// Step moves one tile in dir. With turnOK the character faces dir even
// when blocked.
func (c *Character) Step(dir model.Direction, turnOK bool) bool {
	ok := false
	if dir.IsStraight() {
		dx, dy := dir.Delta()
		dest := c.location.Offset(dx, dy)
		if c.canPass(dest) {
			c.facing = dir
			c.location = dest
			ok = true
		} else if turnOK {
			c.facing = dir
		}
	}

	c.lastMoveOK = ok
	for _, o := range c.observers {
		o.OnStep(dir, turnOK)
	}
	return ok
}

// DiagonalStep moves one tile horizontally and vertically at once. Either
// corner path must be clear.
func (c *Character) DiagonalStep(horz, vert model.Direction) bool {
	ok := false
	if horz.IsHorizontal() && vert.IsVertical() {
		hx, _ := horz.Delta()
		_, vy := vert.Delta()
		if hx != 0 || vy != 0 {
			dest := c.location.Offset(hx, vy)
			viaHorz := c.location.Offset(hx, 0)
			viaVert := c.location.Offset(0, vy)
			if c.canPass(dest) && (c.canPass(viaHorz) || c.canPass(viaVert)) {
				c.location = dest
				ok = true
			}
			if horz != model.DirNone {
				c.facing = horz
			} else {
				c.facing = vert
			}
		}
	}

	c.lastMoveOK = ok
	for _, o := range c.observers {
		o.OnDiagonalStep(horz, vert)
	}
	return ok
}

// Jump lands on (x+dx, y+dy), passing over anything in between.
// Jumping in place always succeeds.
func (c *Character) Jump(dx, dy int32) bool {
	ok := true
	if dx != 0 || dy != 0 {
		dest := c.location.Offset(dx, dy)
		ok = c.canPass(dest)
		if ok {
			c.location = dest
		}
		c.facing = jumpFacing(dx, dy)
	}

	c.lastMoveOK = ok
	for _, o := range c.observers {
		o.OnJump(dx, dy)
	}
	return ok
}

// canPass checks whether the character may occupy loc on its map.
// The character's own tile never blocks it.
func (c *Character) canPass(loc model.Location) bool {
	grid := c.world.Grid(c.mapID)
	if grid == nil || !grid.InBounds(loc.X, loc.Y) {
		return false
	}
	if c.through || loc == c.location {
		return true
	}
	if grid.IsWall(loc.X, loc.Y) {
		return false
	}
	return !c.world.IsOccupied(c.mapID, loc, c.objectID)
}

func jumpFacing(dx, dy int32) model.Direction {
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return model.DirRight
		}
		return model.DirLeft
	}
	if dy > 0 {
		return model.DirDown
	}
	return model.DirUp
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
