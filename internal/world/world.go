package world

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/trailfollow/internal/model"
)

var (
	// ErrUnknownMap is returned when a map ID is not registered.
	ErrUnknownMap = errors.New("unknown map")
	// ErrOutOfBounds is returned when a placement lies outside its map.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// World holds the maps and the characters on them.
// One instance per simulation, passed explicitly to whoever needs it.
// Accessed only from the tick goroutine, no locks.
type World struct {
	grids      map[int32]*Grid
	characters map[uint32]*Character
	order      []uint32 // spawn order, for deterministic iteration
	ids        *ObjectIDGenerator
}

// New creates an empty world.
func New() *World {
	return &World{
		grids:      make(map[int32]*Grid),
		characters: make(map[uint32]*Character),
		ids:        NewObjectIDGenerator(),
	}
}

// AddGrid registers a map. A grid with the same ID is replaced.
func (w *World) AddGrid(g *Grid) {
	w.grids[g.ID()] = g
	slog.Debug("map registered", "mapID", g.ID(), "width", g.Width(), "height", g.Height())
}

// Grid returns the map with the given ID, or nil.
func (w *World) Grid(mapID int32) *Grid {
	return w.grids[mapID]
}

// SpawnLeader creates a leader character and places it at (x, y).
// Observers are attached before placement so they see the initial OnMoveTo.
func (w *World) SpawnLeader(name string, mapID, x, y int32, observers ...MoveObserver) (*Character, error) {
	return w.spawn(w.ids.NextLeaderID(), name, mapID, x, y, observers)
}

// Spawn creates a non-leader character and places it at (x, y).
func (w *World) Spawn(name string, mapID, x, y int32, observers ...MoveObserver) (*Character, error) {
	return w.spawn(w.ids.NextCharacterID(), name, mapID, x, y, observers)
}

func (w *World) spawn(objectID uint32, name string, mapID, x, y int32, observers []MoveObserver) (*Character, error) {
	if w.grids[mapID] == nil {
		return nil, fmt.Errorf("spawning %s: %w %d", name, ErrUnknownMap, mapID)
	}

	c := &Character{
		objectID: objectID,
		name:     name,
		world:    w,
		mapID:    mapID,
		facing:   model.DirDown,
	}
	for _, o := range observers {
		c.AddObserver(o)
	}
	if err := c.MoveTo(x, y); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", name, err)
	}

	w.characters[objectID] = c
	w.order = append(w.order, objectID)

	slog.Debug("character spawned",
		"objectID", objectID,
		"name", name,
		"mapID", mapID,
		"x", x,
		"y", y)
	return c, nil
}

// Remove deletes a character from the world.
func (w *World) Remove(objectID uint32) {
	if _, ok := w.characters[objectID]; !ok {
		return
	}
	delete(w.characters, objectID)
	for i, id := range w.order {
		if id == objectID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Character returns the character with the given ID.
func (w *World) Character(objectID uint32) (*Character, bool) {
	c, ok := w.characters[objectID]
	return c, ok
}

// Characters returns all characters in spawn order.
func (w *World) Characters() []*Character {
	out := make([]*Character, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.characters[id])
	}
	return out
}

// IsOccupied reports whether a solid character other than except stands
// on loc. Characters with pass-through set never block.
func (w *World) IsOccupied(mapID int32, loc model.Location, except uint32) bool {
	for id, c := range w.characters {
		if id == except || c.through || c.mapID != mapID {
			continue
		}
		if c.location == loc {
			return true
		}
	}
	return false
}
