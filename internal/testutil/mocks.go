package testutil

import (
	"github.com/udisondev/trailfollow/internal/model"
)

// MockMover is an in-memory movement engine for unit tests.
// Records every primitive call and moves freely on an unbounded grid
// unless the direction is blocked or FailAll is set.
type MockMover struct {
	name    string
	mapID   int32
	loc     model.Location
	through bool

	// Blocked directions make straight steps (and diagonal halves) fail.
	Blocked map[model.Direction]bool
	// FailAll makes every primitive fail without moving.
	FailAll bool

	// Calls lists issued primitives in order.
	Calls []model.MovementCommand
	// ThroughAtCall records the pass-through flag seen by each call.
	ThroughAtCall []bool
}

// NewMockMover creates a MockMover at (x, y) on TestMapID.
func NewMockMover(name string, x, y int32) *MockMover {
	return &MockMover{
		name:    name,
		mapID:   TestMapID,
		loc:     model.NewLocation(x, y),
		Blocked: make(map[model.Direction]bool),
	}
}

// Name returns the mover name.
func (m *MockMover) Name() string {
	return m.name
}

// MapID returns the map the mover is on.
func (m *MockMover) MapID() int32 {
	return m.mapID
}

// SetMapID moves the mover to another map (no call recorded).
func (m *MockMover) SetMapID(mapID int32) {
	m.mapID = mapID
}

// Location returns the current position.
func (m *MockMover) Location() model.Location {
	return m.loc
}

// SetLocation teleports the mover (no call recorded).
func (m *MockMover) SetLocation(x, y int32) {
	m.loc = model.NewLocation(x, y)
}

// Through returns the pass-through flag.
func (m *MockMover) Through() bool {
	return m.through
}

// SetThrough sets the pass-through flag.
func (m *MockMover) SetThrough(through bool) {
	m.through = through
}

// Step moves one tile in dir unless blocked.
func (m *MockMover) Step(dir model.Direction, turnOK bool) bool {
	m.record(model.StepCommand(dir, turnOK))
	if m.FailAll || m.Blocked[dir] || !dir.IsStraight() {
		return false
	}
	dx, dy := dir.Delta()
	m.loc = m.loc.Offset(dx, dy)
	return true
}

// DiagonalStep moves diagonally unless either half is blocked.
func (m *MockMover) DiagonalStep(horz, vert model.Direction) bool {
	m.record(model.DiagonalCommand(horz, vert))
	if m.FailAll || m.Blocked[horz] || m.Blocked[vert] {
		return false
	}
	dx, _ := horz.Delta()
	_, dy := vert.Delta()
	m.loc = m.loc.Offset(dx, dy)
	return true
}

// Jump moves by (dx, dy).
func (m *MockMover) Jump(dx, dy int32) bool {
	m.record(model.JumpCommand(dx, dy))
	if m.FailAll {
		return false
	}
	m.loc = m.loc.Offset(dx, dy)
	return true
}

func (m *MockMover) record(cmd model.MovementCommand) {
	m.Calls = append(m.Calls, cmd)
	m.ThroughAtCall = append(m.ThroughAtCall, m.through)
}
