package trail

import (
	"log/slog"

	"github.com/udisondev/trailfollow/internal/model"
)

// CommandMover executes movement primitives. Primitives are synchronous
// and report whether the actor moved.
type CommandMover interface {
	Step(dir model.Direction, turnOK bool) bool
	DiagonalStep(horz, vert model.Direction) bool
	Jump(dx, dy int32) bool
}

// Mover is the movement engine surface a follower drives.
type Mover interface {
	CommandMover
	Name() string
	MapID() int32
	Location() model.Location
	Through() bool
	SetThrough(through bool)
}

// Apply issues the primitive matching cmd and returns its result.
func Apply(m CommandMover, cmd model.MovementCommand) bool {
	switch cmd.Kind() {
	case model.CommandStep:
		dir, turnOK := cmd.Step()
		return m.Step(dir, turnOK)
	case model.CommandDiagonal:
		horz, vert := cmd.Diagonal()
		return m.DiagonalStep(horz, vert)
	case model.CommandJump:
		dx, dy := cmd.Jump()
		return m.Jump(dx, dy)
	default:
		return false
	}
}

// SeekFunc moves m one step toward target and reports whether it moved.
// Injected so a pathfinder can replace StepToward.
type SeekFunc func(m Mover, target model.Location) bool

// StepToward takes one straight step toward target along the axis with the
// larger offset (vertical on ties). If that step fails and the other axis
// has a nonzero offset, the other axis is tried.
func StepToward(m Mover, target model.Location) bool {
	loc := m.Location()
	sx := loc.DistanceX(target.X)
	sy := loc.DistanceY(target.Y)

	horz := model.DirRight
	if sx > 0 {
		horz = model.DirLeft
	}
	vert := model.DirDown
	if sy > 0 {
		vert = model.DirUp
	}

	if abs32(sx) > abs32(sy) {
		if m.Step(horz, true) {
			return true
		}
		return sy != 0 && m.Step(vert, true)
	}
	if sy != 0 {
		if m.Step(vert, true) {
			return true
		}
		return sx != 0 && m.Step(horz, true)
	}
	return false
}

// Follower replays a Recorder's trail for one actor.
//
// SEEKING_START: step toward the recorder's start position until the actor
// stands on it once, on the same map. A follower on another map idles. REPLAYING: dispatch one recorded command per tick and
// advance the cursor whether or not the move succeeded.
//
// Holds a non-owning reference to the recorder and never writes its log.
type Follower struct {
	mover Mover
	trail *Recorder
	seek  SeekFunc

	reachedStart bool
	cursor       int
	hasCursor    bool
}

// NewFollower creates a follower tracking rec.
func NewFollower(mover Mover, rec *Recorder) *Follower {
	return &Follower{
		mover: mover,
		trail: rec,
		seek:  StepToward,
	}
}

// SetSeekFunc replaces the seek-phase movement primitive.
func (f *Follower) SetSeekFunc(seek SeekFunc) {
	if seek == nil {
		seek = StepToward
	}
	f.seek = seek
}

// Watch makes sure the recorder has an active log without moving.
func (f *Follower) Watch() {
	if !f.trail.Recording() {
		f.trail.BeginRecording()
	}
}

// Follow advances the follower by at most one movement primitive.
// Call once per tick.
func (f *Follower) Follow() {
	f.Watch()

	start, ok := f.trail.StartPosition()
	if !ok {
		return
	}
	// The start is only reachable from the leader's map at snapshot time.
	if f.mover.MapID() != f.trail.StartMapID() {
		return
	}

	if !f.reachedStart && f.mover.Location() == start {
		f.reachedStart = true
		slog.Debug("follower reached trail start",
			"name", f.mover.Name(),
			"start", start)
	}

	if !f.reachedStart {
		f.seek(f.mover, start)
		return
	}

	if !f.hasCursor {
		f.cursor = 0
		f.hasCursor = true
	}

	cmd, ok := f.trail.Command(f.cursor)
	if !ok {
		return
	}

	prevThrough := f.mover.Through()
	f.mover.SetThrough(false)
	Apply(f.mover, cmd)
	f.mover.SetThrough(prevThrough)

	f.cursor++
}

// State returns the follower's current state.
func (f *Follower) State() model.FollowState {
	if f.reachedStart {
		return model.FollowReplaying
	}
	return model.FollowSeekingStart
}

// ReachedStart reports whether the follower has stood on the start position.
func (f *Follower) ReachedStart() bool {
	return f.reachedStart
}

// Cursor returns the next log index to replay.
// ok is false until replay has begun.
func (f *Follower) Cursor() (cursor int, ok bool) {
	return f.cursor, f.hasCursor
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
