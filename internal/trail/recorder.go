package trail

import (
	"log/slog"

	"github.com/udisondev/trailfollow/internal/model"
)

// DefaultMaxLength is the default cap on recorded commands per session.
const DefaultMaxLength = 500

// Recorder records the leader's movement commands into a bounded log.
//
// The log has two explicit states: absent (no session, or the session was
// invalidated by a scene transfer) and recording (possibly empty). Commands
// beyond maxLength are dropped, older history is kept.
//
// Single writer (the leader's movement hooks), many readers (followers).
// Accessed only from the tick goroutine, no locks.
type Recorder struct {
	maxLength int

	startMap int32
	start    model.Location
	hasStart bool

	recording bool
	log       []model.MovementCommand

	session uint32
	dropped int
}

// NewRecorder creates a Recorder with no active log.
// maxLength <= 0 falls back to DefaultMaxLength.
func NewRecorder(maxLength int) *Recorder {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Recorder{maxLength: maxLength}
}

// BeginRecording starts a new session with an empty log.
// The start position is left untouched.
func (r *Recorder) BeginRecording() {
	r.recording = true
	r.log = make([]model.MovementCommand, 0, min(r.maxLength, 64))
	r.session++
	r.dropped = 0

	slog.Debug("trail recording started",
		"session", r.session,
		"start", r.start,
		"startMap", r.startMap,
		"hasStart", r.hasStart)
}

// OnMoveTo snapshots the leader's absolute placement as the trail start.
func (r *Recorder) OnMoveTo(mapID, x, y int32) {
	r.startMap = mapID
	r.start = model.NewLocation(x, y)
	r.hasStart = true
}

// OnStep records a straight step.
func (r *Recorder) OnStep(dir model.Direction, turnOK bool) {
	r.record(model.StepCommand(dir, turnOK))
}

// OnDiagonalStep records a diagonal step.
func (r *Recorder) OnDiagonalStep(horz, vert model.Direction) {
	r.record(model.DiagonalCommand(horz, vert))
}

// OnJump records a jump.
func (r *Recorder) OnJump(dx, dy int32) {
	r.record(model.JumpCommand(dx, dy))
}

// OnSceneTransfer discards the log. Followers see it as absent until a
// new session begins.
func (r *Recorder) OnSceneTransfer() {
	if !r.recording {
		return
	}
	slog.Debug("trail invalidated by scene transfer",
		"session", r.session,
		"length", len(r.log))
	r.recording = false
	r.log = nil
}

func (r *Recorder) record(cmd model.MovementCommand) {
	if !r.recording {
		return
	}
	if len(r.log) >= r.maxLength {
		if r.dropped == 0 {
			slog.Debug("trail record cap reached",
				"session", r.session,
				"maxLength", r.maxLength)
		}
		r.dropped++
		return
	}
	r.log = append(r.log, cmd)
}

// Recording reports whether a log is present.
func (r *Recorder) Recording() bool {
	return r.recording
}

// StartPosition returns the last OnMoveTo snapshot.
// ok is false if the leader was never placed.
func (r *Recorder) StartPosition() (loc model.Location, ok bool) {
	return r.start, r.hasStart
}

// StartMapID returns the map of the last OnMoveTo snapshot.
func (r *Recorder) StartMapID() int32 {
	return r.startMap
}

// Len returns the number of recorded commands (0 when absent).
func (r *Recorder) Len() int {
	return len(r.log)
}

// Command returns the command at index i.
// ok is false when the log is absent or i is out of range.
func (r *Recorder) Command(i int) (cmd model.MovementCommand, ok bool) {
	if !r.recording || i < 0 || i >= len(r.log) {
		return model.MovementCommand{}, false
	}
	return r.log[i], true
}

// MaxLength returns the capacity of a session's log.
func (r *Recorder) MaxLength() int {
	return r.maxLength
}

// Session returns how many times recording has begun.
func (r *Recorder) Session() uint32 {
	return r.session
}

// Dropped returns how many commands the current session discarded at the cap.
func (r *Recorder) Dropped() int {
	return r.dropped
}
