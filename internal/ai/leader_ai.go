package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/trailfollow/internal/model"
	"github.com/udisondev/trailfollow/internal/trail"
)

// RouteKind tags a RouteStep.
type RouteKind uint8

const (
	RouteMove RouteKind = iota
	RouteTransfer
	RouteWait
)

// RouteStep is one scripted leader action.
type RouteStep struct {
	Kind    RouteKind
	Command model.MovementCommand // RouteMove

	MapID int32 // RouteTransfer
	X     int32
	Y     int32

	Ticks int // RouteWait
}

// MoveStep returns a route step issuing cmd.
func MoveStep(cmd model.MovementCommand) RouteStep {
	return RouteStep{Kind: RouteMove, Command: cmd}
}

// TransferStep returns a route step moving the leader to another map.
func TransferStep(mapID, x, y int32) RouteStep {
	return RouteStep{Kind: RouteTransfer, MapID: mapID, X: x, Y: y}
}

// WaitStep returns a route step that idles for ticks ticks.
func WaitStep(ticks int) RouteStep {
	return RouteStep{Kind: RouteWait, Ticks: ticks}
}

// LeaderBody is the character a LeaderAI drives.
type LeaderBody interface {
	trail.CommandMover
	Name() string
	ObjectID() uint32
	Transfer(mapID, x, y int32) error
}

// LeaderAI walks the leader along a scripted route, one action per tick.
// State machine: MOVE_TO (route in progress) → IDLE (route finished).
type LeaderAI struct {
	body      LeaderBody
	route     []RouteStep
	loop      bool
	isRunning atomic.Bool
	intention atomic.Int32

	index    int
	waitLeft int
}

// NewLeaderAI creates a leader controller.
func NewLeaderAI(body LeaderBody, route []RouteStep, loop bool) *LeaderAI {
	return &LeaderAI{
		body:  body,
		route: route,
		loop:  loop,
	}
}

// Name returns the leader's name.
func (ai *LeaderAI) Name() string {
	return ai.body.Name()
}

// Start starts the controller
func (ai *LeaderAI) Start() {
	ai.isRunning.Store(true)
	if len(ai.route) > 0 {
		ai.SetIntention(model.IntentionMoveTo)
	}
	slog.Debug("leader AI started",
		"name", ai.body.Name(),
		"objectID", ai.body.ObjectID(),
		"route", len(ai.route),
		"loop", ai.loop)
}

// Stop stops the controller
func (ai *LeaderAI) Stop() {
	ai.isRunning.Store(false)
	ai.SetIntention(model.IntentionIdle)
	slog.Debug("leader AI stopped", "name", ai.body.Name())
}

// SetIntention sets the controller's intention
func (ai *LeaderAI) SetIntention(intention model.Intention) {
	old := model.Intention(ai.intention.Swap(int32(intention)))
	if old != intention && TickTraceEnabled() {
		slog.Debug("leader intention changed",
			"name", ai.body.Name(),
			"from", old,
			"to", intention)
	}
}

// CurrentIntention returns current intention
func (ai *LeaderAI) CurrentIntention() model.Intention {
	return model.Intention(ai.intention.Load())
}

// RouteIndex returns the index of the next route step.
func (ai *LeaderAI) RouteIndex() int {
	return ai.index
}

// Tick performs one route action
func (ai *LeaderAI) Tick() {
	if !ai.isRunning.Load() {
		return
	}

	if ai.index >= len(ai.route) {
		if !ai.loop || len(ai.route) == 0 {
			ai.SetIntention(model.IntentionIdle)
			return
		}
		ai.index = 0
	}

	step := ai.route[ai.index]
	switch step.Kind {
	case RouteMove:
		ok := trail.Apply(ai.body, step.Command)
		if TickTraceEnabled() {
			slog.Debug("leader moved",
				"name", ai.body.Name(),
				"command", step.Command,
				"ok", ok)
		}
		ai.index++

	case RouteTransfer:
		if err := ai.body.Transfer(step.MapID, step.X, step.Y); err != nil {
			slog.Warn("leader transfer failed",
				"name", ai.body.Name(),
				"mapID", step.MapID,
				"error", err)
		}
		ai.index++

	case RouteWait:
		if ai.waitLeft == 0 {
			ai.waitLeft = step.Ticks
		}
		ai.waitLeft--
		if ai.waitLeft <= 0 {
			ai.waitLeft = 0
			ai.index++
		}

	default:
		ai.index++
	}
}
