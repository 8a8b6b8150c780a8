package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/trailfollow/internal/model"
	"github.com/udisondev/trailfollow/internal/trail"
)

// TrailAI drives one follower along the leader's recorded trail.
// State machine: IDLE or WATCH (during the start delay) → FOLLOW.
type TrailAI struct {
	follower  *trail.Follower
	name      string
	isRunning atomic.Bool
	intention atomic.Int32

	startDelay     int
	watchFromStart bool
	tickCount      int
}

// NewTrailAI creates a follower controller. The follower only watches (if
// watchFromStart) or idles for the first startDelay ticks.
func NewTrailAI(name string, follower *trail.Follower, startDelay int, watchFromStart bool) *TrailAI {
	return &TrailAI{
		follower:       follower,
		name:           name,
		startDelay:     startDelay,
		watchFromStart: watchFromStart,
	}
}

// Follower returns the underlying trail follower.
func (ai *TrailAI) Follower() *trail.Follower {
	return ai.follower
}

// Name returns the follower's name.
func (ai *TrailAI) Name() string {
	return ai.name
}

// Start starts the controller
func (ai *TrailAI) Start() {
	ai.isRunning.Store(true)
	switch {
	case ai.startDelay <= 0:
		ai.SetIntention(model.IntentionFollow)
	case ai.watchFromStart:
		ai.SetIntention(model.IntentionWatch)
	default:
		ai.SetIntention(model.IntentionIdle)
	}

	if TickTraceEnabled() {
		slog.Debug("trail AI started",
			"name", ai.name,
			"startDelay", ai.startDelay,
			"watchFromStart", ai.watchFromStart)
	}
}

// Stop stops the controller
func (ai *TrailAI) Stop() {
	ai.isRunning.Store(false)
	ai.SetIntention(model.IntentionIdle)

	if TickTraceEnabled() {
		slog.Debug("trail AI stopped", "name", ai.name)
	}
}

// SetIntention sets the controller's intention
func (ai *TrailAI) SetIntention(intention model.Intention) {
	old := model.Intention(ai.intention.Swap(int32(intention)))
	if old != intention && TickTraceEnabled() {
		slog.Debug("follower intention changed",
			"name", ai.name,
			"from", old,
			"to", intention)
	}
}

// CurrentIntention returns current intention
func (ai *TrailAI) CurrentIntention() model.Intention {
	return model.Intention(ai.intention.Load())
}

// Tick watches or follows the trail for one tick
func (ai *TrailAI) Tick() {
	if !ai.isRunning.Load() {
		return
	}

	ai.tickCount++
	if ai.tickCount <= ai.startDelay {
		if ai.watchFromStart {
			ai.follower.Watch()
		}
		return
	}

	ai.SetIntention(model.IntentionFollow)

	before, _ := ai.follower.Cursor()
	ai.follower.Follow()

	if TickTraceEnabled() {
		after, replaying := ai.follower.Cursor()
		slog.Debug("follower ticked",
			"name", ai.name,
			"state", ai.follower.State(),
			"replaying", replaying,
			"advanced", after != before)
	}
}
