package ai

import "github.com/udisondev/trailfollow/internal/model"

// Controller drives one character. The TickManager calls Start on
// registration, Tick once per tick in registration order and Stop on
// removal or replacement.
type Controller interface {
	// Name identifies the driven character in logs.
	Name() string

	Start()
	Stop()

	SetIntention(intention model.Intention)
	CurrentIntention() model.Intention

	// Tick issues at most one movement primitive.
	Tick()
}
