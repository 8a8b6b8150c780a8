package world

import "github.com/udisondev/trailfollow/internal/model"

// MoveObserver receives a character's movement events.
// Step, diagonal and jump events fire after every attempt, including
// blocked ones. OnSceneTransfer fires before the OnMoveTo of the arrival.
type MoveObserver interface {
	OnMoveTo(mapID, x, y int32)
	OnStep(dir model.Direction, turnOK bool)
	OnDiagonalStep(horz, vert model.Direction)
	OnJump(dx, dy int32)
	OnSceneTransfer()
}
