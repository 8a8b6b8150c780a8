package model

import "fmt"

// CommandKind tags the variant held by a MovementCommand.
type CommandKind uint8

const (
	CommandStep CommandKind = iota
	CommandDiagonal
	CommandJump
)

// String returns human-readable command kind
func (k CommandKind) String() string {
	switch k {
	case CommandStep:
		return "STEP"
	case CommandDiagonal:
		return "DIAGONAL"
	case CommandJump:
		return "JUMP"
	default:
		return "UNKNOWN"
	}
}

// MovementCommand is one recorded movement primitive call.
// Immutable value type: construct with StepCommand, DiagonalCommand or
// JumpCommand and read through the accessors.
type MovementCommand struct {
	kind CommandKind

	// Step
	dir    Direction
	turnOK bool

	// DiagonalStep
	horz Direction
	vert Direction

	// Jump
	dx int32
	dy int32
}

// StepCommand records a straight step.
func StepCommand(dir Direction, turnOK bool) MovementCommand {
	return MovementCommand{kind: CommandStep, dir: dir, turnOK: turnOK}
}

// DiagonalCommand records a diagonal step.
func DiagonalCommand(horz, vert Direction) MovementCommand {
	return MovementCommand{kind: CommandDiagonal, horz: horz, vert: vert}
}

// JumpCommand records a jump by (dx, dy).
func JumpCommand(dx, dy int32) MovementCommand {
	return MovementCommand{kind: CommandJump, dx: dx, dy: dy}
}

// Kind returns the variant tag.
func (c MovementCommand) Kind() CommandKind {
	return c.kind
}

// Step returns the direction and turn flag of a Step command.
func (c MovementCommand) Step() (dir Direction, turnOK bool) {
	return c.dir, c.turnOK
}

// Diagonal returns the halves of a DiagonalStep command.
func (c MovementCommand) Diagonal() (horz, vert Direction) {
	return c.horz, c.vert
}

// Jump returns the deltas of a Jump command.
func (c MovementCommand) Jump() (dx, dy int32) {
	return c.dx, c.dy
}

func (c MovementCommand) String() string {
	switch c.kind {
	case CommandStep:
		return fmt.Sprintf("step(%s, turn=%t)", c.dir, c.turnOK)
	case CommandDiagonal:
		return fmt.Sprintf("diagonal(%s, %s)", c.horz, c.vert)
	case CommandJump:
		return fmt.Sprintf("jump(%d, %d)", c.dx, c.dy)
	default:
		return "unknown"
	}
}
