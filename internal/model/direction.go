package model

import (
	"fmt"
	"strings"
)

// Direction is a grid direction. DirNone is only valid as one half of a
// diagonal step.
type Direction uint8

const (
	DirNone Direction = iota
	DirDown
	DirLeft
	DirRight
	DirUp
)

// String returns human-readable direction name
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Delta returns the tile offset of one step in d. Y grows downward.
func (d Direction) Delta() (dx, dy int32) {
	switch d {
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 0
	}
}

// IsStraight reports whether d is one of the four step directions.
func (d Direction) IsStraight() bool {
	return d >= DirDown && d <= DirUp
}

// IsHorizontal reports whether d is a valid horizontal half of a diagonal step.
func (d Direction) IsHorizontal() bool {
	return d == DirNone || d == DirLeft || d == DirRight
}

// IsVertical reports whether d is a valid vertical half of a diagonal step.
func (d Direction) IsVertical() bool {
	return d == DirNone || d == DirUp || d == DirDown
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	default:
		return DirNone, fmt.Errorf("unknown direction %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler (used by the YAML config).
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
