package testutil

import (
	"testing"

	"github.com/udisondev/trailfollow/internal/model"
)

// Locatable is anything with a grid position.
type Locatable interface {
	Location() model.Location
}

// AssertLocation checks that obj stands on (x, y).
func AssertLocation(t testing.TB, obj Locatable, x, y int32) {
	t.Helper()

	got := obj.Location()
	if got.X != x || got.Y != y {
		t.Fatalf("location mismatch: expected (%d,%d), got (%d,%d)", x, y, got.X, got.Y)
	}
}
