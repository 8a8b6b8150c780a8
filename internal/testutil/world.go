package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/trailfollow/internal/world"
)

// TestMapID is the map ID used by NewTestWorld.
const TestMapID int32 = 1

// OpenRows is an 8x8 map with no walls.
var OpenRows = []string{
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
}

// NewTestWorld creates a world with a single map (TestMapID) built from
// ASCII rows ('.' floor, '#' wall). With no rows, OpenRows is used.
func NewTestWorld(t testing.TB, rows ...string) *world.World {
	t.Helper()
	if len(rows) == 0 {
		rows = OpenRows
	}
	grid, err := world.ParseGrid(TestMapID, rows)
	require.NoError(t, err)

	w := world.New()
	w.AddGrid(grid)
	return w
}

// SpawnAt spawns a character on TestMapID, failing the test on error.
func SpawnAt(t testing.TB, w *world.World, name string, x, y int32, observers ...world.MoveObserver) *world.Character {
	t.Helper()
	c, err := w.Spawn(name, TestMapID, x, y, observers...)
	require.NoError(t, err)
	return c
}

// SpawnLeaderAt spawns a leader on TestMapID, failing the test on error.
func SpawnLeaderAt(t testing.TB, w *world.World, name string, x, y int32, observers ...world.MoveObserver) *world.Character {
	t.Helper()
	c, err := w.SpawnLeader(name, TestMapID, x, y, observers...)
	require.NoError(t, err)
	return c
}
