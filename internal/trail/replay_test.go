package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/trailfollow/internal/model"
	"github.com/udisondev/trailfollow/internal/testutil"
	"github.com/udisondev/trailfollow/internal/world"
)

var replayRows = []string{
	"........",
	"..#.....",
	"........",
	"........",
	"........",
}

func TestReplay_ReproducesLeaderPath(t *testing.T) {
	w := testutil.NewTestWorld(t, replayRows...)
	rec := NewRecorder(0)
	leader := testutil.SpawnLeaderAt(t, w, "Leader", 1, 1, rec)
	rec.BeginRecording()

	leader.Step(model.DirRight, true) // wall, blocked
	leader.Jump(2, 0)
	leader.DiagonalStep(model.DirRight, model.DirDown)
	leader.Step(model.DirDown, true)
	testutil.AssertLocation(t, leader, 4, 3)
	leader.Step(model.DirRight, true) // clear the tile for the follower
	require.Equal(t, 5, rec.Len())

	follower := testutil.SpawnAt(t, w, "Follower", 1, 1)
	f := NewFollower(follower, rec)

	wantPath := []model.Location{
		model.NewLocation(1, 1),
		model.NewLocation(3, 1),
		model.NewLocation(4, 2),
		model.NewLocation(4, 3),
	}
	for i, want := range wantPath {
		f.Follow()
		assert.Equal(t, want, follower.Location(), "tick %d", i)
	}

	cursor, ok := f.Cursor()
	require.True(t, ok)
	assert.Equal(t, 4, cursor)
}

func TestReplay_SeeksAcrossWorld(t *testing.T) {
	w := testutil.NewTestWorld(t, replayRows...)
	rec := NewRecorder(0)
	leader := testutil.SpawnLeaderAt(t, w, "Leader", 1, 1, rec)
	rec.BeginRecording()
	leader.Step(model.DirLeft, true)
	leader.Step(model.DirDown, true)

	follower := testutil.SpawnAt(t, w, "Follower", 4, 1)
	f := NewFollower(follower, rec)

	// (4,1) → (3,1); wall at (2,1) blocks Left and there is no vertical
	// offset to fall back on, so the follower is stuck until a pathfinder
	// is injected.
	f.Follow()
	f.Follow()
	testutil.AssertLocation(t, follower, 3, 1)
	assert.Equal(t, model.FollowSeekingStart, f.State())

	require.NoError(t, follower.MoveTo(1, 3))
	f.Follow() // (1,2)
	f.Follow() // (1,1)
	assert.Equal(t, model.FollowSeekingStart, f.State())
	f.Follow() // start reached, replays Left
	assert.Equal(t, model.FollowReplaying, f.State())
	testutil.AssertLocation(t, follower, 0, 1)
}

func TestReplay_ThroughSuppressedAgainstWalls(t *testing.T) {
	w := testutil.NewTestWorld(t, replayRows...)
	rec := NewRecorder(0)
	leader := testutil.SpawnLeaderAt(t, w, "Leader", 1, 1, rec)
	rec.BeginRecording()

	leader.SetThrough(true)
	require.True(t, leader.Step(model.DirRight, true), "a pass-through leader walks into the wall")
	leader.SetThrough(false)
	leader.Step(model.DirRight, true)

	follower := testutil.SpawnAt(t, w, "Follower", 1, 1)
	follower.SetThrough(true)
	f := NewFollower(follower, rec)

	f.Follow()

	testutil.AssertLocation(t, follower, 1, 1)
	assert.False(t, follower.LastMoveSucceeded())
	assert.True(t, follower.Through())
}

func TestReplay_LeaderTransferInvalidatesTrail(t *testing.T) {
	w := testutil.NewTestWorld(t, replayRows...)
	rec := NewRecorder(0)
	leader := testutil.SpawnLeaderAt(t, w, "Leader", 0, 0, rec)
	follower := testutil.SpawnAt(t, w, "Follower", 0, 4)
	f := NewFollower(follower, rec)
	f.Watch()

	leader.Step(model.DirRight, true)
	require.Equal(t, 1, rec.Len())

	require.NoError(t, leader.Transfer(testutil.TestMapID, 6, 4))
	assert.False(t, rec.Recording())

	start, ok := rec.StartPosition()
	require.True(t, ok)
	assert.Equal(t, model.NewLocation(6, 4), start, "arrival re-snapshots the start")

	f.Follow()
	assert.True(t, rec.Recording())
	assert.Equal(t, 0, rec.Len())
}

func TestReplay_StartOnOtherMapNotReached(t *testing.T) {
	w := testutil.NewTestWorld(t, replayRows...)
	other, err := world.ParseGrid(2, []string{"....", "...."})
	require.NoError(t, err)
	w.AddGrid(other)

	rec := NewRecorder(0)
	leader := testutil.SpawnLeaderAt(t, w, "Leader", 3, 1, rec)
	follower := testutil.SpawnAt(t, w, "Follower", 0, 0)
	f := NewFollower(follower, rec)
	f.Watch()

	require.NoError(t, leader.Transfer(2, 0, 0))
	assert.Equal(t, int32(2), rec.StartMapID())
	leader.Step(model.DirRight, true)

	f.Follow()
	f.Follow()

	assert.Equal(t, testutil.TestMapID, follower.MapID())
	testutil.AssertLocation(t, follower, 0, 0)
	assert.False(t, f.ReachedStart(), "(0,0) on map 1 is not the start on map 2")
	assert.Equal(t, model.FollowSeekingStart, f.State())
	_, ok := f.Cursor()
	assert.False(t, ok)

	require.NoError(t, follower.Transfer(2, 1, 1))
	// Up is blocked by the leader at (1,0), Left is the fallback
	f.Follow()
	testutil.AssertLocation(t, follower, 0, 1)
}
