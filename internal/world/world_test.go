package world

import (
	"errors"
	"testing"

	"github.com/udisondev/trailfollow/internal/model"
)

func newTestWorld(t *testing.T, rows ...string) *World {
	t.Helper()
	g, err := ParseGrid(1, rows)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	w := New()
	w.AddGrid(g)
	return w
}

func TestWorld_SpawnAndLookup(t *testing.T) {
	w := newTestWorld(t, "....", "....")

	leader, err := w.SpawnLeader("Leader", 1, 0, 0)
	if err != nil {
		t.Fatalf("SpawnLeader() error = %v", err)
	}
	npc, err := w.Spawn("Follower", 1, 3, 1)
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	if !IsLeaderID(leader.ObjectID()) {
		t.Errorf("leader objectID 0x%X not in leader range", leader.ObjectID())
	}
	if IsLeaderID(npc.ObjectID()) {
		t.Errorf("follower objectID 0x%X in leader range", npc.ObjectID())
	}

	got, ok := w.Character(npc.ObjectID())
	if !ok || got != npc {
		t.Errorf("Character(%d) = %v, %v; want spawned follower", npc.ObjectID(), got, ok)
	}

	all := w.Characters()
	if len(all) != 2 || all[0] != leader || all[1] != npc {
		t.Errorf("Characters() not in spawn order: %v", all)
	}

	w.Remove(leader.ObjectID())
	if _, ok := w.Character(leader.ObjectID()); ok {
		t.Error("Character() after Remove() should not find the leader")
	}
	if len(w.Characters()) != 1 {
		t.Errorf("Characters() after Remove() = %d, want 1", len(w.Characters()))
	}
}

func TestWorld_SpawnErrors(t *testing.T) {
	w := newTestWorld(t, "..")

	if _, err := w.Spawn("Lost", 9, 0, 0); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Spawn(unknown map) error = %v, want ErrUnknownMap", err)
	}
	if _, err := w.Spawn("Outside", 1, 5, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Spawn(out of bounds) error = %v, want ErrOutOfBounds", err)
	}
	if len(w.Characters()) != 0 {
		t.Errorf("failed spawns must not register characters, got %d", len(w.Characters()))
	}
}

func TestWorld_IsOccupied(t *testing.T) {
	w := newTestWorld(t, "...")
	c, _ := w.Spawn("Blocker", 1, 1, 0)
	loc := model.NewLocation(1, 0)

	if !w.IsOccupied(1, loc, 0) {
		t.Error("IsOccupied() = false for a solid character")
	}
	if w.IsOccupied(1, loc, c.ObjectID()) {
		t.Error("IsOccupied() must skip the excepted character")
	}

	c.SetThrough(true)
	if w.IsOccupied(1, loc, 0) {
		t.Error("IsOccupied() must skip pass-through characters")
	}
}

func TestObjectIDGenerator_Unique(t *testing.T) {
	gen := NewObjectIDGenerator()
	seen := make(map[uint32]bool)

	for i := 0; i < 100; i++ {
		for _, id := range []uint32{gen.NextLeaderID(), gen.NextCharacterID()} {
			if seen[id] {
				t.Fatalf("duplicate object ID 0x%X", id)
			}
			seen[id] = true
		}
	}
}
