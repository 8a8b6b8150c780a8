package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/trailfollow/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trailsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultSimulation_IsValid(t *testing.T) {
	cfg := DefaultSimulation()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500, cfg.RecordMaxLength)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.NotEmpty(t, cfg.Leader.Route)
}

func TestLoadSimulation_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultSimulation(), cfg)
}

func TestLoadSimulation_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
tick_interval: 50ms
max_ticks: 12
record_max_length: 40
maps:
  - id: 7
    rows:
      - "...."
      - ".#.."
leader:
  name: Guide
  map_id: 7
  x: 0
  y: 0
  loop: true
  route:
    - step: right
      turn: false
    - diagonal: [right, down]
    - jump: [-1, 0]
    - wait: 3
    - transfer: {map_id: 7, x: 3, y: 1}
followers:
  - name: Tail
    map_id: 7
    x: 3
    y: 0
    watch_from_start: true
    start_delay: 2
`)

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 12, cfg.MaxTicks)
	assert.Equal(t, 40, cfg.RecordMaxLength)
	require.Len(t, cfg.Maps, 1)
	assert.Equal(t, int32(7), cfg.Maps[0].ID)

	route := cfg.Leader.Route
	require.Len(t, route, 5)
	require.NotNil(t, route[0].Step)
	assert.Equal(t, model.DirRight, *route[0].Step)
	assert.False(t, route[0].TurnOK())
	assert.Equal(t, []model.Direction{model.DirRight, model.DirDown}, route[1].Diagonal)
	assert.Equal(t, []int32{-1, 0}, route[2].Jump)
	assert.Equal(t, 3, route[3].Wait)
	require.NotNil(t, route[4].Transfer)
	assert.Equal(t, TransferConfig{MapID: 7, X: 3, Y: 1}, *route[4].Transfer)
	assert.True(t, cfg.Leader.Loop)

	require.Len(t, cfg.Followers, 1)
	assert.Equal(t, FollowerConfig{Name: "Tail", MapID: 7, X: 3, Y: 0, WatchFromStart: true, StartDelay: 2}, cfg.Followers[0])
}

func TestLoadSimulation_ParseError(t *testing.T) {
	path := writeConfig(t, "maps: [unclosed\n")

	_, err := LoadSimulation(path)
	assert.Error(t, err)
}

func TestLoadSimulation_UnknownDirection(t *testing.T) {
	path := writeConfig(t, `
leader:
  route:
    - step: sideways
`)

	_, err := LoadSimulation(path)
	assert.Error(t, err)
}

func TestLoadSimulation_TurnOnNonStepEntry(t *testing.T) {
	path := writeConfig(t, `
leader:
  route:
    - jump: [1, 0]
      turn: false
`)

	_, err := LoadSimulation(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSimulation_Validate(t *testing.T) {
	up := model.DirUp
	none := model.DirNone
	noTurn := false

	tests := []struct {
		name   string
		mutate func(*Simulation)
	}{
		{"bad log level", func(s *Simulation) { s.LogLevel = "loud" }},
		{"zero tick interval", func(s *Simulation) { s.TickInterval = 0 }},
		{"negative max ticks", func(s *Simulation) { s.MaxTicks = -1 }},
		{"zero record length", func(s *Simulation) { s.RecordMaxLength = 0 }},
		{"no maps", func(s *Simulation) { s.Maps = nil }},
		{"duplicate map", func(s *Simulation) { s.Maps = append(s.Maps, s.Maps[0]) }},
		{"empty map", func(s *Simulation) { s.Maps[0].Rows = nil }},
		{"leader on unknown map", func(s *Simulation) { s.Leader.MapID = 99 }},
		{"step none", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Step: &none}} }},
		{"diagonal arity", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Diagonal: []model.Direction{up}}} }},
		{"diagonal halves swapped", func(s *Simulation) {
			s.Leader.Route = []RouteEntry{{Diagonal: []model.Direction{model.DirUp, model.DirLeft}}}
		}},
		{"jump arity", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Jump: []int32{1}}} }},
		{"transfer unknown map", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Transfer: &TransferConfig{MapID: 42}}} }},
		{"negative wait", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Wait: -2}} }},
		{"empty entry", func(s *Simulation) { s.Leader.Route = []RouteEntry{{}} }},
		{"two actions", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Step: &up, Wait: 1}} }},
		{"turn without step", func(s *Simulation) { s.Leader.Route = []RouteEntry{{Wait: 1, Turn: &noTurn}} }},
		{"follower unknown map", func(s *Simulation) { s.Followers[0].MapID = 5 }},
		{"follower negative delay", func(s *Simulation) { s.Followers[0].StartDelay = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimulation()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v should wrap ErrInvalid", err)
		})
	}
}
