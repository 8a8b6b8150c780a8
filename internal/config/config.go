package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/trailfollow/internal/model"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Simulation holds all configuration for the trail simulator.
type Simulation struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Tick loop
	TickInterval time.Duration `yaml:"tick_interval"` // default: 250ms
	MaxTicks     int           `yaml:"max_ticks"`     // 0 = run until signal

	// Trail recording
	RecordMaxLength int `yaml:"record_max_length"` // default: 500

	Maps      []MapConfig      `yaml:"maps"`
	Leader    LeaderConfig     `yaml:"leader"`
	Followers []FollowerConfig `yaml:"followers"`
}

// MapConfig is one ASCII map ('.' floor, '#' wall).
type MapConfig struct {
	ID   int32    `yaml:"id"`
	Rows []string `yaml:"rows"`
}

// LeaderConfig describes the recorded character and its scripted route.
type LeaderConfig struct {
	Name  string       `yaml:"name"`
	MapID int32        `yaml:"map_id"`
	X     int32        `yaml:"x"`
	Y     int32        `yaml:"y"`
	Route []RouteEntry `yaml:"route"`
	Loop  bool         `yaml:"loop"`
}

// RouteEntry is one leader action. Exactly one field must be set.
type RouteEntry struct {
	Step     *model.Direction  `yaml:"step"`
	Turn     *bool             `yaml:"turn"` // for step, default true
	Diagonal []model.Direction `yaml:"diagonal"`
	Jump     []int32           `yaml:"jump"`
	Transfer *TransferConfig   `yaml:"transfer"`
	Wait     int               `yaml:"wait"` // ticks
}

// TransferConfig is a map change target.
type TransferConfig struct {
	MapID int32 `yaml:"map_id"`
	X     int32 `yaml:"x"`
	Y     int32 `yaml:"y"`
}

// FollowerConfig describes a character that replays the leader's trail.
type FollowerConfig struct {
	Name  string `yaml:"name"`
	MapID int32  `yaml:"map_id"`
	X     int32  `yaml:"x"`
	Y     int32  `yaml:"y"`

	// WatchFromStart starts recording on the first tick even if the
	// follower only starts following after StartDelay ticks.
	WatchFromStart bool `yaml:"watch_from_start"`
	StartDelay     int  `yaml:"start_delay"` // ticks
}

// TurnOK returns the step's turn flag (true when omitted).
func (e RouteEntry) TurnOK() bool {
	if e.Turn == nil {
		return true
	}
	return *e.Turn
}

// DefaultSimulation returns Simulation config with sensible defaults:
// one small map, a leader walking a loop with a diagonal and a jump, and
// two followers (one immediate, one delayed).
func DefaultSimulation() Simulation {
	right, down, left, up := model.DirRight, model.DirDown, model.DirLeft, model.DirUp
	return Simulation{
		LogLevel:        "info",
		TickInterval:    250 * time.Millisecond,
		MaxTicks:        0,
		RecordMaxLength: 500,
		Maps: []MapConfig{
			{
				ID: 1,
				Rows: []string{
					"............",
					"....#.......",
					"....#.......",
					"....#...##..",
					"............",
					"............",
				},
			},
		},
		Leader: LeaderConfig{
			Name:  "Leader",
			MapID: 1,
			X:     1,
			Y:     1,
			Route: []RouteEntry{
				{Step: &right},
				{Step: &right},
				{Jump: []int32{2, 0}},
				{Diagonal: []model.Direction{right, down}},
				{Step: &right},
				{Step: &down},
				{Diagonal: []model.Direction{left, down}},
				{Wait: 2},
				{Step: &left},
				{Step: &left},
				{Step: &up},
			},
			Loop: false,
		},
		Followers: []FollowerConfig{
			{Name: "Scout", MapID: 1, X: 0, Y: 4},
			{Name: "Straggler", MapID: 1, X: 0, Y: 5, WatchFromStart: true, StartDelay: 4},
		},
	}
}

// LoadSimulation loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the config for values the simulator cannot run with.
func (s Simulation) Validate() error {
	switch s.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, s.LogLevel)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalid, s.TickInterval)
	}
	if s.MaxTicks < 0 {
		return fmt.Errorf("%w: max_ticks must not be negative, got %d", ErrInvalid, s.MaxTicks)
	}
	if s.RecordMaxLength <= 0 {
		return fmt.Errorf("%w: record_max_length must be positive, got %d", ErrInvalid, s.RecordMaxLength)
	}
	if len(s.Maps) == 0 {
		return fmt.Errorf("%w: no maps", ErrInvalid)
	}

	maps := make(map[int32]bool, len(s.Maps))
	for _, m := range s.Maps {
		if maps[m.ID] {
			return fmt.Errorf("%w: duplicate map id %d", ErrInvalid, m.ID)
		}
		if len(m.Rows) == 0 {
			return fmt.Errorf("%w: map %d has no rows", ErrInvalid, m.ID)
		}
		maps[m.ID] = true
	}

	if !maps[s.Leader.MapID] {
		return fmt.Errorf("%w: leader map %d not defined", ErrInvalid, s.Leader.MapID)
	}
	for i, e := range s.Leader.Route {
		if err := e.validate(maps); err != nil {
			return fmt.Errorf("%w: leader route[%d]: %v", ErrInvalid, i, err)
		}
	}

	for i, f := range s.Followers {
		if !maps[f.MapID] {
			return fmt.Errorf("%w: follower[%d] %q map %d not defined", ErrInvalid, i, f.Name, f.MapID)
		}
		if f.StartDelay < 0 {
			return fmt.Errorf("%w: follower[%d] %q start_delay must not be negative", ErrInvalid, i, f.Name)
		}
	}

	return nil
}

func (e RouteEntry) validate(maps map[int32]bool) error {
	if e.Turn != nil && e.Step == nil {
		return errors.New("turn only applies to step entries")
	}
	set := 0
	if e.Step != nil {
		set++
		if !e.Step.IsStraight() {
			return fmt.Errorf("step direction %s is not a straight direction", *e.Step)
		}
	}
	if e.Diagonal != nil {
		set++
		if len(e.Diagonal) != 2 {
			return fmt.Errorf("diagonal needs [horizontal, vertical], got %d values", len(e.Diagonal))
		}
		if !e.Diagonal[0].IsHorizontal() || !e.Diagonal[1].IsVertical() {
			return fmt.Errorf("diagonal [%s, %s] is not [horizontal, vertical]", e.Diagonal[0], e.Diagonal[1])
		}
	}
	if e.Jump != nil {
		set++
		if len(e.Jump) != 2 {
			return fmt.Errorf("jump needs [dx, dy], got %d values", len(e.Jump))
		}
	}
	if e.Transfer != nil {
		set++
		if !maps[e.Transfer.MapID] {
			return fmt.Errorf("transfer map %d not defined", e.Transfer.MapID)
		}
	}
	if e.Wait != 0 {
		set++
		if e.Wait < 0 {
			return fmt.Errorf("wait must be positive, got %d", e.Wait)
		}
	}

	if set != 1 {
		return fmt.Errorf("exactly one of step, diagonal, jump, transfer, wait must be set (got %d)", set)
	}
	return nil
}
