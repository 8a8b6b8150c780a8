package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is used when NewTickManager gets a non-positive interval.
const DefaultTickInterval = 250 * time.Millisecond

type registration struct {
	objectID   uint32
	controller Controller
}

// TickManager ticks registered controllers once per interval, in
// registration order. All controllers run on the manager's goroutine, so
// a leader registered first has moved before its followers read the trail
// in the same tick.
type TickManager struct {
	mu            sync.Mutex
	registrations []registration

	interval time.Duration
	maxTicks int64 // 0 = unlimited

	ticker   *time.Ticker
	stopCh   chan struct{}
	stopOnce sync.Once

	ticks           atomic.Int64
	controllerCount atomic.Int32 // cached count of controllers (O(1) access)
}

// NewTickManager creates new tick manager
func NewTickManager(interval time.Duration) *TickManager {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// SetMaxTicks makes Start return after n ticks. 0 disables the limit.
// Must be called before Start.
func (m *TickManager) SetMaxTicks(n int) {
	m.maxTicks = int64(n)
}

// Register registers a controller. Re-registering an objectID replaces the
// previous controller and keeps its position in the tick order.
func (m *TickManager) Register(objectID uint32, controller Controller) {
	m.mu.Lock()
	replaced := false
	for i := range m.registrations {
		if m.registrations[i].objectID == objectID {
			m.registrations[i].controller.Stop()
			m.registrations[i].controller = controller
			replaced = true
			break
		}
	}
	if !replaced {
		m.registrations = append(m.registrations, registration{objectID: objectID, controller: controller})
		m.controllerCount.Add(1)
	}
	m.mu.Unlock()

	controller.Start()

	slog.Debug("controller registered",
		"objectID", objectID,
		"name", controller.Name(),
		"intention", controller.CurrentIntention(),
		"replaced", replaced)
}

// Unregister unregisters a controller
func (m *TickManager) Unregister(objectID uint32) {
	m.mu.Lock()
	var removed Controller
	for i := range m.registrations {
		if m.registrations[i].objectID == objectID {
			removed = m.registrations[i].controller
			m.registrations = append(m.registrations[:i], m.registrations[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if removed == nil {
		return
	}

	m.controllerCount.Add(-1)
	removed.Stop()

	slog.Debug("controller unregistered", "objectID", objectID, "name", removed.Name())
}

// Start starts the tick loop. Blocks until ctx is canceled, Stop is called
// or the tick limit is reached.
func (m *TickManager) Start(ctx context.Context) error {
	m.ticker = time.NewTicker(m.interval)
	defer m.ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval, "maxTicks", m.maxTicks)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping", "ticks", m.ticks.Load())
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped", "ticks", m.ticks.Load())
			return nil

		case <-m.ticker.C:
			m.tickAll()
			if m.maxTicks > 0 && m.ticks.Load() >= m.maxTicks {
				slog.Info("tick manager reached tick limit", "ticks", m.maxTicks)
				return nil
			}
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

// tickAll ticks all registered controllers in registration order
func (m *TickManager) tickAll() {
	m.mu.Lock()
	snapshot := make([]Controller, len(m.registrations))
	for i, r := range m.registrations {
		snapshot[i] = r.controller
	}
	m.mu.Unlock()

	for _, controller := range snapshot {
		controller.Tick()
	}
	tick := m.ticks.Add(1)

	if len(snapshot) > 0 && TickTraceEnabled() {
		slog.Debug("tick completed", "tick", tick, "controllers", len(snapshot))
	}
}

// Ticks returns how many ticks have run.
func (m *TickManager) Ticks() int64 {
	return m.ticks.Load()
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns the controller registered for objectID
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.registrations {
		if r.objectID == objectID {
			return r.controller, nil
		}
	}
	return nil, fmt.Errorf("controller not found for objectID %d", objectID)
}
