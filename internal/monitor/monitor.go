// Package monitor tracks whether the hostel backend is currently
// reachable, with a time-boxed cache of the determination so callers can
// consult it on every operation without probing on every operation.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gechostel/hosteldesk/internal/domain"
)

const (
	// RecheckInterval is how long a determination is reused before the
	// next call triggers a fresh probe.
	RecheckInterval = 30 * time.Second

	// ProbeTimeout bounds the liveness probe; a probe still pending
	// after this is treated as unavailable, never left hanging.
	ProbeTimeout = 3 * time.Second
)

// Monitor caches the result of the backend liveness probe.
type Monitor struct {
	prober domain.Prober
	logger *slog.Logger

	mu          sync.Mutex
	known       bool
	available   bool
	lastChecked time.Time
}

// New creates a Monitor around the given prober.
func New(prober domain.Prober, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{prober: prober, logger: logger}
}

// IsAvailable reports whether the backend is reachable. A determination
// younger than RecheckInterval is returned without I/O; otherwise a probe
// is issued. The mutex is held across the probe so concurrent callers
// share one determination instead of racing duplicate probes.
func (m *Monitor) IsAvailable(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.known && time.Since(m.lastChecked) < RecheckInterval {
		return m.available
	}

	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	err := m.prober.CheckHealth(probeCtx)
	m.known = true
	m.available = err == nil
	m.lastChecked = time.Now()

	if err != nil {
		m.logger.Warn("backend unavailable", "error", err)
	} else {
		m.logger.Debug("backend available")
	}

	return m.available
}

// ForceRecheck clears the cached determination so the next IsAvailable
// call always re-probes. Used when the app regains foreground focus,
// since connectivity may have changed in the meantime.
func (m *Monitor) ForceRecheck() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.known = false
	m.lastChecked = time.Time{}
}
