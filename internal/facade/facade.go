// Package facade is the single choke point between the feature surfaces
// and the hostel backend. Every read and write goes through it: reads
// degrade to the local cache (or built-in defaults) when the backend is
// unreachable, writes fail fast instead; a mutation is never satisfied
// by the local cache alone.
package facade

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/gechostel/hosteldesk/internal/domain"
	"github.com/gechostel/hosteldesk/internal/monitor"
)

// Source is the outcome of the per-call routing decision.
type Source int

const (
	// SourceRemote routes the call to the backend
	SourceRemote Source = iota
	// SourceCache serves the call from the local cache
	SourceCache
)

// DecideSource is the pure decision step of the read pipeline: execution
// against the chosen source happens separately, so the routing policy is
// testable without any I/O.
func DecideSource(available bool) Source {
	if available {
		return SourceRemote
	}
	return SourceCache
}

// Facade mediates all client-to-server interaction. It owns the session
// and the local cache; feature code only ever sees its return values.
type Facade struct {
	backend domain.Backend
	cache   domain.CacheStore
	monitor *monitor.Monitor
	logger  *slog.Logger

	mu      sync.Mutex
	session *domain.Session
}

// New constructs a façade and restores any persisted session from the
// cache's durable slot, installing its token on the backend client.
func New(backend domain.Backend, cache domain.CacheStore, mon *monitor.Monitor, logger *slog.Logger) *Facade {
	if logger == nil {
		logger = slog.Default()
	}

	f := &Facade{
		backend: backend,
		cache:   cache,
		monitor: mon,
		logger:  logger,
	}

	if session, ok := cache.Session(); ok {
		f.session = session
		backend.SetToken(session.Token)
		logger.Info("restored session", "email", session.User.Email, "role", session.User.Role)
	}

	return f
}

// IsOnline reports the current reachability determination.
func (f *Facade) IsOnline(ctx context.Context) bool {
	return f.monitor.IsAvailable(ctx)
}

// ForceRecheck drops the cached reachability determination. Called when
// the app regains foreground focus.
func (f *Facade) ForceRecheck() {
	f.monitor.ForceRecheck()
}

// requireBackend gates the write path: it fails with an offline error
// before any network attempt when the monitor reports unavailable.
func (f *Facade) requireBackend(ctx context.Context) error {
	if !f.monitor.IsAvailable(ctx) {
		return domain.NewOfflineError()
	}
	return nil
}

// GenerateTransactionID creates a client-side payment transaction id.
func GenerateTransactionID() string {
	return fmt.Sprintf("TXN%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// Close releases the underlying cache store.
func (f *Facade) Close() error {
	return f.cache.Close()
}
