package monitor_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gechostel/hosteldesk/internal/adapter"
	"github.com/gechostel/hosteldesk/internal/monitor"
)

// stubProber counts probes and returns a configurable result
type stubProber struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (p *stubProber) CheckHealth(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.err
}

func (p *stubProber) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *stubProber) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func TestIsAvailableProbesOnce(t *testing.T) {
	prober := &stubProber{}
	m := monitor.New(prober, adapter.NullLogger())

	ctx := context.Background()
	assert.True(t, m.IsAvailable(ctx))
	assert.True(t, m.IsAvailable(ctx))
	assert.True(t, m.IsAvailable(ctx))

	// Determinations within the recheck interval reuse the first probe
	assert.Equal(t, 1, prober.callCount())
}

func TestIsAvailableUnreachable(t *testing.T) {
	prober := &stubProber{err: errors.New("connection refused")}
	m := monitor.New(prober, adapter.NullLogger())

	ctx := context.Background()
	assert.False(t, m.IsAvailable(ctx))
	assert.False(t, m.IsAvailable(ctx))
	assert.Equal(t, 1, prober.callCount())
}

func TestForceRecheckReprobes(t *testing.T) {
	prober := &stubProber{err: errors.New("connection refused")}
	m := monitor.New(prober, adapter.NullLogger())

	ctx := context.Background()
	assert.False(t, m.IsAvailable(ctx))

	// Connectivity comes back; the cached determination still says down
	prober.setErr(nil)
	assert.False(t, m.IsAvailable(ctx))

	m.ForceRecheck()
	assert.True(t, m.IsAvailable(ctx))
	assert.Equal(t, 2, prober.callCount())
}

func TestConcurrentCallersShareOneProbe(t *testing.T) {
	prober := &stubProber{}
	m := monitor.New(prober, adapter.NullLogger())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, m.IsAvailable(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, prober.callCount())
}
