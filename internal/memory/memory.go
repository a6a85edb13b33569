package memory

import (
	"math"
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"photo-viewer/internal/logging"
	"photo-viewer/internal/metrics"
)

// Config holds memory monitor configuration.
type Config struct {
	// MemoryLimitBytes is the soft limit to track against. Zero means
	// adopt GOMEMLIMIT, or disable backpressure when that is unset too.
	MemoryLimitBytes int64

	// HighWaterMark is the usage fraction at which throttling starts.
	HighWaterMark float64

	// CriticalWaterMark is the usage fraction at which probe work pauses.
	CriticalWaterMark float64

	// CheckInterval is how often usage is sampled.
	CheckInterval time.Duration
}

// DefaultConfig returns defaults tuned for the decode probe workload.
func DefaultConfig() Config {
	return Config{
		MemoryLimitBytes:  0,
		HighWaterMark:     0.7,
		CriticalWaterMark: 0.85,
		CheckInterval:     5 * time.Second,
	}
}

// Monitor samples heap usage against the limit and gates probe workers.
// Between the critical mark and recovery below the high mark, WaitIfPaused
// blocks its callers; the two-mark hysteresis avoids pause/resume flapping
// right at a single threshold.
type Monitor struct {
	config   Config
	limit    int64
	stopChan chan struct{}

	mu     sync.RWMutex
	alloc  uint64
	paused bool
	// resumeChan is closed and replaced on each recovery; waiters hold
	// the instance that was current when they began blocking.
	resumeChan chan struct{}
}

// NewMonitor creates a monitor. Without an explicit limit it adopts
// GOMEMLIMIT; without either, backpressure is disabled entirely.
func NewMonitor(config Config) *Monitor {
	limit := config.MemoryLimitBytes
	if limit == 0 {
		if goMemLimit := debug.SetMemoryLimit(-1); goMemLimit > 0 && goMemLimit < 1<<62 {
			limit = goMemLimit
			logging.Info("Memory monitor using GOMEMLIMIT: %d bytes (%.1f MB)", limit, float64(limit)/(1024*1024))
		}
	}
	if limit == 0 {
		logging.Warn("Memory monitor: no memory limit configured, backpressure disabled")
	}

	return &Monitor{
		config:     config,
		limit:      limit,
		stopChan:   make(chan struct{}),
		resumeChan: make(chan struct{}),
	}
}

// Start begins sampling. A no-op without a limit.
func (m *Monitor) Start() {
	if m.limit == 0 {
		return
	}
	go m.sampleLoop()
}

// Stop halts sampling and releases any blocked waiters.
func (m *Monitor) Stop() {
	close(m.stopChan)
}

func (m *Monitor) sampleLoop() {
	ticker := time.NewTicker(m.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.checkMemory()
		case <-m.stopChan:
			return
		}
	}
}

func (m *Monitor) checkMemory() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m.mu.Lock()
	m.alloc = stats.Alloc

	if m.limit > 0 {
		usage := float64(stats.Alloc) / float64(m.limit)
		metrics.MemoryUsageRatio.Set(usage)

		switch {
		case usage >= m.config.CriticalWaterMark && !m.paused:
			logging.Warn("Memory critical (%.1f%% of limit), pausing decode work", usage*100)
			m.paused = true
			metrics.MemoryPaused.Set(1)
			metrics.MemoryGCPauses.Inc()
			go runtime.GC()

		case usage < m.config.HighWaterMark && m.paused:
			logging.Info("Memory recovered (%.1f%% of limit), resuming decode work", usage*100)
			m.paused = false
			metrics.MemoryPaused.Set(0)
			close(m.resumeChan)
			m.resumeChan = make(chan struct{})
		}
	}
	m.mu.Unlock()
}

// WaitIfPaused blocks while usage is critical. Returns false when the
// monitor is stopped instead of recovering; callers should abandon the
// pending work.
func (m *Monitor) WaitIfPaused() bool {
	m.mu.RLock()
	if !m.paused {
		m.mu.RUnlock()
		return true
	}
	resume := m.resumeChan
	m.mu.RUnlock()

	select {
	case <-resume:
		return true
	case <-m.stopChan:
		return false
	}
}

// ShouldThrottle reports whether usage is above the high water mark.
func (m *Monitor) ShouldThrottle() bool {
	if m.limit == 0 {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return float64(m.alloc) >= float64(m.limit)*m.config.HighWaterMark
}

// IsPaused reports whether probe work is currently gated.
func (m *Monitor) IsPaused() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paused
}

// GetUsage returns heap usage as a fraction of the limit, or 0 without one.
func (m *Monitor) GetUsage() float64 {
	if m.limit == 0 {
		return 0
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return float64(m.alloc) / float64(m.limit)
}

// GetStats returns the sampled allocation, the limit, and their ratio.
func (m *Monitor) GetStats() (current, limit int64, usage float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	currentInt64 := int64(math.MaxInt64)
	if m.alloc <= math.MaxInt64 {
		currentInt64 = int64(m.alloc)
	}

	var usageRatio float64
	if m.limit > 0 {
		usageRatio = float64(m.alloc) / float64(m.limit)
	}
	return currentInt64, m.limit, usageRatio
}

// ForceGC triggers an immediate collection.
func (m *Monitor) ForceGC() {
	runtime.GC()
}
