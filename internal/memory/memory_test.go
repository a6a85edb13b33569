package memory

import (
	"testing"
	"time"
)

func testConfig(limit int64) Config {
	return Config{
		MemoryLimitBytes:  limit,
		HighWaterMark:     0.7,
		CriticalWaterMark: 0.85,
		CheckInterval:     10 * time.Millisecond,
	}
}

func TestNewMonitorWithExplicitLimit(t *testing.T) {
	m := NewMonitor(testConfig(1 << 30))

	if m.limit != 1<<30 {
		t.Errorf("limit = %d, want %d", m.limit, int64(1<<30))
	}
	if m.IsPaused() {
		t.Error("a fresh monitor must not start paused")
	}
}

func TestMonitorStartStop(t *testing.T) {
	m := NewMonitor(testConfig(1 << 30))
	m.Start()
	time.Sleep(30 * time.Millisecond)
	m.Stop()
}

func TestMonitorGetUsage(t *testing.T) {
	m := NewMonitor(testConfig(1 << 40))
	m.checkMemory()

	usage := m.GetUsage()
	if usage <= 0 {
		t.Errorf("usage = %v, want > 0 after a check", usage)
	}
	if usage >= 1 {
		t.Errorf("usage = %v, want < 1 against a 1 TiB limit", usage)
	}
}

func TestMonitorGetUsageNoLimit(t *testing.T) {
	m := NewMonitor(testConfig(0))
	// Strip any GOMEMLIMIT picked up from the environment.
	m.limit = 0
	m.checkMemory()

	if usage := m.GetUsage(); usage != 0 {
		t.Errorf("usage = %v, want 0 without a limit", usage)
	}
	if m.ShouldThrottle() {
		t.Error("throttling must be disabled without a limit")
	}
}

func TestMonitorGetStats(t *testing.T) {
	m := NewMonitor(testConfig(1 << 40))
	m.checkMemory()

	current, limit, usage := m.GetStats()
	if current <= 0 {
		t.Errorf("current = %d, want > 0", current)
	}
	if limit != 1<<40 {
		t.Errorf("limit = %d, want %d", limit, int64(1)<<40)
	}
	if usage <= 0 {
		t.Errorf("usage = %v, want > 0", usage)
	}
}

func TestMonitorPauseAndRelease(t *testing.T) {
	// A limit of one byte forces critical usage on the first check.
	m := NewMonitor(testConfig(1))
	m.checkMemory()

	if !m.IsPaused() {
		t.Fatal("monitor should pause at critical usage")
	}
	if !m.ShouldThrottle() {
		t.Error("monitor should throttle at critical usage")
	}

	// Raising the limit far above usage recovers on the next check and
	// releases the waiters.
	released := make(chan bool)
	go func() {
		released <- m.WaitIfPaused()
	}()

	m.mu.Lock()
	m.limit = 1 << 50
	m.mu.Unlock()
	m.checkMemory()

	select {
	case ok := <-released:
		if !ok {
			t.Error("WaitIfPaused() = false, want true on recovery")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitIfPaused did not release after recovery")
	}

	if m.IsPaused() {
		t.Error("monitor should resume below the high water mark")
	}
}

func TestWaitIfPausedPassesWhenHealthy(t *testing.T) {
	m := NewMonitor(testConfig(1 << 40))
	m.checkMemory()

	if !m.WaitIfPaused() {
		t.Error("WaitIfPaused() = false, want true when not paused")
	}
}

func TestWaitIfPausedReturnsFalseOnStop(t *testing.T) {
	m := NewMonitor(testConfig(1))
	m.checkMemory()
	if !m.IsPaused() {
		t.Fatal("monitor should pause at critical usage")
	}

	released := make(chan bool)
	go func() {
		released <- m.WaitIfPaused()
	}()
	m.Stop()

	select {
	case ok := <-released:
		if ok {
			t.Error("WaitIfPaused() = true, want false after Stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitIfPaused did not return after Stop")
	}
}

func TestMonitorConcurrentReads(t *testing.T) {
	m := NewMonitor(testConfig(1 << 40))
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.GetUsage()
				m.IsPaused()
				m.ShouldThrottle()
				m.GetStats()
			}
			done <- struct{}{}
		}()
	}
	go func() {
		for j := 0; j < 100; j++ {
			m.checkMemory()
		}
		done <- struct{}{}
	}()

	for i := 0; i < 9; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access did not finish")
		}
	}
}
