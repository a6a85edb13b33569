package render

import (
	"sync"
	"time"

	"photo-viewer/internal/logging"
)

// PressureGate blocks decode work while the process is under memory
// pressure. memory.Monitor satisfies this interface; tests substitute
// their own.
type PressureGate interface {
	// WaitIfPaused blocks while decode work is paused. It returns false if
	// the gate shut down while waiting.
	WaitIfPaused() bool
}

type probeJob struct {
	source string
	tier   Tier
	done   func(Dimensions, error)
}

// Pool runs source probes on a bounded set of workers so that decode work
// never blocks the viewer's dispatch loop. Completion callbacks are invoked
// on a worker goroutine; the engine posts them back onto its loop.
type Pool struct {
	prober  Prober
	monitor PressureGate
	jobs    chan probeJob
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool creates a probe pool with the given number of workers. The memory
// monitor is optional; when present, workers wait while memory pressure is
// critical before starting a decode.
func NewPool(workerCount int, prober Prober, monitor PressureGate) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}

	p := &Pool{
		prober:  prober,
		monitor: monitor,
		jobs:    make(chan probeJob, workerCount*4),
	}

	logging.Debug("Probe pool starting with %d workers", workerCount)
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.monitor != nil && !p.monitor.WaitIfPaused() {
			job.done(Dimensions{}, ErrPoolStopped)
			continue
		}

		start := time.Now()
		dims, err := p.prober.Probe(job.source)
		observeProbe(job.tier, time.Since(start), err)
		job.done(dims, err)
	}
}

// Submit queues a probe for the given source. The done callback always runs
// exactly once, on a worker goroutine. Submitting to a stopped pool fails
// the probe immediately.
func (p *Pool) Submit(source string, tier Tier, done func(Dimensions, error)) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		done(Dimensions{}, ErrPoolStopped)
		return
	}
	p.jobs <- probeJob{source: source, tier: tier, done: done}
	p.mu.Unlock()
}

// Stop drains the pool and waits for in-flight probes to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	logging.Debug("Probe pool stopped")
}
